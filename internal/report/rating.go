package report

import "math"

// MaxStars is the number of stars a rating is drawn with.
const MaxStars = 5

var brackets = []struct {
	hours  float64
	rating float64
}{
	{16, 5.0},
	{14, 4.5},
	{10, 4.0},
	{6, 3.5},
	{4, 3.0},
}

// MinRating is the floor; zero hours still show two and a half stars.
const MinRating = 2.5

// Rating maps accumulated hours to a performance rating. Each bracket
// starts at its threshold inclusive.
func Rating(hours float64) float64 {
	for _, b := range brackets {
		if hours >= b.hours {
			return b.rating
		}
	}
	return MinRating
}

// Stars is a rating split into drawable parts.
type Stars struct {
	Full  int
	Half  bool
	Empty int
}

func StarsFor(rating float64) Stars {
	rating = min(max(rating, 0), MaxStars)
	full := int(math.Floor(rating))
	return Stars{
		Full:  full,
		Half:  rating != float64(full),
		Empty: MaxStars - int(math.Ceil(rating)),
	}
}
