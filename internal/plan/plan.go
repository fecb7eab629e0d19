// Package plan is the subscription catalog shown on the pricing page.
package plan

import "strings"

type Feature struct {
	Text     string `json:"text"`
	Included bool   `json:"included"`
}

type Plan struct {
	Title        string    `json:"title"`
	Price        string    `json:"price,omitempty"`
	SavePerMonth string    `json:"savePerMonth,omitempty"`
	Features     []Feature `json:"features"`
	Popular      bool      `json:"isPopular,omitempty"`
}

// IsFree reports whether the plan has no price.
func (p Plan) IsFree() bool { return p.Price == "" }

type Category struct {
	Category string `json:"category"`
	Plans    []Plan `json:"plans"`
}

// Catalog returns a fresh copy of the plans on offer.
func Catalog() []Category {
	return []Category{
		{
			Category: "For Individuals",
			Plans: []Plan{
				{
					Title: "Free",
					Features: []Feature{
						{"Add daily work", true},
						{"View last 1 month's data", true},
						{"Edit work logs", false},
						{"Adjust work durations", false},
						{"View data for any time range", false},
					},
				},
				{
					Title:   "Paid",
					Price:   "₹59/month",
					Popular: true,
					Features: []Feature{
						{"All Free features", true},
						{"Edit work logs", true},
						{"Adjust work durations", true},
						{"View data for any time range", true},
					},
				},
			},
		},
		{
			Category: "For Organizations",
			Plans: []Plan{
				{
					Title: "Free",
					Features: []Feature{
						{"Add up to 4 employees", true},
						{"View 1 month's employee data", true},
						{"Unlimited employees", false},
						{"Employees get 2 daily work edit limits", false},
						{"View data for any time range", false},
					},
				},
				{
					Title:   "Paid",
					Price:   "₹299/month",
					Popular: true,
					Features: []Feature{
						{"Unlimited employees", true},
						{"Employees get 2 daily work edit limits", true},
						{"View data for any time range", true},
					},
				},
			},
		},
	}
}

// Find looks a plan up by category and title, ignoring case.
func Find(category, title string) (Plan, bool) {
	for _, c := range Catalog() {
		if !strings.EqualFold(c.Category, category) {
			continue
		}
		for _, p := range c.Plans {
			if strings.EqualFold(p.Title, title) {
				return p, true
			}
		}
	}
	return Plan{}, false
}
