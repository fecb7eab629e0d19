package plan

import "testing"

func TestCatalog(t *testing.T) {
	t.Parallel()

	catalog := Catalog()
	if len(catalog) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(catalog))
	}
	for _, c := range catalog {
		var popular int
		for _, p := range c.Plans {
			if p.Popular {
				popular++
				if p.IsFree() {
					t.Fatalf("%s: popular plan %q should be paid", c.Category, p.Title)
				}
			}
		}
		if popular != 1 {
			t.Fatalf("%s: expected exactly one popular plan, got %d", c.Category, popular)
		}
	}

	// callers get their own copy
	catalog[0].Plans[0].Title = "changed"
	if Catalog()[0].Plans[0].Title != "Free" {
		t.Fatalf("Catalog must not share state between calls")
	}
}

func TestFind(t *testing.T) {
	t.Parallel()

	p, ok := Find("for organizations", "PAID")
	if !ok || p.Price != "₹299/month" {
		t.Fatalf("unexpected plan %+v, found=%v", p, ok)
	}
	if _, ok := Find("For Individuals", "Enterprise"); ok {
		t.Fatalf("unexpected match for unknown plan")
	}
}
