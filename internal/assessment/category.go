// Package assessment scores the founder interest questionnaire and interprets
// the result. Everything in this package is a pure function over immutable
// tables, so an Engine can be shared across goroutines without locking.
package assessment

import "fmt"

// Category is one of the six interest dimensions.
type Category string

const (
	Realistic     Category = "R"
	Investigative Category = "I"
	Artistic      Category = "A"
	Social        Category = "S"
	Enterprising  Category = "E"
	Conventional  Category = "C"
)

// Categories lists every category in canonical order. Ties are always broken
// by position in this slice.
var Categories = []Category{Realistic, Investigative, Artistic, Social, Enterprising, Conventional}

var categoryNames = map[Category]string{
	Realistic:     "Realistic",
	Investigative: "Investigative",
	Artistic:      "Artistic",
	Social:        "Social",
	Enterprising:  "Enterprising",
	Conventional:  "Conventional",
}

// Valid reports whether c is one of the six categories.
func (c Category) Valid() bool {
	_, ok := categoryNames[c]
	return ok
}

// Name returns the display name, e.g. "Enterprising".
func (c Category) Name() string {
	return categoryNames[c]
}

func (c Category) index() int {
	for i, cat := range Categories {
		if cat == c {
			return i
		}
	}
	return len(Categories)
}

// ParseCategory accepts a single-letter category code.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}

// Scores maps every category to a normalized score in [0,100].
type Scores map[Category]int

// Ranked returns the categories sorted by descending score. Equal scores keep
// canonical order.
func (s Scores) Ranked() []Category {
	ranked := make([]Category, len(Categories))
	copy(ranked, Categories)
	// insertion sort: stable and the slice is always six long
	for i := 1; i < len(ranked); i++ {
		for j := i; j > 0 && s[ranked[j]] > s[ranked[j-1]]; j-- {
			ranked[j], ranked[j-1] = ranked[j-1], ranked[j]
		}
	}
	return ranked
}
