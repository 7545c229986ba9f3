package catalog

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// ErrUnknownCategory is returned when a name matches no category.
var ErrUnknownCategory = errors.New("unknown category")

// Category is one of the fixed storefront categories.
type Category int

const (
	// CategoryAll means "no category constraint" in a query.
	CategoryAll Category = iota
	CategoryLivingRoom
	CategoryBedroom
	CategoryDining
	CategoryOffice
	CategoryLuxury

	// CategoryNone matches no product. ParseQuery uses it for unknown names.
	CategoryNone Category = -1
)

type categoryName struct {
	display string
	slug    string
}

// categoryNames is the single mapping between categories, display names and slugs.
var categoryNames = map[Category]categoryName{
	CategoryLivingRoom: {display: "Living Room", slug: "living-room"},
	CategoryBedroom:    {display: "Bedroom", slug: "bedroom"},
	CategoryDining:     {display: "Dining", slug: "dining"},
	CategoryOffice:     {display: "Office", slug: "office"},
	CategoryLuxury:     {display: "Luxury Collection", slug: "luxury-collection"},
}

var folder = cases.Fold()

// bySlug is derived from categoryNames so the two directions cannot disagree.
var bySlug = func() map[string]Category {
	m := make(map[string]Category, len(categoryNames))
	for c, n := range categoryNames {
		m[n.slug] = c
	}
	return m
}()

// Categories returns every concrete category in display order.
func Categories() []Category {
	return []Category{CategoryLivingRoom, CategoryBedroom, CategoryDining, CategoryOffice, CategoryLuxury}
}

// normalize folds case and turns a display name into slug form.
func normalize(s string) string {
	s = folder.String(strings.TrimSpace(s))
	return strings.Join(strings.Fields(s), "-")
}

// ParseCategory accepts a display name or a slug in any letter case.
// "all" and the empty string parse to CategoryAll.
func ParseCategory(s string) (Category, error) {
	n := normalize(s)
	if n == "" || n == "all" {
		return CategoryAll, nil
	}
	if c, ok := bySlug[n]; ok {
		return c, nil
	}
	return CategoryNone, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// String returns the display name.
func (c Category) String() string {
	if n, ok := categoryNames[c]; ok {
		return n.display
	}
	switch c {
	case CategoryAll:
		return "all"
	case CategoryNone:
		return "none"
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// Slug returns the lowercase hyphenated form used in URLs and filters.
func (c Category) Slug() string {
	if n, ok := categoryNames[c]; ok {
		return n.slug
	}
	return normalize(c.String())
}

// Valid reports whether c is a concrete category a product can belong to.
func (c Category) Valid() bool {
	_, ok := categoryNames[c]
	return ok
}

// Matches reports whether a product in category p passes the filter c.
func (c Category) Matches(p Category) bool {
	return c == CategoryAll || c == p
}

func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCategory, int(c))
	}
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(b []byte) error {
	parsed, err := ParseCategory(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
