package catalog

import (
	"cmp"
	"net/url"
	"slices"
	"strconv"
	"strings"
)

// SortKey selects the ordering of a query result.
type SortKey string

const (
	SortRelevance SortKey = ""
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
	SortNewest    SortKey = "newest"
)

// QueryParams are the filters, ordering and limit applied by Query.
// Nil bounds and a nil Limit impose no constraint.
type QueryParams struct {
	Category     Category
	MinPrice     *int64
	MaxPrice     *int64
	FeaturedOnly bool
	Sort         SortKey
	Limit        *int
}

func (q QueryParams) keep(p Product) bool {
	if !q.Category.Matches(p.Category) {
		return false
	}
	if q.MinPrice != nil && p.Price < *q.MinPrice {
		return false
	}
	if q.MaxPrice != nil && p.Price > *q.MaxPrice {
		return false
	}
	if q.FeaturedOnly && !p.Featured {
		return false
	}
	return true
}

func flagFirst(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return -1
	}
	return 1
}

func comparator(k SortKey) func(a, b Product) int {
	switch k {
	case SortPriceLow:
		return func(a, b Product) int { return cmp.Compare(a.Price, b.Price) }
	case SortPriceHigh:
		return func(a, b Product) int { return cmp.Compare(b.Price, a.Price) }
	case SortRating:
		return func(a, b Product) int { return cmp.Compare(b.Rating, a.Rating) }
	case SortNewest:
		// no date field exists; new-flagged products come first
		return func(a, b Product) int { return flagFirst(a.New, b.New) }
	default:
		return func(a, b Product) int { return flagFirst(a.Featured, b.Featured) }
	}
}

// Query filters, stably sorts and limits products. The input is never
// modified and the result is always a fresh slice.
func Query(products []Product, params QueryParams) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if params.keep(p) {
			out = append(out, p)
		}
	}
	slices.SortStableFunc(out, comparator(params.Sort))
	if params.Limit != nil && *params.Limit < len(out) {
		out = out[:max(*params.Limit, 0)]
	}
	return out
}

// RelatedTo returns up to maxCount products sharing product's category,
// excluding product itself, in catalog order.
func RelatedTo(products []Product, product Product, maxCount int) []Product {
	out := make([]Product, 0, max(maxCount, 0))
	for _, p := range products {
		if len(out) >= maxCount {
			break
		}
		if p.Category == product.Category && p.ID != product.ID {
			out = append(out, p)
		}
	}
	return out
}

// ParseSortKey maps a query-string value to a SortKey. Unknown values sort by relevance.
func ParseSortKey(s string) SortKey {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(s))); k {
	case SortPriceLow, SortPriceHigh, SortRating, SortNewest:
		return k
	}
	return SortRelevance
}

// ParseQuery reads catalog query parameters permissively: malformed numbers
// and negative limits are treated as absent, and an unknown category matches
// nothing.
func ParseQuery(v url.Values) QueryParams {
	var q QueryParams
	if raw := v.Get("category"); raw != "" {
		c, err := ParseCategory(raw)
		if err != nil {
			c = CategoryNone
		}
		q.Category = c
	}
	q.MinPrice = parsePrice(v.Get("minPrice"))
	q.MaxPrice = parsePrice(v.Get("maxPrice"))
	q.FeaturedOnly = strings.EqualFold(v.Get("featured"), "true")
	q.Sort = ParseSortKey(v.Get("sort"))
	if n, err := strconv.Atoi(strings.TrimSpace(v.Get("limit"))); err == nil && n >= 0 {
		q.Limit = &n
	}
	return q
}

func parsePrice(s string) *int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return nil
	}
	return &n
}
