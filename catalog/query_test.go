package catalog

import (
	"math/rand"
	"net/url"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(ps []Product) []int64 {
	out := make([]int64, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

func ptr[T any](v T) *T { return &v }

func sample() []Product {
	return []Product{
		{ID: 1, Category: CategoryLivingRoom, Price: 45000, Featured: true, Rating: 4.8},
		{ID: 2, Category: CategoryDining, Price: 85000, Featured: true, New: true, Rating: 4.9},
		{ID: 3, Category: CategoryLivingRoom, Price: 28000, New: true, Rating: 4.6},
		{ID: 4, Category: CategoryOffice, Price: 68000, Rating: 4.7},
		{ID: 5, Category: CategoryLivingRoom, Price: 38000, Featured: true, Rating: 4.8},
		{ID: 6, Category: CategoryBedroom, Price: 42000, New: true, Rating: 4.5},
	}
}

func TestQueryCategoryNameEqualsSlug(t *testing.T) {
	byName, err := ParseCategory("Living Room")
	require.NoError(t, err)
	bySlug, err := ParseCategory("living-room")
	require.NoError(t, err)

	a := Query(sample(), QueryParams{Category: byName})
	b := Query(sample(), QueryParams{Category: bySlug})
	assert.Equal(t, a, b)
	for _, p := range a {
		assert.Equal(t, CategoryLivingRoom, p.Category)
	}
	assert.ElementsMatch(t, []int64{1, 3, 5}, ids(a))
}

func TestQueryPriceSorts(t *testing.T) {
	ps := []Product{{ID: 1, Price: 45000}, {ID: 2, Price: 85000}, {ID: 3, Price: 28000}}

	low := Query(ps, QueryParams{Sort: SortPriceLow})
	assert.Equal(t, []int64{3, 1, 2}, ids(low))

	high := Query(ps, QueryParams{Sort: SortPriceHigh})
	assert.Equal(t, []int64{2, 1, 3}, ids(high))
}

func TestQueryNewestIsStablePartition(t *testing.T) {
	got := Query(sample(), QueryParams{Sort: SortNewest})
	assert.Equal(t, []int64{2, 3, 6, 1, 4, 5}, ids(got))
}

func TestQueryRelevancePutsFeaturedFirst(t *testing.T) {
	got := Query(sample(), QueryParams{})
	assert.Equal(t, []int64{1, 2, 5, 3, 4, 6}, ids(got))
}

func TestQueryRatingIsStableOnTies(t *testing.T) {
	got := Query(sample(), QueryParams{Sort: SortRating})
	assert.Equal(t, []int64{2, 1, 5, 4, 3, 6}, ids(got))
}

func TestQueryFiltersAreConjunctive(t *testing.T) {
	got := Query(sample(), QueryParams{
		Category:     CategoryLivingRoom,
		MinPrice:     ptr[int64](30000),
		MaxPrice:     ptr[int64](45000),
		FeaturedOnly: true,
		Sort:         SortPriceLow,
	})
	assert.Equal(t, []int64{5, 1}, ids(got))
}

func TestQueryPriceBoundsAreInclusive(t *testing.T) {
	got := Query(sample(), QueryParams{MinPrice: ptr[int64](42000), MaxPrice: ptr[int64](45000), Sort: SortPriceLow})
	assert.Equal(t, []int64{6, 1}, ids(got))
}

func TestQueryLimitAppliesLast(t *testing.T) {
	got := Query(sample(), QueryParams{Sort: SortPriceHigh, Limit: ptr(2)})
	assert.Equal(t, []int64{2, 4}, ids(got))

	assert.Empty(t, Query(sample(), QueryParams{Limit: ptr(0)}))
	assert.Len(t, Query(sample(), QueryParams{Limit: ptr(100)}), 6)
}

func TestQueryUnknownCategoryMatchesNothing(t *testing.T) {
	assert.Empty(t, Query(sample(), QueryParams{Category: CategoryNone}))
}

func TestQueryIsPure(t *testing.T) {
	in := sample()
	before := slices.Clone(in)

	first := Query(in, QueryParams{Sort: SortPriceLow})
	second := Query(in, QueryParams{Sort: SortPriceLow})

	assert.Equal(t, before, in, "input must not be reordered")
	assert.Equal(t, first, second)

	first[0].Price = -1
	assert.NotEqual(t, int64(-1), second[0].Price, "results must not share storage")

	all := Query(in, QueryParams{Sort: SortRelevance})
	all[0].Name = "changed"
	assert.Empty(t, in[0].Name)
}

func TestQuerySortsAreOrdered(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	ps := make([]Product, 50)
	for i := range ps {
		ps[i] = Product{ID: int64(i + 1), Price: int64(r.Intn(20)) * 1000, Rating: float64(r.Intn(50)) / 10}
	}

	low := Query(ps, QueryParams{Sort: SortPriceLow})
	for i := 1; i < len(low); i++ {
		require.LessOrEqual(t, low[i-1].Price, low[i].Price)
		if low[i-1].Price == low[i].Price {
			require.Less(t, low[i-1].ID, low[i].ID, "equal prices keep catalog order")
		}
	}

	rated := Query(ps, QueryParams{Sort: SortRating})
	for i := 1; i < len(rated); i++ {
		require.GreaterOrEqual(t, rated[i-1].Rating, rated[i].Rating)
	}
}

func TestRelatedTo(t *testing.T) {
	ps := sample()
	got := RelatedTo(ps, ps[0], 4)
	assert.Equal(t, []int64{3, 5}, ids(got))

	capped := RelatedTo(ps, ps[0], 1)
	assert.Equal(t, []int64{3}, ids(capped))

	assert.Empty(t, RelatedTo(ps, ps[0], 0))
	assert.Empty(t, RelatedTo(ps, ps[0], -3))
	assert.Empty(t, RelatedTo(ps, ps[3], 4), "only product in its category")
}

func TestParseQuery(t *testing.T) {
	q := ParseQuery(url.Values{
		"category": {"Living Room"},
		"minPrice": {"30000"},
		"maxPrice": {"60000"},
		"featured": {"true"},
		"sort":     {"price-high"},
		"limit":    {"3"},
	})
	assert.Equal(t, CategoryLivingRoom, q.Category)
	require.NotNil(t, q.MinPrice)
	assert.Equal(t, int64(30000), *q.MinPrice)
	require.NotNil(t, q.MaxPrice)
	assert.Equal(t, int64(60000), *q.MaxPrice)
	assert.True(t, q.FeaturedOnly)
	assert.Equal(t, SortPriceHigh, q.Sort)
	require.NotNil(t, q.Limit)
	assert.Equal(t, 3, *q.Limit)
}

func TestParseQueryIsPermissive(t *testing.T) {
	q := ParseQuery(url.Values{
		"category": {"all"},
		"minPrice": {"cheap"},
		"maxPrice": {""},
		"featured": {"yes"},
		"sort":     {"popularity"},
		"limit":    {"-2"},
	})
	assert.Equal(t, QueryParams{}, q)

	unknown := ParseQuery(url.Values{"category": {"garden"}})
	assert.Equal(t, CategoryNone, unknown.Category)

	empty := ParseQuery(url.Values{})
	assert.Equal(t, QueryParams{}, empty)
}

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, SortNewest, ParseSortKey("Newest"))
	assert.Equal(t, SortRating, ParseSortKey(" rating "))
	assert.Equal(t, SortRelevance, ParseSortKey("featured"))
}
