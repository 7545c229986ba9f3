package cart

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"luxe-living/catalog"
)

var (
	sofa  = catalog.Product{ID: 1, Name: "Royal Velvet Sofa", Category: catalog.CategoryLivingRoom, Price: 45000}
	table = catalog.Product{ID: 2, Name: "Marble Dining Table", Category: catalog.CategoryDining, Price: 85000}
	desk  = catalog.Product{ID: 3, Name: "Walnut Executive Desk", Category: catalog.CategoryOffice, Price: 68000}
)

func TestAddItemSameProductYieldsOneLine(t *testing.T) {
	s := NewMemoryStore()
	const n = 5
	for i := 0; i < n; i++ {
		s.AddItem(sofa)
	}
	c := s.Cart()
	require.Len(t, c.Lines, 1)
	assert.Equal(t, n, c.Lines[0].Quantity)
	assert.Equal(t, n, s.Count())
	assert.Equal(t, int64(n*45000), s.Total())
}

func TestAddItemKeepsInsertionOrder(t *testing.T) {
	s := NewMemoryStore()
	s.AddItem(sofa)
	s.AddItem(table)
	s.AddItem(desk)
	c := s.AddItem(sofa)

	require.Len(t, c.Lines, 3)
	assert.Equal(t, []int64{1, 2, 3}, []int64{c.Lines[0].ProductID, c.Lines[1].ProductID, c.Lines[2].ProductID})
	assert.Equal(t, 2, c.Lines[0].Quantity)
}

func TestAddItemCapturesProductSnapshot(t *testing.T) {
	s := NewMemoryStore()
	c := s.AddItem(table)
	assert.Equal(t, Line{
		ProductID: 2,
		Name:      "Marble Dining Table",
		Category:  catalog.CategoryDining,
		Price:     85000,
		Quantity:  1,
	}, c.Lines[0])
}

func TestRemoveItem(t *testing.T) {
	s := NewMemoryStore()
	s.AddItem(sofa)
	s.AddItem(table)

	c := s.RemoveItem(1)
	require.Len(t, c.Lines, 1)
	assert.Equal(t, int64(2), c.Lines[0].ProductID)
}

func TestRemoveItemAbsentIsIdempotent(t *testing.T) {
	s := NewMemoryStore()
	s.AddItem(sofa)
	before := s.Cart()

	s.RemoveItem(99)
	after := s.RemoveItem(99)
	assert.Equal(t, before, after)

	empty := NewMemoryStore()
	assert.True(t, empty.RemoveItem(1).Empty())
}

func TestSetQuantity(t *testing.T) {
	s := NewMemoryStore()
	s.AddItem(sofa)
	s.AddItem(table)

	c := s.SetQuantity(2, 4)
	line, ok := c.Line(2)
	require.True(t, ok)
	assert.Equal(t, 4, line.Quantity)
	assert.Equal(t, int64(45000+4*85000), c.Total())
	assert.Equal(t, int64(2), c.Lines[1].ProductID, "position unchanged")
}

func TestSetQuantityNonPositiveRemoves(t *testing.T) {
	for _, q := range []int{0, -1, -50} {
		s := NewMemoryStore()
		s.AddItem(sofa)
		s.AddItem(table)

		c := s.SetQuantity(1, q)
		_, ok := c.Line(1)
		assert.False(t, ok, "quantity %d must remove the line", q)
		assert.Len(t, c.Lines, 1)
	}
}

func TestSetQuantityOnMissingLineIsNoop(t *testing.T) {
	s := NewMemoryStore()
	s.AddItem(sofa)

	c := s.SetQuantity(3, 7)
	require.Len(t, c.Lines, 1)
	_, ok := c.Line(3)
	assert.False(t, ok)
}

func TestClear(t *testing.T) {
	s := NewMemoryStore()
	s.AddItem(sofa)
	s.AddItem(desk)

	c := s.Clear()
	assert.True(t, c.Empty())
	assert.Zero(t, s.Total())
	assert.Zero(t, s.Count())
}

func TestSnapshotsDoNotAliasStore(t *testing.T) {
	s := NewMemoryStore()
	c := s.AddItem(sofa)
	c.Lines[0].Quantity = 100

	assert.Equal(t, 1, s.Count())
}

func TestScenarioFromThreeProducts(t *testing.T) {
	a := catalog.Product{ID: 1, Price: 100, Featured: true}
	b := catalog.Product{ID: 2, Price: 50, New: true}
	c := catalog.Product{ID: 3, Price: 200}

	sorted := catalog.Query([]catalog.Product{a, b, c}, catalog.QueryParams{Sort: catalog.SortPriceLow})
	require.Len(t, sorted, 3)
	assert.Equal(t, []int64{2, 1, 3}, []int64{sorted[0].ID, sorted[1].ID, sorted[2].ID})

	s := NewMemoryStore()
	s.AddItem(a)
	s.AddItem(b)
	got := s.AddItem(a)
	assert.Equal(t, []Line{{ProductID: 1, Price: 100, Quantity: 2}, {ProductID: 2, Price: 50, Quantity: 1}}, got.Lines)
	assert.Equal(t, int64(250), s.Total())
	assert.Equal(t, 3, s.Count())

	got = s.SetQuantity(2, 0)
	assert.Equal(t, []Line{{ProductID: 1, Price: 100, Quantity: 2}}, got.Lines)
	assert.Equal(t, int64(200), s.Total())
}

// TestTotalsTrackRandomSequences checks the derived totals against a model
// after random operation sequences.
func TestTotalsTrackRandomSequences(t *testing.T) {
	products := []catalog.Product{sofa, table, desk, {ID: 4, Price: 999}, {ID: 5, Price: 0}}
	r := rand.New(rand.NewSource(42))

	for round := 0; round < 200; round++ {
		s := NewMemoryStore()
		model := map[int64]int{}
		for step := 0; step < 40; step++ {
			p := products[r.Intn(len(products))]
			switch r.Intn(4) {
			case 0, 1:
				s.AddItem(p)
				model[p.ID]++
			case 2:
				s.RemoveItem(p.ID)
				delete(model, p.ID)
			case 3:
				q := r.Intn(6) - 2
				s.SetQuantity(p.ID, q)
				if q < 1 {
					delete(model, p.ID)
				} else if _, ok := model[p.ID]; ok {
					model[p.ID] = q
				}
			}

			c := s.Cart()
			var wantTotal int64
			wantCount := 0
			seen := map[int64]bool{}
			for _, l := range c.Lines {
				require.False(t, seen[l.ProductID], "duplicate line for %d", l.ProductID)
				seen[l.ProductID] = true
				require.GreaterOrEqual(t, l.Quantity, 1)
				require.Equal(t, model[l.ProductID], l.Quantity)
				wantTotal += l.Price * int64(l.Quantity)
				wantCount += l.Quantity
			}
			require.Len(t, c.Lines, len(model))
			require.Equal(t, wantTotal, s.Total())
			require.Equal(t, wantCount, s.Count())
		}
	}
}

func TestCartJSON(t *testing.T) {
	s := NewMemoryStore()
	s.AddItem(sofa)
	s.AddItem(sofa)

	b, err := json.Marshal(s.Cart())
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"items": [{"product_id":1,"name":"Royal Velvet Sofa","category":"Living Room","price":45000,"image":"","quantity":2}],
		"total": 90000,
		"count": 2
	}`, string(b))

	b, err = json.Marshal(NewMemoryStore().Cart())
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[],"total":0,"count":0}`, string(b))
}
