package cart

import (
	"slices"

	"luxe-living/catalog"
)

// Store is the cart contract the rest of the service depends on. Every
// mutator returns a snapshot of the cart after the change.
type Store interface {
	AddItem(p catalog.Product) Cart
	RemoveItem(productID int64) Cart
	SetQuantity(productID int64, quantity int) Cart
	Clear() Cart

	Cart() Cart
	Total() int64
	Count() int
}

// MemoryStore keeps a single cart in memory. It is not safe for concurrent
// use; callers serialise access (see Registry).
type MemoryStore struct {
	lines []Line
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) index(productID int64) int {
	return slices.IndexFunc(s.lines, func(l Line) bool { return l.ProductID == productID })
}

// AddItem increments the product's line in place, or appends a new line
// with quantity 1.
func (s *MemoryStore) AddItem(p catalog.Product) Cart {
	if i := s.index(p.ID); i >= 0 {
		s.lines[i].Quantity++
		return s.Cart()
	}
	s.lines = append(s.lines, Line{
		ProductID: p.ID,
		Name:      p.Name,
		Category:  p.Category,
		Price:     p.Price,
		Image:     p.Image,
		Quantity:  1,
	})
	return s.Cart()
}

// RemoveItem deletes the product's line. Removing an absent product is a no-op.
func (s *MemoryStore) RemoveItem(productID int64) Cart {
	if i := s.index(productID); i >= 0 {
		s.lines = slices.Delete(s.lines, i, i+1)
	}
	return s.Cart()
}

// SetQuantity sets an existing line's quantity. A quantity below 1 removes
// the line. The line must already exist: for an absent product this is a
// no-op and no line is created.
func (s *MemoryStore) SetQuantity(productID int64, quantity int) Cart {
	if quantity < 1 {
		return s.RemoveItem(productID)
	}
	if i := s.index(productID); i >= 0 {
		s.lines[i].Quantity = quantity
	}
	return s.Cart()
}

func (s *MemoryStore) Clear() Cart {
	s.lines = nil
	return s.Cart()
}

// Cart returns a snapshot that shares no storage with the store.
func (s *MemoryStore) Cart() Cart {
	return Cart{Lines: slices.Clone(s.lines)}
}

func (s *MemoryStore) Total() int64 { return Cart{Lines: s.lines}.Total() }

func (s *MemoryStore) Count() int { return Cart{Lines: s.lines}.Count() }
