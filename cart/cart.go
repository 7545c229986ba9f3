// Package cart holds a shopper's chosen products and quantities.
package cart

import (
	"encoding/json"

	"luxe-living/catalog"
)

// Line is one product-and-quantity entry. Name, price, image and category
// are captured when the product is first added.
type Line struct {
	ProductID int64            `json:"product_id"`
	Name      string           `json:"name"`
	Category  catalog.Category `json:"category,omitempty"`
	Price     int64            `json:"price"`
	Image     string           `json:"image"`
	Quantity  int              `json:"quantity"`
}

func (l Line) Subtotal() int64 { return l.Price * int64(l.Quantity) }

// Cart is a snapshot of a cart's lines in insertion order. Total and Count
// are always derived from the lines.
type Cart struct {
	Lines []Line
}

// Total is the sum of price × quantity over all lines.
func (c Cart) Total() int64 {
	var total int64
	for _, l := range c.Lines {
		total += l.Subtotal()
	}
	return total
}

// Count is the sum of quantities over all lines.
func (c Cart) Count() int {
	n := 0
	for _, l := range c.Lines {
		n += l.Quantity
	}
	return n
}

func (c Cart) Empty() bool { return len(c.Lines) == 0 }

// Line returns the line for productID if the cart has one.
func (c Cart) Line(productID int64) (Line, bool) {
	for _, l := range c.Lines {
		if l.ProductID == productID {
			return l, true
		}
	}
	return Line{}, false
}

func (c Cart) MarshalJSON() ([]byte, error) {
	lines := c.Lines
	if lines == nil {
		lines = []Line{}
	}
	return json.Marshal(struct {
		Items []Line `json:"items"`
		Total int64  `json:"total"`
		Count int    `json:"count"`
	}{lines, c.Total(), c.Count()})
}
