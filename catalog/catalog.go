package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	ErrDuplicateProduct = errors.New("duplicate product id")
	ErrInvalidProduct   = errors.New("invalid product")
)

//go:embed data/catalog.json
var embedded []byte

type categoryRecord struct {
	ID          Category `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
}

// document is the on-disk shape of the catalog.
type document struct {
	Categories    []categoryRecord `json:"categories"`
	Products      []Product        `json:"products"`
	Testimonials  []Testimonial    `json:"testimonials"`
	Gallery       []GalleryImage   `json:"gallery"`
	CustomOptions CustomOptions    `json:"customOptions"`
	Statistics    []Statistic      `json:"statistics"`
}

// Catalog is the static, read-only storefront data. It is safe for
// concurrent use since nothing mutates it after Load.
type Catalog struct {
	doc  document
	byID map[int64]int
}

// LoadDefault loads the catalog compiled into the binary.
func LoadDefault() (*Catalog, error) {
	return Load(bytes.NewReader(embedded))
}

// Open loads a catalog document from path.
func Open(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Load decodes and validates a catalog document.
func Load(r io.Reader) (*Catalog, error) {
	var doc document
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	for _, rec := range doc.Categories {
		if !rec.ID.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, rec.Name)
		}
	}

	c := &Catalog{doc: doc, byID: make(map[int64]int, len(doc.Products))}
	for i := range c.doc.Products {
		p := &c.doc.Products[i]
		if err := validate(*p); err != nil {
			return nil, err
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateProduct, p.ID)
		}
		c.byID[p.ID] = i
		p.PriceFormatted = FormatPrice(p.Price)
	}
	return c, nil
}

func validate(p Product) error {
	switch {
	case !p.Category.Valid():
		return fmt.Errorf("%w %d: category %q", ErrInvalidProduct, p.ID, p.Category)
	case p.Price < 0:
		return fmt.Errorf("%w %d: negative price", ErrInvalidProduct, p.ID)
	case p.Rating < 0 || p.Rating > 5:
		return fmt.Errorf("%w %d: rating %.1f out of range", ErrInvalidProduct, p.ID, p.Rating)
	}
	return nil
}

// Products returns a copy of every product in catalog order.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.doc.Products))
	copy(out, c.doc.Products)
	return out
}

func (c *Catalog) Query(params QueryParams) []Product {
	return Query(c.doc.Products, params)
}

// Product looks up a product by id. A missing id is reported with ok == false.
func (c *Catalog) Product(id int64) (Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Product{}, false
	}
	return c.doc.Products[i], true
}

func (c *Catalog) Related(p Product, maxCount int) []Product {
	return RelatedTo(c.doc.Products, p, maxCount)
}

// Categories lists the navigation categories with live product counts.
func (c *Catalog) Categories() []CategoryInfo {
	counts := make(map[Category]int)
	for _, p := range c.doc.Products {
		counts[p.Category]++
	}
	out := make([]CategoryInfo, 0, len(c.doc.Categories))
	for _, rec := range c.doc.Categories {
		out = append(out, CategoryInfo{
			ID:           rec.ID.Slug(),
			Name:         rec.ID.String(),
			Description:  rec.Description,
			Image:        rec.Image,
			ProductCount: counts[rec.ID],
		})
	}
	return out
}

func (c *Catalog) Testimonials() []Testimonial {
	return append([]Testimonial(nil), c.doc.Testimonials...)
}

// Gallery returns lookbook images whose label equals category ignoring case.
// An empty category or "all" returns every image.
func (c *Catalog) Gallery(category string) []GalleryImage {
	want := folder.String(strings.TrimSpace(category))
	out := make([]GalleryImage, 0, len(c.doc.Gallery))
	for _, img := range c.doc.Gallery {
		if want == "" || want == "all" || folder.String(img.Category) == want {
			out = append(out, img)
		}
	}
	return out
}

func (c *Catalog) CustomOptions() CustomOptions {
	o := c.doc.CustomOptions
	return CustomOptions{
		WoodTypes:    append([]Option(nil), o.WoodTypes...),
		Fabrics:      append([]Option(nil), o.Fabrics...),
		Sizes:        append([]Option(nil), o.Sizes...),
		BudgetRanges: append([]Option(nil), o.BudgetRanges...),
	}
}

func (c *Catalog) Statistics() []Statistic {
	return append([]Statistic(nil), c.doc.Statistics...)
}
