package catalog

// Product is a read-only catalog entry. Price is in rupees, the smallest
// unit the storefront sells in.
type Product struct {
	ID               int64    `json:"id"`
	Name             string   `json:"name"`
	Category         Category `json:"category"`
	Price            int64    `json:"price"`
	PriceFormatted   string   `json:"priceFormatted"`
	Image            string   `json:"image"`
	ImageAlt         string   `json:"imageAlt"`
	Description      string   `json:"description"`
	ShortDescription string   `json:"shortDescription"`
	Dimensions       string   `json:"dimensions"`
	Material         string   `json:"material"`
	Rating           float64  `json:"rating"`
	Reviews          int      `json:"reviews"`
	InStock          bool     `json:"inStock"`
	Featured         bool     `json:"featured"`
	New              bool     `json:"new"`
	Colors           []string `json:"colors"`
	Care             string   `json:"care"`
}

// CategoryInfo describes a category for navigation. ProductCount is derived
// from the product collection.
type CategoryInfo struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Image        string `json:"image"`
	ProductCount int    `json:"productCount"`
}

type Testimonial struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Rating   int    `json:"rating"`
	Title    string `json:"title"`
	Text     string `json:"text"`
	Image    string `json:"image"`
	Product  string `json:"product"`
	Date     string `json:"date"`
}

// GalleryImage is a lookbook photo. Its category is a free-form label,
// not a product Category.
type GalleryImage struct {
	ID       int64  `json:"id"`
	Src      string `json:"src"`
	Alt      string `json:"alt"`
	Category string `json:"category"`
	Size     string `json:"size"`
}

// Option is one choice in the custom furniture form.
type Option struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	PriceMultiplier float64 `json:"priceMultiplier,omitempty"`
}

type CustomOptions struct {
	WoodTypes    []Option `json:"woodTypes"`
	Fabrics      []Option `json:"fabrics"`
	Sizes        []Option `json:"sizes"`
	BudgetRanges []Option `json:"budgetRanges"`
}

type Statistic struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}
