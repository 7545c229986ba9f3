package service

import (
	"context"

	"luxe-living/cart"
	"luxe-living/catalog"
	models "luxe-living/model"
)

// ServiceInterface is what the HTTP layer depends on.
type ServiceInterface interface {
	ListProducts(params catalog.QueryParams) []ProductDTO
	GetProduct(id int64) (ProductDetailDTO, error)
	ListCategories() []catalog.CategoryInfo
	ListTestimonials() []catalog.Testimonial
	ListGallery(category string) []catalog.GalleryImage
	GetCustomOptions() catalog.CustomOptions
	GetStatistics() []catalog.Statistic

	NewCartSession() string
	GetCart(sessionID string) (cart.Cart, error)
	AddToCart(sessionID string, productID int64) (cart.Cart, error)
	RemoveFromCart(sessionID string, productID int64) (cart.Cart, error)
	UpdateCartQuantity(sessionID string, productID int64, quantity int) (cart.Cart, error)
	ClearCart(sessionID string) (cart.Cart, error)

	SubmitContact(ctx context.Context, req models.ContactRequest) (models.Receipt, error)
	SubmitCustomRequest(ctx context.Context, req models.CustomRequest) (models.Receipt, error)
	Subscribe(ctx context.Context, sub models.Subscription) (models.Receipt, error)
}
