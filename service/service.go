package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"luxe-living/cart"
	"luxe-living/catalog"
	models "luxe-living/model"
	"luxe-living/store"
)

// RelatedLimit caps the related products shown on a detail page.
const RelatedLimit = 4

var (
	ErrProductNotFound = errors.New("product not found")
	ErrSessionRequired = errors.New("session_id required")
	ErrSessionNotFound = errors.New("cart session not found")
	ErrIntakeFailed    = errors.New("submission could not be recorded")
)

const (
	contactMessage    = "Thank you for your message. We will get back to you within 24 hours."
	customMessage     = "Your custom furniture request has been submitted. Our design team will contact you within 24-48 hours."
	newsletterMessage = "Thank you for subscribing! You will receive our latest updates and exclusive offers."
)

type Service struct {
	catalog *catalog.Catalog
	carts   *cart.Registry
	store   store.Store

	formTimeout time.Duration
	newID       func() string
}

// NewService wires the catalog, a fresh cart registry and the lead store.
// formTimeout bounds every store call; zero means no bound.
func NewService(c *catalog.Catalog, s store.Store, formTimeout time.Duration) *Service {
	return &Service{
		catalog:     c,
		carts:       cart.NewRegistry(),
		store:       s,
		formTimeout: formTimeout,
		newID:       uuid.NewString,
	}
}

var _ ServiceInterface = (*Service)(nil)

// --- catalog ---

func (s *Service) ListProducts(params catalog.QueryParams) []ProductDTO {
	return toProductDTOs(s.catalog.Query(params))
}

func (s *Service) GetProduct(id int64) (ProductDetailDTO, error) {
	p, ok := s.catalog.Product(id)
	if !ok {
		return ProductDetailDTO{}, fmt.Errorf("%w: %d", ErrProductNotFound, id)
	}
	return ProductDetailDTO{
		ProductDTO:      toProductDTO(p),
		RelatedProducts: toProductDTOs(s.catalog.Related(p, RelatedLimit)),
	}, nil
}

func (s *Service) ListCategories() []catalog.CategoryInfo { return s.catalog.Categories() }

func (s *Service) ListTestimonials() []catalog.Testimonial { return s.catalog.Testimonials() }

func (s *Service) ListGallery(category string) []catalog.GalleryImage {
	return s.catalog.Gallery(category)
}

func (s *Service) GetCustomOptions() catalog.CustomOptions { return s.catalog.CustomOptions() }

func (s *Service) GetStatistics() []catalog.Statistic { return s.catalog.Statistics() }

// --- cart ---

// NewCartSession opens an empty cart and returns its session id. Cart
// calls only accept ids minted here.
func (s *Service) NewCartSession() string {
	id := s.newID()
	s.carts.Open(id)
	return id
}

func (s *Service) withCart(sessionID string, fn func(cart.Store) cart.Cart) (cart.Cart, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return cart.Cart{}, ErrSessionRequired
	}
	c, err := s.carts.With(sessionID, fn)
	if errors.Is(err, cart.ErrUnknownSession) {
		return cart.Cart{}, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	return c, err
}

// SweepCarts drops carts idle for longer than idle.
func (s *Service) SweepCarts(idle time.Duration) int { return s.carts.Sweep(idle) }

// RunCartSweeper sweeps idle carts every interval until ctx is done.
func (s *Service) RunCartSweeper(ctx context.Context, idle, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := s.SweepCarts(idle); n > 0 {
				log.Printf("swept %d idle carts, %d open", n, s.carts.Len())
			}
		}
	}
}

func (s *Service) GetCart(sessionID string) (cart.Cart, error) {
	return s.withCart(sessionID, func(c cart.Store) cart.Cart { return c.Cart() })
}

// AddToCart adds one unit of a catalog product. Unknown products are rejected.
func (s *Service) AddToCart(sessionID string, productID int64) (cart.Cart, error) {
	if strings.TrimSpace(sessionID) == "" {
		return cart.Cart{}, ErrSessionRequired
	}
	p, ok := s.catalog.Product(productID)
	if !ok {
		return cart.Cart{}, fmt.Errorf("%w: %d", ErrProductNotFound, productID)
	}
	return s.withCart(sessionID, func(c cart.Store) cart.Cart { return c.AddItem(p) })
}

func (s *Service) RemoveFromCart(sessionID string, productID int64) (cart.Cart, error) {
	return s.withCart(sessionID, func(c cart.Store) cart.Cart { return c.RemoveItem(productID) })
}

// UpdateCartQuantity sets a line's quantity; below 1 removes the line and
// a product not in the cart is left out.
func (s *Service) UpdateCartQuantity(sessionID string, productID int64, quantity int) (cart.Cart, error) {
	return s.withCart(sessionID, func(c cart.Store) cart.Cart { return c.SetQuantity(productID, quantity) })
}

func (s *Service) ClearCart(sessionID string) (cart.Cart, error) {
	return s.withCart(sessionID, func(c cart.Store) cart.Cart { return c.Clear() })
}

// --- leads ---

func (s *Service) bounded(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.formTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.formTimeout)
}

func receipt(row store.LeadRow, err error, msg string) (models.Receipt, error) {
	if err != nil {
		return models.Receipt{}, fmt.Errorf("%w: %w", ErrIntakeFailed, err)
	}
	return models.Receipt{ID: row.ID, Message: msg, CreatedAt: row.CreatedAt}, nil
}

func (s *Service) SubmitContact(ctx context.Context, req models.ContactRequest) (models.Receipt, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return models.Receipt{}, err
	}
	ctx, cancel := s.bounded(ctx)
	defer cancel()
	row, err := s.store.SaveContact(ctx, s.newID(), req)
	return receipt(row, err, contactMessage)
}

func (s *Service) SubmitCustomRequest(ctx context.Context, req models.CustomRequest) (models.Receipt, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return models.Receipt{}, err
	}
	ctx, cancel := s.bounded(ctx)
	defer cancel()
	row, err := s.store.SaveCustomRequest(ctx, s.newID(), req)
	return receipt(row, err, customMessage)
}

func (s *Service) Subscribe(ctx context.Context, sub models.Subscription) (models.Receipt, error) {
	sub.Normalize()
	if err := sub.Validate(); err != nil {
		return models.Receipt{}, err
	}
	ctx, cancel := s.bounded(ctx)
	defer cancel()
	row, err := s.store.Subscribe(ctx, s.newID(), sub)
	return receipt(row, err, newsletterMessage)
}

// DTOs

// ProductDTO adds the category slug the storefront links with.
type ProductDTO struct {
	catalog.Product
	CategorySlug string `json:"categorySlug"`
}

type ProductDetailDTO struct {
	ProductDTO
	RelatedProducts []ProductDTO `json:"relatedProducts"`
}

func toProductDTO(p catalog.Product) ProductDTO {
	return ProductDTO{Product: p, CategorySlug: p.Category.Slug()}
}

func toProductDTOs(ps []catalog.Product) []ProductDTO {
	out := make([]ProductDTO, 0, len(ps))
	for _, p := range ps {
		out = append(out, toProductDTO(p))
	}
	return out
}
