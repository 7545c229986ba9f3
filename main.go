package main

// GET  /api/products               - catalog query (category, minPrice, maxPrice, featured, sort, limit)
// GET  /api/products/{id}          - product with related products
// GET  /api/categories, /testimonials, /gallery, /custom-options, /statistics
// POST /api/cart/session           - new cart session (ids expire after CART_IDLE_TTL)
// GET  /api/cart/list              - cart contents
// POST /api/cart/add, /remove, /update, /clear
// POST /api/contact, /custom-request, /newsletter

import (
	"context"
	_ "embed"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"

	"luxe-living/catalog"
	"luxe-living/config"
	"luxe-living/handler"
	"luxe-living/middleware"
	"luxe-living/service"
	"luxe-living/store"
)

//go:embed migrations.sql
var migrationSQL string

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	// --- Catalog ---
	cat, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		log.Fatalf("Catalog load failed: %v", err)
	}
	log.Printf("Catalog loaded: %d products", len(cat.Products()))

	// --- Store ---
	st, err := openStore(cfg.DBURL)
	if err != nil {
		log.Fatalf("DB connection failed: %v", err)
	}
	defer st.Close()

	// --- Service ---
	svc := service.NewService(cat, st, cfg.FormTimeout)
	var serviceInterface service.ServiceInterface = svc

	// --- Handlers ---
	h := handler.NewHandler(serviceInterface)

	// --- Router ---
	r := mux.NewRouter()
	r.Use(middleware.RequestLogger, middleware.CORS(cfg.CORSAllowedOrigins))

	var limited []mux.MiddlewareFunc
	if cfg.RedisURL != "" {
		proxies, err := middleware.ParseTrustedProxies(cfg.TrustedProxies)
		if err != nil {
			log.Fatalf("Config error: %v", err)
		}
		rdb, err := openRedis(cfg.RedisURL)
		if err != nil {
			log.Fatalf("Redis connection failed: %v", err)
		}
		defer rdb.Close()
		limited = append(limited, middleware.RateLimiter(rdb, cfg.FormRateLimit, cfg.FormRateWindow, proxies))
		log.Printf("Rate limiting forms and cart sessions: %d per %s", cfg.FormRateLimit, cfg.FormRateWindow)
	}
	h.RegisterRoutes(r, limited...)

	if cfg.StaticDir != "" {
		handler.RegisterStatic(r, cfg.StaticDir)
		log.Printf("Serving frontend from %s", cfg.StaticDir)
	}

	// --- Server ---
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go svc.RunCartSweeper(ctx, cfg.CartIdleTTL, sweepInterval(cfg.CartIdleTTL))

	go func() {
		log.Printf("Server running on %s (%s)", srv.Addr, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}

func sweepInterval(idle time.Duration) time.Duration {
	return max(idle/4, time.Minute)
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.LoadDefault()
	}
	return catalog.Open(path)
}

// openStore connects to Postgres and runs migrations, or falls back to
// logging submissions when no database is configured.
func openStore(dsn string) (store.Store, error) {
	if dsn == "" {
		log.Println("DATABASE_URL not set, logging form submissions instead")
		return store.NewLogStore(nil), nil
	}

	pg, err := store.NewPostgresStore(dsn)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := pg.Migrate(ctx, migrationSQL); err != nil {
		pg.Close()
		return nil, err
	}
	log.Println("Database migrations executed successfully ✔")
	return pg, nil
}

func openRedis(url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	rdb := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, err
	}
	return rdb, nil
}
