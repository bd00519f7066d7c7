package main

import (
	"log"
	"net/http"
	"time"

	"donna_landing_go/config"
	"donna_landing_go/db"
	"donna_landing_go/handlers"
	"donna_landing_go/middleware"
	"donna_landing_go/models"
	"donna_landing_go/services"
	"donna_landing_go/services/i18n"
	"donna_landing_go/services/jobs"
	"donna_landing_go/services/landing"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	if err := db.Initialize(db.Options{
		Path:        cfg.DBPath,
		TursoURL:    cfg.TursoDatabaseURL,
		TursoToken:  cfg.TursoAuthToken,
		Environment: cfg.Environment,
	}); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := db.AutoMigrate(&models.ContactMessage{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if err := i18n.Load(); err != nil {
		log.Fatalf("Failed to load translations: %v", err)
	}

	services.InitializeStorage(cfg)
	services.InitSecurityMonitor(cfg)

	// Landing content and widget layout
	content, err := landing.LoadContent(cfg.ContentPath)
	if err != nil {
		log.Fatalf("Failed to load landing content: %v", err)
	}
	page, err := landing.Build(content, landing.Timings{
		CounterTick: cfg.CounterTick,
		Autoplay:    cfg.CarouselAutoplay,
		Lock:        cfg.CarouselLock,
	}, services.ResolveAssetURL)
	if err != nil {
		log.Fatalf("Failed to build landing page: %v", err)
	}
	log.Printf("[INFO] Landing page built: %d sections, %d animated blocks", len(page.Sections), len(page.Blocks()))

	middleware.InitAssetVersions("static", middleware.LandingAssets...)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = handlers.HTTPErrorHandler(e)

	// Middleware
	e.Use(echomiddleware.RequestLogger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodPost},
	}))
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		HSTSMaxAge:         hstsMaxAge(cfg),
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}))
	e.Use(middleware.CSPNonce(middleware.LandingCSP(cfg.R2PublicURL)))
	e.Use(middleware.Locale(cfg))
	e.Use(middleware.CSRF(cfg))

	// Make config and the landing page available to handlers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(handlers.ConfigKey, cfg)
			c.Set(handlers.LandingKey, page)
			return next(c)
		}
	})

	// Static files
	e.Static("/static", "static")
	e.GET("/assets/*", handlers.GetAssetHandler)

	// Public routes
	e.GET("/", handlers.LandingHandler)
	e.POST("/contact", handlers.ContactPostHandler, middleware.ContactRateLimiter.Middleware())
	e.GET("/htmx/testimonials/:index", handlers.GetTestimonialHTMX)
	e.GET("/api/landing/widgets", handlers.WidgetConfigHandler)
	e.GET("/sitemap.xml", handlers.GetSitemapHandler)
	e.GET("/robots.txt", handlers.GetRobotsHandler)
	handlers.RegisterProductRedirects(e)

	// Start background maintenance jobs (runs every hour)
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			jobs.RetryContactNotifications(db.DB, cfg)
			jobs.PurgeExpiredContactMessages(db.DB, cfg)
		}
	}()

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func hstsMaxAge(cfg *config.Config) int {
	if cfg.IsProduction() {
		return 31536000
	}
	return 0
}
