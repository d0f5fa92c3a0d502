package server

import (
	"context"
	"net/http"
	"time"

	"github.com/aurelia-jewels/aurelia/internal/charge"
	chargedomain "github.com/aurelia-jewels/aurelia/internal/charge/domain"
	"github.com/aurelia-jewels/aurelia/internal/config"
	"github.com/aurelia-jewels/aurelia/internal/diamondrate"
	diamondratedomain "github.com/aurelia-jewels/aurelia/internal/diamondrate/domain"
	"github.com/aurelia-jewels/aurelia/internal/goldrate"
	goldratedomain "github.com/aurelia-jewels/aurelia/internal/goldrate/domain"
	"github.com/aurelia-jewels/aurelia/internal/inventory"
	inventorydomain "github.com/aurelia-jewels/aurelia/internal/inventory/domain"
	"github.com/aurelia-jewels/aurelia/internal/observability"
	obsmiddleware "github.com/aurelia-jewels/aurelia/internal/observability/logger"
	obsmetrics "github.com/aurelia-jewels/aurelia/internal/observability/metrics"
	obstracing "github.com/aurelia-jewels/aurelia/internal/observability/tracing"
	"github.com/aurelia-jewels/aurelia/internal/pricing"
	pricingdomain "github.com/aurelia-jewels/aurelia/internal/pricing/domain"
	"github.com/aurelia-jewels/aurelia/internal/product"
	productdomain "github.com/aurelia-jewels/aurelia/internal/product/domain"
	"github.com/aurelia-jewels/aurelia/internal/ratelimit"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	product.Module,
	goldrate.Module,
	diamondrate.Module,
	charge.Module,
	pricing.Module,
	inventory.Module,
	ratelimit.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(obsmiddleware.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(obstracing.GinMiddleware())
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	return NewEngine(obsCfg, httpMetrics)
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine *gin.Engine
	cfg    config.Config
	db     *gorm.DB

	productSvc     productdomain.Service
	goldRateSvc    goldratedomain.Service
	diamondRateSvc diamondratedomain.Service
	chargeSvc      chargedomain.Service
	pricingSvc     pricingdomain.Service
	inventorySvc   inventorydomain.Service

	adminLimiter *ratelimit.AdminWriteLimiter
}

type ServerParams struct {
	fx.In

	Gin *gin.Engine
	Cfg config.Config
	DB  *gorm.DB

	ProductSvc     productdomain.Service
	GoldRateSvc    goldratedomain.Service
	DiamondRateSvc diamondratedomain.Service
	ChargeSvc      chargedomain.Service
	PricingSvc     pricingdomain.Service
	InventorySvc   inventorydomain.Service

	AdminLimiter *ratelimit.AdminWriteLimiter `optional:"true"`
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:         p.Gin,
		cfg:            p.Cfg,
		db:             p.DB,
		productSvc:     p.ProductSvc,
		goldRateSvc:    p.GoldRateSvc,
		diamondRateSvc: p.DiamondRateSvc,
		chargeSvc:      p.ChargeSvc,
		pricingSvc:     p.PricingSvc,
		inventorySvc:   p.InventorySvc,
		adminLimiter:   p.AdminLimiter,
	}

	svc.registerAPIRoutes()
	svc.registerAdminRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api")

	// Storefront reads. Every response carries a price computed at
	// request time from the current rate and charge tables.
	api.GET("/products", s.ListProducts)
	api.GET("/products/:id", s.GetProductByID)
	api.GET("/products/slug/:slug", s.GetProductBySlug)

	api.GET("/inventory/valuation", s.GetInventoryValuation)
}

func (s *Server) registerAdminRoutes() {
	admin := s.engine.Group("/admin")
	admin.Use(s.AdminWriteRateLimit())

	// -------- Products --------
	admin.GET("/products", s.ListProducts)
	admin.POST("/products", s.CreateProduct)
	admin.PATCH("/products/:id", s.UpdateProduct)
	admin.POST("/products/:id/archive", s.ArchiveProduct)

	// -------- Rates --------
	admin.GET("/rates/gold", s.ListGoldRates)
	admin.PUT("/rates/gold/:purity", s.UpsertGoldRate)
	admin.GET("/rates/diamond", s.ListDiamondRates)
	admin.PUT("/rates/diamond/:clarity", s.UpsertDiamondRate)

	// -------- Charges --------
	admin.GET("/charges", s.ListCharges)
	admin.POST("/charges", s.CreateCharge)
	admin.PATCH("/charges/:id", s.UpdateCharge)
	admin.POST("/charges/:id/deactivate", s.DeactivateCharge)
}
