package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	catalogapp "github.com/tableside/backend/internal/application/catalog"
	diningapp "github.com/tableside/backend/internal/application/dining"
	identityapp "github.com/tableside/backend/internal/application/identity"
	orderingapp "github.com/tableside/backend/internal/application/ordering"
	reportapp "github.com/tableside/backend/internal/application/report"
	"github.com/tableside/backend/internal/infrastructure/auth"
	"github.com/tableside/backend/internal/infrastructure/config"
	"github.com/tableside/backend/internal/infrastructure/event"
	"github.com/tableside/backend/internal/infrastructure/logger"
	"github.com/tableside/backend/internal/infrastructure/notification"
	"github.com/tableside/backend/internal/infrastructure/persistence"
	"github.com/tableside/backend/internal/interfaces/http/handler"
	"github.com/tableside/backend/internal/interfaces/http/middleware"
	"github.com/tableside/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting Tableside backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Database
	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	// Token blacklist for logout; Redis in normal operation, in-memory as a
	// degraded fallback so auth still works when Redis is down
	var blacklist auth.TokenBlacklist
	redisBlacklist, err := auth.NewRedisTokenBlacklist(cfg.Redis.RedisAddr(), cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Warn("Redis unavailable, using in-memory token blacklist", zap.Error(err))
		blacklist = auth.NewInMemoryTokenBlacklist()
	} else {
		blacklist = redisBlacklist
	}

	jwtService := auth.NewJWTService(cfg.JWT)

	// Event bus and kitchen notification hub
	eventBus := event.NewInMemoryEventBus(log)
	hub := notification.NewHub(log)

	notifier := orderingapp.NewKitchenNotifier(hub, log)
	eventBus.Subscribe(notifier, notifier.EventTypes()...)

	busCtx, busCancel := context.WithCancel(context.Background())
	defer busCancel()
	if err := eventBus.Start(busCtx); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}

	// Repositories
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	menuItemRepo := persistence.NewGormMenuItemRepository(db.DB)
	categoryRepo := persistence.NewGormMenuCategoryRepository(db.DB)
	tableRepo := persistence.NewGormTableRepository(db.DB)
	restaurantRepo := persistence.NewGormRestaurantRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	analyticsRepo := persistence.NewGormAnalyticsRepository(db.DB)

	// Application services
	orderService := orderingapp.NewOrderService(orderRepo, tableRepo, menuItemRepo)
	orderService.SetEventPublisher(eventBus)
	menuService := catalogapp.NewMenuService(menuItemRepo, categoryRepo)
	categoryService := catalogapp.NewCategoryService(categoryRepo)
	tableService := diningapp.NewTableService(tableRepo, cfg.App.JoinBaseURL)
	authService := identityapp.NewAuthService(restaurantRepo, userRepo, jwtService, blacklist, log)
	analyticsService := reportapp.NewAnalyticsService(analyticsRepo)
	recommendationService := reportapp.NewRecommendationService(analyticsRepo, menuItemRepo)

	// Owner-only routes authenticate with the same middleware instance
	authMW := middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		Logger:         log,
	})

	// Handlers
	orderHandler := handler.NewOrderHandler(orderService, authMW)
	menuHandler := handler.NewMenuHandler(menuService, authMW)
	categoryHandler := handler.NewCategoryHandler(categoryService, authMW)
	tableHandler := handler.NewTableHandler(tableService, authMW)
	authHandler := handler.NewAuthHandler(authService, authMW)
	reportHandler := handler.NewReportHandler(analyticsService, recommendationService, authMW)
	systemHandler := handler.NewSystemHandler()
	orderStreamHandler := handler.NewOrderStreamHandler(hub, cfg.WebSocket, log)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	engine.GET("/health", healthHandler(db))
	engine.GET("/ws/orders", orderStreamHandler.Handle)

	router.NewRouter(engine).
		Register(authHandler).
		Register(orderHandler).
		Register(menuHandler).
		Register(categoryHandler).
		Register(tableHandler).
		Register(reportHandler).
		Register(systemHandler).
		Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	hub.Shutdown()
	if err := eventBus.Stop(ctx); err != nil {
		log.Warn("Event bus stop", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler reports process and database health
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
