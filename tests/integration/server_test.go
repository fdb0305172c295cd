// Package integration exercises the full HTTP stack against an in-memory
// SQLite database: real gin engine, real middleware, real services and
// repositories, real event bus and notification hub.
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	catalogapp "github.com/tableside/backend/internal/application/catalog"
	diningapp "github.com/tableside/backend/internal/application/dining"
	identityapp "github.com/tableside/backend/internal/application/identity"
	orderingapp "github.com/tableside/backend/internal/application/ordering"
	reportapp "github.com/tableside/backend/internal/application/report"
	"github.com/tableside/backend/internal/infrastructure/auth"
	"github.com/tableside/backend/internal/infrastructure/config"
	"github.com/tableside/backend/internal/infrastructure/event"
	"github.com/tableside/backend/internal/infrastructure/notification"
	"github.com/tableside/backend/internal/infrastructure/persistence"
	"github.com/tableside/backend/internal/interfaces/http/handler"
	"github.com/tableside/backend/internal/interfaces/http/middleware"
	"github.com/tableside/backend/internal/interfaces/http/router"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testEnv is a fully wired server instance backed by in-memory SQLite
type testEnv struct {
	Server *httptest.Server
	Hub    *notification.Hub
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	log := zaptest.NewLogger(t)
	db := openTestDB(t)

	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                "integration-secret-at-least-32-chars!!",
		AccessTokenExpiration: time.Hour,
		Issuer:                "tableside-test",
	})
	blacklist := auth.NewInMemoryTokenBlacklist()

	eventBus := event.NewInMemoryEventBus(log)
	hub := notification.NewHub(log)
	notifier := orderingapp.NewKitchenNotifier(hub, log)
	eventBus.Subscribe(notifier, notifier.EventTypes()...)
	require.NoError(t, eventBus.Start(context.Background()))

	orderRepo := persistence.NewGormOrderRepository(db)
	tableRepo := persistence.NewGormTableRepository(db)
	menuItemRepo := persistence.NewGormMenuItemRepository(db)
	categoryRepo := persistence.NewGormMenuCategoryRepository(db)
	restaurantRepo := persistence.NewGormRestaurantRepository(db)
	userRepo := persistence.NewGormUserRepository(db)
	analyticsRepo := persistence.NewGormAnalyticsRepository(db)

	orderService := orderingapp.NewOrderService(orderRepo, tableRepo, menuItemRepo)
	orderService.SetEventPublisher(eventBus)
	tableService := diningapp.NewTableService(tableRepo, "https://order.example.com/join")
	menuService := catalogapp.NewMenuService(menuItemRepo, categoryRepo)
	categoryService := catalogapp.NewCategoryService(categoryRepo)
	authService := identityapp.NewAuthService(restaurantRepo, userRepo, jwtService, blacklist, log)
	analyticsService := reportapp.NewAnalyticsService(analyticsRepo)
	recommendationService := reportapp.NewRecommendationService(analyticsRepo, menuItemRepo)

	authMW := middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		Logger:         log,
	})

	wsCfg := config.WebSocketConfig{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		SendQueueSize:   16,
		WriteTimeout:    time.Second,
		PingInterval:    30 * time.Second,
	}

	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.GET("/ws/orders", handler.NewOrderStreamHandler(hub, wsCfg, log).Handle)

	router.NewRouter(engine).
		Register(handler.NewOrderHandler(orderService, authMW)).
		Register(handler.NewTableHandler(tableService, authMW)).
		Register(handler.NewMenuHandler(menuService, authMW)).
		Register(handler.NewCategoryHandler(categoryService, authMW)).
		Register(handler.NewAuthHandler(authService, authMW)).
		Register(handler.NewReportHandler(analyticsService, recommendationService, authMW)).
		Register(handler.NewSystemHandler()).
		Setup()

	server := httptest.NewServer(engine)
	t.Cleanup(func() {
		server.Close()
		hub.Shutdown()
		_ = eventBus.Stop(context.Background())
	})

	return &testEnv{Server: server, Hub: hub}
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	statements := []string{
		`CREATE TABLE restaurants (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			version INTEGER NOT NULL DEFAULT 1,
			name TEXT NOT NULL,
			city TEXT
		)`,
		`CREATE TABLE users (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			version INTEGER NOT NULL DEFAULT 1,
			restaurant_id TEXT NOT NULL,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			role TEXT NOT NULL
		)`,
		`CREATE TABLE menu_categories (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			version INTEGER NOT NULL DEFAULT 1,
			restaurant_id TEXT NOT NULL,
			name TEXT NOT NULL,
			sort_order INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE menu_items (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			version INTEGER NOT NULL DEFAULT 1,
			restaurant_id TEXT NOT NULL,
			category_id TEXT,
			name TEXT NOT NULL,
			description TEXT,
			price NUMERIC NOT NULL,
			is_available INTEGER NOT NULL DEFAULT 1,
			diet_tag TEXT
		)`,
		`CREATE TABLE tables (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			version INTEGER NOT NULL DEFAULT 1,
			restaurant_id TEXT NOT NULL,
			label TEXT NOT NULL,
			code TEXT NOT NULL UNIQUE
		)`,
		`CREATE TABLE orders (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			version INTEGER NOT NULL DEFAULT 1,
			restaurant_id TEXT NOT NULL,
			table_id TEXT,
			status TEXT NOT NULL DEFAULT 'pending',
			notes TEXT
		)`,
		`CREATE TABLE order_items (
			id TEXT PRIMARY KEY,
			order_id TEXT NOT NULL,
			menu_item_id TEXT NOT NULL,
			menu_item_name TEXT NOT NULL,
			quantity INTEGER NOT NULL,
			unit_price NUMERIC NOT NULL,
			amount NUMERIC NOT NULL,
			special_instructions TEXT,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)`,
	}

	for _, stmt := range statements {
		require.NoError(t, db.Exec(stmt).Error)
	}

	return db
}

// doJSON performs an HTTP request with an optional JSON body and bearer token
// and decodes the response envelope.
func (e *testEnv) doJSON(t *testing.T, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, e.Server.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(raw, &envelope), "body: %s", raw)

	return resp.StatusCode, envelope
}

// signup registers a restaurant with its owner and returns the bearer token
func (e *testEnv) signup(t *testing.T, restaurantName, email string) string {
	t.Helper()

	status, envelope := e.doJSON(t, http.MethodPost, "/api/v1/auth/signup", "", map[string]any{
		"restaurant_name": restaurantName,
		"owner_name":      "Owner",
		"email":           email,
		"password":        "supersecret",
	})
	require.Equal(t, http.StatusCreated, status)

	data := envelope["data"].(map[string]any)
	token := data["token"].(map[string]any)
	return token["access_token"].(string)
}

// createMenuItem creates a menu item as the owner and returns its id
func (e *testEnv) createMenuItem(t *testing.T, token, name string, price float64) string {
	t.Helper()

	status, envelope := e.doJSON(t, http.MethodPost, "/api/v1/menu-items", token, map[string]any{
		"name":  name,
		"price": price,
	})
	require.Equal(t, http.StatusCreated, status)

	data := envelope["data"].(map[string]any)
	return data["id"].(string)
}

// createTable creates a table as the owner and returns its id and join code
func (e *testEnv) createTable(t *testing.T, token, label string) (string, string) {
	t.Helper()

	status, envelope := e.doJSON(t, http.MethodPost, "/api/v1/tables", token, map[string]any{
		"label": label,
	})
	require.Equal(t, http.StatusCreated, status)

	data := envelope["data"].(map[string]any)
	return data["id"].(string), data["code"].(string)
}
