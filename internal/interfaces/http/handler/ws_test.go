package handler

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/tableside/backend/internal/infrastructure/config"
	"github.com/tableside/backend/internal/infrastructure/notification"
)

func testWebSocketConfig() config.WebSocketConfig {
	return config.WebSocketConfig{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		SendQueueSize:   16,
		WriteTimeout:    time.Second,
		PingInterval:    30 * time.Second,
	}
}

func TestOrderStreamHandler_DeliversBroadcasts(t *testing.T) {
	gin.SetMode(gin.TestMode)

	hub := notification.NewHub(zaptest.NewLogger(t))
	defer hub.Shutdown()

	handler := NewOrderStreamHandler(hub, testWebSocketConfig(), zaptest.NewLogger(t))
	engine := gin.New()
	engine.GET("/ws/orders", handler.Handle)

	server := httptest.NewServer(engine)
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/orders"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	// Registration happens in the handler goroutine after upgrade
	require.Eventually(t, func() bool { return hub.Len() == 1 }, time.Second, 10*time.Millisecond)

	hub.Broadcast([]byte(`{"type":"order_created","order_id":"abc"}`))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"order_created","order_id":"abc"}`, string(payload))
}

func TestOrderStreamHandler_UnregistersOnDisconnect(t *testing.T) {
	gin.SetMode(gin.TestMode)

	hub := notification.NewHub(zaptest.NewLogger(t))
	defer hub.Shutdown()

	handler := NewOrderStreamHandler(hub, testWebSocketConfig(), zaptest.NewLogger(t))
	engine := gin.New()
	engine.GET("/ws/orders", handler.Handle)

	server := httptest.NewServer(engine)
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/orders"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)

	require.Eventually(t, func() bool { return hub.Len() == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())
	require.Eventually(t, func() bool { return hub.Len() == 0 }, time.Second, 10*time.Millisecond)
}

func TestOrderStreamHandler_RejectsPlainHTTP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	hub := notification.NewHub(zaptest.NewLogger(t))
	defer hub.Shutdown()

	handler := NewOrderStreamHandler(hub, testWebSocketConfig(), zaptest.NewLogger(t))
	engine := gin.New()
	engine.GET("/ws/orders", handler.Handle)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/ws/orders", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	assert.Equal(t, 0, hub.Len())
}
