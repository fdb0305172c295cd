package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/tableside/backend/internal/infrastructure/config"
	"github.com/tableside/backend/internal/infrastructure/notification"
)

// OrderStreamHandler upgrades kitchen display connections and attaches them
// to the notification hub. Clients only listen; anything they send is read
// and discarded so closes are detected promptly.
type OrderStreamHandler struct {
	hub      *notification.Hub
	cfg      config.WebSocketConfig
	upgrader websocket.Upgrader
	logger   *zap.Logger
}

// NewOrderStreamHandler creates a new OrderStreamHandler
func NewOrderStreamHandler(hub *notification.Hub, cfg config.WebSocketConfig, logger *zap.Logger) *OrderStreamHandler {
	return &OrderStreamHandler{
		hub: hub,
		cfg: cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  cfg.ReadBufferSize,
			WriteBufferSize: cfg.WriteBufferSize,
			// Origin enforcement happens in the CORS layer; the socket
			// carries no credentials and only ever pushes order events.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger: logger,
	}
}

// Handle upgrades the request and pumps order events until the peer leaves
func (h *OrderStreamHandler) Handle(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the error response
		h.logger.Warn("WebSocket upgrade failed", zap.Error(err))
		return
	}

	client := notification.NewClient(conn, h.cfg)
	h.hub.Register(client)
	h.logger.Info("kitchen display connected",
		zap.String("remote_addr", conn.RemoteAddr().String()),
		zap.Int("subscribers", h.hub.Len()))

	// Blocks until the peer disconnects
	client.ReadLoop()

	h.hub.Unregister(client)
	h.logger.Info("kitchen display disconnected",
		zap.String("remote_addr", conn.RemoteAddr().String()),
		zap.Int("subscribers", h.hub.Len()))
}
