package notification

import (
	"errors"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/tableside/backend/internal/infrastructure/config"
)

// ErrSendQueueFull is returned when a client's outbound queue overflows,
// which usually means the peer stopped reading.
var ErrSendQueueFull = errors.New("send queue full")

// ErrClientClosed is returned when sending to a closed client.
var ErrClientClosed = errors.New("client closed")

// Client wraps a WebSocket connection with a buffered outbound queue.
// A single writer goroutine owns the connection; Send only enqueues.
type Client struct {
	conn         *websocket.Conn
	send         chan []byte
	writeTimeout time.Duration
	pingInterval time.Duration

	closeOnce sync.Once
	done      chan struct{}
}

// NewClient wraps an upgraded connection and starts its write pump
func NewClient(conn *websocket.Conn, cfg config.WebSocketConfig) *Client {
	c := &Client{
		conn:         conn,
		send:         make(chan []byte, cfg.SendQueueSize),
		writeTimeout: cfg.WriteTimeout,
		pingInterval: cfg.PingInterval,
		done:         make(chan struct{}),
	}
	go c.writePump()
	return c
}

// Send queues a payload for delivery to the peer
func (c *Client) Send(payload []byte) error {
	select {
	case <-c.done:
		return ErrClientClosed
	default:
	}

	select {
	case c.send <- payload:
		return nil
	default:
		return ErrSendQueueFull
	}
}

// Close tears down the connection. Safe to call more than once.
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		close(c.done)
		_ = c.conn.Close()
	})
	return nil
}

// writePump drains the send queue onto the connection and keeps the
// peer alive with periodic pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(c.pingInterval)
	defer func() {
		ticker.Stop()
		_ = c.Close()
	}()

	for {
		select {
		case <-c.done:
			return
		case payload := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.writeTimeout))
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.writeTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// ReadLoop consumes and discards inbound frames so that control messages
// are processed and a closed peer is detected. It blocks until the
// connection drops.
func (c *Client) ReadLoop() {
	defer func() { _ = c.Close() }()
	c.conn.SetReadLimit(512)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// Done is closed once the client has shut down
func (c *Client) Done() <-chan struct{} {
	return c.done
}
