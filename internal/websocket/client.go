package websocket

import (
	"encoding/json"
	"sync"
	"time"

	"ai-interview-be/internal/pkg/logger"

	"github.com/gofiber/websocket/v2"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	// 16 kHz mono PCM chunks and base64 webcam frames both fit comfortably
	maxMessageSize = 4 * 1024 * 1024

	sendBuffer = 256
)

// Conn is the subset of *websocket.Conn used by Client.
type Conn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteMessage(messageType int, data []byte) error
	SetReadDeadline(t time.Time) error
	SetWriteDeadline(t time.Time) error
	SetReadLimit(limit int64)
	SetPongHandler(h func(appData string) error)
	Close() error
}

// Client owns one browser connection. Reads happen on the caller's goroutine;
// writes are serialized through writePump.
type Client struct {
	conn   Conn
	logger logger.ILogger

	send chan []byte
	done chan struct{}

	mu     sync.RWMutex
	closed bool
}

func NewClient(conn Conn, log logger.ILogger) *Client {
	c := &Client{
		conn:   conn,
		logger: log,
		send:   make(chan []byte, sendBuffer),
		done:   make(chan struct{}),
	}

	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	go c.writePump()
	return c
}

// ReadMessage blocks for the next client frame. Any traffic extends the
// read deadline.
func (c *Client) ReadMessage() (int, []byte, error) {
	mt, data, err := c.conn.ReadMessage()
	if err == nil {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
	}
	return mt, data, err
}

// Interrupt unblocks a pending ReadMessage.
func (c *Client) Interrupt() {
	c.conn.SetReadDeadline(time.Now())
}

// SendJSON queues v for delivery. It returns false once the client is
// closed, so late senders never panic.
func (c *Client) SendJSON(v interface{}) bool {
	b, err := json.Marshal(v)
	if err != nil {
		c.logger.Error("WebSocketClient", "Failed to marshal outbound message", map[string]interface{}{"error": err})
		return false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return false
	}
	select {
	case c.send <- b:
		return true
	case <-c.done:
		return false
	}
}

// Close flushes queued messages, sends a close frame and waits for the
// writer to exit. Idempotent.
func (c *Client) Close() {
	c.mu.Lock()
	if !c.closed {
		c.closed = true
		close(c.send)
	}
	c.mu.Unlock()

	select {
	case <-c.done:
	case <-time.After(writeWait):
		c.conn.Close()
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
		close(c.done)
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				c.logger.Debug("WebSocketClient", "Write failed", map[string]interface{}{"error": err.Error()})
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.logger.Debug("WebSocketClient", "Ping failed", map[string]interface{}{"error": err.Error()})
				return
			}
		}
	}
}
