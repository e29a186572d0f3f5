package websocket

import (
	"sync"

	"github.com/gorilla/websocket"

	"github.com/Kennethenow1/Connect-Four-Game/internal/domain"
)

// Client wraps a single websocket connection. Pushes can come from both
// the read loop and delayed AI goroutines, so writes are serialized.
type Client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func NewClient(conn *websocket.Conn) *Client {
	return &Client{conn: conn}
}

func (c *Client) Send(message domain.ServerMessage) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(message)
}

func (c *Client) SendError(message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.conn.WriteJSON(domain.ErrorMessage{Type: "error", Message: message})
}

func (c *Client) Ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(websocket.PingMessage, nil)
}

func (c *Client) Close() error {
	return c.conn.Close()
}
