// Package realtime implements the live voice WebSocket channel: JSON control
// frames in both directions plus binary TTS audio frames to the client.
package realtime

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pingPeriod     = 30 * time.Second
	sendBufferSize = 256
)

// outbound pairs a websocket message type with its payload so the write loop
// can interleave JSON control frames and binary audio frames.
type outbound struct {
	messageType int
	payload     []byte
}

// Connection wraps a websocket and coordinates outbound writes via a buffered
// channel. A connection is safe for concurrent use.
type Connection struct {
	ID       string
	TenantID uuid.UUID

	ws    *websocket.Conn
	send  chan outbound
	once  sync.Once
	close chan struct{}
}

// NewConnection constructs a Connection for the given tenant
func NewConnection(tenantID uuid.UUID, ws *websocket.Conn) *Connection {
	return &Connection{
		ID:       uuid.NewString(),
		TenantID: tenantID,
		ws:       ws,
		send:     make(chan outbound, sendBufferSize),
		close:    make(chan struct{}),
	}
}

// Start launches the write loop. It must be called exactly once per connection.
func (c *Connection) Start() {
	go c.writeLoop()
}

// SendJSON enqueues a control frame for delivery
func (c *Connection) SendJSON(payload []byte) error {
	return c.enqueue(outbound{messageType: websocket.TextMessage, payload: payload})
}

// SendBinary enqueues an audio frame for delivery
func (c *Connection) SendBinary(payload []byte) error {
	return c.enqueue(outbound{messageType: websocket.BinaryMessage, payload: payload})
}

// enqueue delivers to the send channel. If the client is slow and the buffer
// fills, the connection is closed to keep backpressure bounded.
func (c *Connection) enqueue(msg outbound) error {
	select {
	case <-c.close:
		return errors.New("connection closed")
	case c.send <- msg:
		return nil
	default:
		c.Close(websocket.CloseGoingAway, "send buffer full")
		return errors.New("connection buffer exceeded")
	}
}

// Closed reports whether the connection has been shut down
func (c *Connection) Closed() bool {
	select {
	case <-c.close:
		return true
	default:
		return false
	}
}

// Close terminates the connection and stops the write loop
func (c *Connection) Close(code int, reason string) {
	c.once.Do(func() {
		close(c.close)
		_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
		_ = c.ws.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, reason), time.Now().Add(writeWait))
		_ = c.ws.Close()
	})
}

// ReadMessage blocks for the next inbound frame
func (c *Connection) ReadMessage() (int, []byte, error) {
	return c.ws.ReadMessage()
}

func (c *Connection) writeLoop() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-c.close:
			return
		case msg := <-c.send:
			if err := c.writeMessage(msg); err != nil {
				return
			}
		case <-ticker.C:
			if err := c.writePing(); err != nil {
				return
			}
		}
	}
}

func (c *Connection) writeMessage(msg outbound) error {
	if err := c.ws.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return c.ws.WriteMessage(msg.messageType, msg.payload)
}

func (c *Connection) writePing() error {
	if err := c.ws.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return c.ws.WriteMessage(websocket.PingMessage, nil)
}
