package core

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Conn is what a room needs from a client connection. Tests substitute fakes.
type Conn interface {
	Send([]byte) error
	Close() error
}

type wsConn struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func NewWSConn(conn *websocket.Conn) Conn {
	return &wsConn{conn: conn}
}

func (c *wsConn) Send(b []byte) error {
	// gorilla writes are not safe for concurrent use, hence the lock.
	c.mu.Lock()
	defer c.mu.Unlock()
	c.conn.SetWriteDeadline(time.Now().Add(wsWriteDeadline))
	return c.conn.WriteMessage(websocket.TextMessage, b)
}

func (c *wsConn) Close() error {
	return c.conn.Close()
}
