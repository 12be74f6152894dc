package ws

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var errConnectionClosed = errors.New("ws: connection closed")

// connection - одно подключение /ws. gorilla/websocket допускает только одного
// писателя, поэтому запись сериализуется мьютексом.
type connection struct {
	id        string
	conn      *websocket.Conn
	writeWait time.Duration

	writeMu sync.Mutex
	open    atomic.Bool
}

func newConnection(conn *websocket.Conn, writeWait time.Duration) *connection {
	c := &connection{
		id:        uuid.NewString(),
		conn:      conn,
		writeWait: writeWait,
	}
	c.open.Store(true)
	return c
}

func (c *connection) ID() string {
	return c.id
}

func (c *connection) IsOpen() bool {
	return c.open.Load()
}

// Send пишет один текстовый кадр. Ошибка записи помечает подключение закрытым.
func (c *connection) Send(payload []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if !c.open.Load() {
		return errConnectionClosed
	}
	if c.writeWait > 0 {
		if err := c.conn.SetWriteDeadline(time.Now().Add(c.writeWait)); err != nil {
			c.open.Store(false)
			return err
		}
	}
	if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		c.open.Store(false)
		return err
	}
	return nil
}

func (c *connection) close() {
	if !c.open.Swap(false) {
		c.conn.Close()
		return
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if c.writeWait > 0 {
		_ = c.conn.SetWriteDeadline(time.Now().Add(c.writeWait))
	}
	_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	c.conn.Close()
}
