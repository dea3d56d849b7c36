// Package transport is the duplex byte-stream collaborator: a websocket
// client that delivers inbound binary messages to a callback and ships
// outbound frames. Reconnection is deliberately out of scope; when the
// read pump stops the session is over.
package transport

import (
	"fmt"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

type Conn struct {
	ws  *websocket.Conn
	log *zap.SugaredLogger

	// gorilla allows one concurrent writer; UI actions can race the
	// hello sent at startup, so writes serialize here.
	writeMu sync.Mutex

	closeOnce sync.Once
}

// Dial connects to the pixel server at a ws:// or wss:// URL.
func Dial(url string, log *zap.SugaredLogger) (*Conn, error) {
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, fmt.Errorf("transport: dial %s: %w", url, err)
	}
	log.Infow("connected", "url", url)
	return &Conn{ws: ws, log: log}, nil
}

// Start runs the read pump in its own goroutine. Each inbound binary
// message is handed to onMessage whole; text and control messages are
// ignored. onClose fires exactly once when the pump stops.
func (c *Conn) Start(onMessage func([]byte), onClose func(error)) {
	go func() {
		for {
			msgType, data, err := c.ws.ReadMessage()
			if err != nil {
				c.log.Infow("read pump stopped", "error", err)
				c.closeOnce.Do(func() { onClose(err) })
				return
			}
			if msgType != websocket.BinaryMessage {
				c.log.Debugw("ignoring non-binary message", "type", msgType)
				continue
			}
			onMessage(data)
		}
	}()
}

// Send ships one binary message.
func (c *Conn) Send(data []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if err := c.ws.WriteMessage(websocket.BinaryMessage, data); err != nil {
		return fmt.Errorf("transport: write: %w", err)
	}
	return nil
}

// Close tears the connection down.
func (c *Conn) Close() error {
	c.writeMu.Lock()
	_ = c.ws.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "bye"))
	c.writeMu.Unlock()
	return c.ws.Close()
}
