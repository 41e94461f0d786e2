package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"freelanceconnect/middleware"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
	// Chat messages are short text; anything bigger is a misbehaving
	// client.
	maxMessageSize = 4096
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// Client is one websocket connection.
type Client struct {
	conn     *websocket.Conn
	userID   string
	username string
	send     chan []byte
	hub      *Hub

	// joined tracks room membership for cleanup; touched only by the
	// hub goroutine.
	joined map[string]bool
}

func newClient(conn *websocket.Conn, hub *Hub, userID, username string) *Client {
	return &Client{
		conn:     conn,
		userID:   userID,
		username: username,
		send:     make(chan []byte, 256),
		hub:      hub,
		joined:   make(map[string]bool),
	}
}

// trySend queues data for the client without blocking the hub.
func (c *Client) trySend(data []byte) bool {
	select {
	case c.send <- data:
		return true
	default:
		return false
	}
}

// Handler upgrades authenticated requests to websocket connections. The
// token travels as a query parameter because browsers cannot set headers
// on websocket dials.
func Handler(hub *Hub, jwtSecret string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := r.URL.Query().Get("token")
		if token == "" {
			http.Error(w, "Token required", http.StatusUnauthorized)
			return
		}

		claims, err := middleware.ParseToken(jwtSecret, token)
		if err != nil {
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			hub.log.Warn("websocket upgrade failed", zap.Error(err))
			return
		}

		client := newClient(conn, hub, claims.UserID, claims.Username)
		hub.register <- client

		go client.writePump()
		go client.readPump()
	}
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.log.Warn("websocket read error", zap.Error(err))
			}
			return
		}

		var event Event
		if err := json.Unmarshal(raw, &event); err != nil {
			c.hub.log.Debug("unparseable event", zap.String("userId", c.userID), zap.Error(err))
			continue
		}
		if event.Room == "" {
			continue
		}

		switch event.Type {
		case "join":
			c.hub.join <- subscription{client: c, room: event.Room}
		case "leave":
			c.hub.leave <- subscription{client: c, room: event.Room}
		case "message":
			if event.Message == "" {
				continue
			}
			c.hub.relay(context.Background(), c, event.Room, event.Message)
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
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
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
