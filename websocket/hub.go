// Package websocket relays chat messages between the participants of a
// chatroom.
package websocket

import (
	"context"
	"encoding/json"
	"fmt"

	"freelanceconnect/models"

	"go.uber.org/zap"
)

// MessageStore persists a relayed message into its chatroom. The mongo
// implementation lives in the database package.
type MessageStore interface {
	AppendMessage(ctx context.Context, roomID, senderID, senderName, text string) (models.ChatMessage, error)
}

// Event is what connected clients send: join, message, or leave.
type Event struct {
	Type    string `json:"type"`
	Room    string `json:"room"`
	Message string `json:"message,omitempty"`
}

type subscription struct {
	client *Client
	room   string
}

type roomMessage struct {
	room string
	data []byte
}

// Hub owns room membership and serializes all broadcasts. Messages
// within a room are broadcast in the order the hub receives them; no
// ordering is guaranteed across rooms.
type Hub struct {
	rooms map[string]map[*Client]bool

	register   chan *Client
	unregister chan *Client
	join       chan subscription
	leave      chan subscription
	broadcast  chan roomMessage

	store MessageStore
	log   *zap.Logger
}

func NewHub(store MessageStore, log *zap.Logger) *Hub {
	if log == nil {
		log = zap.NewNop()
	}
	return &Hub{
		rooms:      make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		join:       make(chan subscription),
		leave:      make(chan subscription),
		broadcast:  make(chan roomMessage),
		store:      store,
		log:        log,
	}
}

// Run processes hub events until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return

		case c := <-h.register:
			h.log.Debug("client connected", zap.String("userId", c.userID))

		case c := <-h.unregister:
			for room := range c.joined {
				h.removeFromRoom(c, room)
			}
			close(c.send)
			h.log.Debug("client disconnected", zap.String("userId", c.userID))

		case sub := <-h.join:
			members := h.rooms[sub.room]
			if members == nil {
				members = make(map[*Client]bool)
				h.rooms[sub.room] = members
			}
			members[sub.client] = true
			sub.client.joined[sub.room] = true
			h.sendToRoom(sub.room, systemNotice(sub.room, fmt.Sprintf("%s has joined the chat.", sub.client.username)))

		case sub := <-h.leave:
			h.removeFromRoom(sub.client, sub.room)
			delete(sub.client.joined, sub.room)
			h.sendToRoom(sub.room, systemNotice(sub.room, fmt.Sprintf("%s has left the chat.", sub.client.username)))

		case msg := <-h.broadcast:
			h.sendToRoom(msg.room, msg.data)
		}
	}
}

// relay persists the message and, only on success, hands it to the hub
// for broadcast. On a failed write nothing is broadcast and the sender
// alone is notified. Called from the sender's read pump, so messages
// from one sender reach the store in the order they were sent.
func (h *Hub) relay(ctx context.Context, c *Client, room, text string) {
	stored, err := h.store.AppendMessage(ctx, room, c.userID, c.username, text)
	if err != nil {
		h.log.Warn("message not persisted",
			zap.String("room", room),
			zap.String("sender", c.userID),
			zap.Error(err),
		)
		c.trySend(errorNotice(room, "message could not be delivered"))
		return
	}

	data, err := json.Marshal(map[string]interface{}{
		"type":       "message",
		"room":       room,
		"sender":     stored.Sender,
		"senderName": stored.SenderName,
		"message":    stored.Message,
		"timestamp":  stored.Timestamp,
	})
	if err != nil {
		h.log.Error("marshal message", zap.Error(err))
		return
	}

	h.broadcast <- roomMessage{room: room, data: data}
}

func (h *Hub) sendToRoom(room string, data []byte) {
	for client := range h.rooms[room] {
		if !client.trySend(data) {
			// Slow consumer: drop the connection, the pumps will
			// unregister it.
			h.removeFromRoom(client, room)
		}
	}
}

func (h *Hub) removeFromRoom(c *Client, room string) {
	members := h.rooms[room]
	if members == nil {
		return
	}
	delete(members, c)
	if len(members) == 0 {
		delete(h.rooms, room)
	}
}

func systemNotice(room, message string) []byte {
	data, _ := json.Marshal(map[string]string{
		"type":    "system",
		"room":    room,
		"message": message,
	})
	return data
}

func errorNotice(room, message string) []byte {
	data, _ := json.Marshal(map[string]string{
		"type":    "error",
		"room":    room,
		"message": message,
	})
	return data
}
