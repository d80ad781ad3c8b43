package websocket

import (
	"context"
	"encoding/json"
	"time"

	"campuskart/pkg/logger"
)

const (
	MessageTypePing         = "ping"
	MessageTypePong         = "pong"
	MessageTypeMarkRoomRead = "mark_room_read"
	MessageTypeRoomRead     = "room_read"
	MessageTypeError        = "error"
)

type WSMessage struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data,omitempty"`
	ChatID    string      `json:"chat_id,omitempty"`
	Timestamp string      `json:"timestamp"`
}

type inboundMessage struct {
	Type   string `json:"type"`
	ChatID string `json:"chat_id"`
}

// RoomReader marks a user's notifications for a room as read.
type RoomReader interface {
	MarkRoomRead(ctx context.Context, userID, roomKey string) (int, error)
}

// MessageHandler answers frames sent by clients.
type MessageHandler struct {
	rooms RoomReader
}

func NewMessageHandler(rooms RoomReader) *MessageHandler {
	return &MessageHandler{rooms: rooms}
}

// Handle processes one inbound frame and returns the reply, if any.
func (h *MessageHandler) Handle(ctx context.Context, userID string, raw []byte) []byte {
	var msg inboundMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		return reply(MessageTypeError, "", map[string]string{"message": "invalid message format"})
	}

	switch msg.Type {
	case MessageTypePing:
		return reply(MessageTypePong, "", nil)

	case MessageTypeMarkRoomRead:
		if msg.ChatID == "" {
			return reply(MessageTypeError, "", map[string]string{"message": "chat_id is required"})
		}
		marked, err := h.rooms.MarkRoomRead(ctx, userID, msg.ChatID)
		if err != nil {
			logger.Error("Failed to mark room %s read for %s: %v", msg.ChatID, userID, err)
			return reply(MessageTypeError, msg.ChatID, map[string]string{"message": "failed to mark room as read"})
		}
		return reply(MessageTypeRoomRead, msg.ChatID, map[string]int{"marked": marked})

	default:
		return reply(MessageTypeError, "", map[string]string{"message": "unknown message type"})
	}
}

func reply(msgType, chatID string, data interface{}) []byte {
	out, _ := json.Marshal(WSMessage{
		Type:      msgType,
		Data:      data,
		ChatID:    chatID,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	return out
}
