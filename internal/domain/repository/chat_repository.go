package repository

import (
	"context"

	"campuskart/internal/domain/entity"
)

// Delivery is everything one sent message writes: the message itself, the room
// summary, a conversation-index pointer per participant and a notification per
// recipient keyed by recipient uid.
type Delivery struct {
	Room          *entity.ChatRoom
	Message       *entity.Message
	Notifications map[string]*entity.Notification
}

type ChatRepository interface {
	GetRoom(ctx context.Context, key string) (*entity.ChatRoom, error)
	ListMessages(ctx context.Context, key string) ([]*entity.Message, error)
	ListConversationEntries(ctx context.Context, uid string) ([]*entity.ConversationEntry, error)

	// Deliver commits a Delivery as a single atomic write.
	Deliver(ctx context.Context, d *Delivery) error
}
