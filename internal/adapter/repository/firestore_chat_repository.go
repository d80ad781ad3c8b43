package repository

import (
	"context"

	"cloud.google.com/go/firestore"

	"campuskart/internal/domain/entity"
	"campuskart/internal/domain/repository"
	"campuskart/pkg/errors"
)

type firestoreChatRepository struct {
	client *firestore.Client
}

func NewFirestoreChatRepository(client *firestore.Client) repository.ChatRepository {
	return &firestoreChatRepository{
		client: client,
	}
}

func (r *firestoreChatRepository) room(key string) *firestore.DocumentRef {
	return r.client.Collection("chats").Doc(key)
}

func (r *firestoreChatRepository) conversationIndex(uid string) *firestore.CollectionRef {
	return r.client.Collection("userChats").Doc(uid).Collection("rooms")
}

func (r *firestoreChatRepository) GetRoom(ctx context.Context, key string) (*entity.ChatRoom, error) {
	doc, err := r.room(key).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NotFound("Chat room", err)
		}
		return nil, errors.Internal("Failed to get chat room", err)
	}

	var room entity.ChatRoom
	if err := doc.DataTo(&room); err != nil {
		return nil, errors.Internal("Failed to parse chat room data", err)
	}
	room.Key = doc.Ref.ID

	return &room, nil
}

func (r *firestoreChatRepository) ListMessages(ctx context.Context, key string) ([]*entity.Message, error) {
	query := r.room(key).Collection("messages").OrderBy("createdAt", firestore.Asc)

	messages, err := collect[entity.Message](query.Documents(ctx))
	if err != nil {
		return nil, errors.Internal("Failed to list messages", err)
	}
	return messages, nil
}

func (r *firestoreChatRepository) ListConversationEntries(ctx context.Context, uid string) ([]*entity.ConversationEntry, error) {
	query := r.conversationIndex(uid).OrderBy("updatedAt", firestore.Desc)

	entries, err := collect[entity.ConversationEntry](query.Documents(ctx))
	if err != nil {
		return nil, errors.Internal("Failed to list conversations", err)
	}
	return entries, nil
}

// Deliver writes the message, the merged room summary, one index entry per
// participant and one notification per recipient in a single transaction.
func (r *firestoreChatRepository) Deliver(ctx context.Context, d *repository.Delivery) error {
	room, msg := d.Room, d.Message

	meta := map[string]interface{}{
		"key":          room.Key,
		"type":         room.Type,
		"participants": room.Participants,
		"lastMessage":  room.LastMessage,
		"lastSender":   room.LastSender,
		"updatedAt":    room.UpdatedAt,
	}
	if room.Item != nil {
		meta["item"] = map[string]interface{}{"itemId": room.Item.ItemID}
	}
	if room.Recruitment != nil {
		meta["recruitment"] = map[string]interface{}{
			"postId":  room.Recruitment.PostID,
			"purpose": room.Recruitment.Purpose,
		}
	}

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if err := tx.Set(r.room(room.Key).Collection("messages").Doc(msg.ID), msg); err != nil {
			return err
		}

		if err := tx.Set(r.room(room.Key), meta, firestore.MergeAll); err != nil {
			return err
		}

		for _, uid := range room.Participants {
			entry := &entity.ConversationEntry{RoomKey: room.Key, UpdatedAt: room.UpdatedAt}
			if err := tx.Set(r.conversationIndex(uid).Doc(room.Key), entry); err != nil {
				return err
			}
		}

		for recipient, n := range d.Notifications {
			ref := r.client.Collection("notifications").Doc(recipient).Collection("entries").Doc(n.ID)
			if err := tx.Set(ref, n); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return errors.Internal("Failed to deliver message", err)
	}
	return nil
}
