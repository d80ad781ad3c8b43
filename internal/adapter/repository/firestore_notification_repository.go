package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"campuskart/internal/domain/entity"
	"campuskart/internal/domain/repository"
	"campuskart/pkg/errors"
)

type firestoreNotificationRepository struct {
	client *firestore.Client
}

func NewFirestoreNotificationRepository(client *firestore.Client) repository.NotificationRepository {
	return &firestoreNotificationRepository{
		client: client,
	}
}

func (r *firestoreNotificationRepository) entries(recipientID string) *firestore.CollectionRef {
	return r.client.Collection("notifications").Doc(recipientID).Collection("entries")
}

func (r *firestoreNotificationRepository) Create(ctx context.Context, recipientID string, n *entity.Notification) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}

	if _, err := r.entries(recipientID).Doc(n.ID).Set(ctx, n); err != nil {
		return errors.Internal("Failed to create notification", err)
	}
	return nil
}

func (r *firestoreNotificationRepository) List(ctx context.Context, recipientID string) ([]*entity.Notification, error) {
	query := r.entries(recipientID).OrderBy("createdAt", firestore.Desc)

	notifications, err := collect[entity.Notification](query.Documents(ctx))
	if err != nil {
		return nil, errors.Internal("Failed to list notifications", err)
	}
	return notifications, nil
}

func (r *firestoreNotificationRepository) MarkRead(ctx context.Context, recipientID, id string) error {
	_, err := r.entries(recipientID).Doc(id).Update(ctx, []firestore.Update{{Path: "read", Value: true}})
	if err != nil {
		if isNotFound(err) {
			return errors.NotFound("Notification", err)
		}
		return errors.Internal("Failed to mark notification as read", err)
	}
	return nil
}

func (r *firestoreNotificationRepository) MarkReadBatch(ctx context.Context, recipientID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		for _, id := range ids {
			if err := tx.Update(r.entries(recipientID).Doc(id), []firestore.Update{{Path: "read", Value: true}}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return errors.Internal("Failed to mark notifications as read", err)
	}
	return nil
}
