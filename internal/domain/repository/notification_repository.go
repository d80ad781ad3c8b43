package repository

import (
	"context"

	"campuskart/internal/domain/entity"
)

type NotificationRepository interface {
	Create(ctx context.Context, recipientID string, n *entity.Notification) error
	// List returns every notification of the recipient, newest first.
	List(ctx context.Context, recipientID string) ([]*entity.Notification, error)
	MarkRead(ctx context.Context, recipientID, id string) error
	// MarkReadBatch sets read on all ids in one commit.
	MarkReadBatch(ctx context.Context, recipientID string, ids []string) error
}
