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

type firestoreItemRepository struct {
	client *firestore.Client
}

func NewFirestoreItemRepository(client *firestore.Client) repository.ItemRepository {
	return &firestoreItemRepository{
		client: client,
	}
}

func (r *firestoreItemRepository) items() *firestore.CollectionRef {
	return r.client.Collection("items")
}

func (r *firestoreItemRepository) Create(ctx context.Context, item *entity.Item) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}

	if _, err := r.items().Doc(item.ID).Set(ctx, item); err != nil {
		return errors.Internal("Failed to create item", err)
	}
	return nil
}

func (r *firestoreItemRepository) GetByID(ctx context.Context, id string) (*entity.Item, error) {
	doc, err := r.items().Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NotFound("Item", err)
		}
		return nil, errors.Internal("Failed to get item", err)
	}

	var item entity.Item
	if err := doc.DataTo(&item); err != nil {
		return nil, errors.Internal("Failed to parse item data", err)
	}
	item.ID = doc.Ref.ID

	return &item, nil
}

func (r *firestoreItemRepository) ListActive(ctx context.Context) ([]*entity.Item, error) {
	items, err := collect[entity.Item](r.items().Where("isActive", "==", true).Documents(ctx))
	if err != nil {
		return nil, errors.Internal("Failed to list items", err)
	}
	newestFirst(items, func(i *entity.Item) time.Time { return i.CreatedAt })
	return items, nil
}

func (r *firestoreItemRepository) ListBySeller(ctx context.Context, sellerID string) ([]*entity.Item, error) {
	items, err := collect[entity.Item](r.items().Where("sellerId", "==", sellerID).Documents(ctx))
	if err != nil {
		return nil, errors.Internal("Failed to list seller items", err)
	}
	newestFirst(items, func(i *entity.Item) time.Time { return i.CreatedAt })
	return items, nil
}

func (r *firestoreItemRepository) MarkSold(ctx context.Context, id string, soldAt time.Time) error {
	return r.update(ctx, id, []firestore.Update{
		{Path: "isActive", Value: false},
		{Path: "isSold", Value: true},
		{Path: "soldAt", Value: soldAt},
	})
}

func (r *firestoreItemRepository) Deactivate(ctx context.Context, id string) error {
	return r.update(ctx, id, []firestore.Update{
		{Path: "isActive", Value: false},
	})
}

func (r *firestoreItemRepository) update(ctx context.Context, id string, updates []firestore.Update) error {
	if _, err := r.items().Doc(id).Update(ctx, updates); err != nil {
		if isNotFound(err) {
			return errors.NotFound("Item", err)
		}
		return errors.Internal("Failed to update item", err)
	}
	return nil
}

func (r *firestoreItemRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.items().Doc(id).Delete(ctx); err != nil {
		return errors.Internal("Failed to delete item", err)
	}
	return nil
}
