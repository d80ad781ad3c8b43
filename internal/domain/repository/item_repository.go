package repository

import (
	"context"
	"time"

	"campuskart/internal/domain/entity"
)

type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	GetByID(ctx context.Context, id string) (*entity.Item, error)
	ListActive(ctx context.Context) ([]*entity.Item, error)
	ListBySeller(ctx context.Context, sellerID string) ([]*entity.Item, error)
	MarkSold(ctx context.Context, id string, soldAt time.Time) error
	Deactivate(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
