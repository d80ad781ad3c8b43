package repository

import (
	"context"

	"campuskart/internal/domain/entity"
)

type EventRepository interface {
	Create(ctx context.Context, event *entity.Event) error
	GetByID(ctx context.Context, id string) (*entity.Event, error)
	List(ctx context.Context) ([]*entity.Event, error)
	Delete(ctx context.Context, id string) error
}
