package repository

import (
	"context"

	"campuskart/internal/domain/entity"
)

type CollegeRepository interface {
	Create(ctx context.Context, college *entity.College) error
	List(ctx context.Context) ([]*entity.College, error)
	ListByCity(ctx context.Context, city string) ([]*entity.College, error)
	Delete(ctx context.Context, city, id string) error
}
