package repository

import (
	"context"

	"campuskart/internal/domain/entity"
)

type UploadRepository interface {
	Create(ctx context.Context, upload *entity.Upload) error
	GetByID(ctx context.Context, id string) (*entity.Upload, error)
	ListByUploader(ctx context.Context, uid string) ([]*entity.Upload, error)
	Delete(ctx context.Context, id string) error
}
