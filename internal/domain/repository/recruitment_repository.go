package repository

import (
	"context"

	"campuskart/internal/domain/entity"
)

type RecruitmentRepository interface {
	Create(ctx context.Context, post *entity.RecruitmentPost) error
	GetByID(ctx context.Context, id string) (*entity.RecruitmentPost, error)
	ListActive(ctx context.Context) ([]*entity.RecruitmentPost, error)
	Update(ctx context.Context, post *entity.RecruitmentPost) error
	Delete(ctx context.Context, id string) error
}
