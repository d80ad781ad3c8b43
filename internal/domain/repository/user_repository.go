package repository

import (
	"context"

	"campuskart/internal/domain/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByIDs(ctx context.Context, ids []string) (map[string]*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	UpdateProfile(ctx context.Context, user *entity.User) error
	SetHolidayMode(ctx context.Context, id string, mode *entity.HolidayMode) error
	Delete(ctx context.Context, id string) error

	// Follow and Unfollow update both users' lists together.
	Follow(ctx context.Context, followerID, targetID string) error
	Unfollow(ctx context.Context, followerID, targetID string) error
}
