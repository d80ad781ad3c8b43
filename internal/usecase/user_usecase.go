package usecase

import (
	"context"
	"strings"
	"time"

	"campuskart/internal/domain/entity"
	"campuskart/internal/domain/repository"
	"campuskart/pkg/errors"
	"campuskart/pkg/logger"
)

type UserUseCase struct {
	userRepo     repository.UserRepository
	itemRepo     repository.ItemRepository
	firebaseAuth FirebaseAuthClient
	location     *time.Location
	now          func() time.Time
}

func NewUserUseCase(
	userRepo repository.UserRepository,
	itemRepo repository.ItemRepository,
	firebaseAuth FirebaseAuthClient,
	location *time.Location,
) *UserUseCase {
	return &UserUseCase{
		userRepo:     userRepo,
		itemRepo:     itemRepo,
		firebaseAuth: firebaseAuth,
		location:     location,
		now:          time.Now,
	}
}

// UpdateProfileInput carries only the fields being changed.
type UpdateProfileInput struct {
	Name         *string
	Bio          *string
	Mobile       *string
	City         *string
	College      *string
	ProfilePhoto *string
}

type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
	ConfirmPassword string
}

type HolidayModeInput struct {
	IsActive bool
	FromDate string
	ToDate   string
}

func (uc *UserUseCase) GetProfile(ctx context.Context, uid string) (*entity.User, error) {
	return uc.userRepo.GetByID(ctx, uid)
}

func (uc *UserUseCase) GetPublicProfile(ctx context.Context, id string) (*entity.PublicProfile, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user.Public(user.HolidayMode.Covers(uc.now(), uc.location)), nil
}

func (uc *UserUseCase) UpdateProfile(ctx context.Context, uid string, input UpdateProfileInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, errors.BadRequest("Name cannot be empty", nil)
		}
		user.Name = name
	}
	if input.Bio != nil {
		user.Bio = strings.TrimSpace(*input.Bio)
	}
	if input.Mobile != nil {
		user.Mobile = strings.TrimSpace(*input.Mobile)
	}
	if input.City != nil {
		user.City = *input.City
	}
	if input.College != nil {
		user.College = *input.College
	}
	if input.ProfilePhoto != nil {
		user.ProfilePhoto = *input.ProfilePhoto
	}

	if err := uc.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("Profile updated for user %s", uid)
	return user, nil
}

// ChangePassword re-verifies the current password before setting the new one.
func (uc *UserUseCase) ChangePassword(ctx context.Context, session *entity.Session, input ChangePasswordInput) error {
	if err := validateNewPassword(input.NewPassword, input.ConfirmPassword); err != nil {
		return err
	}

	if _, err := uc.firebaseAuth.SignInWithEmailPassword(ctx, session.Email, input.CurrentPassword); err != nil {
		return errors.Unauthorized("Current password is incorrect", err)
	}

	if err := uc.firebaseAuth.UpdateUserPassword(ctx, session.UID, input.NewPassword); err != nil {
		return errors.Internal("Failed to update password", err)
	}
	return nil
}

func (uc *UserUseCase) SetHolidayMode(ctx context.Context, uid string, input HolidayModeInput) (*entity.HolidayMode, error) {
	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	var mode *entity.HolidayMode

	if input.IsActive {
		if input.FromDate == "" || input.ToDate == "" {
			return nil, errors.BadRequest("Please select both from and to dates", nil)
		}
		from, ok := entity.ParseDate(input.FromDate, uc.location)
		if !ok {
			return nil, errors.BadRequest("from_date must be YYYY-MM-DD", nil)
		}
		to, ok := entity.ParseDate(input.ToDate, uc.location)
		if !ok {
			return nil, errors.BadRequest("to_date must be YYYY-MM-DD", nil)
		}
		if !from.Before(to) {
			return nil, errors.BadRequest("From date must be before to date", nil)
		}

		mode = &entity.HolidayMode{
			IsActive:    true,
			FromDate:    from.Format(entity.DateLayout),
			ToDate:      to.Format(entity.DateLayout),
			ActivatedAt: &now,
		}
	} else {
		mode = &entity.HolidayMode{DeactivatedAt: &now}
		if user.HolidayMode != nil {
			mode.FromDate = user.HolidayMode.FromDate
			mode.ToDate = user.HolidayMode.ToDate
			mode.ActivatedAt = user.HolidayMode.ActivatedAt
		}
	}

	if err := uc.userRepo.SetHolidayMode(ctx, uid, mode); err != nil {
		return nil, err
	}
	return mode, nil
}

func (uc *UserUseCase) Follow(ctx context.Context, uid, targetID string) error {
	if uid == targetID {
		return errors.BadRequest("You cannot follow yourself", nil)
	}
	return uc.userRepo.Follow(ctx, uid, targetID)
}

func (uc *UserUseCase) Unfollow(ctx context.Context, uid, targetID string) error {
	if uid == targetID {
		return errors.BadRequest("You cannot unfollow yourself", nil)
	}
	return uc.userRepo.Unfollow(ctx, uid, targetID)
}

func (uc *UserUseCase) ListFollowers(ctx context.Context, id string) ([]*entity.PublicProfile, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	followers, err := uc.userRepo.GetByIDs(ctx, user.Followers)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	profiles := make([]*entity.PublicProfile, 0, len(followers))
	for _, fid := range user.Followers {
		if f, ok := followers[fid]; ok {
			profiles = append(profiles, f.Public(f.HolidayMode.Covers(now, uc.location)))
		}
	}
	return profiles, nil
}

// ListUserItems returns a seller's items. Other viewers only see what browse would show.
func (uc *UserUseCase) ListUserItems(ctx context.Context, viewerID, sellerID string) ([]*entity.Item, error) {
	seller, err := uc.userRepo.GetByID(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	items, err := uc.itemRepo.ListBySeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	if viewerID == sellerID {
		return items, nil
	}

	now := uc.now()
	visible := make([]*entity.Item, 0, len(items))
	for _, item := range items {
		if item.VisibleAt(seller, now, uc.location) {
			visible = append(visible, item.ForViewer(viewerID))
		}
	}
	return visible, nil
}
