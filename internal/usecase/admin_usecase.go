package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"campuskart/internal/domain/entity"
	"campuskart/internal/domain/repository"
	"campuskart/internal/domain/service"
	"campuskart/pkg/logger"
)

type AdminUseCase struct {
	userRepo         repository.UserRepository
	itemRepo         repository.ItemRepository
	notificationRepo repository.NotificationRepository
	firebaseAuth     FirebaseAuthClient
	notifier         service.Notifier
	now              func() time.Time
}

func NewAdminUseCase(
	userRepo repository.UserRepository,
	itemRepo repository.ItemRepository,
	notificationRepo repository.NotificationRepository,
	firebaseAuth FirebaseAuthClient,
	notifier service.Notifier,
) *AdminUseCase {
	return &AdminUseCase{
		userRepo:         userRepo,
		itemRepo:         itemRepo,
		notificationRepo: notificationRepo,
		firebaseAuth:     firebaseAuth,
		notifier:         notifier,
		now:              time.Now,
	}
}

func (uc *AdminUseCase) ListUsers(ctx context.Context) ([]*entity.User, error) {
	return uc.userRepo.List(ctx)
}

// DeleteUser removes the profile record, then the sign-in account.
func (uc *AdminUseCase) DeleteUser(ctx context.Context, uid string) error {
	if _, err := uc.userRepo.GetByID(ctx, uid); err != nil {
		return err
	}
	if err := uc.userRepo.Delete(ctx, uid); err != nil {
		return err
	}
	if err := uc.firebaseAuth.DeleteUser(ctx, uid); err != nil {
		logger.LogStepFailure("admin_delete_user", "delete_auth_user", uid, err)
		return passThrough(err, "Profile deleted but the sign-in account could not be removed")
	}

	logger.Info("Admin deleted user %s", uid)
	return nil
}

func (uc *AdminUseCase) ListItems(ctx context.Context) ([]*entity.Item, error) {
	return uc.itemRepo.ListActive(ctx)
}

// DeleteItem takes the item off the marketplace and tells its seller why.
func (uc *AdminUseCase) DeleteItem(ctx context.Context, id string) error {
	item, err := uc.itemRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.itemRepo.Deactivate(ctx, id); err != nil {
		return err
	}

	notice := &entity.Notification{
		ID:        uuid.New().String(),
		Type:      entity.NotificationTypeAdmin,
		ItemID:    item.ID,
		Text:      fmt.Sprintf("Your post \"%s\" has been deleted by admin due to violating rules.", item.ProductName),
		CreatedAt: uc.now(),
	}
	if err := uc.notificationRepo.Create(ctx, item.SellerID, notice); err != nil {
		logger.LogStepFailure("admin_delete_item", "notify_seller", item.ID, err)
		return err
	}

	uc.notifier.NotifyUser(item.SellerID, service.EventNotification, notice)
	logger.Info("Admin removed item %s of seller %s", item.ID, item.SellerID)
	return nil
}
