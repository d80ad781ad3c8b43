package usecase

import (
	"context"

	"campuskart/internal/domain/entity"
	"campuskart/internal/domain/repository"
	"campuskart/pkg/logger"
)

type NotificationUseCase struct {
	notificationRepo repository.NotificationRepository
}

func NewNotificationUseCase(notificationRepo repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{
		notificationRepo: notificationRepo,
	}
}

func (uc *NotificationUseCase) List(ctx context.Context, uid string) ([]*entity.Notification, error) {
	return uc.notificationRepo.List(ctx, uid)
}

// UnreadCounts powers the navbar badges: every unread entry, and unread chat messages.
func (uc *NotificationUseCase) UnreadCounts(ctx context.Context, uid string) (*entity.UnreadCounts, error) {
	notifications, err := uc.notificationRepo.List(ctx, uid)
	if err != nil {
		return nil, err
	}

	counts := &entity.UnreadCounts{}
	for _, n := range notifications {
		if n.Read {
			continue
		}
		counts.Total++
		if n.Type == entity.NotificationTypeMessage {
			counts.Messages++
		}
	}
	return counts, nil
}

func (uc *NotificationUseCase) MarkRead(ctx context.Context, uid, id string) error {
	return uc.notificationRepo.MarkRead(ctx, uid, id)
}

// MarkAllRead clears every unread entry in one commit and returns how many changed.
func (uc *NotificationUseCase) MarkAllRead(ctx context.Context, uid string) (int, error) {
	return uc.markMatching(ctx, uid, func(*entity.Notification) bool { return true })
}

// MarkRoomRead scans the user's notifications and marks the unread ones that
// reference roomKey, all in one commit. Nothing is written when none match.
func (uc *NotificationUseCase) MarkRoomRead(ctx context.Context, uid, roomKey string) (int, error) {
	return uc.markMatching(ctx, uid, func(n *entity.Notification) bool { return n.ChatID == roomKey })
}

func (uc *NotificationUseCase) markMatching(ctx context.Context, uid string, match func(*entity.Notification) bool) (int, error) {
	notifications, err := uc.notificationRepo.List(ctx, uid)
	if err != nil {
		return 0, err
	}

	var ids []string
	for _, n := range notifications {
		if !n.Read && match(n) {
			ids = append(ids, n.ID)
		}
	}

	if len(ids) == 0 {
		return 0, nil
	}

	if err := uc.notificationRepo.MarkReadBatch(ctx, uid, ids); err != nil {
		return 0, err
	}

	logger.Debug("Marked %d notifications read for %s", len(ids), uid)
	return len(ids), nil
}
