package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campuskart/internal/domain/entity"
)

func seedNotifications(t *testing.T, repo *fakeNotificationRepo, uid string, list ...*entity.Notification) {
	t.Helper()
	for _, n := range list {
		require.NoError(t, repo.Create(context.Background(), uid, n))
	}
}

func TestMarkRoomReadLeavesOtherRoomsUntouched(t *testing.T) {
	// Setup
	repo := newFakeNotificationRepo()
	uc := NewNotificationUseCase(repo)
	ctx := context.Background()
	base := time.Date(2025, 6, 5, 9, 0, 0, 0, time.UTC)

	seedNotifications(t, repo, "A",
		&entity.Notification{ID: "1", ChatID: "A_B_calc", Type: entity.NotificationTypeMessage, CreatedAt: base},
		&entity.Notification{ID: "2", ChatID: "A_B_calc", Type: entity.NotificationTypeOffer, CreatedAt: base.Add(time.Minute)},
		&entity.Notification{ID: "3", ChatID: "A_C", Type: entity.NotificationTypeMessage, CreatedAt: base.Add(2 * time.Minute)},
		&entity.Notification{ID: "4", Type: entity.NotificationTypeAdmin, CreatedAt: base.Add(3 * time.Minute)},
	)

	// Execute
	marked, err := uc.MarkRoomRead(ctx, "A", "A_B_calc")

	// Assert
	if assert.NoError(t, err) {
		assert.Equal(t, 2, marked)
		assert.Equal(t, 1, repo.batchCalls)
	}

	assert.True(t, repo.entries["A"]["1"].Read)
	assert.True(t, repo.entries["A"]["2"].Read)
	assert.False(t, repo.entries["A"]["3"].Read)
	assert.False(t, repo.entries["A"]["4"].Read)

	counts, err := uc.UnreadCounts(ctx, "A")
	require.NoError(t, err)
	assert.Equal(t, 2, counts.Total)
	assert.Equal(t, 1, counts.Messages)
}

func TestMarkRoomReadWithoutMatchesWritesNothing(t *testing.T) {
	repo := newFakeNotificationRepo()
	uc := NewNotificationUseCase(repo)

	seedNotifications(t, repo, "A",
		&entity.Notification{ID: "1", ChatID: "A_B", Read: true},
		&entity.Notification{ID: "2", ChatID: "A_C"},
	)

	marked, err := uc.MarkRoomRead(context.Background(), "A", "A_B")
	require.NoError(t, err)
	assert.Zero(t, marked)
	assert.Zero(t, repo.batchCalls)
}

func TestMarkAllRead(t *testing.T) {
	repo := newFakeNotificationRepo()
	uc := NewNotificationUseCase(repo)
	ctx := context.Background()

	seedNotifications(t, repo, "A",
		&entity.Notification{ID: "1", ChatID: "A_B"},
		&entity.Notification{ID: "2", Type: entity.NotificationTypeAdmin},
	)
	seedNotifications(t, repo, "B", &entity.Notification{ID: "9", ChatID: "A_B"})

	marked, err := uc.MarkAllRead(ctx, "A")
	require.NoError(t, err)
	assert.Equal(t, 2, marked)

	counts, err := uc.UnreadCounts(ctx, "B")
	require.NoError(t, err)
	assert.Equal(t, 1, counts.Total, "other recipients are unaffected")
}

func TestMarkReadMissing(t *testing.T) {
	uc := NewNotificationUseCase(newFakeNotificationRepo())

	err := uc.MarkRead(context.Background(), "A", "nope")
	assert.Error(t, err)
}
