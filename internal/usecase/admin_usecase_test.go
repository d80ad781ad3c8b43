package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campuskart/internal/domain/entity"
	"campuskart/pkg/errors"
)

func TestAdminDeleteItemNotifiesSeller(t *testing.T) {
	// Setup
	items := newFakeItemRepo(&entity.Item{ID: "calc", SellerID: "A", ProductName: "Calculator", IsActive: true})
	notifications := newFakeNotificationRepo()
	notifier := &fakeNotifier{}
	uc := NewAdminUseCase(newFakeUserRepo(), items, notifications, newFakeAuth(), notifier)
	ctx := context.Background()

	// Execute
	err := uc.DeleteItem(ctx, "calc")

	// Assert
	if assert.NoError(t, err) {
		assert.False(t, items.items["calc"].IsActive)
	}

	list, err := notifications.List(ctx, "A")
	require.NoError(t, err)
	if assert.Len(t, list, 1) {
		assert.Equal(t, entity.NotificationTypeAdmin, list[0].Type)
		assert.Equal(t, `Your post "Calculator" has been deleted by admin due to violating rules.`, list[0].Text)
		assert.False(t, list[0].Read)
	}
	assert.Equal(t, 1, notifier.count("A", "notification"))

	assert.True(t, errors.IsNotFound(uc.DeleteItem(ctx, "missing")))
}

func TestAdminDeleteUser(t *testing.T) {
	users := newFakeUserRepo(&entity.User{ID: "A"}, &entity.User{ID: "B"})
	auth := newFakeAuth()
	uc := NewAdminUseCase(users, newFakeItemRepo(), newFakeNotificationRepo(), auth, &fakeNotifier{})
	ctx := context.Background()

	require.NoError(t, uc.DeleteUser(ctx, "A"))
	assert.NotContains(t, users.users, "A")
	assert.Equal(t, []string{"A"}, auth.deleted)

	assert.True(t, errors.IsNotFound(uc.DeleteUser(ctx, "A")))

	all, err := uc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
