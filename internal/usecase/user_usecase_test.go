package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campuskart/internal/domain/entity"
	"campuskart/pkg/errors"
)

func TestSetHolidayMode(t *testing.T) {
	loc := mustKolkata(t)
	users := newFakeUserRepo(&entity.User{ID: "A"})
	uc := NewUserUseCase(users, newFakeItemRepo(), newFakeAuth(), loc)
	now := time.Date(2025, 5, 30, 10, 0, 0, 0, loc)
	uc.now = func() time.Time { return now }
	ctx := context.Background()

	_, err := uc.SetHolidayMode(ctx, "A", HolidayModeInput{IsActive: true, FromDate: "2025-06-01"})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	_, err = uc.SetHolidayMode(ctx, "A", HolidayModeInput{IsActive: true, FromDate: "2025-06-10", ToDate: "2025-06-01"})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	_, err = uc.SetHolidayMode(ctx, "A", HolidayModeInput{IsActive: true, FromDate: "June 1", ToDate: "2025-06-10"})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	mode, err := uc.SetHolidayMode(ctx, "A", HolidayModeInput{IsActive: true, FromDate: "2025-06-01", ToDate: "2025-06-10"})
	require.NoError(t, err)
	assert.True(t, mode.IsActive)
	assert.Equal(t, now, *mode.ActivatedAt)
	assert.Equal(t, "2025-06-01", users.users["A"].HolidayMode.FromDate)

	off, err := uc.SetHolidayMode(ctx, "A", HolidayModeInput{IsActive: false})
	require.NoError(t, err)
	assert.False(t, off.IsActive)
	assert.NotNil(t, off.DeactivatedAt)
	assert.Equal(t, "2025-06-10", off.ToDate, "the last window is kept for reference")
}

func TestPublicProfileReportsHoliday(t *testing.T) {
	loc := mustKolkata(t)
	users := newFakeUserRepo(&entity.User{
		ID: "A", Name: "Asha", Mobile: "9876543210", Followers: []string{"B"},
		HolidayMode: &entity.HolidayMode{IsActive: true, FromDate: "2025-06-01", ToDate: "2025-06-10"},
	})
	uc := NewUserUseCase(users, newFakeItemRepo(), newFakeAuth(), loc)
	uc.now = func() time.Time { return time.Date(2025, 6, 3, 0, 0, 0, 0, loc) }

	profile, err := uc.GetPublicProfile(context.Background(), "A")
	require.NoError(t, err)
	assert.True(t, profile.OnHoliday)
	assert.Equal(t, 1, profile.FollowerCount)
}

func TestFollow(t *testing.T) {
	users := newFakeUserRepo(&entity.User{ID: "A", Name: "Asha"}, &entity.User{ID: "B", Name: "Bilal"})
	uc := NewUserUseCase(users, newFakeItemRepo(), newFakeAuth(), time.UTC)
	ctx := context.Background()

	assert.True(t, errors.Is(uc.Follow(ctx, "A", "A"), "BAD_REQUEST"))

	require.NoError(t, uc.Follow(ctx, "B", "A"))
	require.NoError(t, uc.Follow(ctx, "B", "A"))
	assert.Equal(t, []string{"B"}, users.users["A"].Followers)
	assert.Equal(t, []string{"A"}, users.users["B"].Following)

	followers, err := uc.ListFollowers(ctx, "A")
	require.NoError(t, err)
	if assert.Len(t, followers, 1) {
		assert.Equal(t, "Bilal", followers[0].Name)
	}

	require.NoError(t, uc.Unfollow(ctx, "B", "A"))
	assert.Empty(t, users.users["A"].Followers)
}

func TestUpdateProfile(t *testing.T) {
	users := newFakeUserRepo(&entity.User{ID: "A", Name: "Asha", Bio: "old"})
	uc := NewUserUseCase(users, newFakeItemRepo(), newFakeAuth(), time.UTC)
	ctx := context.Background()

	blank := "  "
	_, err := uc.UpdateProfile(ctx, "A", UpdateProfileInput{Name: &blank})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	bio := " final year CSE "
	user, err := uc.UpdateProfile(ctx, "A", UpdateProfileInput{Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, "Asha", user.Name)
	assert.Equal(t, "final year CSE", user.Bio)
}

func TestChangePassword(t *testing.T) {
	auth := newFakeAuth()
	uid, err := auth.CreateUser(context.Background(), "a@college.edu", "secret1", "Asha")
	require.NoError(t, err)
	uc := NewUserUseCase(newFakeUserRepo(), newFakeItemRepo(), auth, time.UTC)
	session := &entity.Session{UID: uid, Email: "a@college.edu"}
	ctx := context.Background()

	err = uc.ChangePassword(ctx, session, ChangePasswordInput{CurrentPassword: "wrong", NewPassword: "secret2", ConfirmPassword: "secret2"})
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))

	err = uc.ChangePassword(ctx, session, ChangePasswordInput{CurrentPassword: "secret1", NewPassword: "secret2", ConfirmPassword: "other"})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	require.NoError(t, uc.ChangePassword(ctx, session, ChangePasswordInput{CurrentPassword: "secret1", NewPassword: "secret2", ConfirmPassword: "secret2"}))
	assert.Equal(t, "secret2", auth.passwords["a@college.edu"])
}

func TestListUserItemsForOthers(t *testing.T) {
	loc := time.UTC
	users := newFakeUserRepo(&entity.User{ID: "A", HolidayMode: &entity.HolidayMode{IsActive: true, FromDate: "2025-06-01", ToDate: "2025-06-10"}})
	items := newFakeItemRepo(
		&entity.Item{ID: "calc", SellerID: "A", IsActive: true},
		&entity.Item{ID: "sold", SellerID: "A", IsSold: true},
	)
	uc := NewUserUseCase(users, items, newFakeAuth(), loc)
	uc.now = func() time.Time { return time.Date(2025, 6, 5, 0, 0, 0, 0, loc) }
	ctx := context.Background()

	mine, err := uc.ListUserItems(ctx, "A", "A")
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	theirs, err := uc.ListUserItems(ctx, "B", "A")
	require.NoError(t, err)
	assert.Empty(t, theirs)
}
