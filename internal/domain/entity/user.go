package entity

import (
	"time"
)

type User struct {
	ID           string `json:"id" firestore:"uid"`
	Name         string `json:"name" firestore:"name"`
	Email        string `json:"email" firestore:"email"`
	City         string `json:"city" firestore:"city"`
	College      string `json:"college" firestore:"college"`
	Mobile       string `json:"mobile" firestore:"mobile"`
	Bio          string `json:"bio,omitempty" firestore:"bio,omitempty"`
	ProfilePhoto string `json:"profile_photo,omitempty" firestore:"profilePhoto,omitempty"`

	Followers []string `json:"followers" firestore:"followers"`
	Following []string `json:"following" firestore:"following"`

	HolidayMode *HolidayMode `json:"holiday_mode,omitempty" firestore:"holidayMode,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

func (u *User) IsFollowing(uid string) bool {
	return containsString(u.Following, uid)
}

// PublicProfile is what other users see; contact details stay private.
type PublicProfile struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	City           string    `json:"city"`
	College        string    `json:"college"`
	Bio            string    `json:"bio,omitempty"`
	ProfilePhoto   string    `json:"profile_photo,omitempty"`
	FollowerCount  int       `json:"follower_count"`
	FollowingCount int       `json:"following_count"`
	OnHoliday      bool      `json:"on_holiday"`
	CreatedAt      time.Time `json:"created_at"`
}

func (u *User) Public(onHoliday bool) *PublicProfile {
	return &PublicProfile{
		ID:             u.ID,
		Name:           u.Name,
		City:           u.City,
		College:        u.College,
		Bio:            u.Bio,
		ProfilePhoto:   u.ProfilePhoto,
		FollowerCount:  len(u.Followers),
		FollowingCount: len(u.Following),
		OnHoliday:      onHoliday,
		CreatedAt:      u.CreatedAt,
	}
}

func containsString(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

func removeString(slice []string, item string) []string {
	out := make([]string, 0, len(slice))
	for _, s := range slice {
		if s != item {
			out = append(out, s)
		}
	}
	return out
}

// AddUnique appends item unless it is already present.
func AddUnique(slice []string, item string) []string {
	if containsString(slice, item) {
		return slice
	}
	return append(slice, item)
}

func Remove(slice []string, item string) []string {
	return removeString(slice, item)
}
