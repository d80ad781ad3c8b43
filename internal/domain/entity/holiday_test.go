package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kolkata(t *testing.T) *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	return loc
}

func TestHolidayModeCovers(t *testing.T) {
	loc := kolkata(t)
	h := &HolidayMode{IsActive: true, FromDate: "2025-06-01", ToDate: "2025-06-10"}

	assert.False(t, h.Covers(time.Date(2025, 5, 31, 23, 59, 0, 0, loc), loc))
	assert.True(t, h.Covers(time.Date(2025, 6, 1, 0, 0, 0, 0, loc), loc))
	assert.True(t, h.Covers(time.Date(2025, 6, 5, 12, 0, 0, 0, loc), loc))
	assert.True(t, h.Covers(time.Date(2025, 6, 10, 23, 59, 0, 0, loc), loc))
	assert.False(t, h.Covers(time.Date(2025, 6, 11, 0, 0, 0, 0, loc), loc))
}

func TestHolidayModeCoversUsesLocation(t *testing.T) {
	loc := kolkata(t)
	h := &HolidayMode{IsActive: true, FromDate: "2025-06-01", ToDate: "2025-06-10"}

	// 20:00 UTC on the 10th is already the 11th in Kolkata.
	now := time.Date(2025, 6, 10, 20, 0, 0, 0, time.UTC)
	assert.False(t, h.Covers(now, loc))
	assert.True(t, h.Covers(now, time.UTC))
}

func TestHolidayModeInactiveOrMalformed(t *testing.T) {
	loc := kolkata(t)
	now := time.Date(2025, 6, 5, 12, 0, 0, 0, loc)

	var none *HolidayMode
	assert.False(t, none.Covers(now, loc))
	assert.False(t, (&HolidayMode{IsActive: false, FromDate: "2025-06-01", ToDate: "2025-06-10"}).Covers(now, loc))
	assert.False(t, (&HolidayMode{IsActive: true, FromDate: "junk", ToDate: "2025-06-10"}).Covers(now, loc))
	assert.False(t, (&HolidayMode{IsActive: true, FromDate: "2025-06-01"}).Covers(now, loc))

	// Timestamps stored by older clients are read by their date part.
	h := &HolidayMode{IsActive: true, FromDate: "2025-06-01T00:00:00.000Z", ToDate: "2025-06-10T00:00:00.000Z"}
	assert.True(t, h.Covers(now, loc))
}

func TestItemVisibleAt(t *testing.T) {
	loc := kolkata(t)
	seller := &User{
		ID:          "seller",
		HolidayMode: &HolidayMode{IsActive: true, FromDate: "2025-06-01", ToDate: "2025-06-10"},
	}
	item := &Item{ID: "calc", SellerID: "seller", IsActive: true}

	assert.False(t, item.VisibleAt(seller, time.Date(2025, 6, 5, 10, 0, 0, 0, loc), loc))
	assert.True(t, item.VisibleAt(seller, time.Date(2025, 6, 11, 10, 0, 0, 0, loc), loc))
	assert.True(t, item.IsActive, "holiday mode never mutates the item")

	sold := &Item{ID: "old", SellerID: "seller", IsActive: false}
	assert.False(t, sold.VisibleAt(nil, time.Date(2025, 7, 1, 0, 0, 0, 0, loc), loc))
}

func TestItemForViewer(t *testing.T) {
	item := &Item{SellerID: "seller", SellerMobile: "9876543210"}

	assert.Empty(t, item.ForViewer("buyer").SellerMobile)
	assert.Equal(t, "9876543210", item.ForViewer("seller").SellerMobile)

	item.ShowMobileNumber = true
	assert.Equal(t, "9876543210", item.ForViewer("buyer").SellerMobile)
}
