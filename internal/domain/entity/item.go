package entity

import (
	"time"
)

const (
	CategoryGadgets    = "gadgets"
	CategoryBooks      = "books"
	CategoryStationary = "stationary"
	CategoryOther      = "other"

	ConditionNew     = "new"
	ConditionLikeNew = "like new"
	ConditionUsed    = "used"
)

type Item struct {
	ID            string `json:"id" firestore:"id"`
	SellerID      string `json:"seller_id" firestore:"sellerId"`
	SellerName    string `json:"seller_name" firestore:"sellerName"`
	SellerCollege string `json:"seller_college" firestore:"sellerCollege"`
	SellerMobile  string `json:"seller_mobile,omitempty" firestore:"sellerMobile"`

	ProductName      string `json:"product_name" firestore:"productName"`
	ProductImage     string `json:"product_image" firestore:"productImage"`
	Type             string `json:"type" firestore:"type"`
	Price            int64  `json:"price" firestore:"price"`
	Category         string `json:"category" firestore:"category"`
	Condition        string `json:"condition" firestore:"condition"`
	Description      string `json:"description" firestore:"description"`
	ShowMobileNumber bool   `json:"show_mobile_number" firestore:"showMobileNumber"`

	IsActive  bool       `json:"is_active" firestore:"isActive"`
	IsSold    bool       `json:"is_sold" firestore:"isSold"`
	CreatedAt time.Time  `json:"created_at" firestore:"createdAt"`
	SoldAt    *time.Time `json:"sold_at,omitempty" firestore:"soldAt,omitempty"`
}

// VisibleAt is the browse-visibility rule: the item is active and its seller is not
// on a holiday window covering now. Hidden items are untouched in storage.
func (i *Item) VisibleAt(seller *User, now time.Time, loc *time.Location) bool {
	if !i.IsActive {
		return false
	}
	if seller != nil && seller.HolidayMode.Covers(now, loc) {
		return false
	}
	return true
}

// ForViewer strips the seller's mobile number unless the seller opted to show it
// or the viewer is the seller.
func (i *Item) ForViewer(viewerID string) *Item {
	view := *i
	if !i.ShowMobileNumber && viewerID != i.SellerID {
		view.SellerMobile = ""
	}
	return &view
}
