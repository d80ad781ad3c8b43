package entity

import (
	"fmt"
	"time"
)

type NotificationType string

const (
	NotificationTypeMessage     NotificationType = "message"
	NotificationTypeOffer       NotificationType = "offer"
	NotificationTypeAdmin       NotificationType = "admin"
	NotificationTypeRecruitment NotificationType = "recruitment"
)

// Notification belongs to exactly one recipient, implied by where it is stored.
// Only Read changes after creation.
type Notification struct {
	ID                string           `json:"id" firestore:"id"`
	Type              NotificationType `json:"type" firestore:"type"`
	ChatID            string           `json:"chat_id,omitempty" firestore:"chatId,omitempty"`
	ItemID            string           `json:"item_id,omitempty" firestore:"itemId,omitempty"`
	RecruitmentPostID string           `json:"recruitment_post_id,omitempty" firestore:"recruitmentPostId,omitempty"`
	Text              string           `json:"text" firestore:"text"`
	OfferPrice        int64            `json:"offer_price,omitempty" firestore:"offerPrice,omitempty"`
	From              string           `json:"from,omitempty" firestore:"from,omitempty"`
	Read              bool             `json:"read" firestore:"read"`
	CreatedAt         time.Time        `json:"created_at" firestore:"createdAt"`
}

// NotificationFor builds the notification a room participant receives for msg.
func NotificationFor(room *ChatRoom, msg *Message) *Notification {
	n := &Notification{
		ID:                msg.ID,
		ChatID:            room.Key,
		ItemID:            room.ItemID(),
		RecruitmentPostID: room.RecruitmentPostID(),
		From:              msg.SenderID,
		CreatedAt:         msg.CreatedAt,
	}

	switch {
	case msg.Type == MessageTypeOffer:
		n.Type = NotificationTypeOffer
		n.OfferPrice = msg.OfferPrice
		n.Text = fmt.Sprintf("New offer: ₹%d", msg.OfferPrice)
	case room.Type == RoomTypeRecruitment:
		n.Type = NotificationTypeRecruitment
		n.Text = msg.Text
	default:
		n.Type = NotificationTypeMessage
		n.Text = msg.Text
	}
	return n
}

type UnreadCounts struct {
	Total    int `json:"total"`
	Messages int `json:"messages"`
}
