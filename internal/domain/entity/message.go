package entity

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type MessageType string

const (
	MessageTypeText               MessageType = "text"
	MessageTypeOffer              MessageType = "offer"
	MessageTypeRecruitmentInquiry MessageType = "recruitment_inquiry"
)

var (
	ErrEmptyMessage    = errors.New("message text is required")
	ErrInvalidOffer    = errors.New("offer price must be a positive whole amount")
	ErrUnknownType     = errors.New("unknown message type")
	ErrOfferNotAllowed = errors.New("offers are not allowed in recruitment conversations")
)

type Message struct {
	ID                string      `json:"id" firestore:"id"`
	SenderID          string      `json:"sender_id" firestore:"senderId"`
	Type              MessageType `json:"type" firestore:"type"`
	Text              string      `json:"text,omitempty" firestore:"text,omitempty"`
	OfferPrice        int64       `json:"offer_price,omitempty" firestore:"offerPrice,omitempty"`
	RecruitmentPostID string      `json:"recruitment_post_id,omitempty" firestore:"recruitmentPostId,omitempty"`
	CreatedAt         time.Time   `json:"created_at" firestore:"createdAt"`
}

func (m *Message) Validate() error {
	switch m.Type {
	case MessageTypeText, MessageTypeRecruitmentInquiry:
		if strings.TrimSpace(m.Text) == "" {
			return ErrEmptyMessage
		}
	case MessageTypeOffer:
		if m.OfferPrice <= 0 {
			return ErrInvalidOffer
		}
	default:
		return ErrUnknownType
	}
	return nil
}

// Preview is the room's last-message summary.
func (m *Message) Preview() string {
	if m.Type == MessageTypeOffer {
		return fmt.Sprintf("Offer: ₹%d", m.OfferPrice)
	}
	return m.Text
}
