package entity

import (
	"errors"
	"time"
)

type RoomType string

const (
	RoomTypeText        RoomType = "text"
	RoomTypeRecruitment RoomType = "recruitment"

	recruitmentKeyPrefix = "recruitment_"
)

var (
	ErrSelfChat            = errors.New("cannot start a conversation with yourself")
	ErrInvalidParticipants = errors.New("a room needs exactly two distinct participants")
	ErrRoomContext         = errors.New("room context does not match room type")
)

// RoomKey derives the deterministic key of a two-party room. Both parties get the
// same key regardless of argument order. An empty contextID yields the plain pair key,
// so every conversation between the same two users without a context shares one room.
func RoomKey(a, b, contextID string) string {
	if b < a {
		a, b = b, a
	}
	key := a + "_" + b
	if contextID != "" {
		key += "_" + contextID
	}
	return key
}

// RecruitmentRoomKey derives the key of a conversation opened from a recruitment post.
func RecruitmentRoomKey(senderID, recruiterID, postID string) string {
	return recruitmentKeyPrefix + senderID + "_" + recruiterID + "_" + postID
}

type ItemContext struct {
	ItemID string `json:"item_id" firestore:"itemId"`
}

type RecruitmentContext struct {
	PostID  string `json:"post_id" firestore:"postId"`
	Purpose string `json:"purpose" firestore:"purpose"`
}

// ChatRoom is the room meta record. Type is the discriminant: text rooms may carry an
// Item context, recruitment rooms always carry a Recruitment context.
type ChatRoom struct {
	Key          string              `json:"key" firestore:"key"`
	Type         RoomType            `json:"type" firestore:"type"`
	Participants []string            `json:"participants" firestore:"participants"`
	Item         *ItemContext        `json:"item,omitempty" firestore:"item,omitempty"`
	Recruitment  *RecruitmentContext `json:"recruitment,omitempty" firestore:"recruitment,omitempty"`
	LastMessage  string              `json:"last_message" firestore:"lastMessage"`
	LastSender   string              `json:"last_sender" firestore:"lastSender"`
	UpdatedAt    time.Time           `json:"updated_at" firestore:"updatedAt"`
}

func NewTextRoom(a, b, itemID string) (*ChatRoom, error) {
	if a == b {
		return nil, ErrSelfChat
	}
	room := &ChatRoom{
		Key:          RoomKey(a, b, itemID),
		Type:         RoomTypeText,
		Participants: []string{a, b},
	}
	if itemID != "" {
		room.Item = &ItemContext{ItemID: itemID}
	}
	return room, nil
}

func NewRecruitmentRoom(senderID, recruiterID, postID, purpose string) (*ChatRoom, error) {
	if senderID == recruiterID {
		return nil, ErrSelfChat
	}
	return &ChatRoom{
		Key:          RecruitmentRoomKey(senderID, recruiterID, postID),
		Type:         RoomTypeRecruitment,
		Participants: []string{senderID, recruiterID},
		Recruitment:  &RecruitmentContext{PostID: postID, Purpose: purpose},
	}, nil
}

func (r *ChatRoom) Validate() error {
	if len(r.Participants) != 2 || r.Participants[0] == r.Participants[1] {
		return ErrInvalidParticipants
	}
	switch r.Type {
	case RoomTypeText:
		if r.Recruitment != nil {
			return ErrRoomContext
		}
	case RoomTypeRecruitment:
		if r.Recruitment == nil || r.Item != nil {
			return ErrRoomContext
		}
	default:
		return ErrRoomContext
	}
	return nil
}

func (r *ChatRoom) HasParticipant(uid string) bool {
	return containsString(r.Participants, uid)
}

// Counterpart returns the other participant, or "" when uid is not in the room.
func (r *ChatRoom) Counterpart(uid string) string {
	if !r.HasParticipant(uid) {
		return ""
	}
	for _, p := range r.Participants {
		if p != uid {
			return p
		}
	}
	return ""
}

func (r *ChatRoom) AllowsOffers() bool {
	return r.Type == RoomTypeText
}

func (r *ChatRoom) ItemID() string {
	if r.Item == nil {
		return ""
	}
	return r.Item.ItemID
}

func (r *ChatRoom) RecruitmentPostID() string {
	if r.Recruitment == nil {
		return ""
	}
	return r.Recruitment.PostID
}

// ConversationEntry is a pointer to a room under one user's conversation index.
type ConversationEntry struct {
	RoomKey   string    `json:"room_key" firestore:"roomKey"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// Conversation is a room resolved for display in a user's conversation list.
type Conversation struct {
	Room            *ChatRoom `json:"room"`
	CounterpartID   string    `json:"counterpart_id"`
	CounterpartName string    `json:"counterpart_name"`
	ItemName        string    `json:"item_name,omitempty"`
	ItemImage       string    `json:"item_image,omitempty"`
	ItemSellerID    string    `json:"item_seller_id,omitempty"`
	UnreadCount     int       `json:"unread_count"`
}
