package usecase

import (
	"context"
	stderrors "errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"campuskart/internal/domain/entity"
	"campuskart/internal/domain/repository"
	"campuskart/internal/domain/service"
	"campuskart/internal/infrastructure/ratelimit"
	"campuskart/pkg/errors"
	"campuskart/pkg/logger"
)

const (
	TabBuying      = "buying"
	TabSelling     = "selling"
	TabRecruitment = "recruitment"

	recruitmentOpeningPreview = "Started recruitment conversation"
)

type ChatUseCase struct {
	chatRepo        repository.ChatRepository
	userRepo        repository.UserRepository
	itemRepo        repository.ItemRepository
	recruitmentRepo repository.RecruitmentRepository
	notifications   *NotificationUseCase
	notifier        service.Notifier
	rateLimiter     RateLimiter
	now             func() time.Time
}

func NewChatUseCase(
	chatRepo repository.ChatRepository,
	userRepo repository.UserRepository,
	itemRepo repository.ItemRepository,
	recruitmentRepo repository.RecruitmentRepository,
	notifications *NotificationUseCase,
	notifier service.Notifier,
	rateLimiter RateLimiter,
) *ChatUseCase {
	return &ChatUseCase{
		chatRepo:        chatRepo,
		userRepo:        userRepo,
		itemRepo:        itemRepo,
		recruitmentRepo: recruitmentRepo,
		notifications:   notifications,
		notifier:        notifier,
		rateLimiter:     rateLimiter,
		now:             time.Now,
	}
}

// SendMessageInput addresses an existing room by RoomKey, or a new one by
// RecipientID and an optional ItemID.
type SendMessageInput struct {
	RoomKey     string
	RecipientID string
	ItemID      string
	Type        entity.MessageType
	Text        string
	OfferPrice  int64
}

type SendResult struct {
	Room    *entity.ChatRoom `json:"room"`
	Message *entity.Message  `json:"message"`
}

type RoomView struct {
	Room     *entity.ChatRoom  `json:"room"`
	Messages []*entity.Message `json:"messages"`
}

type messageEvent struct {
	RoomKey string          `json:"room_key"`
	Message *entity.Message `json:"message"`
}

func (uc *ChatUseCase) SendMessage(ctx context.Context, senderID string, input SendMessageInput) (*SendResult, error) {
	if allowed, wait := uc.rateLimiter.Allow(senderID, ratelimit.ActionSendMessage); !allowed {
		logger.Warn("SendMessage Rate Limited: User %s must wait %v", senderID, wait)
		return nil, errors.TooManyRequests("Rate limit exceeded. Please wait before sending another message", wait)
	}

	room, err := uc.resolveRoom(ctx, senderID, input)
	if err != nil {
		return nil, err
	}

	if input.Type == "" {
		input.Type = entity.MessageTypeText
	}
	msg := &entity.Message{
		ID:         uuid.New().String(),
		SenderID:   senderID,
		Type:       input.Type,
		Text:       input.Text,
		OfferPrice: input.OfferPrice,
		CreatedAt:  uc.now(),
	}
	if err := msg.Validate(); err != nil {
		return nil, errors.BadRequest(err.Error(), err)
	}
	if msg.Type == entity.MessageTypeOffer && !room.AllowsOffers() {
		return nil, errors.BadRequest(entity.ErrOfferNotAllowed.Error(), entity.ErrOfferNotAllowed)
	}
	if msg.Type == entity.MessageTypeRecruitmentInquiry {
		if room.Type != entity.RoomTypeRecruitment {
			return nil, errors.BadRequest("Recruitment inquiries belong in recruitment conversations", nil)
		}
		msg.RecruitmentPostID = room.RecruitmentPostID()
	}

	room.LastMessage = msg.Preview()
	if err := uc.deliver(ctx, room, msg, nil); err != nil {
		logger.Error("SendMessage Error: delivery to room %s failed: %v", room.Key, err)
		return nil, err
	}

	return &SendResult{Room: room, Message: msg}, nil
}

// resolveRoom finds the room a message goes to and checks the sender belongs in it.
func (uc *ChatUseCase) resolveRoom(ctx context.Context, senderID string, input SendMessageInput) (*entity.ChatRoom, error) {
	if input.RoomKey != "" {
		room, err := uc.chatRepo.GetRoom(ctx, input.RoomKey)
		if err != nil {
			return nil, err
		}
		if !room.HasParticipant(senderID) {
			return nil, errors.Forbidden("You are not a participant in this conversation", nil)
		}
		return room, nil
	}

	if input.RecipientID == "" {
		return nil, errors.BadRequest("Either room_key or recipient_id is required", nil)
	}

	room, err := entity.NewTextRoom(senderID, input.RecipientID, input.ItemID)
	if err != nil {
		return nil, errors.BadRequest(err.Error(), err)
	}

	if _, err := uc.userRepo.GetByID(ctx, input.RecipientID); err != nil {
		return nil, err
	}
	if input.ItemID != "" {
		item, err := uc.itemRepo.GetByID(ctx, input.ItemID)
		if err != nil {
			return nil, err
		}
		if item.SellerID != senderID && item.SellerID != input.RecipientID {
			return nil, errors.BadRequest("Item does not belong to either participant", nil)
		}
	}

	existing, err := uc.chatRepo.GetRoom(ctx, room.Key)
	switch {
	case err == nil:
		return existing, nil
	case errors.IsNotFound(err):
		if allowed, wait := uc.rateLimiter.Allow(senderID, ratelimit.ActionStartChat); !allowed {
			return nil, errors.TooManyRequests("Rate limit exceeded. Please wait before starting another conversation", wait)
		}
		return room, nil
	default:
		return nil, err
	}
}

// deliver stamps the room summary, commits the delivery and pushes live events.
// notice overrides the recipients' notification text when set.
func (uc *ChatUseCase) deliver(ctx context.Context, room *entity.ChatRoom, msg *entity.Message, notice func(*entity.Notification)) error {
	room.LastSender = msg.SenderID
	room.UpdatedAt = msg.CreatedAt
	if err := room.Validate(); err != nil {
		return errors.BadRequest(err.Error(), err)
	}

	delivery := &repository.Delivery{
		Room:          room,
		Message:       msg,
		Notifications: make(map[string]*entity.Notification),
	}
	for _, uid := range room.Participants {
		if uid == msg.SenderID {
			continue
		}
		n := entity.NotificationFor(room, msg)
		if notice != nil {
			notice(n)
		}
		delivery.Notifications[uid] = n
	}

	if err := uc.chatRepo.Deliver(ctx, delivery); err != nil {
		return err
	}

	for _, uid := range room.Participants {
		uc.notifier.NotifyUser(uid, service.EventMessage, messageEvent{RoomKey: room.Key, Message: msg})
		uc.notifier.NotifyUser(uid, service.EventRoomUpdated, room)
	}
	for uid, n := range delivery.Notifications {
		uc.notifier.NotifyUser(uid, service.EventNotification, n)
	}
	return nil
}

// StartRecruitmentChat opens (or reopens) the conversation between an inquirer
// and the author of a recruitment post.
func (uc *ChatUseCase) StartRecruitmentChat(ctx context.Context, uid, postID string) (*entity.ChatRoom, error) {
	post, err := uc.recruitmentRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !post.IsActive {
		return nil, errors.BadRequest("This recruitment post is no longer active", nil)
	}

	room, err := entity.NewRecruitmentRoom(uid, post.RecruiterID, post.ID, post.Purpose)
	if err != nil {
		if stderrors.Is(err, entity.ErrSelfChat) {
			return nil, errors.BadRequest("You cannot inquire about your own recruitment post", err)
		}
		return nil, errors.BadRequest(err.Error(), err)
	}

	existing, err := uc.chatRepo.GetRoom(ctx, room.Key)
	if err == nil {
		return existing, nil
	}
	if !errors.IsNotFound(err) {
		return nil, err
	}

	if allowed, wait := uc.rateLimiter.Allow(uid, ratelimit.ActionStartChat); !allowed {
		return nil, errors.TooManyRequests("Rate limit exceeded. Please wait before starting another conversation", wait)
	}

	msg := &entity.Message{
		ID:                uuid.New().String(),
		SenderID:          uid,
		Type:              entity.MessageTypeRecruitmentInquiry,
		Text:              post.InquiryText(),
		RecruitmentPostID: post.ID,
		CreatedAt:         uc.now(),
	}
	room.LastMessage = recruitmentOpeningPreview

	err = uc.deliver(ctx, room, msg, func(n *entity.Notification) {
		n.Text = post.InquiryNotice()
	})
	if err != nil {
		logger.Error("StartRecruitmentChat Error: delivery to room %s failed: %v", room.Key, err)
		return nil, err
	}

	return room, nil
}

// ListConversations resolves the user's conversation index for one tab, or all
// conversations when tab is empty, most recently updated first.
func (uc *ChatUseCase) ListConversations(ctx context.Context, uid, tab string) ([]*entity.Conversation, error) {
	switch tab {
	case "", TabBuying, TabSelling, TabRecruitment:
	default:
		return nil, errors.BadRequest("tab must be one of buying, selling, recruitment", nil)
	}

	entries, err := uc.chatRepo.ListConversationEntries(ctx, uid)
	if err != nil {
		return nil, err
	}

	rooms := make([]*entity.ChatRoom, 0, len(entries))
	counterpartIDs := make([]string, 0, len(entries))
	items := make(map[string]*entity.Item)
	for _, entry := range entries {
		room, err := uc.chatRepo.GetRoom(ctx, entry.RoomKey)
		if err != nil {
			if errors.IsNotFound(err) {
				logger.Warn("ListConversations: room %s indexed for %s is missing", entry.RoomKey, uid)
				continue
			}
			return nil, err
		}
		rooms = append(rooms, room)
		counterpartIDs = append(counterpartIDs, room.Counterpart(uid))

		if itemID := room.ItemID(); itemID != "" {
			if _, loaded := items[itemID]; loaded {
				continue
			}
			item, err := uc.itemRepo.GetByID(ctx, itemID)
			if err != nil && !errors.IsNotFound(err) {
				return nil, err
			}
			items[itemID] = item
		}
	}

	users, err := uc.userRepo.GetByIDs(ctx, counterpartIDs)
	if err != nil {
		return nil, err
	}

	unread, err := uc.unreadByRoom(ctx, uid)
	if err != nil {
		return nil, err
	}

	conversations := make([]*entity.Conversation, 0, len(rooms))
	for _, room := range rooms {
		conv := &entity.Conversation{
			Room:          room,
			CounterpartID: room.Counterpart(uid),
			UnreadCount:   unread[room.Key],
		}
		if u := users[conv.CounterpartID]; u != nil {
			conv.CounterpartName = u.Name
		}
		if item := items[room.ItemID()]; item != nil {
			conv.ItemName = item.ProductName
			conv.ItemImage = item.ProductImage
			conv.ItemSellerID = item.SellerID
		}

		if tab == "" || conversationTab(room, conv, uid) == tab {
			conversations = append(conversations, conv)
		}
	}

	sort.SliceStable(conversations, func(i, j int) bool {
		return conversations[i].Room.UpdatedAt.After(conversations[j].Room.UpdatedAt)
	})

	return conversations, nil
}

func conversationTab(room *entity.ChatRoom, conv *entity.Conversation, uid string) string {
	if room.Type == entity.RoomTypeRecruitment {
		return TabRecruitment
	}
	if conv.ItemSellerID == uid {
		return TabSelling
	}
	return TabBuying
}

func (uc *ChatUseCase) unreadByRoom(ctx context.Context, uid string) (map[string]int, error) {
	notifications, err := uc.notifications.List(ctx, uid)
	if err != nil {
		return nil, err
	}

	unread := make(map[string]int)
	for _, n := range notifications {
		if !n.Read && n.ChatID != "" {
			unread[n.ChatID]++
		}
	}
	return unread, nil
}

// OpenRoom returns the room with its messages in chronological order and marks
// the caller's notifications for the room as read.
func (uc *ChatUseCase) OpenRoom(ctx context.Context, uid, roomKey string) (*RoomView, error) {
	room, err := uc.chatRepo.GetRoom(ctx, roomKey)
	if err != nil {
		return nil, err
	}
	if !room.HasParticipant(uid) {
		return nil, errors.Forbidden("You are not a participant in this conversation", nil)
	}

	messages, err := uc.chatRepo.ListMessages(ctx, roomKey)
	if err != nil {
		return nil, err
	}

	if _, err := uc.notifications.MarkRoomRead(ctx, uid, roomKey); err != nil {
		logger.Warn("OpenRoom: failed to mark room %s read for %s: %v", roomKey, uid, err)
	}

	return &RoomView{Room: room, Messages: messages}, nil
}
