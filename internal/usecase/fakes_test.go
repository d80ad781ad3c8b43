package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"campuskart/internal/domain/entity"
	"campuskart/internal/domain/repository"
	"campuskart/pkg/errors"
)

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if _, ok := r.users[user.ID]; ok {
		return errors.Conflict("Profile already exists")
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	clone := *u
	return &clone, nil
}

func (r *fakeUserRepo) GetByIDs(ctx context.Context, ids []string) (map[string]*entity.User, error) {
	out := make(map[string]*entity.User)
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			out[id] = u
		}
	}
	return out, nil
}

func (r *fakeUserRepo) List(ctx context.Context) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) UpdateProfile(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) SetHolidayMode(ctx context.Context, id string, mode *entity.HolidayMode) error {
	u, ok := r.users[id]
	if !ok {
		return errors.NotFound("User", nil)
	}
	u.HolidayMode = mode
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id string) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) Follow(ctx context.Context, followerID, targetID string) error {
	follower, ok := r.users[followerID]
	target, ok2 := r.users[targetID]
	if !ok || !ok2 {
		return errors.NotFound("User", nil)
	}
	follower.Following = entity.AddUnique(follower.Following, targetID)
	target.Followers = entity.AddUnique(target.Followers, followerID)
	return nil
}

func (r *fakeUserRepo) Unfollow(ctx context.Context, followerID, targetID string) error {
	follower, ok := r.users[followerID]
	target, ok2 := r.users[targetID]
	if !ok || !ok2 {
		return errors.NotFound("User", nil)
	}
	follower.Following = entity.Remove(follower.Following, targetID)
	target.Followers = entity.Remove(target.Followers, followerID)
	return nil
}

type fakeItemRepo struct {
	items map[string]*entity.Item
}

func newFakeItemRepo(items ...*entity.Item) *fakeItemRepo {
	r := &fakeItemRepo{items: make(map[string]*entity.Item)}
	for _, i := range items {
		r.items[i.ID] = i
	}
	return r
}

func (r *fakeItemRepo) Create(ctx context.Context, item *entity.Item) error {
	r.items[item.ID] = item
	return nil
}

func (r *fakeItemRepo) GetByID(ctx context.Context, id string) (*entity.Item, error) {
	i, ok := r.items[id]
	if !ok {
		return nil, errors.NotFound("Item", nil)
	}
	clone := *i
	return &clone, nil
}

func (r *fakeItemRepo) sorted(keep func(*entity.Item) bool) []*entity.Item {
	var out []*entity.Item
	for _, i := range r.items {
		if keep(i) {
			out = append(out, i)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].CreatedAt.After(out[b].CreatedAt) })
	return out
}

func (r *fakeItemRepo) ListActive(ctx context.Context) ([]*entity.Item, error) {
	return r.sorted(func(i *entity.Item) bool { return i.IsActive }), nil
}

func (r *fakeItemRepo) ListBySeller(ctx context.Context, sellerID string) ([]*entity.Item, error) {
	return r.sorted(func(i *entity.Item) bool { return i.SellerID == sellerID }), nil
}

func (r *fakeItemRepo) MarkSold(ctx context.Context, id string, soldAt time.Time) error {
	i, ok := r.items[id]
	if !ok {
		return errors.NotFound("Item", nil)
	}
	i.IsActive, i.IsSold, i.SoldAt = false, true, &soldAt
	return nil
}

func (r *fakeItemRepo) Deactivate(ctx context.Context, id string) error {
	i, ok := r.items[id]
	if !ok {
		return errors.NotFound("Item", nil)
	}
	i.IsActive = false
	return nil
}

func (r *fakeItemRepo) Delete(ctx context.Context, id string) error {
	delete(r.items, id)
	return nil
}

type fakeNotificationRepo struct {
	entries    map[string]map[string]*entity.Notification
	batchCalls int
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{entries: make(map[string]map[string]*entity.Notification)}
}

func (r *fakeNotificationRepo) Create(ctx context.Context, recipientID string, n *entity.Notification) error {
	if r.entries[recipientID] == nil {
		r.entries[recipientID] = make(map[string]*entity.Notification)
	}
	clone := *n
	r.entries[recipientID][n.ID] = &clone
	return nil
}

func (r *fakeNotificationRepo) List(ctx context.Context, recipientID string) ([]*entity.Notification, error) {
	var out []*entity.Notification
	for _, n := range r.entries[recipientID] {
		clone := *n
		out = append(out, &clone)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].CreatedAt.After(out[b].CreatedAt) })
	return out, nil
}

func (r *fakeNotificationRepo) MarkRead(ctx context.Context, recipientID, id string) error {
	n, ok := r.entries[recipientID][id]
	if !ok {
		return errors.NotFound("Notification", nil)
	}
	n.Read = true
	return nil
}

func (r *fakeNotificationRepo) MarkReadBatch(ctx context.Context, recipientID string, ids []string) error {
	r.batchCalls++
	for _, id := range ids {
		if n, ok := r.entries[recipientID][id]; ok {
			n.Read = true
		}
	}
	return nil
}

type fakeChatRepo struct {
	rooms         map[string]*entity.ChatRoom
	messages      map[string][]*entity.Message
	index         map[string]map[string]*entity.ConversationEntry
	notifications *fakeNotificationRepo
	deliverErr    error
}

func newFakeChatRepo(notifications *fakeNotificationRepo) *fakeChatRepo {
	return &fakeChatRepo{
		rooms:         make(map[string]*entity.ChatRoom),
		messages:      make(map[string][]*entity.Message),
		index:         make(map[string]map[string]*entity.ConversationEntry),
		notifications: notifications,
	}
}

func (r *fakeChatRepo) GetRoom(ctx context.Context, key string) (*entity.ChatRoom, error) {
	room, ok := r.rooms[key]
	if !ok {
		return nil, errors.NotFound("Chat room", nil)
	}
	clone := *room
	return &clone, nil
}

func (r *fakeChatRepo) ListMessages(ctx context.Context, key string) ([]*entity.Message, error) {
	out := append([]*entity.Message(nil), r.messages[key]...)
	sort.SliceStable(out, func(a, b int) bool { return out[a].CreatedAt.Before(out[b].CreatedAt) })
	return out, nil
}

func (r *fakeChatRepo) ListConversationEntries(ctx context.Context, uid string) ([]*entity.ConversationEntry, error) {
	var out []*entity.ConversationEntry
	for _, e := range r.index[uid] {
		out = append(out, e)
	}
	return out, nil
}

func (r *fakeChatRepo) Deliver(ctx context.Context, d *repository.Delivery) error {
	if r.deliverErr != nil {
		return r.deliverErr
	}

	room := *d.Room
	r.rooms[room.Key] = &room
	r.messages[room.Key] = append(r.messages[room.Key], d.Message)
	for _, uid := range room.Participants {
		if r.index[uid] == nil {
			r.index[uid] = make(map[string]*entity.ConversationEntry)
		}
		r.index[uid][room.Key] = &entity.ConversationEntry{RoomKey: room.Key, UpdatedAt: room.UpdatedAt}
	}
	for uid, n := range d.Notifications {
		r.notifications.Create(ctx, uid, n)
	}
	return nil
}

type fakeRecruitmentRepo struct {
	posts map[string]*entity.RecruitmentPost
}

func newFakeRecruitmentRepo(posts ...*entity.RecruitmentPost) *fakeRecruitmentRepo {
	r := &fakeRecruitmentRepo{posts: make(map[string]*entity.RecruitmentPost)}
	for _, p := range posts {
		r.posts[p.ID] = p
	}
	return r
}

func (r *fakeRecruitmentRepo) Create(ctx context.Context, post *entity.RecruitmentPost) error {
	if post.ID == "" {
		post.ID = "post-" + post.Purpose
	}
	r.posts[post.ID] = post
	return nil
}

func (r *fakeRecruitmentRepo) GetByID(ctx context.Context, id string) (*entity.RecruitmentPost, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, errors.NotFound("Recruitment post", nil)
	}
	clone := *p
	return &clone, nil
}

func (r *fakeRecruitmentRepo) ListActive(ctx context.Context) ([]*entity.RecruitmentPost, error) {
	var out []*entity.RecruitmentPost
	for _, p := range r.posts {
		if p.IsActive {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeRecruitmentRepo) Update(ctx context.Context, post *entity.RecruitmentPost) error {
	r.posts[post.ID] = post
	return nil
}

func (r *fakeRecruitmentRepo) Delete(ctx context.Context, id string) error {
	delete(r.posts, id)
	return nil
}

type pushedEvent struct {
	UserID string
	Event  string
}

type fakeNotifier struct {
	mu     sync.Mutex
	events []pushedEvent
}

func (n *fakeNotifier) NotifyUser(userID, event string, payload interface{}) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, pushedEvent{UserID: userID, Event: event})
}

func (n *fakeNotifier) count(userID, event string) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	c := 0
	for _, e := range n.events {
		if e.UserID == userID && e.Event == event {
			c++
		}
	}
	return c
}

type allowAll struct{}

func (allowAll) Allow(userID, action string) (bool, time.Duration) { return true, 0 }

type denyAll struct{}

func (denyAll) Allow(userID, action string) (bool, time.Duration) { return false, 5 * time.Second }

// denyAction refuses only the named action.
type denyAction string

func (d denyAction) Allow(userID, action string) (bool, time.Duration) {
	return action != string(d), time.Minute
}

type fakeAuth struct {
	users     map[string]string
	emails    map[string]string
	passwords map[string]string
	deleted   []string
	createErr error
}

func newFakeAuth() *fakeAuth {
	return &fakeAuth{
		users:     make(map[string]string),
		emails:    make(map[string]string),
		passwords: make(map[string]string),
	}
}

func (a *fakeAuth) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	if a.createErr != nil {
		return "", a.createErr
	}
	uid := "uid-" + email
	a.users[email] = uid
	a.emails[uid] = email
	a.passwords[email] = password
	return uid, nil
}

func (a *fakeAuth) VerifyToken(ctx context.Context, token string) (*TokenIdentity, error) {
	email, ok := a.emails[token]
	if !ok {
		return nil, errors.Unauthorized("bad token", nil)
	}
	return &TokenIdentity{UID: token, Email: email}, nil
}

// SignInWithEmailPassword hands out the uid itself as the token.
func (a *fakeAuth) SignInWithEmailPassword(ctx context.Context, email, password string) (string, error) {
	if a.passwords[email] != password || password == "" {
		return "", errors.Unauthorized("INVALID_PASSWORD", nil)
	}
	return a.users[email], nil
}

func (a *fakeAuth) UpdateUserPassword(ctx context.Context, uid, newPassword string) error {
	a.passwords[a.emails[uid]] = newPassword
	return nil
}

func (a *fakeAuth) DeleteUser(ctx context.Context, uid string) error {
	a.deleted = append(a.deleted, uid)
	return nil
}

// stepClock returns a clock that advances one second per call.
func stepClock(start time.Time) func() time.Time {
	t := start
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}
