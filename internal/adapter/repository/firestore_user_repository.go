package repository

import (
	"context"
	"net/http"
	"time"

	"cloud.google.com/go/firestore"

	"campuskart/internal/domain/entity"
	"campuskart/internal/domain/repository"
	"campuskart/pkg/errors"
)

type firestoreUserRepository struct {
	client *firestore.Client
}

func NewFirestoreUserRepository(client *firestore.Client) repository.UserRepository {
	return &firestoreUserRepository{
		client: client,
	}
}

func (r *firestoreUserRepository) users() *firestore.CollectionRef {
	return r.client.Collection("users")
}

func (r *firestoreUserRepository) Create(ctx context.Context, user *entity.User) error {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.Followers == nil {
		user.Followers = []string{}
	}
	if user.Following == nil {
		user.Following = []string{}
	}

	if _, err := r.users().Doc(user.ID).Create(ctx, user); err != nil {
		if isAlreadyExists(err) {
			return errors.New("CONFLICT", "Profile already exists", http.StatusConflict, err)
		}
		return errors.Internal("Failed to create user", err)
	}
	return nil
}

func (r *firestoreUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	doc, err := r.users().Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NotFound("User", err)
		}
		return nil, errors.Internal("Failed to get user", err)
	}

	var user entity.User
	if err := doc.DataTo(&user); err != nil {
		return nil, errors.Internal("Failed to parse user data", err)
	}
	user.ID = doc.Ref.ID

	return &user, nil
}

// GetByIDs loads several users in one round trip. Missing users are left out.
func (r *firestoreUserRepository) GetByIDs(ctx context.Context, ids []string) (map[string]*entity.User, error) {
	users := make(map[string]*entity.User, len(ids))
	if len(ids) == 0 {
		return users, nil
	}

	seen := make(map[string]bool, len(ids))
	refs := make([]*firestore.DocumentRef, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		refs = append(refs, r.users().Doc(id))
	}

	docs, err := r.client.GetAll(ctx, refs)
	if err != nil {
		return nil, errors.Internal("Failed to get users", err)
	}

	for _, doc := range docs {
		if !doc.Exists() {
			continue
		}
		var user entity.User
		if err := doc.DataTo(&user); err != nil {
			return nil, errors.Internal("Failed to parse user data", err)
		}
		user.ID = doc.Ref.ID
		users[user.ID] = &user
	}

	return users, nil
}

func (r *firestoreUserRepository) List(ctx context.Context) ([]*entity.User, error) {
	users, err := collect[entity.User](r.users().OrderBy("createdAt", firestore.Desc).Documents(ctx))
	if err != nil {
		return nil, errors.Internal("Failed to list users", err)
	}
	return users, nil
}

func (r *firestoreUserRepository) UpdateProfile(ctx context.Context, user *entity.User) error {
	user.UpdatedAt = time.Now()

	_, err := r.users().Doc(user.ID).Set(ctx, map[string]interface{}{
		"name":         user.Name,
		"bio":          user.Bio,
		"mobile":       user.Mobile,
		"city":         user.City,
		"college":      user.College,
		"profilePhoto": user.ProfilePhoto,
		"updatedAt":    user.UpdatedAt,
	}, firestore.MergeAll)
	if err != nil {
		return errors.Internal("Failed to update profile", err)
	}
	return nil
}

func (r *firestoreUserRepository) SetHolidayMode(ctx context.Context, id string, mode *entity.HolidayMode) error {
	_, err := r.users().Doc(id).Update(ctx, []firestore.Update{
		{Path: "holidayMode", Value: mode},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if isNotFound(err) {
			return errors.NotFound("User", err)
		}
		return errors.Internal("Failed to update holiday mode", err)
	}
	return nil
}

func (r *firestoreUserRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.users().Doc(id).Delete(ctx); err != nil {
		return errors.Internal("Failed to delete user", err)
	}
	return nil
}

func (r *firestoreUserRepository) Follow(ctx context.Context, followerID, targetID string) error {
	return r.updateFollow(ctx, followerID, targetID, true)
}

func (r *firestoreUserRepository) Unfollow(ctx context.Context, followerID, targetID string) error {
	return r.updateFollow(ctx, followerID, targetID, false)
}

// updateFollow edits both follow lists in one transaction.
func (r *firestoreUserRepository) updateFollow(ctx context.Context, followerID, targetID string, follow bool) error {
	followerRef := r.users().Doc(followerID)
	targetRef := r.users().Doc(targetID)

	op := func(id string) interface{} {
		if follow {
			return firestore.ArrayUnion(id)
		}
		return firestore.ArrayRemove(id)
	}

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if _, err := tx.Get(targetRef); err != nil {
			return err
		}
		if _, err := tx.Get(followerRef); err != nil {
			return err
		}

		if err := tx.Update(followerRef, []firestore.Update{{Path: "following", Value: op(targetID)}}); err != nil {
			return err
		}
		return tx.Update(targetRef, []firestore.Update{{Path: "followers", Value: op(followerID)}})
	})
	if err != nil {
		if isNotFound(err) {
			return errors.NotFound("User", err)
		}
		return errors.Internal("Failed to update follow lists", err)
	}
	return nil
}
