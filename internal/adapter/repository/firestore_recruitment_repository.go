package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"campuskart/internal/domain/entity"
	"campuskart/internal/domain/repository"
	"campuskart/pkg/errors"
)

type firestoreRecruitmentRepository struct {
	client *firestore.Client
}

func NewFirestoreRecruitmentRepository(client *firestore.Client) repository.RecruitmentRepository {
	return &firestoreRecruitmentRepository{
		client: client,
	}
}

func (r *firestoreRecruitmentRepository) posts() *firestore.CollectionRef {
	return r.client.Collection("recruitmentPosts")
}

func (r *firestoreRecruitmentRepository) Create(ctx context.Context, post *entity.RecruitmentPost) error {
	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	post.CreatedAt = time.Now()

	if _, err := r.posts().Doc(post.ID).Set(ctx, post); err != nil {
		return errors.Internal("Failed to create recruitment post", err)
	}
	return nil
}

func (r *firestoreRecruitmentRepository) GetByID(ctx context.Context, id string) (*entity.RecruitmentPost, error) {
	doc, err := r.posts().Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NotFound("Recruitment post", err)
		}
		return nil, errors.Internal("Failed to get recruitment post", err)
	}

	var post entity.RecruitmentPost
	if err := doc.DataTo(&post); err != nil {
		return nil, errors.Internal("Failed to parse recruitment post data", err)
	}
	post.ID = doc.Ref.ID

	return &post, nil
}

func (r *firestoreRecruitmentRepository) ListActive(ctx context.Context) ([]*entity.RecruitmentPost, error) {
	posts, err := collect[entity.RecruitmentPost](r.posts().Where("isActive", "==", true).Documents(ctx))
	if err != nil {
		return nil, errors.Internal("Failed to list recruitment posts", err)
	}
	newestFirst(posts, func(p *entity.RecruitmentPost) time.Time { return p.CreatedAt })
	return posts, nil
}

func (r *firestoreRecruitmentRepository) Update(ctx context.Context, post *entity.RecruitmentPost) error {
	now := time.Now()
	post.UpdatedAt = &now

	if _, err := r.posts().Doc(post.ID).Set(ctx, post); err != nil {
		return errors.Internal("Failed to update recruitment post", err)
	}
	return nil
}

func (r *firestoreRecruitmentRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.posts().Doc(id).Delete(ctx); err != nil {
		return errors.Internal("Failed to delete recruitment post", err)
	}
	return nil
}
