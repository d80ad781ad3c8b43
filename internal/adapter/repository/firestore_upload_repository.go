package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"campuskart/internal/domain/entity"
	"campuskart/internal/domain/repository"
	"campuskart/pkg/errors"
)

type firestoreUploadRepository struct {
	client *firestore.Client
}

func NewFirestoreUploadRepository(client *firestore.Client) repository.UploadRepository {
	return &firestoreUploadRepository{
		client: client,
	}
}

func (r *firestoreUploadRepository) Create(ctx context.Context, upload *entity.Upload) error {
	if _, err := r.client.Collection("uploads").Doc(upload.ID).Set(ctx, upload); err != nil {
		return errors.Internal("Failed to record upload", err)
	}
	return nil
}

func (r *firestoreUploadRepository) GetByID(ctx context.Context, id string) (*entity.Upload, error) {
	doc, err := r.client.Collection("uploads").Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NotFound("Upload", err)
		}
		return nil, errors.Internal("Failed to get upload", err)
	}

	var upload entity.Upload
	if err := doc.DataTo(&upload); err != nil {
		return nil, errors.Internal("Failed to parse upload data", err)
	}
	upload.ID = doc.Ref.ID

	return &upload, nil
}

func (r *firestoreUploadRepository) ListByUploader(ctx context.Context, uid string) ([]*entity.Upload, error) {
	uploads, err := collect[entity.Upload](r.client.Collection("uploads").Where("uploadedBy", "==", uid).Documents(ctx))
	if err != nil {
		return nil, errors.Internal("Failed to list uploads", err)
	}

	newestFirst(uploads, func(u *entity.Upload) time.Time { return u.CreatedAt })
	return uploads, nil
}

func (r *firestoreUploadRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.client.Collection("uploads").Doc(id).Delete(ctx); err != nil {
		return errors.Internal("Failed to delete upload record", err)
	}
	return nil
}
