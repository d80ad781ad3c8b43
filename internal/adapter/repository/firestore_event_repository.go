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

type firestoreEventRepository struct {
	client *firestore.Client
}

func NewFirestoreEventRepository(client *firestore.Client) repository.EventRepository {
	return &firestoreEventRepository{
		client: client,
	}
}

func (r *firestoreEventRepository) Create(ctx context.Context, event *entity.Event) error {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	event.CreatedAt = time.Now()

	if _, err := r.client.Collection("events").Doc(event.ID).Set(ctx, event); err != nil {
		return errors.Internal("Failed to create event", err)
	}
	return nil
}

func (r *firestoreEventRepository) GetByID(ctx context.Context, id string) (*entity.Event, error) {
	doc, err := r.client.Collection("events").Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NotFound("Event", err)
		}
		return nil, errors.Internal("Failed to get event", err)
	}

	var event entity.Event
	if err := doc.DataTo(&event); err != nil {
		return nil, errors.Internal("Failed to parse event data", err)
	}
	event.ID = doc.Ref.ID

	return &event, nil
}

func (r *firestoreEventRepository) List(ctx context.Context) ([]*entity.Event, error) {
	events, err := collect[entity.Event](r.client.Collection("events").Documents(ctx))
	if err != nil {
		return nil, errors.Internal("Failed to list events", err)
	}
	return events, nil
}

func (r *firestoreEventRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.client.Collection("events").Doc(id).Delete(ctx); err != nil {
		return errors.Internal("Failed to delete event", err)
	}
	return nil
}
