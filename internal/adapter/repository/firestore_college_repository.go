package repository

import (
	"context"
	"sort"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"campuskart/internal/domain/entity"
	"campuskart/internal/domain/repository"
	"campuskart/pkg/errors"
)

type firestoreCollegeRepository struct {
	client *firestore.Client
}

func NewFirestoreCollegeRepository(client *firestore.Client) repository.CollegeRepository {
	return &firestoreCollegeRepository{
		client: client,
	}
}

func (r *firestoreCollegeRepository) names(city string) *firestore.CollectionRef {
	return r.client.Collection("colleges").Doc(city).Collection("names")
}

func (r *firestoreCollegeRepository) Create(ctx context.Context, college *entity.College) error {
	if college.ID == "" {
		college.ID = uuid.New().String()
	}

	if _, err := r.names(college.City).Doc(college.ID).Set(ctx, college); err != nil {
		return errors.Internal("Failed to create college", err)
	}
	return nil
}

// List returns every college of every city, ordered by city then name.
func (r *firestoreCollegeRepository) List(ctx context.Context) ([]*entity.College, error) {
	colleges, err := collect[entity.College](r.client.CollectionGroup("names").Documents(ctx))
	if err != nil {
		return nil, errors.Internal("Failed to list colleges", err)
	}
	sortColleges(colleges)
	return colleges, nil
}

func (r *firestoreCollegeRepository) ListByCity(ctx context.Context, city string) ([]*entity.College, error) {
	colleges, err := collect[entity.College](r.names(city).Documents(ctx))
	if err != nil {
		return nil, errors.Internal("Failed to list colleges", err)
	}
	sortColleges(colleges)
	return colleges, nil
}

func (r *firestoreCollegeRepository) Delete(ctx context.Context, city, id string) error {
	if _, err := r.names(city).Doc(id).Delete(ctx); err != nil {
		return errors.Internal("Failed to delete college", err)
	}
	return nil
}

func sortColleges(colleges []*entity.College) {
	sort.Slice(colleges, func(i, j int) bool {
		if colleges[i].City != colleges[j].City {
			return colleges[i].City < colleges[j].City
		}
		return colleges[i].Name < colleges[j].Name
	})
}
