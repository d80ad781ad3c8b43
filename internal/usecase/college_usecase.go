package usecase

import (
	"context"
	"strings"

	"campuskart/internal/domain/entity"
	"campuskart/internal/domain/repository"
	"campuskart/pkg/errors"
)

const collegeSearchLimit = 10

type CollegeUseCase struct {
	collegeRepo repository.CollegeRepository
}

func NewCollegeUseCase(collegeRepo repository.CollegeRepository) *CollegeUseCase {
	return &CollegeUseCase{
		collegeRepo: collegeRepo,
	}
}

// ListByCity groups every college name under its city.
func (uc *CollegeUseCase) ListByCity(ctx context.Context) (map[string][]string, error) {
	colleges, err := uc.collegeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]string)
	for _, c := range colleges {
		grouped[c.City] = append(grouped[c.City], c.Name)
	}
	return grouped, nil
}

func (uc *CollegeUseCase) ListForCity(ctx context.Context, city string) ([]*entity.College, error) {
	return uc.collegeRepo.ListByCity(ctx, city)
}

// Search returns colleges whose name starts with query, ignoring case; city
// narrows the search when set.
func (uc *CollegeUseCase) Search(ctx context.Context, query, city string) ([]*entity.College, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return []*entity.College{}, nil
	}

	var colleges []*entity.College
	var err error
	if city != "" {
		colleges, err = uc.collegeRepo.ListByCity(ctx, city)
	} else {
		colleges, err = uc.collegeRepo.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	matches := make([]*entity.College, 0, collegeSearchLimit)
	for _, c := range colleges {
		if strings.HasPrefix(strings.ToLower(c.Name), query) {
			matches = append(matches, c)
			if len(matches) == collegeSearchLimit {
				break
			}
		}
	}
	return matches, nil
}

func (uc *CollegeUseCase) Add(ctx context.Context, city, name string) (*entity.College, error) {
	city = strings.TrimSpace(city)
	name = strings.TrimSpace(name)
	if city == "" || name == "" {
		return nil, errors.BadRequest("City and college name are required", nil)
	}

	existing, err := uc.collegeRepo.ListByCity(ctx, city)
	if err != nil {
		return nil, err
	}
	for _, c := range existing {
		if strings.EqualFold(c.Name, name) {
			return nil, errors.Conflict("College already exists in this city")
		}
	}

	college := &entity.College{City: city, Name: name}
	if err := uc.collegeRepo.Create(ctx, college); err != nil {
		return nil, err
	}
	return college, nil
}

func (uc *CollegeUseCase) Remove(ctx context.Context, city, id string) error {
	return uc.collegeRepo.Delete(ctx, city, id)
}
