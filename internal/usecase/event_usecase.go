package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"campuskart/internal/domain/entity"
	"campuskart/internal/domain/repository"
	"campuskart/pkg/errors"
)

type EventUseCase struct {
	eventRepo repository.EventRepository
	location  *time.Location
	now       func() time.Time
}

func NewEventUseCase(eventRepo repository.EventRepository, location *time.Location) *EventUseCase {
	return &EventUseCase{
		eventRepo: eventRepo,
		location:  location,
		now:       time.Now,
	}
}

type EventFilter struct {
	Upcoming bool
	City     string
	College  string
}

type CreateEventInput struct {
	Title           string
	Description     string
	Date            string
	Time            string
	Venue           string
	City            string
	College         string
	Organizer       string
	Image           string
	RegistrationURL string
}

// List returns events matching filter, latest start first.
func (uc *EventUseCase) List(ctx context.Context, filter EventFilter) ([]*entity.Event, error) {
	events, err := uc.eventRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	out := make([]*entity.Event, 0, len(events))
	for _, e := range events {
		if filter.Upcoming && !e.IsUpcoming(now, uc.location) {
			continue
		}
		if filter.City != "" && !strings.EqualFold(e.City, filter.City) {
			continue
		}
		if filter.College != "" && !strings.EqualFold(e.College, filter.College) {
			continue
		}
		out = append(out, e)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, _ := out[i].StartsAt(uc.location)
		b, _ := out[j].StartsAt(uc.location)
		return a.After(b)
	})

	return out, nil
}

func (uc *EventUseCase) Create(ctx context.Context, input CreateEventInput) (*entity.Event, error) {
	event := &entity.Event{
		Title:           strings.TrimSpace(input.Title),
		Description:     strings.TrimSpace(input.Description),
		Date:            input.Date,
		Time:            input.Time,
		Venue:           strings.TrimSpace(input.Venue),
		City:            input.City,
		College:         input.College,
		Organizer:       strings.TrimSpace(input.Organizer),
		Image:           input.Image,
		RegistrationURL: input.RegistrationURL,
	}

	if _, ok := event.StartsAt(uc.location); !ok {
		return nil, errors.BadRequest("Event date must be YYYY-MM-DD and time HH:MM", nil)
	}

	if err := uc.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (uc *EventUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.eventRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.eventRepo.Delete(ctx, id)
}
