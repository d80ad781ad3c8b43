package usecase

import (
	"context"
	"regexp"
	"strings"
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
	resolvedByAdmin = "admin"

	ticketNumberAttempts = 5
)

var ticketNumberPattern = regexp.MustCompile(`^[1-9][0-9]{5}$`)

type SupportUseCase struct {
	ticketRepo  repository.SupportTicketRepository
	userRepo    repository.UserRepository
	relay       service.TicketRelay
	rateLimiter RateLimiter
	now         func() time.Time
	newNumber   func() string
}

func NewSupportUseCase(
	ticketRepo repository.SupportTicketRepository,
	userRepo repository.UserRepository,
	relay service.TicketRelay,
	rateLimiter RateLimiter,
) *SupportUseCase {
	return &SupportUseCase{
		ticketRepo:  ticketRepo,
		userRepo:    userRepo,
		relay:       relay,
		rateLimiter: rateLimiter,
		now:         time.Now,
		newNumber:   entity.NewTicketNumber,
	}
}

type SubmitTicketInput struct {
	Purpose     string
	Description string
}

// Submit stores the ticket and then relays it. A relay failure is reported as a
// failed submission even though the stored record stays.
func (uc *SupportUseCase) Submit(ctx context.Context, session *entity.Session, input SubmitTicketInput) (*entity.SupportTicket, error) {
	if !entity.IsValidTicketPurpose(input.Purpose) {
		return nil, errors.BadRequest("Please select a valid purpose", nil)
	}
	if strings.TrimSpace(input.Description) == "" {
		return nil, errors.BadRequest("Please describe your issue", nil)
	}

	if allowed, wait := uc.rateLimiter.Allow(session.UID, ratelimit.ActionSubmitTicket); !allowed {
		return nil, errors.TooManyRequests("Too many tickets submitted", wait)
	}

	user, err := uc.userRepo.GetByID(ctx, session.UID)
	if err != nil {
		return nil, err
	}

	number, err := uc.unusedTicketNumber(ctx)
	if err != nil {
		return nil, err
	}

	ticket := &entity.SupportTicket{
		ID:          uuid.New().String(),
		TicketID:    number,
		UserID:      user.ID,
		UserName:    user.Name,
		UserEmail:   session.Email,
		UserCollege: user.College,
		Purpose:     input.Purpose,
		Description: strings.TrimSpace(input.Description),
		Status:      entity.TicketStatusOpen,
		CreatedAt:   uc.now(),
	}

	if err := uc.ticketRepo.Create(ctx, ticket); err != nil {
		return nil, err
	}

	if err := uc.relay.Relay(ctx, ticket); err != nil {
		logger.LogStepFailure("submit_ticket", "relay", ticket.TicketID, err)
		return nil, errors.BadGateway("Failed to submit ticket. Please try again.", err)
	}

	logger.Info("Support ticket #%s submitted by %s", ticket.TicketID, session.UID)
	return ticket, nil
}

// unusedTicketNumber draws ticket numbers until one is not already taken.
func (uc *SupportUseCase) unusedTicketNumber(ctx context.Context) (string, error) {
	for i := 0; i < ticketNumberAttempts; i++ {
		number := uc.newNumber()
		_, err := uc.ticketRepo.FindByTicketNumber(ctx, number)
		if errors.IsNotFound(err) {
			return number, nil
		}
		if err != nil {
			return "", err
		}
	}
	return "", errors.Internal("Failed to allocate a ticket number", nil)
}

func (uc *SupportUseCase) ListMine(ctx context.Context, uid string) ([]*entity.SupportTicket, error) {
	return uc.ticketRepo.ListByUser(ctx, uid)
}

func (uc *SupportUseCase) FindByNumber(ctx context.Context, number string) (*entity.SupportTicket, error) {
	number = strings.TrimPrefix(strings.TrimSpace(number), "#")
	if !ticketNumberPattern.MatchString(number) {
		return nil, errors.BadRequest("Ticket number must be six digits", nil)
	}
	return uc.ticketRepo.FindByTicketNumber(ctx, number)
}

// UpdateStatus sets a ticket's status. Resolving or rejecting stamps who and when.
func (uc *SupportUseCase) UpdateStatus(ctx context.Context, number, status string) (*entity.SupportTicket, error) {
	if !entity.IsValidTicketStatus(status) {
		return nil, errors.BadRequest("Invalid ticket status", nil)
	}

	ticket, err := uc.FindByNumber(ctx, number)
	if err != nil {
		return nil, err
	}

	ticket.Status = status
	if entity.IsTerminalTicketStatus(status) {
		now := uc.now()
		ticket.ResolvedAt = &now
		ticket.ResolvedBy = resolvedByAdmin
	}

	if err := uc.ticketRepo.UpdateStatus(ctx, ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}
