package usecase

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campuskart/internal/domain/entity"
	"campuskart/pkg/errors"
)

type fakeTicketRepo struct {
	tickets []*entity.SupportTicket
}

func (r *fakeTicketRepo) Create(ctx context.Context, ticket *entity.SupportTicket) error {
	r.tickets = append(r.tickets, ticket)
	return nil
}

func (r *fakeTicketRepo) ListByUser(ctx context.Context, userID string) ([]*entity.SupportTicket, error) {
	var out []*entity.SupportTicket
	for _, t := range r.tickets {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTicketRepo) FindByTicketNumber(ctx context.Context, number string) (*entity.SupportTicket, error) {
	for _, t := range r.tickets {
		if t.TicketID == number {
			clone := *t
			return &clone, nil
		}
	}
	return nil, errors.NotFound("Ticket", nil)
}

func (r *fakeTicketRepo) UpdateStatus(ctx context.Context, ticket *entity.SupportTicket) error {
	for i, t := range r.tickets {
		if t.ID == ticket.ID {
			r.tickets[i] = ticket
			return nil
		}
	}
	return errors.NotFound("Ticket", nil)
}

type fakeRelay struct {
	err     error
	relayed []*entity.SupportTicket
}

func (r *fakeRelay) Relay(ctx context.Context, ticket *entity.SupportTicket) error {
	if r.err != nil {
		return r.err
	}
	r.relayed = append(r.relayed, ticket)
	return nil
}

func newSupportFixture() (*SupportUseCase, *fakeTicketRepo, *fakeRelay) {
	tickets := &fakeTicketRepo{}
	relay := &fakeRelay{}
	users := newFakeUserRepo(&entity.User{ID: "A", Name: "Asha", College: "X"})
	return NewSupportUseCase(tickets, users, relay, allowAll{}), tickets, relay
}

var ashaSession = &entity.Session{UID: "A", Email: "asha@college.edu"}

func TestSubmitTicket(t *testing.T) {
	// Setup
	uc, tickets, relay := newSupportFixture()

	// Execute
	ticket, err := uc.Submit(context.Background(), ashaSession, SubmitTicketInput{Purpose: "Technical Bug", Description: " chat does not load "})

	// Assert
	if assert.NoError(t, err) {
		assert.Len(t, ticket.TicketID, 6)
		assert.Equal(t, entity.TicketStatusOpen, ticket.Status)
		assert.Equal(t, "chat does not load", ticket.Description)
		assert.Equal(t, "Asha", ticket.UserName)
		assert.Equal(t, "X", ticket.UserCollege)
		assert.Equal(t, "asha@college.edu", ticket.UserEmail)
	}
	assert.Len(t, tickets.tickets, 1)
	assert.Len(t, relay.relayed, 1)
}

func TestSubmitTicketRelayFailureKeepsRecord(t *testing.T) {
	uc, tickets, relay := newSupportFixture()
	relay.err = stderrors.New("smtp: connection refused")

	_, err := uc.Submit(context.Background(), ashaSession, SubmitTicketInput{Purpose: "Other", Description: "help"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_GATEWAY"))
	assert.Contains(t, err.Error(), "Failed to submit ticket. Please try again.")
	assert.Len(t, tickets.tickets, 1, "the stored ticket is not rolled back")
}

func TestSubmitTicketSkipsTakenNumbers(t *testing.T) {
	uc, tickets, _ := newSupportFixture()
	tickets.tickets = append(tickets.tickets, &entity.SupportTicket{ID: "old", TicketID: "123456", UserID: "B"})

	draws := []string{"123456", "123456", "654321"}
	uc.newNumber = func() string {
		n := draws[0]
		draws = draws[1:]
		return n
	}

	ticket, err := uc.Submit(context.Background(), ashaSession, SubmitTicketInput{Purpose: "Other", Description: "help"})

	if assert.NoError(t, err) {
		assert.Equal(t, "654321", ticket.TicketID)
	}
	assert.Empty(t, draws)
}

func TestSubmitTicketGivesUpWhenNumbersKeepColliding(t *testing.T) {
	uc, tickets, relay := newSupportFixture()
	tickets.tickets = append(tickets.tickets, &entity.SupportTicket{ID: "old", TicketID: "123456", UserID: "B"})
	uc.newNumber = func() string { return "123456" }

	_, err := uc.Submit(context.Background(), ashaSession, SubmitTicketInput{Purpose: "Other", Description: "help"})

	assert.True(t, errors.Is(err, "INTERNAL_ERROR"))
	assert.Len(t, tickets.tickets, 1)
	assert.Empty(t, relay.relayed)
}

func TestSubmitTicketValidation(t *testing.T) {
	uc, tickets, _ := newSupportFixture()
	ctx := context.Background()

	_, err := uc.Submit(ctx, ashaSession, SubmitTicketInput{Purpose: "Refund", Description: "x"})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	_, err = uc.Submit(ctx, ashaSession, SubmitTicketInput{Purpose: "Other", Description: "  "})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	uc.rateLimiter = denyAll{}
	_, err = uc.Submit(ctx, ashaSession, SubmitTicketInput{Purpose: "Other", Description: "x"})
	assert.True(t, errors.Is(err, "TOO_MANY_REQUESTS"))

	assert.Empty(t, tickets.tickets)
}

func TestUpdateTicketStatus(t *testing.T) {
	uc, tickets, _ := newSupportFixture()
	resolvedAt := time.Date(2025, 6, 20, 15, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return resolvedAt }
	tickets.tickets = []*entity.SupportTicket{{ID: "t1", TicketID: "482913", UserID: "A", Status: entity.TicketStatusOpen}}
	ctx := context.Background()

	_, err := uc.UpdateStatus(ctx, "482913", "done")
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	ticket, err := uc.UpdateStatus(ctx, "482913", entity.TicketStatusInProgress)
	require.NoError(t, err)
	assert.Nil(t, ticket.ResolvedAt)

	ticket, err = uc.UpdateStatus(ctx, "#482913", entity.TicketStatusResolved)
	require.NoError(t, err)
	assert.Equal(t, resolvedAt, *ticket.ResolvedAt)
	assert.Equal(t, "admin", ticket.ResolvedBy)
	assert.Equal(t, entity.TicketStatusResolved, tickets.tickets[0].Status)
}

func TestFindByNumber(t *testing.T) {
	uc, tickets, _ := newSupportFixture()
	tickets.tickets = []*entity.SupportTicket{{ID: "t1", TicketID: "482913"}}
	ctx := context.Background()

	for _, bad := range []string{"12345", "0482913", "abcdef", ""} {
		_, err := uc.FindByNumber(ctx, bad)
		assert.True(t, errors.Is(err, "BAD_REQUEST"), bad)
	}

	_, err := uc.FindByNumber(ctx, "111111")
	assert.True(t, errors.IsNotFound(err))

	ticket, err := uc.FindByNumber(ctx, " #482913 ")
	require.NoError(t, err)
	assert.Equal(t, "t1", ticket.ID)
}
