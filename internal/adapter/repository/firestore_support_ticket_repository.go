package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"campuskart/internal/domain/entity"
	"campuskart/internal/domain/repository"
	"campuskart/pkg/errors"
)

type firestoreSupportTicketRepository struct {
	client *firestore.Client
}

func NewFirestoreSupportTicketRepository(client *firestore.Client) repository.SupportTicketRepository {
	return &firestoreSupportTicketRepository{
		client: client,
	}
}

func (r *firestoreSupportTicketRepository) tickets(userID string) *firestore.CollectionRef {
	return r.client.Collection("supportTickets").Doc(userID).Collection("tickets")
}

func (r *firestoreSupportTicketRepository) Create(ctx context.Context, ticket *entity.SupportTicket) error {
	if ticket.ID == "" {
		ticket.ID = uuid.New().String()
	}
	if ticket.CreatedAt.IsZero() {
		ticket.CreatedAt = time.Now()
	}

	if _, err := r.tickets(ticket.UserID).Doc(ticket.ID).Set(ctx, ticket); err != nil {
		return errors.Internal("Failed to create support ticket", err)
	}
	return nil
}

func (r *firestoreSupportTicketRepository) ListByUser(ctx context.Context, userID string) ([]*entity.SupportTicket, error) {
	query := r.tickets(userID).OrderBy("createdAt", firestore.Desc)

	tickets, err := collect[entity.SupportTicket](query.Documents(ctx))
	if err != nil {
		return nil, errors.Internal("Failed to list support tickets", err)
	}
	return tickets, nil
}

// FindByTicketNumber searches every user's tickets for the six-digit number.
func (r *firestoreSupportTicketRepository) FindByTicketNumber(ctx context.Context, number string) (*entity.SupportTicket, error) {
	iter := r.client.CollectionGroup("tickets").Where("ticketId", "==", number).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err != nil {
		if err == iterator.Done {
			return nil, errors.NotFound("Ticket", nil)
		}
		return nil, errors.Internal("Failed to search support tickets", err)
	}

	var ticket entity.SupportTicket
	if err := doc.DataTo(&ticket); err != nil {
		return nil, errors.Internal("Failed to parse support ticket data", err)
	}
	ticket.ID = doc.Ref.ID

	return &ticket, nil
}

func (r *firestoreSupportTicketRepository) UpdateStatus(ctx context.Context, ticket *entity.SupportTicket) error {
	updates := []firestore.Update{{Path: "status", Value: ticket.Status}}
	if ticket.ResolvedAt != nil {
		updates = append(updates,
			firestore.Update{Path: "resolvedAt", Value: *ticket.ResolvedAt},
			firestore.Update{Path: "resolvedBy", Value: ticket.ResolvedBy},
		)
	}

	if _, err := r.tickets(ticket.UserID).Doc(ticket.ID).Update(ctx, updates); err != nil {
		if isNotFound(err) {
			return errors.NotFound("Ticket", err)
		}
		return errors.Internal("Failed to update support ticket", err)
	}
	return nil
}
