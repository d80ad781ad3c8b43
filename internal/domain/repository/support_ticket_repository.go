package repository

import (
	"context"

	"campuskart/internal/domain/entity"
)

type SupportTicketRepository interface {
	Create(ctx context.Context, ticket *entity.SupportTicket) error
	ListByUser(ctx context.Context, userID string) ([]*entity.SupportTicket, error)
	FindByTicketNumber(ctx context.Context, number string) (*entity.SupportTicket, error)
	UpdateStatus(ctx context.Context, ticket *entity.SupportTicket) error
}
