package service

import (
	"context"

	"campuskart/internal/domain/entity"
)

// TicketRelay forwards a submitted support ticket to the support inbox.
type TicketRelay interface {
	Relay(ctx context.Context, ticket *entity.SupportTicket) error
}
