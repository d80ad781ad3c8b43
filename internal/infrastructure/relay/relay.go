package relay

import (
	"context"

	"campuskart/internal/domain/entity"
	"campuskart/internal/domain/service"
	"campuskart/pkg/config"
	"campuskart/pkg/logger"
)

// Noop accepts every ticket. It is used when no relay is configured.
type Noop struct{}

func (Noop) Relay(ctx context.Context, ticket *entity.SupportTicket) error {
	logger.Debug("No ticket relay configured, ticket %s kept in store only", ticket.TicketID)
	return nil
}

// New picks SMTP when configured, then the form endpoint, then Noop.
func New(cfg *config.Config) service.TicketRelay {
	switch {
	case cfg.SMTPEnabled():
		return NewMailRelay(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPFrom, cfg.SupportInbox)
	case cfg.TicketRelayURL != "":
		return NewFormRelay(cfg.TicketRelayURL)
	default:
		return Noop{}
	}
}
