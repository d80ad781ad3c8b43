package relay

import (
	"context"
	"fmt"
	"html"

	"gopkg.in/gomail.v2"

	"campuskart/internal/domain/entity"
)

// MailRelay sends tickets to the support inbox over SMTP.
type MailRelay struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

func NewMailRelay(host string, port int, user, password, from, to string) *MailRelay {
	if from == "" {
		from = user
	}
	return &MailRelay{
		dialer: gomail.NewDialer(host, port, user, password),
		from:   from,
		to:     to,
	}
}

func (r *MailRelay) Relay(ctx context.Context, ticket *entity.SupportTicket) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := r.dialer.DialAndSend(ticketMessage(r.from, r.to, ticket)); err != nil {
		return fmt.Errorf("failed to mail ticket %s: %w", ticket.TicketID, err)
	}
	return nil
}

func ticketMessage(from, to string, ticket *entity.SupportTicket) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetAddressHeader("Reply-To", ticket.UserEmail, ticket.UserName)
	m.SetHeader("Subject", fmt.Sprintf("[Ticket #%s] %s", ticket.TicketID, ticket.Purpose))
	m.SetBody("text/html", fmt.Sprintf(
		"<p><b>Ticket:</b> #%s</p><p><b>From:</b> %s &lt;%s&gt; (%s)</p><p><b>User ID:</b> %s</p><p><b>Purpose:</b> %s</p><p>%s</p>",
		ticket.TicketID,
		html.EscapeString(ticket.UserName),
		html.EscapeString(ticket.UserEmail),
		html.EscapeString(ticket.UserCollege),
		ticket.UserID,
		html.EscapeString(ticket.Purpose),
		html.EscapeString(ticket.Description),
	))
	return m
}
