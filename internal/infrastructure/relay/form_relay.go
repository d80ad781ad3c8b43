package relay

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"campuskart/internal/domain/entity"
)

// FormRelay posts tickets as form fields to a form-relay endpoint.
type FormRelay struct {
	endpoint   string
	httpClient *http.Client
}

func NewFormRelay(endpoint string) *FormRelay {
	return &FormRelay{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func ticketForm(ticket *entity.SupportTicket) url.Values {
	form := url.Values{}
	form.Set("ticketId", ticket.TicketID)
	form.Set("name", ticket.UserName)
	form.Set("email", ticket.UserEmail)
	form.Set("college", ticket.UserCollege)
	form.Set("purpose", ticket.Purpose)
	form.Set("description", ticket.Description)
	form.Set("userId", ticket.UserID)
	return form
}

func (r *FormRelay) Relay(ctx context.Context, ticket *entity.SupportTicket) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, strings.NewReader(ticketForm(ticket).Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("ticket relay request failed: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("ticket relay responded with status %d", resp.StatusCode)
	}
	return nil
}
