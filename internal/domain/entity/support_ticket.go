package entity

import (
	"math/rand"
	"strconv"
	"time"
)

const (
	TicketStatusOpen       = "open"
	TicketStatusInProgress = "in-progress"
	TicketStatusResolved   = "resolved"
	TicketStatusRejected   = "rejected"
	TicketStatusClosed     = "closed"

	ticketNumberMin = 100000
	ticketNumberMax = 999999
)

// TicketPurposes is the fixed list offered on the support form.
var TicketPurposes = []string{
	"Account Issues",
	"Payment Problems",
	"Item Listing Issues",
	"Technical Bug",
	"Feature Request",
	"Safety Concerns",
	"Other",
}

type SupportTicket struct {
	ID          string     `json:"id" firestore:"id"`
	TicketID    string     `json:"ticket_id" firestore:"ticketId"`
	UserID      string     `json:"user_id" firestore:"userId"`
	UserName    string     `json:"user_name" firestore:"userName"`
	UserEmail   string     `json:"user_email" firestore:"userEmail"`
	UserCollege string     `json:"user_college" firestore:"userCollege"`
	Purpose     string     `json:"purpose" firestore:"purpose"`
	Description string     `json:"description" firestore:"description"`
	Status      string     `json:"status" firestore:"status"`
	CreatedAt   time.Time  `json:"created_at" firestore:"createdAt"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty" firestore:"resolvedAt,omitempty"`
	ResolvedBy  string     `json:"resolved_by,omitempty" firestore:"resolvedBy,omitempty"`
}

// NewTicketNumber returns a six-digit human-facing ticket number.
func NewTicketNumber() string {
	return strconv.Itoa(ticketNumberMin + rand.Intn(ticketNumberMax-ticketNumberMin+1))
}

func IsValidTicketPurpose(purpose string) bool {
	return containsString(TicketPurposes, purpose)
}

func IsValidTicketStatus(status string) bool {
	switch status {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusResolved, TicketStatusRejected, TicketStatusClosed:
		return true
	}
	return false
}

// IsTerminalTicketStatus reports whether status closes the ticket on the admin's side.
func IsTerminalTicketStatus(status string) bool {
	return status == TicketStatusResolved || status == TicketStatusRejected
}
