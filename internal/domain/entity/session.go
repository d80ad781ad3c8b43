package entity

import "strings"

// Session is the authenticated caller of a request. It is built once by the auth
// middleware from a verified ID token and handed down explicitly.
type Session struct {
	UID     string `json:"uid"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

// NewSession marks the session as admin when email matches adminEmail (case-insensitive).
func NewSession(uid, email, adminEmail string) *Session {
	return &Session{
		UID:     uid,
		Email:   email,
		IsAdmin: adminEmail != "" && strings.EqualFold(email, adminEmail),
	}
}
