package usecase

import (
	"context"
	"time"
)

// TokenIdentity is what a verified ID token tells us about the caller.
type TokenIdentity struct {
	UID   string
	Email string
}

type FirebaseAuthClient interface {
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	VerifyToken(ctx context.Context, token string) (*TokenIdentity, error)
	SignInWithEmailPassword(ctx context.Context, email, password string) (string, error)
	UpdateUserPassword(ctx context.Context, uid, newPassword string) error
	DeleteUser(ctx context.Context, uid string) error
}

type RateLimiter interface {
	Allow(userID, action string) (bool, time.Duration)
}
