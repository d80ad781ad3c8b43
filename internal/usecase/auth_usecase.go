package usecase

import (
	"context"
	stderrors "errors"
	"strings"

	"campuskart/internal/domain/entity"
	"campuskart/internal/domain/repository"
	"campuskart/pkg/errors"
	"campuskart/pkg/logger"
)

const minPasswordLength = 6

type AuthUseCase struct {
	userRepo     repository.UserRepository
	firebaseAuth FirebaseAuthClient
	adminEmail   string
}

func NewAuthUseCase(userRepo repository.UserRepository, firebaseAuth FirebaseAuthClient, adminEmail string) *AuthUseCase {
	return &AuthUseCase{
		userRepo:     userRepo,
		firebaseAuth: firebaseAuth,
		adminEmail:   adminEmail,
	}
}

type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	City            string
	College         string
	Mobile          string
	AcceptedTerms   bool
}

type AuthResult struct {
	Session *entity.Session `json:"session"`
	User    *entity.User    `json:"user,omitempty"`
	Token   string          `json:"token"`
}

func validateNewPassword(password, confirm string) error {
	if len(password) < minPasswordLength {
		return errors.BadRequest("Password must be at least 6 characters", nil)
	}
	if password != confirm {
		return errors.BadRequest("Passwords do not match", nil)
	}
	return nil
}

// passThrough keeps AppErrors raised by collaborators and wraps anything else.
func passThrough(err error, message string) error {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}
	return errors.Internal(message, err)
}

func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	if !input.AcceptedTerms {
		return nil, errors.BadRequest("You must accept the terms and conditions", nil)
	}
	if err := validateNewPassword(input.Password, input.ConfirmPassword); err != nil {
		return nil, err
	}

	email := strings.TrimSpace(input.Email)
	uid, err := uc.firebaseAuth.CreateUser(ctx, email, input.Password, input.Name)
	if err != nil {
		logger.Warn("Register Error: failed to create auth user for %s: %v", email, err)
		return nil, passThrough(err, "Failed to create user in authentication provider")
	}

	user := &entity.User{
		ID:        uid,
		Name:      strings.TrimSpace(input.Name),
		Email:     email,
		City:      input.City,
		College:   input.College,
		Mobile:    input.Mobile,
		Followers: []string{},
		Following: []string{},
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		logger.Error("Register Error: failed to create profile for %s: %v", uid, err)
		if cleanupErr := uc.firebaseAuth.DeleteUser(ctx, uid); cleanupErr != nil {
			logger.LogStepFailure("register", "delete_auth_user", uid, cleanupErr)
		}
		return nil, passThrough(err, "Failed to create user record")
	}

	token, err := uc.firebaseAuth.SignInWithEmailPassword(ctx, email, input.Password)
	if err != nil {
		return nil, errors.Internal("Failed to generate authentication token", err)
	}

	return &AuthResult{
		Session: entity.NewSession(uid, email, uc.adminEmail),
		User:    user,
		Token:   token,
	}, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	token, err := uc.firebaseAuth.SignInWithEmailPassword(ctx, strings.TrimSpace(email), password)
	if err != nil {
		logger.Info("Login failed for %s: %v", email, err)
		return nil, errors.Unauthorized("Invalid credentials", err)
	}

	session, err := uc.Authenticate(ctx, token)
	if err != nil {
		return nil, err
	}

	result := &AuthResult{Session: session, Token: token}
	if session.IsAdmin {
		return result, nil
	}

	user, err := uc.userRepo.GetByID(ctx, session.UID)
	if err != nil {
		return nil, passThrough(err, "Failed to load profile")
	}
	result.User = user

	return result, nil
}

// Authenticate turns an ID token into a Session.
func (uc *AuthUseCase) Authenticate(ctx context.Context, token string) (*entity.Session, error) {
	identity, err := uc.firebaseAuth.VerifyToken(ctx, token)
	if err != nil {
		return nil, errors.Unauthorized("Invalid or expired token", err)
	}
	return entity.NewSession(identity.UID, identity.Email, uc.adminEmail), nil
}

// Me returns the caller's session and, for regular users, their profile.
func (uc *AuthUseCase) Me(ctx context.Context, session *entity.Session) (*AuthResult, error) {
	result := &AuthResult{Session: session}
	if session.IsAdmin {
		return result, nil
	}

	user, err := uc.userRepo.GetByID(ctx, session.UID)
	if err != nil {
		return nil, passThrough(err, "Failed to load profile")
	}
	result.User = user

	return result, nil
}
