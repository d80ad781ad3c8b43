package usecase

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campuskart/internal/domain/entity"
	"campuskart/pkg/errors"
)

const testAdminEmail = "admin@campuskart.com"

func validRegistration() RegisterInput {
	return RegisterInput{
		Name:            "Asha",
		Email:           "asha@college.edu",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		City:            "Pune",
		College:         "X",
		AcceptedTerms:   true,
	}
}

func TestRegisterAndLogin(t *testing.T) {
	// Setup
	users := newFakeUserRepo()
	auth := newFakeAuth()
	uc := NewAuthUseCase(users, auth, testAdminEmail)
	ctx := context.Background()

	// Execute
	res, err := uc.Register(ctx, validRegistration())

	// Assert
	if assert.NoError(t, err) {
		assert.Equal(t, "uid-asha@college.edu", res.Session.UID)
		assert.False(t, res.Session.IsAdmin)
		assert.NotEmpty(t, res.Token)
		assert.Equal(t, "Pune", users.users[res.Session.UID].City)
	}

	login, err := uc.Login(ctx, "asha@college.edu", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "Asha", login.User.Name)

	_, err = uc.Login(ctx, "asha@college.edu", "wrong")
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
}

func TestRegisterValidation(t *testing.T) {
	uc := NewAuthUseCase(newFakeUserRepo(), newFakeAuth(), testAdminEmail)
	ctx := context.Background()

	in := validRegistration()
	in.AcceptedTerms = false
	_, err := uc.Register(ctx, in)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	in = validRegistration()
	in.Password, in.ConfirmPassword = "abc", "abc"
	_, err = uc.Register(ctx, in)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	in = validRegistration()
	in.ConfirmPassword = "secret2"
	_, err = uc.Register(ctx, in)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	auth := newFakeAuth()
	auth.createErr = errors.New("CONFLICT", "Email already registered", 409, nil)
	uc := NewAuthUseCase(newFakeUserRepo(), auth, testAdminEmail)

	_, err := uc.Register(context.Background(), validRegistration())
	assert.True(t, errors.Is(err, "CONFLICT"))
}

func TestRegisterRemovesAuthUserWhenProfileFails(t *testing.T) {
	users := newFakeUserRepo(&entity.User{ID: "uid-asha@college.edu"})
	auth := newFakeAuth()
	uc := NewAuthUseCase(users, auth, testAdminEmail)

	_, err := uc.Register(context.Background(), validRegistration())
	assert.True(t, errors.Is(err, "CONFLICT"))
	assert.Equal(t, []string{"uid-asha@college.edu"}, auth.deleted)
}

func TestAdminLoginHasNoProfile(t *testing.T) {
	auth := newFakeAuth()
	_, err := auth.CreateUser(context.Background(), "Admin@CampusKart.com", "adminpw", "")
	require.NoError(t, err)
	uc := NewAuthUseCase(newFakeUserRepo(), auth, testAdminEmail)

	res, err := uc.Login(context.Background(), "Admin@CampusKart.com", "adminpw")
	require.NoError(t, err)
	assert.True(t, res.Session.IsAdmin)
	assert.Nil(t, res.User)
}

func TestAuthenticate(t *testing.T) {
	auth := newFakeAuth()
	uid, err := auth.CreateUser(context.Background(), "asha@college.edu", "secret1", "Asha")
	require.NoError(t, err)
	uc := NewAuthUseCase(newFakeUserRepo(), auth, testAdminEmail)

	session, err := uc.Authenticate(context.Background(), uid)
	require.NoError(t, err)
	assert.Equal(t, "asha@college.edu", session.Email)

	_, err = uc.Authenticate(context.Background(), "forged")
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
}

func TestPassThrough(t *testing.T) {
	conflict := errors.Conflict("taken")
	assert.Same(t, conflict, passThrough(conflict, "ignored"))
	assert.True(t, errors.Is(passThrough(stderrors.New("boom"), "wrapped"), "INTERNAL_ERROR"))
}
