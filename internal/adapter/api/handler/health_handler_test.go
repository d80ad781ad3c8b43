package handler

import (
	"context"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestHealthCheck(t *testing.T) {
	// Setup
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	h := NewHealthHandler(func(ctx context.Context) error { return nil })

	// Assertions
	if assert.NoError(t, h.CheckHealth(c)) {
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Server is running")
	}
}

func TestStoreHealth(t *testing.T) {
	e := echo.New()

	rec := httptest.NewRecorder()
	ok := NewHealthHandler(func(ctx context.Context) error { return nil })
	if assert.NoError(t, ok.CheckStoreHealth(e.NewContext(httptest.NewRequest(http.MethodGet, "/firestore-health", nil), rec))) {
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	rec = httptest.NewRecorder()
	down := NewHealthHandler(func(ctx context.Context) error { return stderrors.New("deadline exceeded") })
	if assert.NoError(t, down.CheckStoreHealth(e.NewContext(httptest.NewRequest(http.MethodGet, "/firestore-health", nil), rec))) {
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), "deadline exceeded")
	}
}
