package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmendezv/fiado/internal/auth"
)

func TestService_Login(t *testing.T) {
	svc := auth.NewService("1234", "secret", time.Hour)

	token, err := svc.Login("1234")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	assert.NoError(t, svc.Verify(token))
}

func TestService_Login_WrongCode(t *testing.T) {
	svc := auth.NewService("1234", "secret", time.Hour)

	_, err := svc.Login("4321")
	assert.ErrorIs(t, err, auth.ErrInvalidCode)
}

func TestService_Verify_WrongSecret(t *testing.T) {
	token, err := auth.NewService("1234", "secret", time.Hour).Login("1234")
	require.NoError(t, err)

	err = auth.NewService("1234", "other", time.Hour).Verify(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestService_Verify_Expired(t *testing.T) {
	svc := auth.NewService("1234", "secret", -time.Minute)

	token, err := svc.Login("1234")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Verify(token), auth.ErrInvalidToken)
}

func TestService_Verify_Garbage(t *testing.T) {
	svc := auth.NewService("1234", "secret", time.Hour)
	assert.ErrorIs(t, svc.Verify("not.a.token"), auth.ErrInvalidToken)
}

func TestMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	t.Run("ValidToken", func(t *testing.T) {
		svc := auth.NewService("1234", "secret", time.Hour)

		token, err := svc.Login("1234")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		svc.Middleware(next).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("MissingHeader", func(t *testing.T) {
		svc := auth.NewService("1234", "secret", time.Hour)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		svc.Middleware(next).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("BadToken", func(t *testing.T) {
		svc := auth.NewService("1234", "secret", time.Hour)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer nope")
		rec := httptest.NewRecorder()

		svc.Middleware(next).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("GateDisabled", func(t *testing.T) {
		svc := auth.NewService("", "secret", time.Hour)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		svc.Middleware(next).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
