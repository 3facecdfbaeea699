package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	domainErrors "github.com/spinzone/backend/internal/domain/errors"
	testhelpers "github.com/spinzone/backend/internal/test"
)

func TestAuthRegister(t *testing.T) {
	t.Run("success sets cookie", func(t *testing.T) {
		handler := NewAuthHandler(testhelpers.AuthFacadeStub{
			RegisterFn: func(context.Context, string, string, string) (string, error) {
				return "issued-token", nil
			},
		})
		body := []byte(`{"email":"jo@example.com","name":"Jo","password":"pw"}`)
		w := performRequest(t, http.MethodPost, "/api/auth/register", "", handler.Register, nil, body, nil)
		mustStatus(t, w, http.StatusOK)

		cookie := w.Header().Get("Set-Cookie")
		if !strings.Contains(cookie, "issued-token") {
			t.Fatalf("expected auth cookie, got %q", cookie)
		}
		if got := w.Header().Get("Authorization"); got != "Bearer issued-token" {
			t.Fatalf("unexpected authorization header %q", got)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		handler := NewAuthHandler(testhelpers.AuthFacadeStub{})
		w := performRequest(t, http.MethodPost, "/api/auth/register", "", handler.Register, nil, []byte("{"), nil)
		mustStatus(t, w, http.StatusBadRequest)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		handler := NewAuthHandler(testhelpers.AuthFacadeStub{
			RegisterFn: func(context.Context, string, string, string) (string, error) {
				return "", domainErrors.ErrInvalidCredentials
			},
		})
		w := performRequest(t, http.MethodPost, "/api/auth/register", "", handler.Register, nil, []byte(`{}`), nil)
		mustStatus(t, w, http.StatusBadRequest)
	})

	t.Run("conflict", func(t *testing.T) {
		handler := NewAuthHandler(testhelpers.AuthFacadeStub{
			RegisterFn: func(context.Context, string, string, string) (string, error) {
				return "", domainErrors.ErrAlreadyExists
			},
		})
		body := []byte(`{"email":"jo@example.com","name":"Jo","password":"pw"}`)
		w := performRequest(t, http.MethodPost, "/api/auth/register", "", handler.Register, nil, body, nil)
		mustStatus(t, w, http.StatusConflict)
	})

	t.Run("internal failure", func(t *testing.T) {
		handler := NewAuthHandler(testhelpers.AuthFacadeStub{
			RegisterFn: func(context.Context, string, string, string) (string, error) {
				return "", errors.New("db down")
			},
		})
		body := []byte(`{"email":"jo@example.com","name":"Jo","password":"pw"}`)
		w := performRequest(t, http.MethodPost, "/api/auth/register", "", handler.Register, nil, body, nil)
		mustStatus(t, w, http.StatusInternalServerError)
	})
}

func TestAuthLogin(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		handler := NewAuthHandler(testhelpers.AuthFacadeStub{})
		body := []byte(`{"email":"jo@example.com","password":"pw"}`)
		w := performRequest(t, http.MethodPost, "/api/auth/login", "", handler.Login, nil, body, nil)
		mustStatus(t, w, http.StatusOK)
		if cookie := w.Header().Get("Set-Cookie"); cookie == "" {
			t.Fatal("expected auth cookie")
		}
	})

	t.Run("invalid credentials", func(t *testing.T) {
		handler := NewAuthHandler(testhelpers.AuthFacadeStub{
			AuthenticateFn: func(context.Context, string, string) (string, error) {
				return "", domainErrors.ErrInvalidCredentials
			},
		})
		body := []byte(`{"email":"jo@example.com","password":"bad"}`)
		w := performRequest(t, http.MethodPost, "/api/auth/login", "", handler.Login, nil, body, nil)
		mustStatus(t, w, http.StatusUnauthorized)
	})

	t.Run("malformed body", func(t *testing.T) {
		handler := NewAuthHandler(testhelpers.AuthFacadeStub{})
		w := performRequest(t, http.MethodPost, "/api/auth/login", "", handler.Login, nil, []byte("{"), nil)
		mustStatus(t, w, http.StatusBadRequest)
	})
}
