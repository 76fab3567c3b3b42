package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillmentor/backend/pkg/auth"
	"github.com/skillmentor/backend/pkg/identity"
	"github.com/skillmentor/backend/pkg/session"
)

type fakeGateway struct {
	account identity.Account
	err     error
}

func (g *fakeGateway) SignUp(ctx context.Context, email, password string) (identity.Account, error) {
	if g.err != nil {
		return identity.Account{}, g.err
	}
	return g.account, nil
}

func (g *fakeGateway) SignIn(ctx context.Context, email, password string) (identity.Account, error) {
	if g.err != nil {
		return identity.Account{}, g.err
	}
	return g.account, nil
}

type fakeTokens struct{}

func (fakeTokens) Generate(ctx context.Context, account identity.Account) (string, error) {
	return "token-" + account.UserID, nil
}

func newAuthApp(gateway identity.Gateway, sessions *session.Store) *fiber.App {
	app := fiber.New()
	h := NewAuthHandler(auth.NewService(gateway, fakeTokens{}), sessions)
	app.Post("/api/v1/auth/register", h.Register)
	app.Post("/api/v1/auth/login", h.Login)
	return app
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestLoginSeedsSession(t *testing.T) {
	sessions := session.NewStore()
	gw := &fakeGateway{account: identity.Account{UserID: "uid-1", Email: "user@example.com"}}
	app := newAuthApp(gw, sessions)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/v1/auth/login", `{"email":"user@example.com","password":"secret1"}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "uid-1", body["id"])
	assert.Equal(t, "token-uid-1", body["token"])

	state := sessions.Get("uid-1")
	assert.True(t, state.Authenticated)
	assert.Equal(t, "user@example.com", state.Email)
	assert.Equal(t, session.PageUpload, state.Page)
}

func TestLoginInvalidCredentials(t *testing.T) {
	app := newAuthApp(&fakeGateway{err: identity.ErrInvalidCredentials}, session.NewStore())

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/v1/auth/login", `{"email":"user@example.com","password":"wrong"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLoginMissingFields(t *testing.T) {
	app := newAuthApp(&fakeGateway{}, session.NewStore())

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/v1/auth/login", `{"email":"","password":""}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRegisterStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"email exists", identity.ErrEmailExists, http.StatusConflict},
		{"weak password", identity.ErrWeakPassword, http.StatusBadRequest},
		{"invalid email", identity.ErrInvalidEmail, http.StatusBadRequest},
		{"rate limited", identity.ErrTooManyAttempts, http.StatusTooManyRequests},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := newAuthApp(&fakeGateway{err: tc.err}, session.NewStore())
			resp, err := app.Test(jsonRequest(http.MethodPost, "/api/v1/auth/register", `{"email":"user@example.com","password":"secret1"}`))
			require.NoError(t, err)
			assert.Equal(t, tc.want, resp.StatusCode)
		})
	}
}

func TestRegisterSuccess(t *testing.T) {
	gw := &fakeGateway{account: identity.Account{UserID: "uid-2", Email: "new@example.com"}}
	app := newAuthApp(gw, session.NewStore())

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/v1/auth/register", `{"email":"new@example.com","password":"secret1"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}
