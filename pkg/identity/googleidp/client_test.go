package googleidp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillmentor/backend/pkg/identity"
)

func newTestServer(t *testing.T, status int, body any) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NotEmpty(t, r.URL.Query().Get("key"))

		var req credentialsRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.True(t, req.ReturnSecureToken)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func errorBody(message string) map[string]any {
	return map[string]any{"error": map[string]any{"message": message}}
}

func TestSignInSuccess(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, map[string]any{
		"localId": "uid-123",
		"email":   "user@example.com",
	})
	c := New("test-key", srv.URL)

	acc, err := c.SignIn(context.Background(), "user@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "uid-123", acc.UserID)
	assert.Equal(t, "user@example.com", acc.Email)
}

func TestSignUpErrorMapping(t *testing.T) {
	cases := []struct {
		message string
		want    error
	}{
		{"EMAIL_EXISTS", identity.ErrEmailExists},
		{"WEAK_PASSWORD : Password should be at least 6 characters", identity.ErrWeakPassword},
		{"INVALID_EMAIL", identity.ErrInvalidEmail},
		{"INVALID_LOGIN_CREDENTIALS", identity.ErrInvalidCredentials},
		{"TOO_MANY_ATTEMPTS_TRY_LATER : Access to this account has been temporarily disabled", identity.ErrTooManyAttempts},
	}
	for _, tc := range cases {
		t.Run(tc.message, func(t *testing.T) {
			srv := newTestServer(t, http.StatusBadRequest, errorBody(tc.message))
			c := New("test-key", srv.URL)

			_, err := c.SignUp(context.Background(), "user@example.com", "secret1")
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestUnknownProviderErrorIsSurfaced(t *testing.T) {
	srv := newTestServer(t, http.StatusInternalServerError, errorBody("SOMETHING_ELSE"))
	c := New("test-key", srv.URL)

	_, err := c.SignIn(context.Background(), "user@example.com", "secret1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SOMETHING_ELSE")
	assert.NotErrorIs(t, err, identity.ErrInvalidCredentials)
}

func TestMissingAPIKey(t *testing.T) {
	c := New("", "")
	_, err := c.SignIn(context.Background(), "user@example.com", "secret1")
	assert.Error(t, err)
}

func TestMissingLocalID(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, map[string]any{"email": "user@example.com"})
	c := New("test-key", srv.URL)

	_, err := c.SignIn(context.Background(), "user@example.com", "secret1")
	assert.Error(t, err)
}
