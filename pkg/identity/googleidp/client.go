package googleidp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/skillmentor/backend/pkg/identity"
)

// Client talks to the Google identity toolkit REST API
// (accounts:signUp / accounts:signInWithPassword).
type Client struct {
	APIKey  string
	BaseURL string
	httpDo  *http.Client
}

func New(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = "https://identitytoolkit.googleapis.com/v1"
	}
	return &Client{
		APIKey:  apiKey,
		BaseURL: baseURL,
		httpDo: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type credentialsRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type accountResponse struct {
	LocalID string `json:"localId"`
	Email   string `json:"email"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) SignUp(ctx context.Context, email, password string) (identity.Account, error) {
	return c.post(ctx, "accounts:signUp", email, password)
}

func (c *Client) SignIn(ctx context.Context, email, password string) (identity.Account, error) {
	return c.post(ctx, "accounts:signInWithPassword", email, password)
}

func (c *Client) post(ctx context.Context, action, email, password string) (identity.Account, error) {
	if c.APIKey == "" {
		return identity.Account{}, errors.New("identity api key is empty")
	}
	body, err := json.Marshal(credentialsRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	})
	if err != nil {
		return identity.Account{}, err
	}
	endpoint := fmt.Sprintf("%s/%s?key=%s", c.BaseURL, action, c.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return identity.Account{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpDo.Do(req)
	if err != nil {
		return identity.Account{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var er errorResponse
		_ = json.NewDecoder(resp.Body).Decode(&er)
		return identity.Account{}, mapError(resp.StatusCode, er.Error.Message)
	}
	var acc accountResponse
	if err := json.NewDecoder(resp.Body).Decode(&acc); err != nil {
		return identity.Account{}, err
	}
	if acc.LocalID == "" {
		return identity.Account{}, errors.New("identity provider returned no user id")
	}
	return identity.Account{UserID: acc.LocalID, Email: acc.Email}, nil
}

// mapError translates the provider's machine-readable reason strings into
// typed errors. The provider appends suffixes to some codes (e.g.
// "WEAK_PASSWORD : Password should be..."), hence substring matching.
// This is the only place that knows the provider's error text format.
func mapError(status int, message string) error {
	switch {
	case strings.Contains(message, "EMAIL_EXISTS"):
		return identity.ErrEmailExists
	case strings.Contains(message, "WEAK_PASSWORD"):
		return identity.ErrWeakPassword
	case strings.Contains(message, "INVALID_EMAIL"):
		return identity.ErrInvalidEmail
	case strings.Contains(message, "INVALID_LOGIN_CREDENTIALS"):
		return identity.ErrInvalidCredentials
	case strings.Contains(message, "TOO_MANY_ATTEMPTS_TRY_LATER"):
		return identity.ErrTooManyAttempts
	}
	if message == "" {
		return fmt.Errorf("identity provider http %d", status)
	}
	return fmt.Errorf("identity provider http %d: %s", status, message)
}
