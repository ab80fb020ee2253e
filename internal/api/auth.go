package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const AuthTokenHeader = "X-Auth-Token"

var (
	ErrUnauthorized     = errors.New("unauthorized")
	ErrAuthorizationAPI = errors.New("authorization service error")
)

type userResolver interface {
	ResolveUser(ctx context.Context, token string) (string, error)
}

type userIDKey struct{}

func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

func UserIDFrom(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey{}).(string)
	return userID, ok && userID != ""
}

// Authenticate resolves the caller from the auth token header and stores
// the user id in the request context.
func (a *API) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get(AuthTokenHeader)
		if token == "" {
			http.Error(w, "missing "+AuthTokenHeader, http.StatusUnauthorized)
			return
		}
		userID, err := a.users.ResolveUser(r.Context(), token)
		if err != nil {
			if !errors.Is(err, ErrUnauthorized) {
				slog.ErrorContext(r.Context(), "Error resolving user", "error", err)
			}
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
	})
}

type AuthorizationConfig struct {
	BaseURL string
	Timeout time.Duration
}

// AuthorizationClient asks the authorization service who owns a token.
type AuthorizationClient struct {
	baseURL string
	client  *http.Client
}

func NewAuthorizationClient(cfg AuthorizationConfig) *AuthorizationClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &AuthorizationClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

type meResponse struct {
	ID string `json:"id"`
}

func (c *AuthorizationClient) ResolveUser(ctx context.Context, token string) (string, error) {
	const fn = "AuthorizationClient:ResolveUser"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/me", nil)
	if err != nil {
		return "", fmt.Errorf("%s:%w:%w", fn, ErrAuthorizationAPI, err)
	}
	req.Header.Set(AuthTokenHeader, token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s:%w:%w", fn, ErrAuthorizationAPI, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return "", fmt.Errorf("%s:%w", fn, ErrUnauthorized)
	case resp.StatusCode != http.StatusOK:
		return "", fmt.Errorf("%s:%w: status %d", fn, ErrAuthorizationAPI, resp.StatusCode)
	}

	var me meResponse
	if err := json.NewDecoder(resp.Body).Decode(&me); err != nil {
		return "", fmt.Errorf("%s:%w:%w", fn, ErrAuthorizationAPI, err)
	}
	if me.ID == "" {
		return "", fmt.Errorf("%s:%w: empty user id", fn, ErrUnauthorized)
	}
	return me.ID, nil
}
