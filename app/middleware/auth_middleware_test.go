package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirphl/lead-desk/app/dto"
	"github.com/amirphl/lead-desk/app/services"
	"github.com/amirphl/lead-desk/utils"
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-test-secret-key-0123456789"

type stubDenylist struct {
	revoked map[string]bool
	err     error
}

func (d *stubDenylist) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	d.revoked[tokenID] = true
	return nil
}

func (d *stubDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if d.err != nil {
		return false, d.err
	}
	return d.revoked[tokenID], nil
}

// stubTokenService rejects every token with a fixed error
type stubTokenService struct {
	err error
}

func (s stubTokenService) GenerateToken(uuid.UUID) (string, *services.TokenClaims, error) {
	return "", nil, s.err
}

func (s stubTokenService) ValidateToken(string) (*services.TokenClaims, error) {
	return nil, s.err
}

func (s stubTokenService) TTL() time.Duration { return time.Hour }

func newGuardedApp(t *testing.T, tokens services.TokenService, denylist services.TokenDenylist) *fiber.App {
	t.Helper()
	app := fiber.New()
	guard := NewAuthMiddleware(tokens, denylist)
	app.Get("/protected", guard.Authenticate(), func(c fiber.Ctx) error {
		accountID, ok := GetAccountIDFromContext(c)
		if !ok {
			return c.SendStatus(fiber.StatusTeapot)
		}
		claims, ok := GetTokenClaimsFromContext(c)
		if !ok || claims.AccountID != accountID {
			return c.SendStatus(fiber.StatusTeapot)
		}
		return c.SendString(accountID.String())
	})
	return app
}

func doGet(t *testing.T, app *fiber.App, token string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: utils.SessionCookieName, Value: token})
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func decodeMessage(t *testing.T, body string) dto.APIResponse {
	t.Helper()
	var out dto.APIResponse
	require.NoError(t, json.Unmarshal([]byte(body), &out))
	return out
}

func TestAuthenticate_ValidCookie(t *testing.T) {
	tokens, err := services.NewTokenService(time.Hour, "lead-desk", "lead-desk-api", false, "", "", testSecret)
	require.NoError(t, err)

	accountID := uuid.New()
	token, _, err := tokens.GenerateToken(accountID)
	require.NoError(t, err)

	app := newGuardedApp(t, tokens, nil)
	status, body := doGet(t, app, token)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, accountID.String(), body)
}

func TestAuthenticate_MissingCookie(t *testing.T) {
	tokens, err := services.NewTokenService(time.Hour, "lead-desk", "", false, "", "", testSecret)
	require.NoError(t, err)

	app := newGuardedApp(t, tokens, nil)
	status, body := doGet(t, app, "")

	assert.Equal(t, fiber.StatusUnauthorized, status)
	resp := decodeMessage(t, body)
	assert.False(t, resp.Success)
	assert.Equal(t, MessageNoToken, resp.Message)
}

func TestAuthenticate_RejectedTokens(t *testing.T) {
	tokens, err := services.NewTokenService(time.Hour, "lead-desk", "", false, "", "", testSecret)
	require.NoError(t, err)
	otherTokens, err := services.NewTokenService(time.Hour, "lead-desk", "", false, "", "", "a-completely-different-secret-value")
	require.NoError(t, err)

	foreign, _, err := otherTokens.GenerateToken(uuid.New())
	require.NoError(t, err)

	tests := []struct {
		name   string
		tokens services.TokenService
		token  string
	}{
		{name: "garbage", tokens: tokens, token: "not-a-jwt"},
		{name: "wrong signing key", tokens: tokens, token: foreign},
		{name: "expired", tokens: stubTokenService{err: services.ErrTokenExpired}, token: "anything"},
		{name: "invalid", tokens: stubTokenService{err: services.ErrTokenInvalid}, token: "anything"},
		{name: "unclassified", tokens: stubTokenService{err: errors.New("boom")}, token: "anything"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newGuardedApp(t, tt.tokens, nil)
			status, body := doGet(t, app, tt.token)

			assert.Equal(t, fiber.StatusUnauthorized, status)
			assert.Equal(t, MessageTokenFailed, decodeMessage(t, body).Message)
		})
	}
}

func TestAuthenticate_RevokedToken(t *testing.T) {
	tokens, err := services.NewTokenService(time.Hour, "lead-desk", "", false, "", "", testSecret)
	require.NoError(t, err)

	token, claims, err := tokens.GenerateToken(uuid.New())
	require.NoError(t, err)

	denylist := &stubDenylist{revoked: map[string]bool{}}
	app := newGuardedApp(t, tokens, denylist)

	status, _ := doGet(t, app, token)
	require.Equal(t, fiber.StatusOK, status)

	require.NoError(t, denylist.Revoke(context.Background(), claims.TokenID, claims.ExpiresAt))

	status, body := doGet(t, app, token)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, MessageTokenFailed, decodeMessage(t, body).Message)
}

func TestAuthenticate_DenylistUnavailable(t *testing.T) {
	tokens, err := services.NewTokenService(time.Hour, "lead-desk", "", false, "", "", testSecret)
	require.NoError(t, err)

	token, _, err := tokens.GenerateToken(uuid.New())
	require.NoError(t, err)

	app := newGuardedApp(t, tokens, &stubDenylist{err: errors.New("redis: connection refused")})
	status, body := doGet(t, app, token)

	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, MessageTokenFailed, decodeMessage(t, body).Message)
}

func TestGetAccountIDFromContext_Missing(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c fiber.Ctx) error {
		_, ok := GetAccountIDFromContext(c)
		assert.False(t, ok)
		_, ok = GetTokenClaimsFromContext(c)
		assert.False(t, ok)
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}
