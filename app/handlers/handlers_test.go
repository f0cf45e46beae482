package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/amirphl/lead-desk/app/dto"
	businessflow "github.com/amirphl/lead-desk/business_flow"
	"github.com/amirphl/lead-desk/utils"
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testAccountID = uuid.MustParse("0b8f2a6e-6f1d-4c57-9d44-3f1b2c6a9e01")

// withAccount stands in for the session guard
func withAccount(accountID uuid.UUID) fiber.Handler {
	return func(c fiber.Ctx) error {
		c.Locals("account_id", accountID)
		return c.Next()
	}
}

func jsonRequest(method, target string, body any) *http.Request {
	var reader io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, dto.APIResponse) {
	t.Helper()
	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	var out dto.APIResponse
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp, out
}

// doJSON runs req and decodes a bare JSON object body
func doJSON(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return resp, out
}

func findCookie(resp *http.Response, name string) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

type fakeAuthFlow struct {
	registerErr error
	loginErr    error
	result      *dto.LoginResult
	loggedOut   []string
}

func (f *fakeAuthFlow) Register(ctx context.Context, req *dto.RegisterRequest, _ *businessflow.ClientMetadata) (*dto.AccountDTO, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return &dto.AccountDTO{ID: uuid.New(), Email: req.Email}, nil
}

func (f *fakeAuthFlow) Login(ctx context.Context, req *dto.LoginRequest, _ *businessflow.ClientMetadata) (*dto.LoginResult, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.result, nil
}

func (f *fakeAuthFlow) Logout(ctx context.Context, token string, _ *businessflow.ClientMetadata) error {
	f.loggedOut = append(f.loggedOut, token)
	return nil
}

func newAuthApp(flow businessflow.AuthFlow) *fiber.App {
	return newAuthAppWithTTL(flow, 24*time.Hour)
}

func newAuthAppWithTTL(flow businessflow.AuthFlow, ttl time.Duration) *fiber.App {
	app := fiber.New()
	h := NewAuthHandler(flow, true, ttl)
	app.Post("/api/auth/register", h.Register)
	app.Post("/api/auth/login", h.Login)
	app.Post("/api/auth/logout", h.Logout)
	return app
}

func TestRegister(t *testing.T) {
	valid := dto.RegisterRequest{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Password: "secret1"}

	tests := []struct {
		name       string
		flow       *fakeAuthFlow
		body       any
		wantStatus int
		wantCode   string
	}{
		{name: "created", flow: &fakeAuthFlow{}, body: valid, wantStatus: fiber.StatusCreated},
		{
			name:       "duplicate email",
			flow:       &fakeAuthFlow{registerErr: businessflow.NewBusinessError("EMAIL_EXISTS", "User already exists", businessflow.ErrEmailAlreadyExists)},
			body:       valid,
			wantStatus: fiber.StatusBadRequest,
			wantCode:   "EMAIL_EXISTS",
		},
		{
			name:       "missing fields",
			flow:       &fakeAuthFlow{},
			body:       dto.RegisterRequest{Email: "ada@example.com"},
			wantStatus: fiber.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name:       "blank first name",
			flow:       &fakeAuthFlow{},
			body:       dto.RegisterRequest{FirstName: "   ", LastName: "Lovelace", Email: "ada@example.com", Password: "secret1"},
			wantStatus: fiber.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name:       "short password",
			flow:       &fakeAuthFlow{},
			body:       dto.RegisterRequest{FirstName: "Ada", LastName: "L", Email: "ada@example.com", Password: "abc"},
			wantStatus: fiber.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := doRequest(t, newAuthApp(tt.flow), jsonRequest(http.MethodPost, "/api/auth/register", tt.body))
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.NotEmpty(t, body.Message)
			if tt.wantCode != "" {
				detail, ok := body.Error.(map[string]any)
				require.True(t, ok)
				assert.Equal(t, tt.wantCode, detail["code"])
			}
		})
	}
}

func TestRegister_ReportsJSONFieldNames(t *testing.T) {
	resp, body := doRequest(t, newAuthApp(&fakeAuthFlow{}), jsonRequest(http.MethodPost, "/api/auth/register",
		dto.RegisterRequest{LastName: "L", Email: "ada@example.com", Password: "secret1"}))

	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	detail := body.Error.(map[string]any)
	assert.Contains(t, detail["details"], "firstName is required")
}

func TestLogin_SetsSessionCookie(t *testing.T) {
	expires := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
	flow := &fakeAuthFlow{result: &dto.LoginResult{
		Account:   dto.AccountDTO{ID: testAccountID, Email: "ada@example.com"},
		Token:     "signed.session.token",
		ExpiresAt: expires,
	}}

	resp, body := doRequest(t, newAuthApp(flow), jsonRequest(http.MethodPost, "/api/auth/login",
		dto.LoginRequest{Email: "ada@example.com", Password: "secret1"}))

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, body.Success)

	cookie := findCookie(resp, utils.SessionCookieName)
	require.NotNil(t, cookie)
	assert.Equal(t, "signed.session.token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	assert.Equal(t, 86400, cookie.MaxAge)

	raw, _ := json.Marshal(body.Data)
	assert.NotContains(t, string(raw), "signed.session.token")
}

func TestLogin_CookieMaxAgeFollowsSessionTTL(t *testing.T) {
	flow := &fakeAuthFlow{result: &dto.LoginResult{
		Account:   dto.AccountDTO{ID: testAccountID},
		Token:     "short.lived.token",
		ExpiresAt: time.Now().Add(2 * time.Hour).UTC(),
	}}

	resp, _ := doRequest(t, newAuthAppWithTTL(flow, 2*time.Hour), jsonRequest(http.MethodPost, "/api/auth/login",
		dto.LoginRequest{Email: "ada@example.com", Password: "secret1"}))

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	cookie := findCookie(resp, utils.SessionCookieName)
	require.NotNil(t, cookie)
	assert.Equal(t, 7200, cookie.MaxAge)
}

func TestRegister_BodyErrorsHideDecoderInternals(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantDetails string
	}{
		{"wrong type", `{"firstName": 5, "lastName": "L", "email": "a@b.io", "password": "secret1"}`, "firstName has an invalid type"},
		{"malformed", `{"firstName": "Ada",`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp, body := doRequest(t, newAuthApp(&fakeAuthFlow{}), req)

			require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
			detail := body.Error.(map[string]any)
			assert.Equal(t, "INVALID_REQUEST", detail["code"])
			details, _ := detail["details"].(string)
			assert.NotContains(t, details, "RegisterRequest")
			assert.NotContains(t, details, "Go struct")
			if tt.wantDetails != "" {
				assert.Equal(t, tt.wantDetails, details)
			}
		})
	}
}

func TestLogin_InvalidCredentialsAreIndistinguishable(t *testing.T) {
	invalid := businessflow.NewBusinessError("INVALID_CREDENTIALS", "Invalid credentials", businessflow.ErrInvalidCredentials)
	app := newAuthApp(&fakeAuthFlow{loginErr: invalid})

	first, firstBody := doRequest(t, app, jsonRequest(http.MethodPost, "/api/auth/login",
		dto.LoginRequest{Email: "nobody@example.com", Password: "whatever"}))
	second, secondBody := doRequest(t, app, jsonRequest(http.MethodPost, "/api/auth/login",
		dto.LoginRequest{Email: "ada@example.com", Password: "wrong-password"}))

	assert.Equal(t, fiber.StatusBadRequest, first.StatusCode)
	assert.Equal(t, first.StatusCode, second.StatusCode)
	assert.Equal(t, firstBody, secondBody)
	assert.Nil(t, findCookie(first, utils.SessionCookieName))
}

func TestLogout_ClearsCookie(t *testing.T) {
	flow := &fakeAuthFlow{}
	app := newAuthApp(flow)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: utils.SessionCookieName, Value: "old-token"})
	resp, body := doRequest(t, app, req)

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, body.Success)
	assert.Equal(t, []string{"old-token"}, flow.loggedOut)

	cookie := findCookie(resp, utils.SessionCookieName)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.True(t, cookie.Expires.Before(time.Now()))

	resp, _ = doRequest(t, app, httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

type fakeProfileFlow struct {
	account *dto.AccountDTO
	err     error
	edited  *dto.EditProfileRequest
}

func (f *fakeProfileFlow) GetCurrentUser(ctx context.Context, accountID uuid.UUID) (*dto.AccountDTO, error) {
	return f.account, f.err
}

func (f *fakeProfileFlow) EditProfile(ctx context.Context, accountID uuid.UUID, req *dto.EditProfileRequest) (*dto.AccountDTO, error) {
	f.edited = req
	return f.account, f.err
}

func TestProfileHandler(t *testing.T) {
	notFound := businessflow.NewBusinessError("USER_NOT_FOUND", "User not found", businessflow.ErrAccountNotFound)

	newApp := func(flow businessflow.ProfileFlow, guarded bool) *fiber.App {
		app := fiber.New()
		h := NewProfileHandler(flow)
		if guarded {
			app.Use(withAccount(testAccountID))
		}
		app.Get("/api/auth/me", h.Me)
		app.Put("/api/auth/edit", h.Edit)
		return app
	}

	t.Run("me", func(t *testing.T) {
		flow := &fakeProfileFlow{account: &dto.AccountDTO{ID: testAccountID, Email: "ada@example.com"}}
		resp, body := doJSON(t, newApp(flow, true), httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, testAccountID.String(), body["id"])
		assert.Equal(t, "ada@example.com", body["email"])
		assert.NotContains(t, body, "password_hash")
		assert.NotContains(t, body, "data")
	})

	t.Run("me without identity", func(t *testing.T) {
		resp, _ := doRequest(t, newApp(&fakeProfileFlow{}, false), httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("me for vanished account", func(t *testing.T) {
		resp, _ := doRequest(t, newApp(&fakeProfileFlow{err: notFound}, true), httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("edit", func(t *testing.T) {
		flow := &fakeProfileFlow{account: &dto.AccountDTO{ID: testAccountID, FirstName: "Augusta"}}
		resp, body := doJSON(t, newApp(flow, true), jsonRequest(http.MethodPut, "/api/auth/edit", map[string]any{"firstName": "Augusta"}))
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, "Augusta", body["first_name"])
		require.NotNil(t, flow.edited)
		assert.Equal(t, "Augusta", *flow.edited.FirstName)
		assert.Nil(t, flow.edited.Email)
	})

	t.Run("edit ignores empty fields", func(t *testing.T) {
		flow := &fakeProfileFlow{account: &dto.AccountDTO{ID: testAccountID, FirstName: "Ada"}}
		resp, _ := doJSON(t, newApp(flow, true), jsonRequest(http.MethodPut, "/api/auth/edit", map[string]any{
			"firstName": "Ada",
			"lastName":  "  ",
			"email":     "",
			"password":  "",
		}))
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.NotNil(t, flow.edited)
		assert.Equal(t, "Ada", *flow.edited.FirstName)
		assert.Nil(t, flow.edited.LastName)
		assert.Nil(t, flow.edited.Email)
		assert.Nil(t, flow.edited.Password)
	})

	t.Run("edit with taken email", func(t *testing.T) {
		taken := businessflow.NewBusinessError("EMAIL_EXISTS", "Email already in use", businessflow.ErrEmailAlreadyExists)
		resp, _ := doRequest(t, newApp(&fakeProfileFlow{err: taken}, true), jsonRequest(http.MethodPut, "/api/auth/edit", map[string]any{"email": "taken@example.com"}))
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("edit with malformed email", func(t *testing.T) {
		resp, _ := doRequest(t, newApp(&fakeProfileFlow{}, true), jsonRequest(http.MethodPut, "/api/auth/edit", map[string]any{"email": "nope"}))
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func extractJSONField(t *testing.T, raw []byte, field string) string {
	t.Helper()
	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &fields))
	value, ok := fields[field]
	require.True(t, ok, "missing field %s", field)
	return string(value)
}
