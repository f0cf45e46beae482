package businessflow

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirphl/lead-desk/app/dto"
	"github.com/amirphl/lead-desk/app/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type recordingDenylist struct {
	revoked map[string]time.Time
	err     error
}

func (d *recordingDenylist) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if d.err != nil {
		return d.err
	}
	if d.revoked == nil {
		d.revoked = make(map[string]time.Time)
	}
	d.revoked[tokenID] = expiresAt
	return nil
}

func (d *recordingDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	_, ok := d.revoked[tokenID]
	return ok, nil
}

func newTestTokenService(t *testing.T) services.TokenService {
	t.Helper()
	ts, err := services.NewTokenService(24*time.Hour, "lead-desk", "lead-desk-api", false, "", "", "test-secret-key-for-jwt-signing-32-chars")
	require.NoError(t, err)
	return ts
}

func newTestAuthFlow(t *testing.T) (AuthFlow, *memAccountRepository, services.TokenService, *recordingDenylist) {
	t.Helper()
	accounts := newMemAccountRepository()
	tokens := newTestTokenService(t)
	denylist := &recordingDenylist{}
	return NewAuthFlow(accounts, tokens, denylist, bcrypt.MinCost), accounts, tokens, denylist
}

func registerRequest(email string) *dto.RegisterRequest {
	return &dto.RegisterRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     email,
		Password:  "analytical-engine",
	}
}

func TestAuthFlowRegister(t *testing.T) {
	ctx := context.Background()
	flow, accounts, _, _ := newTestAuthFlow(t)

	account, err := flow.Register(ctx, registerRequest(" Ada@Example.com "), nil)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", account.Email)
	assert.Equal(t, "Ada", account.FirstName)

	stored, err := accounts.ByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "analytical-engine", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("analytical-engine")))

	t.Run("DuplicateEmail", func(t *testing.T) {
		_, err := flow.Register(ctx, registerRequest("ada@example.com"), nil)
		assert.True(t, IsEmailAlreadyExists(err))
	})

	t.Run("DuplicateEmailDifferentCase", func(t *testing.T) {
		_, err := flow.Register(ctx, registerRequest("ADA@EXAMPLE.COM"), nil)
		assert.True(t, IsEmailAlreadyExists(err))
	})
}

func TestAuthFlowLogin(t *testing.T) {
	ctx := context.Background()
	flow, _, tokens, _ := newTestAuthFlow(t)

	registered, err := flow.Register(ctx, registerRequest("ada@example.com"), nil)
	require.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		result, err := flow.Login(ctx, &dto.LoginRequest{Email: "ADA@example.com", Password: "analytical-engine"}, nil)
		require.NoError(t, err)
		assert.Equal(t, registered.ID, result.Account.ID)
		assert.NotEmpty(t, result.Token)

		claims, err := tokens.ValidateToken(result.Token)
		require.NoError(t, err)
		assert.Equal(t, registered.ID, claims.AccountID)
		assert.WithinDuration(t, time.Now().Add(24*time.Hour), result.ExpiresAt, time.Minute)
	})

	t.Run("UnknownEmailAndWrongPasswordLookTheSame", func(t *testing.T) {
		_, wrongPassword := flow.Login(ctx, &dto.LoginRequest{Email: "ada@example.com", Password: "difference-engine"}, nil)
		_, unknownEmail := flow.Login(ctx, &dto.LoginRequest{Email: "nobody@example.com", Password: "analytical-engine"}, nil)

		require.Error(t, wrongPassword)
		require.Error(t, unknownEmail)
		assert.True(t, IsInvalidCredentials(wrongPassword))
		assert.True(t, IsInvalidCredentials(unknownEmail))
		assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())

		var a, b *BusinessError
		require.True(t, errors.As(wrongPassword, &a))
		require.True(t, errors.As(unknownEmail, &b))
		assert.Equal(t, a.Code, b.Code)
		assert.Equal(t, a.Message, b.Message)
	})
}

func TestAuthFlowLogout(t *testing.T) {
	ctx := context.Background()
	flow, _, tokens, denylist := newTestAuthFlow(t)

	registered, err := flow.Register(ctx, registerRequest("ada@example.com"), nil)
	require.NoError(t, err)

	t.Run("WithoutToken", func(t *testing.T) {
		assert.NoError(t, flow.Logout(ctx, "", nil))
		assert.Empty(t, denylist.revoked)
	})

	t.Run("WithGarbageToken", func(t *testing.T) {
		assert.NoError(t, flow.Logout(ctx, "not-a-token", nil))
		assert.Empty(t, denylist.revoked)
	})

	t.Run("RevokesValidToken", func(t *testing.T) {
		token, claims, err := tokens.GenerateToken(registered.ID)
		require.NoError(t, err)

		require.NoError(t, flow.Logout(ctx, token, nil))
		assert.Contains(t, denylist.revoked, claims.TokenID)
		assert.True(t, claims.ExpiresAt.Equal(denylist.revoked[claims.TokenID]))
	})

	t.Run("DenylistFailureStillSucceeds", func(t *testing.T) {
		denylist.err = errors.New("redis down")
		defer func() { denylist.err = nil }()

		token, _, err := tokens.GenerateToken(registered.ID)
		require.NoError(t, err)
		assert.NoError(t, flow.Logout(ctx, token, nil))
	})
}
