package businessflow

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/amirphl/lead-desk/app/dto"
	"github.com/amirphl/lead-desk/app/services"
	"github.com/amirphl/lead-desk/models"
	"github.com/amirphl/lead-desk/repository"
	"golang.org/x/crypto/bcrypt"
)

// AuthFlow handles registration, login and logout
type AuthFlow interface {
	Register(ctx context.Context, request *dto.RegisterRequest, metadata *ClientMetadata) (*dto.AccountDTO, error)
	Login(ctx context.Context, request *dto.LoginRequest, metadata *ClientMetadata) (*dto.LoginResult, error)
	Logout(ctx context.Context, token string, metadata *ClientMetadata) error
}

// AuthFlowImpl implements the authentication business flow
type AuthFlowImpl struct {
	accountRepo  repository.AccountRepository
	tokenService services.TokenService
	denylist     services.TokenDenylist
	bcryptCost   int
	dummyHash    []byte
}

// NewAuthFlow creates a new auth flow instance
func NewAuthFlow(
	accountRepo repository.AccountRepository,
	tokenService services.TokenService,
	denylist services.TokenDenylist,
	bcryptCost int,
) AuthFlow {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	if denylist == nil {
		denylist = services.NewNoopTokenDenylist()
	}

	// Compared against on unknown emails so both failure paths cost one bcrypt comparison
	dummyHash, err := bcrypt.GenerateFromPassword([]byte("lead-desk-unknown-account"), bcryptCost)
	if err != nil {
		log.Printf("failed to prepare dummy password hash: %v", err)
	}

	return &AuthFlowImpl{
		accountRepo:  accountRepo,
		tokenService: tokenService,
		denylist:     denylist,
		bcryptCost:   bcryptCost,
		dummyHash:    dummyHash,
	}
}

// NormalizeEmail lowercases and trims an email so the unique index is case-insensitive
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new account with a bcrypt-hashed password
func (f *AuthFlowImpl) Register(ctx context.Context, request *dto.RegisterRequest, metadata *ClientMetadata) (account *dto.AccountDTO, err error) {
	defer func() { recordAuthEvent("register", err) }()

	email := NormalizeEmail(request.Email)

	existing, err := f.accountRepo.ByEmail(ctx, email)
	if err != nil {
		return nil, NewBusinessError("REGISTER_FAILED", "Registration failed", err)
	}
	if existing != nil {
		return nil, NewBusinessError("EMAIL_EXISTS", "User already exists", ErrEmailAlreadyExists)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(request.Password), f.bcryptCost)
	if err != nil {
		return nil, NewBusinessError("REGISTER_FAILED", "Registration failed", fmt.Errorf("%w: %v", ErrPasswordHashFailure, err))
	}

	model := &models.Account{
		FirstName:    strings.TrimSpace(request.FirstName),
		LastName:     strings.TrimSpace(request.LastName),
		Email:        email,
		PasswordHash: string(hash),
	}

	if err := f.accountRepo.Save(ctx, model); err != nil {
		// A concurrent registration may win the race past the pre-check
		if repository.IsDuplicateKey(err) {
			return nil, NewBusinessError("EMAIL_EXISTS", "User already exists", ErrEmailAlreadyExists)
		}
		return nil, NewBusinessError("REGISTER_FAILED", "Registration failed", err)
	}

	log.Printf("account registered: id=%s %s", model.ID, metadata)

	result := ToAccountDTO(*model)
	return &result, nil
}

// Login verifies credentials and issues a session token.
// Unknown email and wrong password produce the same error.
func (f *AuthFlowImpl) Login(ctx context.Context, request *dto.LoginRequest, metadata *ClientMetadata) (result *dto.LoginResult, err error) {
	defer func() { recordAuthEvent("login", err) }()

	account, err := f.accountRepo.ByEmail(ctx, NormalizeEmail(request.Email))
	if err != nil {
		return nil, NewBusinessError("LOGIN_FAILED", "Login failed", err)
	}

	if account == nil {
		if f.dummyHash != nil {
			_ = bcrypt.CompareHashAndPassword(f.dummyHash, []byte(request.Password))
		}
		return nil, NewBusinessError("INVALID_CREDENTIALS", "Invalid credentials", ErrInvalidCredentials)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(request.Password)); err != nil {
		log.Printf("login rejected: account=%s %s", account.ID, metadata)
		return nil, NewBusinessError("INVALID_CREDENTIALS", "Invalid credentials", ErrInvalidCredentials)
	}

	token, claims, err := f.tokenService.GenerateToken(account.ID)
	if err != nil {
		return nil, NewBusinessError("LOGIN_FAILED", "Login failed", err)
	}

	return &dto.LoginResult{
		Account:   ToAccountDTO(*account),
		Token:     token,
		ExpiresAt: claims.ExpiresAt,
	}, nil
}

// Logout always succeeds. When a denylist is configured and token is still valid,
// its ID is revoked until the token would have expired anyway.
func (f *AuthFlowImpl) Logout(ctx context.Context, token string, metadata *ClientMetadata) error {
	defer recordAuthEvent("logout", nil)

	if token == "" {
		return nil
	}

	claims, err := f.tokenService.ValidateToken(token)
	if err != nil {
		return nil
	}

	if err := f.denylist.Revoke(ctx, claims.TokenID, claims.ExpiresAt); err != nil {
		log.Printf("failed to revoke session %s for account %s: %v", claims.TokenID, claims.AccountID, err)
	}
	return nil
}
