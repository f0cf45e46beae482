package businessflow

import (
	"context"
	"fmt"
	"strings"

	"github.com/amirphl/lead-desk/app/dto"
	"github.com/amirphl/lead-desk/repository"
	"github.com/amirphl/lead-desk/utils"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ProfileFlow exposes and edits the authenticated account
type ProfileFlow interface {
	GetCurrentUser(ctx context.Context, accountID uuid.UUID) (*dto.AccountDTO, error)
	EditProfile(ctx context.Context, accountID uuid.UUID, request *dto.EditProfileRequest) (*dto.AccountDTO, error)
}

// ProfileFlowImpl implements ProfileFlow
type ProfileFlowImpl struct {
	accountRepo repository.AccountRepository
	bcryptCost  int
}

// NewProfileFlow creates a new profile flow instance
func NewProfileFlow(accountRepo repository.AccountRepository, bcryptCost int) ProfileFlow {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &ProfileFlowImpl{
		accountRepo: accountRepo,
		bcryptCost:  bcryptCost,
	}
}

// GetCurrentUser returns the account behind the session
func (f *ProfileFlowImpl) GetCurrentUser(ctx context.Context, accountID uuid.UUID) (*dto.AccountDTO, error) {
	account, err := f.accountRepo.ByID(ctx, accountID)
	if err != nil {
		return nil, NewBusinessError("GET_PROFILE_FAILED", "Failed to get profile", err)
	}
	if account == nil {
		return nil, NewBusinessError("USER_NOT_FOUND", "User not found", ErrAccountNotFound)
	}

	result := ToAccountDTO(*account)
	return &result, nil
}

// EditProfile changes only the supplied, non-empty fields. A new password is re-hashed.
func (f *ProfileFlowImpl) EditProfile(ctx context.Context, accountID uuid.UUID, request *dto.EditProfileRequest) (result *dto.AccountDTO, err error) {
	defer func() { recordAuthEvent("edit_profile", err) }()

	account, err := f.accountRepo.ByID(ctx, accountID)
	if err != nil {
		return nil, NewBusinessError("EDIT_PROFILE_FAILED", "Failed to update profile", err)
	}
	if account == nil {
		return nil, NewBusinessError("USER_NOT_FOUND", "User not found", ErrAccountNotFound)
	}

	if v := trimmed(request.FirstName); v != "" {
		account.FirstName = v
	}
	if v := trimmed(request.LastName); v != "" {
		account.LastName = v
	}

	if v := NormalizeEmail(utils.Deref(request.Email)); v != "" && v != account.Email {
		other, err := f.accountRepo.ByEmail(ctx, v)
		if err != nil {
			return nil, NewBusinessError("EDIT_PROFILE_FAILED", "Failed to update profile", err)
		}
		if other != nil && other.ID != account.ID {
			return nil, NewBusinessError("EMAIL_EXISTS", "Email already in use", ErrEmailAlreadyExists)
		}
		account.Email = v
	}

	if request.Password != nil && *request.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*request.Password), f.bcryptCost)
		if err != nil {
			return nil, NewBusinessError("EDIT_PROFILE_FAILED", "Failed to update profile", fmt.Errorf("%w: %v", ErrPasswordHashFailure, err))
		}
		account.PasswordHash = string(hash)
	}

	account.UpdatedAt = utils.UTCNow()

	if err := f.accountRepo.Update(ctx, account); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, NewBusinessError("EMAIL_EXISTS", "Email already in use", ErrEmailAlreadyExists)
		}
		return nil, NewBusinessError("EDIT_PROFILE_FAILED", "Failed to update profile", err)
	}

	out := ToAccountDTO(*account)
	return &out, nil
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
