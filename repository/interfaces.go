// Package repository provides data access layer implementations and interfaces for database operations
package repository

import (
	"context"

	"github.com/amirphl/lead-desk/models"
	"github.com/google/uuid"
)

// RepositoryContext key for transaction in context
type contextKey string

const TxContextKey contextKey = "tx"

type Repository[T any, F any] interface {
	ByID(ctx context.Context, id uuid.UUID) (*T, error)
	ByFilter(ctx context.Context, filter F, orderBy string, limit, offset int) ([]*T, error)
	Save(ctx context.Context, entity *T) error
	Count(ctx context.Context, filter F) (int64, error)
	Exists(ctx context.Context, filter F) (bool, error)
}

// AccountRepository defines operations for accounts
type AccountRepository interface {
	Repository[models.Account, models.AccountFilter]
	ByEmail(ctx context.Context, email string) (*models.Account, error)
	Update(ctx context.Context, account *models.Account) error
}

// LeadRepository defines operations for leads across all owners.
// Callers serving a request should go through OwnedLeadRepository instead.
type LeadRepository interface {
	Repository[models.Lead, models.LeadFilter]
	UpdateByFilter(ctx context.Context, filter models.LeadFilter, fields map[string]any) (int64, error)
	DeleteByFilter(ctx context.Context, filter models.LeadFilter) (int64, error)
	InTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// OwnedLeadRepository is a LeadRepository view restricted to a single owning account
type OwnedLeadRepository interface {
	Create(ctx context.Context, lead *models.Lead) error
	ByID(ctx context.Context, id uuid.UUID) (*models.Lead, error)
	ByFilter(ctx context.Context, filter models.LeadFilter, orderBy string, limit, offset int) ([]*models.Lead, error)
	Count(ctx context.Context, filter models.LeadFilter) (int64, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*models.Lead, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
