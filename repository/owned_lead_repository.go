package repository

import (
	"context"
	"fmt"

	"github.com/amirphl/lead-desk/models"
	"github.com/amirphl/lead-desk/utils"
	"github.com/google/uuid"
)

// OwnedLeadRepositoryImpl wraps a LeadRepository so that every read and write
// carries an account_id predicate for a single owner. Caller-supplied AccountID
// values in filters are overwritten.
type OwnedLeadRepositoryImpl struct {
	leads   LeadRepository
	ownerID uuid.UUID
}

// NewOwnedLeadRepository returns a view of leads owned by ownerID
func NewOwnedLeadRepository(leads LeadRepository, ownerID uuid.UUID) OwnedLeadRepository {
	return &OwnedLeadRepositoryImpl{leads: leads, ownerID: ownerID}
}

func (r *OwnedLeadRepositoryImpl) scope(filter models.LeadFilter) models.LeadFilter {
	owner := r.ownerID
	filter.AccountID = &owner
	return filter
}

// Create stamps the owner on lead and persists it
func (r *OwnedLeadRepositoryImpl) Create(ctx context.Context, lead *models.Lead) error {
	lead.AccountID = r.ownerID
	lead.Account = nil
	return r.leads.Save(ctx, lead)
}

// ByID returns the owner's lead with id, or nil if there is none
func (r *OwnedLeadRepositoryImpl) ByID(ctx context.Context, id uuid.UUID) (*models.Lead, error) {
	rows, err := r.leads.ByFilter(ctx, r.scope(models.LeadFilter{ID: &id}), "", 1, 0)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (r *OwnedLeadRepositoryImpl) ByFilter(ctx context.Context, filter models.LeadFilter, orderBy string, limit, offset int) ([]*models.Lead, error) {
	return r.leads.ByFilter(ctx, r.scope(filter), orderBy, limit, offset)
}

func (r *OwnedLeadRepositoryImpl) Count(ctx context.Context, filter models.LeadFilter) (int64, error) {
	return r.leads.Count(ctx, r.scope(filter))
}

// Update applies fields to the owner's lead and returns the stored result.
// The write and the reload share one transaction. It returns nil when no owned lead has that id.
func (r *OwnedLeadRepositoryImpl) Update(ctx context.Context, id uuid.UUID, fields map[string]any) (lead *models.Lead, err error) {
	changes := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		if k == "id" || k == "account_id" || k == "created_at" {
			continue
		}
		changes[k] = v
	}
	changes["updated_at"] = utils.UTCNow()

	err = r.leads.InTransaction(ctx, func(txCtx context.Context) error {
		affected, err := r.leads.UpdateByFilter(txCtx, r.scope(models.LeadFilter{ID: &id}), changes)
		if err != nil {
			return err
		}
		if affected == 0 {
			return nil
		}

		lead, err = r.ByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("failed to reload lead after update: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lead, nil
}

// Delete removes the owner's lead with id and reports whether it existed
func (r *OwnedLeadRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	affected, err := r.leads.DeleteByFilter(ctx, r.scope(models.LeadFilter{ID: &id}))
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
