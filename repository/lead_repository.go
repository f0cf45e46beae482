package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/amirphl/lead-desk/models"
	"gorm.io/gorm"
)

// DefaultLeadOrder lists newest leads first with a stable tie-break
const DefaultLeadOrder = "created_at DESC, id DESC"

// LeadRepositoryImpl implements LeadRepository interface
type LeadRepositoryImpl struct {
	*BaseRepository[models.Lead, models.LeadFilter]
}

// NewLeadRepository creates a new lead repository
func NewLeadRepository(db *gorm.DB) LeadRepository {
	return &LeadRepositoryImpl{
		BaseRepository: NewBaseRepository[models.Lead, models.LeadFilter](db),
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching value anywhere, with wildcards in value taken literally
func containsPattern(value string) string {
	return "%" + likeEscaper.Replace(value) + "%"
}

// applyFilter applies filter criteria to a GORM query
func (r *LeadRepositoryImpl) applyFilter(query *gorm.DB, filter models.LeadFilter) *gorm.DB {
	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}
	if filter.AccountID != nil {
		query = query.Where("account_id = ?", *filter.AccountID)
	}

	if filter.Email != nil {
		query = query.Where(`email ILIKE ? ESCAPE '\'`, containsPattern(*filter.Email))
	}
	if filter.Company != nil {
		query = query.Where(`company ILIKE ? ESCAPE '\'`, containsPattern(*filter.Company))
	}
	if filter.City != nil {
		query = query.Where(`city ILIKE ? ESCAPE '\'`, containsPattern(*filter.City))
	}

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Source != nil {
		query = query.Where("source = ?", *filter.Source)
	}

	if filter.Score != nil {
		query = query.Where("score = ?", *filter.Score)
	}
	if filter.ScoreGreaterThan != nil {
		query = query.Where("score > ?", *filter.ScoreGreaterThan)
	}
	if filter.ScoreLessThan != nil {
		query = query.Where("score < ?", *filter.ScoreLessThan)
	}

	if filter.LeadValue != nil {
		query = query.Where("lead_value = ?", *filter.LeadValue)
	}
	if filter.LeadValueGreaterThan != nil {
		query = query.Where("lead_value > ?", *filter.LeadValueGreaterThan)
	}
	if filter.LeadValueLessThan != nil {
		query = query.Where("lead_value < ?", *filter.LeadValueLessThan)
	}

	if filter.IsQualified != nil {
		query = query.Where("is_qualified = ?", *filter.IsQualified)
	}

	// Date bounds are inclusive
	if filter.CreatedAfter != nil {
		query = query.Where("created_at >= ?", *filter.CreatedAfter)
	}
	if filter.CreatedBefore != nil {
		query = query.Where("created_at <= ?", *filter.CreatedBefore)
	}
	if filter.LastActivityAfter != nil {
		query = query.Where("last_activity_at >= ?", *filter.LastActivityAfter)
	}
	if filter.LastActivityBefore != nil {
		query = query.Where("last_activity_at <= ?", *filter.LastActivityBefore)
	}

	return query
}

// ByFilter retrieves leads based on filter criteria
func (r *LeadRepositoryImpl) ByFilter(ctx context.Context, filter models.LeadFilter, orderBy string, limit, offset int) ([]*models.Lead, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.Lead{}), filter)

	if orderBy == "" {
		orderBy = DefaultLeadOrder
	}
	query = query.Order(orderBy)

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var rows []*models.Lead
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	return rows, nil
}

// Count returns the number of leads matching the filter
func (r *LeadRepositoryImpl) Count(ctx context.Context, filter models.LeadFilter) (int64, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.Lead{}), filter)

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count leads: %w", err)
	}
	return count, nil
}

// Exists checks if any lead matching the filter exists
func (r *LeadRepositoryImpl) Exists(ctx context.Context, filter models.LeadFilter) (bool, error) {
	c, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}
	return c > 0, nil
}

// UpdateByFilter sets fields on every lead matching filter and returns the number of rows touched.
// An empty filter is rejected so a bug upstream cannot rewrite the whole table.
func (r *LeadRepositoryImpl) UpdateByFilter(ctx context.Context, filter models.LeadFilter, fields map[string]any) (affected int64, err error) {
	if filter.ID == nil && filter.AccountID == nil {
		return 0, fmt.Errorf("refusing to update leads without id or account_id predicate")
	}

	db, shouldCommit, err := r.getDBForWrite(ctx)
	if err != nil {
		return 0, err
	}

	if shouldCommit {
		defer func() {
			if err != nil {
				db.Rollback()
			} else {
				err = db.Commit().Error
			}
		}()
	}

	res := r.applyFilter(db.Model(&models.Lead{}), filter).Updates(fields)
	if err = res.Error; err != nil {
		return 0, fmt.Errorf("failed to update leads: %w", translateError(err))
	}
	return res.RowsAffected, nil
}

// InTransaction runs fn in a single database transaction carried by the context
func (r *LeadRepositoryImpl) InTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return WithTransaction(ctx, r.DB, fn)
}

// DeleteByFilter permanently removes every lead matching filter
func (r *LeadRepositoryImpl) DeleteByFilter(ctx context.Context, filter models.LeadFilter) (affected int64, err error) {
	if filter.ID == nil && filter.AccountID == nil {
		return 0, fmt.Errorf("refusing to delete leads without id or account_id predicate")
	}

	db, shouldCommit, err := r.getDBForWrite(ctx)
	if err != nil {
		return 0, err
	}

	if shouldCommit {
		defer func() {
			if err != nil {
				db.Rollback()
			} else {
				err = db.Commit().Error
			}
		}()
	}

	res := r.applyFilter(db, filter).Delete(&models.Lead{})
	if err = res.Error; err != nil {
		return 0, fmt.Errorf("failed to delete leads: %w", err)
	}
	return res.RowsAffected, nil
}
