package businessflow

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/amirphl/lead-desk/models"
	"github.com/amirphl/lead-desk/repository"
	"github.com/google/uuid"
)

// memAccountRepository is an in-memory repository.AccountRepository
type memAccountRepository struct {
	mu       sync.Mutex
	accounts map[uuid.UUID]*models.Account
}

func newMemAccountRepository() *memAccountRepository {
	return &memAccountRepository{accounts: make(map[uuid.UUID]*models.Account)}
}

func (r *memAccountRepository) ByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.accounts[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *memAccountRepository) ByEmail(ctx context.Context, email string) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.accounts {
		if a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memAccountRepository) ByFilter(ctx context.Context, filter models.AccountFilter, orderBy string, limit, offset int) ([]*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Account
	for _, a := range r.accounts {
		if filter.ID != nil && a.ID != *filter.ID {
			continue
		}
		if filter.Email != nil && a.Email != *filter.Email {
			continue
		}
		cp := *a
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memAccountRepository) Count(ctx context.Context, filter models.AccountFilter) (int64, error) {
	rows, _ := r.ByFilter(ctx, filter, "", 0, 0)
	return int64(len(rows)), nil
}

func (r *memAccountRepository) Exists(ctx context.Context, filter models.AccountFilter) (bool, error) {
	c, _ := r.Count(ctx, filter)
	return c > 0, nil
}

func (r *memAccountRepository) Save(ctx context.Context, account *models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.accounts {
		if a.Email == account.Email {
			return repository.ErrDuplicateKey
		}
	}
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	now := time.Now().UTC()
	account.CreatedAt, account.UpdatedAt = now, now
	cp := *account
	r.accounts[account.ID] = &cp
	return nil
}

func (r *memAccountRepository) Update(ctx context.Context, account *models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, a := range r.accounts {
		if id != account.ID && a.Email == account.Email {
			return repository.ErrDuplicateKey
		}
	}
	cp := *account
	r.accounts[account.ID] = &cp
	return nil
}

func (r *memAccountRepository) delete(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.accounts, id)
}

// memLeadRepository is an in-memory repository.LeadRepository that evaluates
// filters with the same semantics as the SQL implementation
type memLeadRepository struct {
	mu    sync.Mutex
	leads map[uuid.UUID]*models.Lead
	clock time.Time
}

func newMemLeadRepository() *memLeadRepository {
	return &memLeadRepository{
		leads: make(map[uuid.UUID]*models.Lead),
		clock: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (r *memLeadRepository) ByID(ctx context.Context, id uuid.UUID) (*models.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.leads[id]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (r *memLeadRepository) Save(ctx context.Context, lead *models.Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if lead.ID == uuid.Nil {
		lead.ID = uuid.New()
	}
	if lead.CreatedAt.IsZero() {
		// Each insert is one second newer than the last so ordering is deterministic
		r.clock = r.clock.Add(time.Second)
		lead.CreatedAt = r.clock
	}
	lead.UpdatedAt = lead.CreatedAt
	cp := *lead
	r.leads[lead.ID] = &cp
	return nil
}

func (r *memLeadRepository) matching(filter models.LeadFilter) []*models.Lead {
	var out []*models.Lead
	for _, l := range r.leads {
		if matchesLeadFilter(l, filter) {
			cp := *l
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID.String() > out[j].ID.String()
	})
	return out
}

func (r *memLeadRepository) ByFilter(ctx context.Context, filter models.LeadFilter, orderBy string, limit, offset int) ([]*models.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rows := r.matching(filter)
	if offset >= len(rows) {
		return []*models.Lead{}, nil
	}
	rows = rows[offset:]
	if limit > 0 && limit < len(rows) {
		rows = rows[:limit]
	}
	return rows, nil
}

func (r *memLeadRepository) Count(ctx context.Context, filter models.LeadFilter) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.matching(filter))), nil
}

func (r *memLeadRepository) Exists(ctx context.Context, filter models.LeadFilter) (bool, error) {
	c, _ := r.Count(ctx, filter)
	return c > 0, nil
}

func (r *memLeadRepository) InTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (r *memLeadRepository) UpdateByFilter(ctx context.Context, filter models.LeadFilter, fields map[string]any) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, l := range r.leads {
		if !matchesLeadFilter(l, filter) {
			continue
		}
		applyLeadFields(l, fields)
		n++
	}
	return n, nil
}

func (r *memLeadRepository) DeleteByFilter(ctx context.Context, filter models.LeadFilter) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, l := range r.leads {
		if matchesLeadFilter(l, filter) {
			delete(r.leads, id)
			n++
		}
	}
	return n, nil
}

func containsFold(haystack *string, needle string) bool {
	if haystack == nil {
		return false
	}
	return strings.Contains(strings.ToLower(*haystack), strings.ToLower(needle))
}

func matchesLeadFilter(l *models.Lead, f models.LeadFilter) bool {
	switch {
	case f.ID != nil && l.ID != *f.ID,
		f.AccountID != nil && l.AccountID != *f.AccountID,
		f.Email != nil && !containsFold(&l.Email, *f.Email),
		f.Company != nil && !containsFold(l.Company, *f.Company),
		f.City != nil && !containsFold(l.City, *f.City),
		f.Status != nil && l.Status != *f.Status,
		f.Source != nil && l.Source != *f.Source,
		f.Score != nil && l.Score != *f.Score,
		f.ScoreGreaterThan != nil && !(l.Score > *f.ScoreGreaterThan),
		f.ScoreLessThan != nil && !(l.Score < *f.ScoreLessThan),
		f.LeadValue != nil && l.LeadValue != *f.LeadValue,
		f.LeadValueGreaterThan != nil && !(l.LeadValue > *f.LeadValueGreaterThan),
		f.LeadValueLessThan != nil && !(l.LeadValue < *f.LeadValueLessThan),
		f.IsQualified != nil && l.IsQualified != *f.IsQualified,
		f.CreatedAfter != nil && l.CreatedAt.Before(*f.CreatedAfter),
		f.CreatedBefore != nil && l.CreatedAt.After(*f.CreatedBefore):
		return false
	}
	if f.LastActivityAfter != nil && (l.LastActivityAt == nil || l.LastActivityAt.Before(*f.LastActivityAfter)) {
		return false
	}
	if f.LastActivityBefore != nil && (l.LastActivityAt == nil || l.LastActivityAt.After(*f.LastActivityBefore)) {
		return false
	}
	return true
}

func applyLeadFields(l *models.Lead, fields map[string]any) {
	for k, v := range fields {
		switch k {
		case "first_name":
			l.FirstName = v.(string)
		case "last_name":
			l.LastName = v.(string)
		case "email":
			l.Email = v.(string)
		case "phone":
			s := v.(string)
			l.Phone = &s
		case "company":
			s := v.(string)
			l.Company = &s
		case "city":
			s := v.(string)
			l.City = &s
		case "state":
			s := v.(string)
			l.State = &s
		case "source":
			l.Source = v.(string)
		case "status":
			l.Status = v.(string)
		case "score":
			l.Score = v.(float64)
		case "lead_value":
			l.LeadValue = v.(float64)
		case "is_qualified":
			l.IsQualified = v.(bool)
		case "last_activity_at":
			t := v.(time.Time)
			l.LastActivityAt = &t
		case "updated_at":
			l.UpdatedAt = v.(time.Time)
		}
	}
}
