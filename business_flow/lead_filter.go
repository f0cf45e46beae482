package businessflow

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/amirphl/lead-desk/app/dto"
	"github.com/amirphl/lead-desk/models"
	"github.com/amirphl/lead-desk/utils"
)

// Pagination is a validated page request
type Pagination struct {
	Page   int
	Limit  int
	Offset int
}

// TotalPages returns ceil(total/limit)
func (p Pagination) TotalPages(total int64) int {
	if p.Limit <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(p.Limit) - 1) / int64(p.Limit))
}

// BuildLeadFilter turns raw listing parameters into a typed filter and a page request.
//
//   - email, company, city: case-insensitive substring
//   - status, source: equality against a known value
//   - score, lead_value: equality; the _gt/_lt forms are strict bounds and all given
//     predicates are ANDed, so an exact value must also lie inside any bounds
//   - is_qualified: "true" means true, any other value (including empty) means false
//   - created_* and last_activity_*: inclusive bounds, RFC 3339 or YYYY-MM-DD
//
// Empty values are treated as absent, except is_qualified. Unparseable numbers,
// dates or enum values are rejected with ErrInvalidFilter.
func BuildLeadFilter(req dto.ListLeadsRequest) (models.LeadFilter, Pagination, error) {
	var filter models.LeadFilter

	filter.Email = optionalString(req.Email)
	filter.Company = optionalString(req.Company)
	filter.City = optionalString(req.City)

	if v := strings.TrimSpace(req.Status); v != "" {
		if !models.IsValidLeadStatus(v) {
			return filter, Pagination{}, NewBusinessErrorf("INVALID_FILTER", "status must be one of: %s", ErrInvalidFilter, strings.Join(models.LeadStatuses, ", "))
		}
		filter.Status = &v
	}
	if v := strings.TrimSpace(req.Source); v != "" {
		if !models.IsValidLeadSource(v) {
			return filter, Pagination{}, NewBusinessErrorf("INVALID_FILTER", "source must be one of: %s", ErrInvalidFilter, strings.Join(models.LeadSources, ", "))
		}
		filter.Source = &v
	}

	numbers := []struct {
		name  string
		raw   string
		field **float64
	}{
		{"score", req.Score, &filter.Score},
		{"score_gt", req.ScoreGT, &filter.ScoreGreaterThan},
		{"score_lt", req.ScoreLT, &filter.ScoreLessThan},
		{"lead_value", req.LeadValue, &filter.LeadValue},
		{"lead_value_gt", req.LeadValueGT, &filter.LeadValueGreaterThan},
		{"lead_value_lt", req.LeadValueLT, &filter.LeadValueLessThan},
	}
	for _, n := range numbers {
		v, err := parseOptionalFloat(n.name, n.raw)
		if err != nil {
			return filter, Pagination{}, err
		}
		*n.field = v
	}

	if req.IsQualified != nil {
		q := *req.IsQualified == "true"
		filter.IsQualified = &q
	}

	dates := []struct {
		name  string
		raw   string
		field **time.Time
	}{
		{"created_after", req.CreatedAfter, &filter.CreatedAfter},
		{"created_before", req.CreatedBefore, &filter.CreatedBefore},
		{"last_activity_after", req.LastActivityAfter, &filter.LastActivityAfter},
		{"last_activity_before", req.LastActivityBefore, &filter.LastActivityBefore},
	}
	for _, d := range dates {
		v, err := parseOptionalTime(d.name, d.raw)
		if err != nil {
			return filter, Pagination{}, err
		}
		*d.field = v
	}

	page, err := parsePagination(req.Page, req.Limit)
	if err != nil {
		return filter, Pagination{}, err
	}

	return filter, page, nil
}

func optionalString(raw string) *string {
	v := strings.TrimSpace(raw)
	if v == "" {
		return nil
	}
	return &v
}

func parseOptionalFloat(name, raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, NewBusinessErrorf("INVALID_FILTER", "%s must be a number", ErrInvalidFilter, name)
	}
	return &v, nil
}

func parseOptionalTime(name, raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	t, err := utils.ParseTimestamp(raw)
	if err != nil {
		return nil, NewBusinessErrorf("INVALID_FILTER", "%s must be an RFC3339 timestamp or a YYYY-MM-DD date", ErrInvalidFilter, name)
	}
	return &t, nil
}

func parsePagination(rawPage, rawLimit string) (Pagination, error) {
	page := utils.DefaultPage
	if v := strings.TrimSpace(rawPage); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > math.MaxInt32 {
			return Pagination{}, NewBusinessError("INVALID_PAGE", "page must be a positive integer", ErrInvalidPage)
		}
		page = n
	}

	limit := utils.DefaultPageLimit
	if v := strings.TrimSpace(rawLimit); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > utils.MaxPageLimit {
			return Pagination{}, NewBusinessErrorf("INVALID_PAGE_SIZE", "limit must be an integer between 1 and %d", ErrInvalidPageSize, utils.MaxPageLimit)
		}
		limit = n
	}

	return Pagination{Page: page, Limit: limit, Offset: (page - 1) * limit}, nil
}
