package businessflow

import (
	"context"
	"fmt"
	"strings"

	"github.com/amirphl/lead-desk/app/dto"
	"github.com/amirphl/lead-desk/models"
	"github.com/amirphl/lead-desk/repository"
	"github.com/amirphl/lead-desk/utils"
	"github.com/google/uuid"
)

// LeadFlow runs owner-scoped lead use cases. accountID is always the authenticated identity.
type LeadFlow interface {
	Create(ctx context.Context, accountID uuid.UUID, request *dto.CreateLeadRequest) (*dto.LeadDTO, error)
	List(ctx context.Context, accountID uuid.UUID, request dto.ListLeadsRequest) (*dto.ListLeadsResponse, error)
	GetByID(ctx context.Context, accountID uuid.UUID, leadID string) (*dto.LeadDTO, error)
	Update(ctx context.Context, accountID uuid.UUID, leadID string, request *dto.UpdateLeadRequest) (*dto.LeadDTO, error)
	Delete(ctx context.Context, accountID uuid.UUID, leadID string) error
	Export(ctx context.Context, accountID uuid.UUID, request dto.ListLeadsRequest) (*dto.LeadExport, error)
}

// LeadFlowImpl implements LeadFlow
type LeadFlowImpl struct {
	leadRepo repository.LeadRepository
}

// NewLeadFlow creates a new lead flow instance
func NewLeadFlow(leadRepo repository.LeadRepository) LeadFlow {
	return &LeadFlowImpl{leadRepo: leadRepo}
}

func (f *LeadFlowImpl) owned(accountID uuid.UUID) repository.OwnedLeadRepository {
	return repository.NewOwnedLeadRepository(f.leadRepo, accountID)
}

// Create persists a new lead owned by accountID
func (f *LeadFlowImpl) Create(ctx context.Context, accountID uuid.UUID, request *dto.CreateLeadRequest) (result *dto.LeadDTO, err error) {
	defer func() { recordLeadOperation("create", err) }()

	source := strings.TrimSpace(request.Source)
	if source == "" {
		source = models.LeadSourceWebsite
	}
	if !models.IsValidLeadSource(source) {
		return nil, NewBusinessErrorf("INVALID_LEAD_SOURCE", "source must be one of: %s", ErrInvalidLeadSource, strings.Join(models.LeadSources, ", "))
	}

	status := strings.TrimSpace(request.Status)
	if status == "" {
		status = models.LeadStatusNew
	}
	if !models.IsValidLeadStatus(status) {
		return nil, NewBusinessErrorf("INVALID_LEAD_STATUS", "status must be one of: %s", ErrInvalidLeadStatus, strings.Join(models.LeadStatuses, ", "))
	}

	score, err := numberField("score", request.Score)
	if err != nil {
		return nil, err
	}
	leadValue, err := numberField("lead_value", request.LeadValue)
	if err != nil {
		return nil, err
	}

	lead := &models.Lead{
		FirstName:      strings.TrimSpace(request.FirstName),
		LastName:       strings.TrimSpace(request.LastName),
		Email:          strings.TrimSpace(request.Email),
		Phone:          request.Phone,
		Company:        request.Company,
		City:           request.City,
		State:          request.State,
		Source:         source,
		Status:         status,
		Score:          utils.Deref(score),
		LeadValue:      utils.Deref(leadValue),
		IsQualified:    utils.IsTrue(request.IsQualified),
		LastActivityAt: utils.TimeToUTCPtr(request.LastActivityAt),
	}

	if err := f.owned(accountID).Create(ctx, lead); err != nil {
		return nil, NewBusinessError("CREATE_LEAD_FAILED", "Failed to create lead", err)
	}

	out := ToLeadDTO(*lead)
	return &out, nil
}

// List returns one page of the owner's leads matching the request's filters, newest first
func (f *LeadFlowImpl) List(ctx context.Context, accountID uuid.UUID, request dto.ListLeadsRequest) (result *dto.ListLeadsResponse, err error) {
	defer func() { recordLeadOperation("list", err) }()

	filter, page, err := BuildLeadFilter(request)
	if err != nil {
		return nil, err
	}

	leads := f.owned(accountID)

	total, err := leads.Count(ctx, filter)
	if err != nil {
		return nil, NewBusinessError("LIST_LEADS_FAILED", "Failed to list leads", err)
	}

	rows, err := leads.ByFilter(ctx, filter, repository.DefaultLeadOrder, page.Limit, page.Offset)
	if err != nil {
		return nil, NewBusinessError("LIST_LEADS_FAILED", "Failed to list leads", err)
	}

	return &dto.ListLeadsResponse{
		Data:       ToLeadDTOs(rows),
		Page:       page.Page,
		Limit:      page.Limit,
		Total:      total,
		TotalPages: page.TotalPages(total),
	}, nil
}

// GetByID returns the owner's lead. Leads of other accounts are reported as not found.
func (f *LeadFlowImpl) GetByID(ctx context.Context, accountID uuid.UUID, leadID string) (result *dto.LeadDTO, err error) {
	defer func() { recordLeadOperation("get", err) }()

	id, err := parseLeadID(leadID)
	if err != nil {
		return nil, err
	}

	lead, err := f.owned(accountID).ByID(ctx, id)
	if err != nil {
		return nil, NewBusinessError("GET_LEAD_FAILED", "Failed to get lead", err)
	}
	if lead == nil {
		return nil, NewBusinessError("LEAD_NOT_FOUND", "Lead not found", ErrLeadNotFound)
	}

	out := ToLeadDTO(*lead)
	return &out, nil
}

// Update applies the supplied fields to the owner's lead; concurrent updates are last-write-wins
func (f *LeadFlowImpl) Update(ctx context.Context, accountID uuid.UUID, leadID string, request *dto.UpdateLeadRequest) (result *dto.LeadDTO, err error) {
	defer func() { recordLeadOperation("update", err) }()

	id, err := parseLeadID(leadID)
	if err != nil {
		return nil, err
	}

	fields, err := leadUpdateFields(request)
	if err != nil {
		return nil, err
	}

	leads := f.owned(accountID)

	var lead *models.Lead
	if len(fields) == 0 {
		lead, err = leads.ByID(ctx, id)
	} else {
		lead, err = leads.Update(ctx, id, fields)
	}
	if err != nil {
		return nil, NewBusinessError("UPDATE_LEAD_FAILED", "Failed to update lead", err)
	}
	if lead == nil {
		return nil, NewBusinessError("LEAD_NOT_FOUND", "Lead not found", ErrLeadNotFound)
	}

	out := ToLeadDTO(*lead)
	return &out, nil
}

// Delete permanently removes the owner's lead
func (f *LeadFlowImpl) Delete(ctx context.Context, accountID uuid.UUID, leadID string) (err error) {
	defer func() { recordLeadOperation("delete", err) }()

	id, err := parseLeadID(leadID)
	if err != nil {
		return err
	}

	deleted, err := f.owned(accountID).Delete(ctx, id)
	if err != nil {
		return NewBusinessError("DELETE_LEAD_FAILED", "Failed to delete lead", err)
	}
	if !deleted {
		return NewBusinessError("LEAD_NOT_FOUND", "Lead not found", ErrLeadNotFound)
	}
	return nil
}

// Export renders the owner's leads matching the request's filters as an xlsx workbook.
// Pagination parameters are validated but ignored; at most utils.MaxExportRows leads are written.
func (f *LeadFlowImpl) Export(ctx context.Context, accountID uuid.UUID, request dto.ListLeadsRequest) (result *dto.LeadExport, err error) {
	defer func() { recordLeadOperation("export", err) }()

	filter, _, err := BuildLeadFilter(request)
	if err != nil {
		return nil, err
	}

	rows, err := f.owned(accountID).ByFilter(ctx, filter, repository.DefaultLeadOrder, utils.MaxExportRows, 0)
	if err != nil {
		return nil, NewBusinessError("EXPORT_LEADS_FAILED", "Failed to export leads", err)
	}

	content, err := renderLeadWorkbook(rows)
	if err != nil {
		return nil, NewBusinessError("EXPORT_LEADS_FAILED", "Failed to export leads", err)
	}
	leadExportRows.Observe(float64(len(rows)))

	return &dto.LeadExport{
		FileName:    fmt.Sprintf("leads-%s.xlsx", utils.UTCNow().Format("20060102-150405")),
		ContentType: leadExportContentType,
		Content:     content,
		Rows:        len(rows),
	}, nil
}

func parseLeadID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, NewBusinessError("LEAD_NOT_FOUND", "Lead not found", ErrLeadNotFound)
	}
	return id, nil
}

// leadUpdateFields maps the non-nil request fields to column updates
func leadUpdateFields(request *dto.UpdateLeadRequest) (map[string]any, error) {
	fields := make(map[string]any)
	if request == nil {
		return fields, nil
	}

	if request.FirstName != nil {
		fields["first_name"] = strings.TrimSpace(*request.FirstName)
	}
	if request.LastName != nil {
		fields["last_name"] = strings.TrimSpace(*request.LastName)
	}
	if request.Email != nil {
		fields["email"] = strings.TrimSpace(*request.Email)
	}
	if request.Phone != nil {
		fields["phone"] = *request.Phone
	}
	if request.Company != nil {
		fields["company"] = *request.Company
	}
	if request.City != nil {
		fields["city"] = *request.City
	}
	if request.State != nil {
		fields["state"] = *request.State
	}
	if request.Source != nil {
		if !models.IsValidLeadSource(*request.Source) {
			return nil, NewBusinessErrorf("INVALID_LEAD_SOURCE", "source must be one of: %s", ErrInvalidLeadSource, strings.Join(models.LeadSources, ", "))
		}
		fields["source"] = *request.Source
	}
	if request.Status != nil {
		if !models.IsValidLeadStatus(*request.Status) {
			return nil, NewBusinessErrorf("INVALID_LEAD_STATUS", "status must be one of: %s", ErrInvalidLeadStatus, strings.Join(models.LeadStatuses, ", "))
		}
		fields["status"] = *request.Status
	}
	score, err := numberField("score", request.Score)
	if err != nil {
		return nil, err
	}
	if score != nil {
		fields["score"] = *score
	}
	leadValue, err := numberField("lead_value", request.LeadValue)
	if err != nil {
		return nil, err
	}
	if leadValue != nil {
		fields["lead_value"] = *leadValue
	}
	if request.IsQualified != nil {
		fields["is_qualified"] = *request.IsQualified
	}
	if request.LastActivityAt != nil {
		fields["last_activity_at"] = request.LastActivityAt.UTC()
	}

	return fields, nil
}

// numberField parses an optional numeric body field; empty values count as not given
func numberField(name string, n *dto.Number) (*float64, error) {
	if n == nil {
		return nil, nil
	}
	v, ok, err := n.Float64()
	if err != nil {
		return nil, NewBusinessErrorf("INVALID_NUMBER", "%s must be a number", ErrInvalidNumber, name)
	}
	if !ok {
		return nil, nil
	}
	return &v, nil
}
