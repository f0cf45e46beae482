package handlers

import (
	"log"
	"strconv"

	"github.com/amirphl/lead-desk/app/dto"
	"github.com/amirphl/lead-desk/app/middleware"
	businessflow "github.com/amirphl/lead-desk/business_flow"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

// LeadHandlerInterface defines the contract for lead handlers
type LeadHandlerInterface interface {
	Create(c fiber.Ctx) error
	List(c fiber.Ctx) error
	Export(c fiber.Ctx) error
	Get(c fiber.Ctx) error
	Update(c fiber.Ctx) error
	Delete(c fiber.Ctx) error
}

// LeadHandler serves the authenticated account's leads
type LeadHandler struct {
	flow      businessflow.LeadFlow
	validator *validator.Validate
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(flow businessflow.LeadFlow) *LeadHandler {
	return &LeadHandler{flow: flow, validator: newValidator()}
}

func (h *LeadHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

func (h *LeadHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// handleError maps business errors to responses; fallback is used for unclassified failures
func (h *LeadHandler) handleError(c fiber.Ctx, err error, fallbackMessage, fallbackCode string) error {
	switch {
	case businessflow.IsLeadNotFound(err):
		return h.ErrorResponse(c, fiber.StatusNotFound, "Lead not found", "LEAD_NOT_FOUND", nil)
	case businessflow.IsValidationError(err):
		return h.ErrorResponse(c, fiber.StatusBadRequest, businessflow.ValidationMessage(err), "VALIDATION_ERROR", nil)
	}

	log.Println(fallbackMessage, err)
	return h.ErrorResponse(c, fiber.StatusInternalServerError, fallbackMessage, fallbackCode, nil)
}

// Create stores a new lead owned by the caller
// @Summary Create lead
// @Description Create a lead owned by the authenticated account. Any owner supplied by the client is ignored.
// @Tags Leads
// @Accept json
// @Produce json
// @Param request body dto.CreateLeadRequest true "Lead data"
// @Success 201 {object} dto.LeadDTO "Created lead"
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/leads [post]
func (h *LeadHandler) Create(c fiber.Ctx) error {
	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		return h.ErrorResponse(c, fiber.StatusUnauthorized, "Account ID not found in context", "MISSING_ACCOUNT_ID", nil)
	}

	var req dto.CreateLeadRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", bodyErrorDetails(err))
	}
	req.Normalize()
	if err := h.validator.Struct(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationMessages(err))
	}

	ctx, cancel := createRequestContext(c)
	defer cancel()

	lead, err := h.flow.Create(ctx, accountID, &req)
	if err != nil {
		return h.handleError(c, err, "Failed to create lead", "CREATE_LEAD_FAILED")
	}

	return c.Status(fiber.StatusCreated).JSON(lead)
}

// List returns one page of the caller's leads matching the query filters
// @Summary List leads
// @Description Filtered, paginated listing of the authenticated account's leads, newest first
// @Tags Leads
// @Produce json
// @Param email query string false "Case-insensitive substring of the email"
// @Param company query string false "Case-insensitive substring of the company"
// @Param city query string false "Case-insensitive substring of the city"
// @Param status query string false "Exact status" Enums(new, contacted, qualified, lost, won)
// @Param source query string false "Exact source" Enums(website, facebook_ads, google_ads, referral, events, other)
// @Param score query number false "Exact score"
// @Param score_gt query number false "Score strictly greater than"
// @Param score_lt query number false "Score strictly less than"
// @Param lead_value query number false "Exact lead value"
// @Param lead_value_gt query number false "Lead value strictly greater than"
// @Param lead_value_lt query number false "Lead value strictly less than"
// @Param is_qualified query string false "\"true\" matches qualified leads, any other value unqualified"
// @Param created_after query string false "Created at or after (RFC3339 or YYYY-MM-DD)"
// @Param created_before query string false "Created at or before (RFC3339 or YYYY-MM-DD)"
// @Param last_activity_after query string false "Last activity at or after (RFC3339 or YYYY-MM-DD)"
// @Param last_activity_before query string false "Last activity at or before (RFC3339 or YYYY-MM-DD)"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size (max 100)" default(20)
// @Success 200 {object} dto.ListLeadsResponse "One page of leads"
// @Failure 400 {object} dto.APIResponse "Invalid filter or pagination"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/leads [get]
func (h *LeadHandler) List(c fiber.Ctx) error {
	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		return h.ErrorResponse(c, fiber.StatusUnauthorized, "Account ID not found in context", "MISSING_ACCOUNT_ID", nil)
	}

	ctx, cancel := createRequestContext(c)
	defer cancel()

	page, err := h.flow.List(ctx, accountID, listLeadsRequest(c))
	if err != nil {
		return h.handleError(c, err, "Failed to list leads", "LIST_LEADS_FAILED")
	}

	return c.Status(fiber.StatusOK).JSON(page)
}

// Export downloads the caller's leads matching the query filters as a spreadsheet
// @Summary Export leads
// @Description Same filters as the listing, without pagination. Returns an xlsx workbook.
// @Tags Leads
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file "Lead workbook"
// @Failure 400 {object} dto.APIResponse "Invalid filter"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/leads/export [get]
func (h *LeadHandler) Export(c fiber.Ctx) error {
	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		return h.ErrorResponse(c, fiber.StatusUnauthorized, "Account ID not found in context", "MISSING_ACCOUNT_ID", nil)
	}

	ctx, cancel := createRequestContext(c)
	defer cancel()

	export, err := h.flow.Export(ctx, accountID, listLeadsRequest(c))
	if err != nil {
		return h.handleError(c, err, "Failed to export leads", "EXPORT_LEADS_FAILED")
	}

	c.Attachment(export.FileName)
	c.Set(fiber.HeaderContentType, export.ContentType)
	c.Set("X-Total-Count", strconv.Itoa(export.Rows))
	return c.Status(fiber.StatusOK).Send(export.Content)
}

// Get returns one of the caller's leads
// @Summary Get lead
// @Description Leads owned by other accounts are reported as not found
// @Tags Leads
// @Produce json
// @Param id path string true "Lead ID"
// @Success 200 {object} dto.LeadDTO "Lead"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 404 {object} dto.APIResponse "Lead not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/leads/{id} [get]
func (h *LeadHandler) Get(c fiber.Ctx) error {
	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		return h.ErrorResponse(c, fiber.StatusUnauthorized, "Account ID not found in context", "MISSING_ACCOUNT_ID", nil)
	}

	ctx, cancel := createRequestContext(c)
	defer cancel()

	lead, err := h.flow.GetByID(ctx, accountID, c.Params("id"))
	if err != nil {
		return h.handleError(c, err, "Failed to get lead", "GET_LEAD_FAILED")
	}

	return c.Status(fiber.StatusOK).JSON(lead)
}

// Update changes the supplied fields of one of the caller's leads
// @Summary Update lead
// @Description Only supplied fields change; the owner cannot be changed
// @Tags Leads
// @Accept json
// @Produce json
// @Param id path string true "Lead ID"
// @Param request body dto.UpdateLeadRequest true "Fields to change"
// @Success 200 {object} dto.LeadDTO "Updated lead"
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 404 {object} dto.APIResponse "Lead not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/leads/{id} [put]
func (h *LeadHandler) Update(c fiber.Ctx) error {
	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		return h.ErrorResponse(c, fiber.StatusUnauthorized, "Account ID not found in context", "MISSING_ACCOUNT_ID", nil)
	}

	var req dto.UpdateLeadRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", bodyErrorDetails(err))
	}
	req.Normalize()
	if err := h.validator.Struct(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationMessages(err))
	}

	ctx, cancel := createRequestContext(c)
	defer cancel()

	lead, err := h.flow.Update(ctx, accountID, c.Params("id"), &req)
	if err != nil {
		return h.handleError(c, err, "Failed to update lead", "UPDATE_LEAD_FAILED")
	}

	return c.Status(fiber.StatusOK).JSON(lead)
}

// Delete permanently removes one of the caller's leads
// @Summary Delete lead
// @Tags Leads
// @Produce json
// @Param id path string true "Lead ID"
// @Success 200 {object} dto.APIResponse "Lead deleted successfully"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 404 {object} dto.APIResponse "Lead not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/leads/{id} [delete]
func (h *LeadHandler) Delete(c fiber.Ctx) error {
	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		return h.ErrorResponse(c, fiber.StatusUnauthorized, "Account ID not found in context", "MISSING_ACCOUNT_ID", nil)
	}

	ctx, cancel := createRequestContext(c)
	defer cancel()

	if err := h.flow.Delete(ctx, accountID, c.Params("id")); err != nil {
		return h.handleError(c, err, "Failed to delete lead", "DELETE_LEAD_FAILED")
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Lead deleted successfully", nil)
}

// listLeadsRequest collects the listing query parameters. Unknown parameters are ignored.
func listLeadsRequest(c fiber.Ctx) dto.ListLeadsRequest {
	req := dto.ListLeadsRequest{
		Email:              c.Query("email"),
		Company:            c.Query("company"),
		City:               c.Query("city"),
		Status:             c.Query("status"),
		Source:             c.Query("source"),
		Score:              c.Query("score"),
		ScoreGT:            c.Query("score_gt"),
		ScoreLT:            c.Query("score_lt"),
		LeadValue:          c.Query("lead_value"),
		LeadValueGT:        c.Query("lead_value_gt"),
		LeadValueLT:        c.Query("lead_value_lt"),
		CreatedBefore:      c.Query("created_before"),
		CreatedAfter:       c.Query("created_after"),
		LastActivityBefore: c.Query("last_activity_before"),
		LastActivityAfter:  c.Query("last_activity_after"),
		Page:               c.Query("page"),
		Limit:              c.Query("limit"),
	}

	if v, ok := c.Queries()["is_qualified"]; ok {
		req.IsQualified = &v
	}

	return req
}
