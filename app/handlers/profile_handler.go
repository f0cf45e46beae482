package handlers

import (
	"log"

	"github.com/amirphl/lead-desk/app/dto"
	"github.com/amirphl/lead-desk/app/middleware"
	businessflow "github.com/amirphl/lead-desk/business_flow"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

type ProfileHandlerInterface interface {
	Me(c fiber.Ctx) error
	Edit(c fiber.Ctx) error
}

type ProfileHandler struct {
	flow      businessflow.ProfileFlow
	validator *validator.Validate
}

func NewProfileHandler(flow businessflow.ProfileFlow) *ProfileHandler {
	return &ProfileHandler{flow: flow, validator: newValidator()}
}

func (h *ProfileHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

// Me returns the authenticated account
// @Summary Current user
// @Description Retrieve the account behind the session cookie
// @Tags Profile
// @Produce json
// @Success 200 {object} dto.AccountDTO "Current account"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 404 {object} dto.APIResponse "User not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/auth/me [get]
func (h *ProfileHandler) Me(c fiber.Ctx) error {
	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		return h.ErrorResponse(c, fiber.StatusUnauthorized, "Account ID not found in context", "MISSING_ACCOUNT_ID", nil)
	}

	ctx, cancel := createRequestContext(c)
	defer cancel()

	account, err := h.flow.GetCurrentUser(ctx, accountID)
	if err != nil {
		if businessflow.IsAccountNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "User not found", "USER_NOT_FOUND", nil)
		}
		log.Println("Get profile failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to get profile", "GET_PROFILE_FAILED", nil)
	}

	return c.Status(fiber.StatusOK).JSON(account)
}

// Edit changes the supplied profile fields
// @Summary Edit profile
// @Description Update any of firstName, lastName, email or password. Empty fields are ignored.
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body dto.EditProfileRequest true "Fields to change"
// @Success 200 {object} dto.AccountDTO "Updated account"
// @Failure 400 {object} dto.APIResponse "Validation error or email already in use"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 404 {object} dto.APIResponse "User not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/auth/edit [put]
func (h *ProfileHandler) Edit(c fiber.Ctx) error {
	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		return h.ErrorResponse(c, fiber.StatusUnauthorized, "Account ID not found in context", "MISSING_ACCOUNT_ID", nil)
	}

	var req dto.EditProfileRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", bodyErrorDetails(err))
	}
	req.Normalize()
	if err := h.validator.Struct(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationMessages(err))
	}

	ctx, cancel := createRequestContext(c)
	defer cancel()

	account, err := h.flow.EditProfile(ctx, accountID, &req)
	if err != nil {
		switch {
		case businessflow.IsAccountNotFound(err):
			return h.ErrorResponse(c, fiber.StatusNotFound, "User not found", "USER_NOT_FOUND", nil)
		case businessflow.IsEmailAlreadyExists(err):
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Email already in use", "EMAIL_EXISTS", nil)
		}
		log.Println("Edit profile failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update profile", "EDIT_PROFILE_FAILED", nil)
	}

	return c.Status(fiber.StatusOK).JSON(account)
}
