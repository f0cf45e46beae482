package handlers

import (
	"log"
	"time"

	"github.com/amirphl/lead-desk/app/dto"
	businessflow "github.com/amirphl/lead-desk/business_flow"
	"github.com/amirphl/lead-desk/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

// AuthHandlerInterface defines the contract for authentication handlers
type AuthHandlerInterface interface {
	Register(c fiber.Ctx) error
	Login(c fiber.Ctx) error
	Logout(c fiber.Ctx) error
}

// AuthHandler handles registration, login and logout
type AuthHandler struct {
	authFlow     businessflow.AuthFlow
	validator    *validator.Validate
	cookieSecure bool
	sessionTTL   time.Duration
}

func (h *AuthHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

func (h *AuthHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// NewAuthHandler creates a new authentication handler. cookieSecure marks the session cookie Secure;
// sessionTTL must match the lifetime of the issued tokens.
func NewAuthHandler(authFlow businessflow.AuthFlow, cookieSecure bool, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		authFlow:     authFlow,
		validator:    newValidator(),
		cookieSecure: cookieSecure,
		sessionTTL:   sessionTTL,
	}
}

// Register handles account registration
// @Summary Register
// @Description Create a new account. The email must not be registered yet.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration data"
// @Success 201 {object} dto.APIResponse "User registered successfully"
// @Failure 400 {object} dto.APIResponse "Validation error or user already exists"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", bodyErrorDetails(err))
	}
	req.Normalize()

	if err := h.validator.Struct(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationMessages(err))
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	metadata.SetRequestID(requestID(c))

	ctx, cancel := createRequestContext(c)
	defer cancel()

	if _, err := h.authFlow.Register(ctx, &req, metadata); err != nil {
		if businessflow.IsEmailAlreadyExists(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "User already exists", "EMAIL_EXISTS", nil)
		}

		log.Println("Register failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Registration failed", "REGISTER_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusCreated, "User registered successfully", nil)
}

// Login handles credential verification and sets the session cookie
// @Summary Login
// @Description Verify email and password. The session token is returned only as an HttpOnly cookie.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.AccountDTO} "Login successful"
// @Failure 400 {object} dto.APIResponse "Validation error or invalid credentials"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", bodyErrorDetails(err))
	}
	req.Normalize()

	if err := h.validator.Struct(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationMessages(err))
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	metadata.SetRequestID(requestID(c))

	ctx, cancel := createRequestContext(c)
	defer cancel()

	result, err := h.authFlow.Login(ctx, &req, metadata)
	if err != nil {
		if businessflow.IsInvalidCredentials(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid credentials", "INVALID_CREDENTIALS", nil)
		}

		log.Println("Login failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Login failed", "LOGIN_FAILED", nil)
	}

	c.Cookie(h.sessionCookie(result.Token, result.ExpiresAt))

	return h.SuccessResponse(c, fiber.StatusOK, "Login successful", result.Account)
}

// Logout clears the session cookie and revokes the session when revocation is enabled
// @Summary Logout
// @Description Clear the session cookie. Always succeeds.
// @Tags Authentication
// @Produce json
// @Success 200 {object} dto.APIResponse "Logged out successfully"
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c fiber.Ctx) error {
	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	metadata.SetRequestID(requestID(c))

	ctx, cancel := createRequestContext(c)
	defer cancel()

	if err := h.authFlow.Logout(ctx, c.Cookies(utils.SessionCookieName), metadata); err != nil {
		log.Println("Logout revocation failed", err)
	}

	c.Cookie(h.expiredSessionCookie())

	return h.SuccessResponse(c, fiber.StatusOK, "Logged out successfully", nil)
}

func (h *AuthHandler) sessionCookie(token string, expiresAt time.Time) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     utils.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessionTTL / time.Second),
		Expires:  expiresAt,
		Secure:   h.cookieSecure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
	}
}

func (h *AuthHandler) expiredSessionCookie() *fiber.Cookie {
	return &fiber.Cookie{
		Name:     utils.SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0).UTC(),
		Secure:   h.cookieSecure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
	}
}
