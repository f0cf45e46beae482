// Package middleware contains HTTP middleware functions for request processing
package middleware

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/amirphl/lead-desk/app/dto"
	"github.com/amirphl/lead-desk/app/services"
	"github.com/amirphl/lead-desk/utils"
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// Guard failure messages
const (
	MessageNoToken     = "Not authorized, no token"
	MessageTokenFailed = "Not authorized, token failed"
)

// denylistTimeout bounds the revocation lookup so a slow cache cannot stall requests
const denylistTimeout = 2 * time.Second

// AuthMiddleware validates the session cookie for protected endpoints
type AuthMiddleware struct {
	tokenService services.TokenService
	denylist     services.TokenDenylist
}

// NewAuthMiddleware creates a new authentication middleware. A nil denylist disables revocation checks.
func NewAuthMiddleware(tokenService services.TokenService, denylist services.TokenDenylist) *AuthMiddleware {
	if denylist == nil {
		denylist = services.NewNoopTokenDenylist()
	}
	return &AuthMiddleware{
		tokenService: tokenService,
		denylist:     denylist,
	}
}

func unauthorized(c fiber.Ctx, message, code string) error {
	authRejectionsTotal.WithLabelValues(code).Inc()
	return c.Status(fiber.StatusUnauthorized).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code: code,
		},
	})
}

// Authenticate rejects requests without a valid session cookie and stores the
// account identity in the request locals for downstream handlers
func (m *AuthMiddleware) Authenticate() fiber.Handler {
	return func(c fiber.Ctx) error {
		token := c.Cookies(utils.SessionCookieName)
		if token == "" {
			return unauthorized(c, MessageNoToken, "MISSING_TOKEN")
		}

		claims, err := m.tokenService.ValidateToken(token)
		if err != nil {
			code := "TOKEN_VALIDATION_FAILED"
			if errors.Is(err, services.ErrTokenExpired) {
				code = "TOKEN_EXPIRED"
			} else if errors.Is(err, services.ErrTokenInvalid) {
				code = "TOKEN_INVALID"
			}
			return unauthorized(c, MessageTokenFailed, code)
		}

		ctx, cancel := context.WithTimeout(c.Context(), denylistTimeout)
		revoked, err := m.denylist.IsRevoked(ctx, claims.TokenID)
		cancel()
		if err != nil {
			log.Printf("session revocation check failed for token %s: %v", claims.TokenID, err)
			return unauthorized(c, MessageTokenFailed, "TOKEN_VALIDATION_FAILED")
		}
		if revoked {
			return unauthorized(c, MessageTokenFailed, "TOKEN_REVOKED")
		}

		c.Locals("account_id", claims.AccountID)
		c.Locals("token_id", claims.TokenID)
		c.Locals("token_claims", claims)

		if requestID := c.Get("X-Request-ID"); requestID != "" {
			c.Locals("request_id", requestID)
		}

		return c.Next()
	}
}

// GetAccountIDFromContext extracts the authenticated account ID from the request context
func GetAccountIDFromContext(c fiber.Ctx) (uuid.UUID, bool) {
	accountID, ok := c.Locals("account_id").(uuid.UUID)
	return accountID, ok && accountID != uuid.Nil
}

// GetTokenClaimsFromContext extracts token claims from the request context
func GetTokenClaimsFromContext(c fiber.Ctx) (*services.TokenClaims, bool) {
	claims, ok := c.Locals("token_claims").(*services.TokenClaims)
	return claims, ok
}
