package api

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/fertilitrack/internal/services"
)

func (handler *Handler) Login(c *fiber.Ctx) error {
	limiterKey := requestLimiterKey(c)
	now := handler.now()
	if handler.loginLimiter.tooManyRecent(limiterKey, now) {
		return apiError(c, fiber.StatusTooManyRequests, "too many login attempts")
	}

	var credentials credentialsInput
	if err := c.BodyParser(&credentials); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user, err := handler.authService.Authenticate(c.UserContext(), credentials.Email, credentials.Password)
	if err != nil {
		if errors.Is(err, services.ErrAuthCredentialsInvalid) {
			handler.loginLimiter.addFailure(limiterKey, now)
			return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
		}
		return respondServiceError(c, err, "failed to sign in")
	}
	handler.loginLimiter.reset(limiterKey)

	token, expiresAt, err := handler.buildToken(&user)
	if err != nil {
		slog.ErrorContext(c.UserContext(), "sign token failed", "user_id", user.ID, "error", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return c.JSON(fiber.Map{
		"token":      token,
		"expires_at": expiresAt.Time.UTC(),
	})
}
