package api

import (
	"regexp"
	"strings"

	"github.com/Ashwinn11/gutbuddy/internal/models"
	"github.com/Ashwinn11/gutbuddy/internal/security"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type credentialsInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type resetPasswordInput struct {
	RecoveryCode string `json:"recoveryCode"`
	NewPassword  string `json:"newPassword"`
}

func (handler *Handler) SetupStatus(c *fiber.Ctx) error {
	count, err := handler.repositories.Accounts.CountAccounts()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to check setup status")
	}
	return c.JSON(fiber.Map{"needsSetup": count == 0})
}

// Register creates the single local account. Once one exists the endpoint
// refuses further registrations.
func (handler *Handler) Register(c *fiber.Ctx) error {
	var input credentialsInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if !emailPattern.MatchString(email) {
		return apiError(c, fiber.StatusBadRequest, "invalid email")
	}
	if len(input.Password) < minPasswordLength {
		return apiError(c, fiber.StatusBadRequest, "password too short")
	}

	count, err := handler.repositories.Accounts.CountAccounts()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to check setup status")
	}
	if count > 0 {
		return apiError(c, fiber.StatusForbidden, "already configured")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to hash password")
	}

	recoveryCode, err := security.NewRecoveryCode()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to generate recovery code")
	}
	recoveryHash, err := bcrypt.GenerateFromPassword([]byte(recoveryCode), bcrypt.DefaultCost)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to hash recovery code")
	}

	account := models.Account{
		Email:            email,
		PasswordHash:     string(passwordHash),
		RecoveryCodeHash: string(recoveryHash),
	}
	if err := handler.repositories.Accounts.Create(&account); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create account")
	}

	if err := handler.setAuthCookie(c, account.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to issue session")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"recoveryCode": recoveryCode})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	var input credentialsInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	account, err := handler.repositories.Accounts.FindByNormalizedEmail(email)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(input.Password)) != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	if err := handler.setAuthCookie(c, account.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to issue session")
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"status": "ok"})
}

// ResetPassword exchanges the one-time recovery code for a new password and
// rotates the code.
func (handler *Handler) ResetPassword(c *fiber.Ctx) error {
	var input resetPasswordInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if len(input.NewPassword) < minPasswordLength {
		return apiError(c, fiber.StatusBadRequest, "password too short")
	}

	account, err := handler.repositories.Accounts.FindFirst()
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid recovery code")
	}
	code := strings.ToUpper(strings.TrimSpace(input.RecoveryCode))
	if bcrypt.CompareHashAndPassword([]byte(account.RecoveryCodeHash), []byte(code)) != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid recovery code")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to hash password")
	}
	if err := handler.repositories.Accounts.UpdatePassword(account.ID, string(passwordHash)); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update password")
	}

	nextCode, err := security.NewRecoveryCode()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to generate recovery code")
	}
	nextHash, err := bcrypt.GenerateFromPassword([]byte(nextCode), bcrypt.DefaultCost)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to hash recovery code")
	}
	if err := handler.repositories.Accounts.UpdateRecoveryCodeHash(account.ID, string(nextHash)); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to rotate recovery code")
	}

	return c.JSON(fiber.Map{"recoveryCode": nextCode})
}
