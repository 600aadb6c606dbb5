package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"servidoc/internal/service"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Login authenticates a user and returns a signed access token.
func Login(users service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req loginRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		token, err := users.Login(c.UserContext(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrMissingFields):
				return writeError(c, fiber.StatusBadRequest, "MISSING_FIELDS", "email and password are required")
			case errors.Is(err, service.ErrInvalidCredentials):
				return writeError(c, fiber.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid credentials")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}

		return c.JSON(fiber.Map{
			"message": "login successful",
			"token":   token,
		})
	}
}

// RegisterUser creates a new account.
func RegisterUser(users service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req registerUserRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		if _, err := users.Register(c.UserContext(), req.Name, req.Email, req.Password, req.Role); err != nil {
			switch {
			case errors.Is(err, service.ErrMissingFields):
				return writeError(c, fiber.StatusBadRequest, "MISSING_FIELDS", "name, email, password and role are required")
			case errors.Is(err, service.ErrInvalidRole):
				return writeError(c, fiber.StatusBadRequest, "INVALID_ROLE", "role must be 'manager' or 'common'")
			case errors.Is(err, service.ErrEmailTaken):
				return writeError(c, fiber.StatusConflict, "EMAIL_EXISTS", "email already registered")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "user registered",
		})
	}
}
