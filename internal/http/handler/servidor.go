package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"servidoc/internal/repository"
	"servidoc/internal/service"
)

// registerServidorRequest carries the seven mandatory fields. Active is a
// pointer so an absent field is distinguishable from an explicit false.
type registerServidorRequest struct {
	Name               string `json:"name"`
	NationalID         string `json:"nationalId"`
	RegistrationNumber string `json:"registrationNumber"`
	OrgCode            string `json:"orgCode"`
	Active             *bool  `json:"active"`
	JobTitle           string `json:"jobTitle"`
	Department         string `json:"department"`
}

// RegisterServidor creates a new servidor record. Uniqueness conflicts on
// national ID or registration number surface as 409.
func RegisterServidor(servidores service.ServidorService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req registerServidorRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if req.Active == nil {
			return writeError(c, fiber.StatusBadRequest, "MISSING_FIELDS", "all servidor fields are required")
		}

		_, err := servidores.Create(c.UserContext(), service.ServidorInput{
			Name:               req.Name,
			NationalID:         req.NationalID,
			RegistrationNumber: req.RegistrationNumber,
			OrgCode:            req.OrgCode,
			Active:             *req.Active,
			JobTitle:           req.JobTitle,
			Department:         req.Department,
		})
		if err != nil {
			switch {
			case errors.Is(err, service.ErrMissingFields):
				return writeError(c, fiber.StatusBadRequest, "MISSING_FIELDS", "all servidor fields are required")
			case errors.Is(err, service.ErrNationalIDTaken):
				return writeError(c, fiber.StatusConflict, "NATIONAL_ID_EXISTS", "national id already registered")
			case errors.Is(err, service.ErrRegistrationTaken):
				return writeError(c, fiber.StatusConflict, "REGISTRATION_NUMBER_EXISTS", "registration number already registered")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "servidor registered",
		})
	}
}

// QueryServidores filters servidor records by optional query parameters.
// An empty result surfaces as 404, matching the external contract.
func QueryServidores(servidores service.ServidorService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filter := repository.ServidorFilter{
			Name:               c.Query("name"),
			NationalID:         c.Query("nationalId"),
			RegistrationNumber: c.Query("registrationNumber"),
			OrgCode:            c.Query("orgCode"),
		}

		items, err := servidores.Search(c.UserContext(), filter)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		if len(items) == 0 {
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "no servidor matches the given parameters")
		}

		return c.JSON(fiber.Map{
			"servidores": items,
		})
	}
}
