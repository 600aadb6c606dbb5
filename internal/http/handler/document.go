package handler

import (
	"errors"
	"fmt"
	"path"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"servidoc/internal/service"
)

// UploadDocument accepts a multipart form with the file plus the owning
// servidor's national ID and the document type.
func UploadDocument(documents service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		nationalID := c.FormValue("nationalId")
		documentType := c.FormValue("documentType")

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		_, err = documents.Upload(c.UserContext(), nationalID, documentType, f, fh.Filename, ct, fh.Size)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrMissingFields):
				return writeError(c, fiber.StatusBadRequest, "MISSING_FIELDS", "nationalId and documentType are required")
			case errors.Is(err, service.ErrEmptyFile):
				return writeError(c, fiber.StatusBadRequest, "EMPTY_FILE", "file payload is empty")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "document uploaded",
		})
	}
}

// DownloadDocument streams the stored blob as an attachment. A missing
// record and a missing blob both answer 404.
func DownloadDocument(documents service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		rc, doc, err := documents.Fetch(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "document not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}

		filename := path.Base(doc.StoragePath)
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
		if doc.ContentType != "" {
			c.Set(fiber.HeaderContentType, doc.ContentType)
		}
		// The stream is closed by the server after the response is written.
		return c.SendStream(rc, int(doc.Size))
	}
}

// QueryDocuments lists the documents owned by a servidor; the nationalId
// query parameter is mandatory and an empty result surfaces as 404.
func QueryDocuments(documents service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		nationalID := c.Query("nationalId")
		if nationalID == "" {
			return writeError(c, fiber.StatusBadRequest, "MISSING_FIELDS", "nationalId query parameter is required")
		}

		items, err := documents.ListByNationalID(c.UserContext(), nationalID)
		if err != nil {
			if errors.Is(err, service.ErrMissingFields) {
				return writeError(c, fiber.StatusBadRequest, "MISSING_FIELDS", "nationalId query parameter is required")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		if len(items) == 0 {
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "no document found for the given national id")
		}

		return c.JSON(fiber.Map{
			"documentos": items,
		})
	}
}

// ListAllDocuments is the unfiltered diagnostic listing. It serializes the
// same stable document shape as the filtered listing.
func ListAllDocuments(documents service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := documents.ListAll(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		if len(items) == 0 {
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "no document found")
		}

		return c.JSON(fiber.Map{
			"documentos": items,
		})
	}
}
