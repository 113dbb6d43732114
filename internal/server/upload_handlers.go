package server

import (
	"errors"

	"ripple/internal/models"
	"ripple/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Upload handles POST /upload
// @Summary Upload an image
// @Description Accepts one jpg/jpeg/png/gif file and returns its public URL
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Image file"
// @Success 201 {object} object{fileUrl=string}
// @Failure 400 {object} models.ErrorResponse
// @Router /upload [post]
func (s *Server) Upload(c *fiber.Ctx) error {
	if s.uploadService == nil {
		return respondError(c, models.NewInternalError(errors.New("object storage not configured")))
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("A file is required"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return respondError(c, models.NewInternalError(err))
	}
	defer file.Close()

	url, err := s.uploadService.UploadImage(c.Context(), service.UploadInput{
		Filename: fileHeader.Filename,
		Size:     fileHeader.Size,
		Body:     file,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"fileUrl": url})
}
