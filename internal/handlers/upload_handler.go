package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/dineshhh-06/ai-powered-resume-screening/internal/models"
	"github.com/dineshhh-06/ai-powered-resume-screening/internal/services"
)

type UploadHandler struct {
	storageService services.StorageService
	maxFileSize    int64
}

func NewUploadHandler(storageService services.StorageService, maxFileSize int64) *UploadHandler {
	return &UploadHandler{
		storageService: storageService,
		maxFileSize:    maxFileSize,
	}
}

// HandleUploadResumes handles POST /upload-resumes. Accepts multiple PDF
// files in the "resumes" multipart field and stores each under a unique
// name. Files that are too large or not PDFs are skipped; the request
// fails only when nothing valid was uploaded.
func (h *UploadHandler) HandleUploadResumes(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Status:  models.StatusError,
			Message: "No resume files provided",
		})
	}

	files := form.File["resumes"]
	if len(files) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Status:  models.StatusError,
			Message: "No resume files selected",
		})
	}

	var uploaded []models.UploadedFile

	for _, file := range files {
		if file.Size > h.maxFileSize {
			continue
		}

		storedName, filePath, err := h.storageService.SaveResume(file)
		if err != nil {
			continue
		}

		uploaded = append(uploaded, models.UploadedFile{
			OriginalName: file.Filename,
			StoredName:   storedName,
			Path:         filePath,
		})
	}

	if len(uploaded) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Status:  models.StatusError,
			Message: "No valid PDF files were uploaded",
		})
	}

	return c.JSON(models.UploadResponse{
		Status:  models.StatusSuccess,
		Message: fmt.Sprintf("Successfully uploaded %d resume(s)", len(uploaded)),
		Files:   uploaded,
	})
}
