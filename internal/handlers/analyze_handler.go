package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/dineshhh-06/ai-powered-resume-screening/internal/models"
	"github.com/dineshhh-06/ai-powered-resume-screening/internal/services"
)

type AnalyzeHandler struct {
	analyzer services.AnalyzerService
}

func NewAnalyzeHandler(analyzer services.AnalyzerService) *AnalyzeHandler {
	return &AnalyzeHandler{analyzer: analyzer}
}

// HandleAnalyze handles POST /analyze. Input validation failures and
// batch-level failures map to 400; a batch where at least one resume
// succeeded is a 200 even when other entries errored.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	var req models.AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Status:  models.StatusError,
			Message: "No data provided",
		})
	}

	if len(req.ResumeFiles) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Status:  models.StatusError,
			Message: "No resume files specified for analysis",
		})
	}

	if req.JobDescription == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Status:  models.StatusError,
			Message: "No job description provided for analysis",
		})
	}

	batch, err := h.analyzer.AnalyzeBatch(c.Context(), req.JobDescription, req.ResumeFiles)
	if err != nil {
		if errors.Is(err, services.ErrJobDescriptionEmpty) {
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
				Status:  models.StatusError,
				Message: "Could not process the job description",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Status:  models.StatusError,
			Message: "Analysis failed",
		})
	}

	status := fiber.StatusOK
	if batch.Status == models.StatusError {
		status = fiber.StatusBadRequest
	}

	return c.Status(status).JSON(batch)
}
