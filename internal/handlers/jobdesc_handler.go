package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/dineshhh-06/ai-powered-resume-screening/internal/models"
)

type JobDescriptionHandler struct{}

func NewJobDescriptionHandler() *JobDescriptionHandler {
	return &JobDescriptionHandler{}
}

// HandleSubmit handles POST /submit-job-description. The text is validated
// and handed back with a generated id; nothing is stored server-side, the
// caller re-supplies the text on analyze.
func (h *JobDescriptionHandler) HandleSubmit(c *fiber.Ctx) error {
	var req models.JobDescriptionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Status:  models.StatusError,
			Message: "No job description provided",
		})
	}

	if strings.TrimSpace(req.JobDescription) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Status:  models.StatusError,
			Message: "Job description cannot be empty",
		})
	}

	return c.JSON(models.JobDescriptionResponse{
		Status:         models.StatusSuccess,
		Message:        "Job description received",
		JDID:           strings.ReplaceAll(uuid.New().String(), "-", ""),
		JobDescription: req.JobDescription,
	})
}
