package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sacco-desk/internal/adapters/persistence/models"
	"sacco-desk/internal/core/domain"
	"sacco-desk/internal/pkg/response"
)

// FeedbackHandler handles feedback endpoints
type FeedbackHandler struct {
	db *gorm.DB
}

// NewFeedbackHandler creates a new feedback handler
func NewFeedbackHandler(db *gorm.DB) *FeedbackHandler {
	return &FeedbackHandler{db: db}
}

// List handles GET /feedbacks
func (h *FeedbackHandler) List(c *fiber.Ctx) error {
	var rows []models.Feedback
	if err := h.db.Order("created_at DESC").Find(&rows).Error; err != nil {
		return response.InternalServerError(c, "Failed to load feedbacks")
	}

	feedbacks := make([]domain.Feedback, 0, len(rows))
	for i := range rows {
		feedbacks = append(feedbacks, rows[i].ToDomain())
	}
	return c.JSON(fiber.Map{"feedbacks": feedbacks})
}

// FeedbackRequest represents the send-feedback request body
type FeedbackRequest struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Create handles POST /feedback
func (h *FeedbackHandler) Create(c *fiber.Ctx) error {
	var req FeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.Message == "" {
		return response.ValidationFailed(c, map[string][]string{
			"message": {"The message field is required."},
		})
	}

	userID, _ := c.Locals("userID").(uint)
	feedback := models.Feedback{
		UserID:  userID,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := h.db.Create(&feedback).Error; err != nil {
		return response.InternalServerError(c, "Failed to create feedback")
	}
	return response.Created(c, fiber.Map{"feedback": feedback.ToDomain()})
}

// RespondRequest represents the respond request body
type RespondRequest struct {
	Response string `json:"response"`
}

// Respond handles PUT /feedback/:id/respond
func (h *FeedbackHandler) Respond(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid feedback id")
	}

	var req RespondRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.Response == "" {
		return response.BadRequest(c, "Response is required")
	}

	var feedback models.Feedback
	if err := h.db.First(&feedback, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Feedback not found")
		}
		return response.InternalServerError(c, "Failed to load feedback")
	}

	if err := h.db.Model(&feedback).Update("response", req.Response).Error; err != nil {
		return response.InternalServerError(c, "Failed to update feedback")
	}
	return c.JSON(fiber.Map{"response": req.Response})
}
