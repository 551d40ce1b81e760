package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sacco-desk/internal/adapters/persistence/models"
	"sacco-desk/internal/core/domain"
	"sacco-desk/internal/pkg/response"
)

// MeetingHandler handles meeting endpoints
type MeetingHandler struct {
	db *gorm.DB
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(db *gorm.DB) *MeetingHandler {
	return &MeetingHandler{db: db}
}

// List handles GET /meetings, returning the bare meeting array.
func (h *MeetingHandler) List(c *fiber.Ctx) error {
	var rows []models.Meeting
	if err := h.db.Order("date ASC").Find(&rows).Error; err != nil {
		return response.InternalServerError(c, "Failed to load meetings")
	}

	meetings := make([]domain.Meeting, 0, len(rows))
	for i := range rows {
		meetings = append(meetings, rows[i].ToDomain())
	}
	return c.JSON(meetings)
}

// MeetingRequest represents the create-meeting request body
type MeetingRequest struct {
	Title    string `json:"title"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Location string `json:"location"`
	Agenda   string `json:"agenda"`
}

// Create handles POST /meetings, returning the bare created meeting.
func (h *MeetingHandler) Create(c *fiber.Ctx) error {
	var req MeetingRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	errs := map[string][]string{}
	if req.Title == "" {
		errs["title"] = append(errs["title"], "The title field is required.")
	}
	if req.Date == "" {
		errs["date"] = append(errs["date"], "The date field is required.")
	}
	if len(errs) > 0 {
		return response.ValidationFailed(c, errs)
	}

	meeting := models.Meeting{
		Title:    req.Title,
		Date:     req.Date,
		Time:     req.Time,
		Location: req.Location,
		Agenda:   req.Agenda,
	}
	if err := h.db.Create(&meeting).Error; err != nil {
		return response.InternalServerError(c, "Failed to create meeting")
	}
	return response.Created(c, meeting.ToDomain())
}
