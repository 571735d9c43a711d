package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"moneyharbor/internal/services"
)

// ReminderHandler handles reminder requests.
type ReminderHandler struct {
	reminderService services.ReminderServicer
}

// NewReminderHandler creates a new ReminderHandler.
func NewReminderHandler(reminderService services.ReminderServicer) *ReminderHandler {
	return &ReminderHandler{reminderService: reminderService}
}

// CreateReminderRequest represents the request payload for a reminder.
// ReminderDate defaults to six months from now.
type CreateReminderRequest struct {
	Email        string     `json:"email" binding:"required"`
	ReminderDate *time.Time `json:"reminderDate"`
}

// CreateReminder handles scheduling a follow-up email.
// @Summary     Set a reminder
// @Description Schedule a follow-up email and send a confirmation
// @Tags        reminders
// @Accept      json
// @Produce     json
// @Param       request body CreateReminderRequest true "Reminder"
// @Success     201 {object} models.Reminder "Reminder created"
// @Failure     400 {object} ErrorResponse "Invalid email"
// @Failure     502 {object} ErrorResponse "Email provider failed"
// @Router      /reminders [post]
func (h *ReminderHandler) CreateReminder(c *gin.Context) {
	var req CreateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	reminder, err := h.reminderService.CreateReminder(c.Request.Context(), req.Email, req.ReminderDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "reminder": reminder})
}
