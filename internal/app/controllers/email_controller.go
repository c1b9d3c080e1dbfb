package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edukta/backend/internal/app/models/dto"
	"github.com/edukta/backend/internal/middleware"
	"github.com/edukta/backend/internal/pkg/email"
)

// EmailController handles outbound notification endpoints.
type EmailController struct {
	emailService email.Service
}

// NewEmailController creates a new EmailController
func NewEmailController(emailService email.Service) *EmailController {
	return &EmailController{emailService: emailService}
}

// SendNotification handles POST /email/notification
func (ctrl *EmailController) SendNotification(c *gin.Context) {
	var req dto.NotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "Invalid notification payload", nil)
		return
	}

	if err := ctrl.emailService.SendNotification(req.To, req.Subject, req.Body); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, "Notification sent", nil)
}
