package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/initi8now/waitlist/internal/app/models/dto"
	"github.com/initi8now/waitlist/internal/app/services"
)

// NotificationController exposes the signup email dispatcher. The endpoint
// keeps the provider API key server-side; callers only submit the signup
// facts.
type NotificationController struct {
	notificationService *services.NotificationService
	logger              zerolog.Logger
}

// NewNotificationController creates a new NotificationController
func NewNotificationController(notificationService *services.NotificationService, logger zerolog.Logger) *NotificationController {
	return &NotificationController{
		notificationService: notificationService,
		logger:              logger,
	}
}

// Dispatch sends the two signup emails for a waitlist registration
// @Summary Send signup notification emails
// @Description Sends a confirmation email to the submitter and an alert to the operator mailbox.
// @Tags notifications
// @Accept json
// @Produce json
// @Param request body dto.NotificationRequest true "Signup facts"
// @Success 200 {object} dto.NotificationResponse "Both emails dispatched"
// @Failure 400 {object} dto.NotificationErrorResponse "Invalid input data"
// @Failure 500 {object} dto.NotificationErrorResponse "Dispatch failed"
// @Router /notifications/waitlist [post]
func (c *NotificationController) Dispatch(ctx *gin.Context) {
	var req dto.NotificationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid notification payload")
		ctx.JSON(http.StatusBadRequest, dto.NotificationErrorResponse{
			Error: "Invalid input data",
			Code:  dto.NotificationCodeValidationFailed,
		})
		return
	}

	resp, err := c.notificationService.Dispatch(ctx.Request.Context(), &req)
	if err != nil {
		// Detail is logged by the service; the caller gets a generic message
		ctx.JSON(http.StatusInternalServerError, dto.NotificationErrorResponse{
			Error: "An error occurred while processing your request. Please try again.",
			Code:  dto.NotificationCodeFailed,
		})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
