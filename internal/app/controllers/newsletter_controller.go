package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/initi8now/waitlist/internal/app/models/dto"
	"github.com/initi8now/waitlist/internal/app/services"
	"github.com/initi8now/waitlist/internal/middleware"
	"github.com/initi8now/waitlist/internal/pkg/tracking"
)

// NewsletterController handles newsletter subscription endpoints
type NewsletterController struct {
	newsletterService *services.NewsletterService
	logger            zerolog.Logger
}

// NewNewsletterController creates a new NewsletterController
func NewNewsletterController(newsletterService *services.NewsletterService, logger zerolog.Logger) *NewsletterController {
	return &NewsletterController{
		newsletterService: newsletterService,
		logger:            logger,
	}
}

// Subscribe handles a newsletter signup
// @Summary Subscribe to the newsletter
// @Description Stores a newsletter subscriber. A duplicate email returns 200 with an already_registered status instead of an error.
// @Tags newsletter
// @Accept json
// @Produce json
// @Param request body dto.SubscribeRequest true "Subscriber email"
// @Success 201 {object} dto.SubmissionResponse "Subscriber created"
// @Success 200 {object} dto.SubmissionResponse "Email already subscribed"
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /newsletter/subscribe [post]
func (c *NewsletterController) Subscribe(ctx *gin.Context) {
	var req dto.SubscribeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Malformed newsletter payload")
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resp, err := c.newsletterService.Subscribe(ctx.Request.Context(), &req, tracking.FromRequest(ctx.Request))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(submissionStatusCode(resp.Status), resp)
}
