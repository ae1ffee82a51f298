// Package controllers handles HTTP request handling
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

// WaitlistController handles waitlist submission endpoints
type WaitlistController struct {
	waitlistService *services.WaitlistService
	logger          zerolog.Logger
}

// NewWaitlistController creates a new WaitlistController
func NewWaitlistController(waitlistService *services.WaitlistService, logger zerolog.Logger) *WaitlistController {
	return &WaitlistController{
		waitlistService: waitlistService,
		logger:          logger,
	}
}

// SubmitStudent handles a student waitlist submission
// @Summary Join the student waitlist
// @Description Validates and stores a student signup. A duplicate email returns 200 with an already_registered status instead of an error.
// @Tags waitlist
// @Accept json
// @Produce json
// @Param request body dto.StudentSubmissionRequest true "Student signup form"
// @Success 201 {object} dto.SubmissionResponse "Entry created"
// @Success 200 {object} dto.SubmissionResponse "Email already on the waitlist"
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /waitlist/students [post]
func (c *WaitlistController) SubmitStudent(ctx *gin.Context) {
	var req dto.StudentSubmissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Malformed student submission payload")
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resp, err := c.waitlistService.SubmitStudent(ctx.Request.Context(), &req, tracking.FromRequest(ctx.Request))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(submissionStatusCode(resp.Status), resp)
}

// SubmitRecruiter handles a recruiter waitlist submission
// @Summary Join the recruiter waitlist
// @Description Validates and stores a recruiter signup. A duplicate work email returns 200 with an already_registered status instead of an error.
// @Tags waitlist
// @Accept json
// @Produce json
// @Param request body dto.RecruiterSubmissionRequest true "Recruiter signup form"
// @Success 201 {object} dto.SubmissionResponse "Entry created"
// @Success 200 {object} dto.SubmissionResponse "Email already on the waitlist"
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /waitlist/recruiters [post]
func (c *WaitlistController) SubmitRecruiter(ctx *gin.Context) {
	var req dto.RecruiterSubmissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Malformed recruiter submission payload")
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resp, err := c.waitlistService.SubmitRecruiter(ctx.Request.Context(), &req, tracking.FromRequest(ctx.Request))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(submissionStatusCode(resp.Status), resp)
}

// submissionStatusCode maps a submission outcome to its HTTP status: a
// fresh insert is a 201, an already-registered email a 200.
func submissionStatusCode(status dto.SubmissionStatus) int {
	if status == dto.StatusCreated {
		return http.StatusCreated
	}
	return http.StatusOK
}
