package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/initi8now/waitlist/internal/app/models/dto"
	"github.com/initi8now/waitlist/internal/app/services"
	"github.com/initi8now/waitlist/internal/middleware"
)

// AdminController handles the dashboard endpoints. Every route behind it is
// gated by the admin role middleware.
type AdminController struct {
	adminService *services.AdminService
	logger       zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService *services.AdminService, logger zerolog.Logger) *AdminController {
	return &AdminController{
		adminService: adminService,
		logger:       logger,
	}
}

// ListStudents lists the student waitlist
// @Summary List student waitlist entries
// @Description Returns all student entries, newest first.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.StudentEntry}
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/students [get]
func (c *AdminController) ListStudents(ctx *gin.Context) {
	entries, err := c.adminService.ListStudents(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to list students")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: entries, Timestamp: time.Now()})
}

// ListRecruiters lists the recruiter waitlist
// @Summary List recruiter waitlist entries
// @Description Returns all recruiter entries, newest first.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.RecruiterEntry}
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/recruiters [get]
func (c *AdminController) ListRecruiters(ctx *gin.Context) {
	entries, err := c.adminService.ListRecruiters(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to list recruiters")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: entries, Timestamp: time.Now()})
}

// ListSubscribers lists the newsletter subscribers
// @Summary List newsletter subscribers
// @Description Returns all newsletter subscribers, newest first.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.NewsletterSubscriber}
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/newsletter [get]
func (c *AdminController) ListSubscribers(ctx *gin.Context) {
	subs, err := c.adminService.ListSubscribers(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to list subscribers")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: subs, Timestamp: time.Now()})
}

// Stats reports per-collection totals
// @Summary Dashboard stats
// @Description Returns totals for each collection. Results are cached briefly.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.StatsResponse}
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/stats [get]
func (c *AdminController) Stats(ctx *gin.Context) {
	stats, err := c.adminService.Stats(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to compute stats")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: stats, Timestamp: time.Now()})
}

// Export streams a collection as CSV
// @Summary Export a collection as CSV
// @Description Downloads a collection (students, recruiters or newsletter) as a CSV attachment. An empty collection returns 204.
// @Tags admin
// @Produce text/csv
// @Security BearerAuth
// @Param collection path string true "Collection name" Enums(students, recruiters, newsletter)
// @Success 200 {string} string "CSV document"
// @Success 204 "Collection is empty"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Unknown collection"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/export/{collection} [get]
func (c *AdminController) Export(ctx *gin.Context) {
	collection := ctx.Param("collection")

	export, err := c.adminService.ExportCollection(ctx.Request.Context(), collection)
	if err != nil {
		c.logger.Error().Err(err).Str("collection", collection).Msg("Export failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	if export.Rows == 0 {
		ctx.Status(http.StatusNoContent)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	ctx.Data(http.StatusOK, "text/csv; charset=utf-8", export.Content)
}
