package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/networknexus/nexushub/internal/app/models/dto"
	"github.com/networknexus/nexushub/internal/app/repositories"
	"github.com/networknexus/nexushub/internal/app/services"
	"github.com/networknexus/nexushub/internal/middleware"
	"github.com/networknexus/nexushub/internal/pkg/helpers"
)

// AlumniController handles the alumni directory and its admin maintenance
type AlumniController struct {
	alumniService     services.AlumniService
	hallOfFameService services.HallOfFameService
}

// NewAlumniController creates a new AlumniController
func NewAlumniController(alumniService services.AlumniService, hallOfFameService services.HallOfFameService) *AlumniController {
	return &AlumniController{
		alumniService:     alumniService,
		hallOfFameService: hallOfFameService,
	}
}

// ListAlumni lists the alumni directory
// @Summary List alumni
// @Description Paginated alumni directory with case-insensitive search and filters. Sorted by pass-out year, newest first.
// @Tags alumni
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(6)
// @Param search query string false "Matches name, company, position, location and success story"
// @Param department query string false "Department or All"
// @Param passOutYear query string false "All, Before YYYY or YYYY"
// @Success 200 {object} dto.AlumniListResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /alumni [get]
func (c *AlumniController) ListAlumni(ctx *gin.Context) {
	page, limit := helpers.ParsePaginationParams(ctx, repositories.AlumniPageSize)

	result, err := c.alumniService.ListAlumni(ctx.Request.Context(), repositories.AlumniFilter{
		Page:        page,
		Limit:       limit,
		Search:      ctx.Query("search"),
		Department:  ctx.Query("department"),
		PassOutYear: ctx.Query("passOutYear"),
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AlumniListResponse{
		Success:     true,
		Message:     "Alumni retrieved successfully",
		TotalAlumni: result.PageInfo.TotalItems,
		TotalPages:  result.PageInfo.TotalPages,
		CurrentPage: result.PageInfo.CurrentPage,
		Alumni:      dto.NewAlumniResponses(result.Items),
	})
}

// GetHallOfFame lists the hall of fame showcase
// @Summary Hall of fame
// @Description Alumni with a hall of fame tier, featured first. Short pages are topped up so a page is full whenever enough alumni match.
// @Tags alumni
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(6)
// @Param department query string false "Department or All"
// @Param search query string false "Matches name, position, company and achievements"
// @Param hallOfFameStatus query string false "featured, notable or all"
// @Success 200 {object} dto.HallOfFameResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /hall-of-fame [get]
func (c *AlumniController) GetHallOfFame(ctx *gin.Context) {
	page, limit := helpers.ParsePaginationParams(ctx, repositories.HallOfFamePageSize)

	result, err := c.hallOfFameService.GetHallOfFame(ctx.Request.Context(), repositories.HallOfFameFilter{
		Page:       page,
		Limit:      limit,
		Search:     ctx.Query("search"),
		Department: ctx.Query("department"),
		Status:     ctx.Query("hallOfFameStatus"),
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.HallOfFameResponse{
		Success:    true,
		Message:    "Hall of fame retrieved successfully",
		Alumni:     dto.NewAlumniResponses(result.Items),
		Pagination: result.PageInfo,
	})
}

// GetAlumni retrieves one alumni record
// @Summary Get alumni by ID
// @Tags alumni
// @Produce json
// @Param id path int true "Alumni ID"
// @Success 200 {object} dto.APIResponse{data=dto.AlumniResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid alumni ID"
// @Failure 404 {object} dto.ErrorResponse "Alumni not found"
// @Router /alumni/{id} [get]
func (c *AlumniController) GetAlumni(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "alumni")
	if !ok {
		return
	}

	alumni, err := c.alumniService.GetAlumni(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewAlumniResponse(alumni), "Alumni retrieved successfully"))
}

// CreateAlumni adds an alumni record
// @Summary Create alumni
// @Tags alumni
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAlumniRequest true "Alumni record"
// @Success 201 {object} dto.APIResponse{data=dto.AlumniResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Router /alumni [post]
func (c *AlumniController) CreateAlumni(ctx *gin.Context) {
	var req dto.CreateAlumniRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	alumni, err := c.alumniService.CreateAlumni(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.NewAlumniResponse(alumni), "Alumni created successfully"))
}

// UpdateAlumni applies a partial update to an alumni record
// @Summary Update alumni
// @Tags alumni
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Alumni ID"
// @Param request body dto.UpdateAlumniRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=dto.AlumniResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Alumni not found"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Router /alumni/{id} [put]
func (c *AlumniController) UpdateAlumni(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "alumni")
	if !ok {
		return
	}

	var req dto.UpdateAlumniRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	alumni, err := c.alumniService.UpdateAlumni(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewAlumniResponse(alumni), "Alumni updated successfully"))
}

// DeleteAlumni removes an alumni record
// @Summary Delete alumni
// @Tags alumni
// @Produce json
// @Security BearerAuth
// @Param id path int true "Alumni ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "Alumni not found"
// @Router /alumni/{id} [delete]
func (c *AlumniController) DeleteAlumni(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "alumni")
	if !ok {
		return
	}

	if err := c.alumniService.DeleteAlumni(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Alumni deleted successfully"))
}
