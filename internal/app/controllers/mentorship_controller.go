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

// MentorshipController handles mentorship listings and admin maintenance
type MentorshipController struct {
	mentorshipService services.MentorshipService
}

// NewMentorshipController creates a new MentorshipController
func NewMentorshipController(mentorshipService services.MentorshipService) *MentorshipController {
	return &MentorshipController{mentorshipService: mentorshipService}
}

// ListMentorships lists approved mentorships
// @Summary List mentorships
// @Description Approved mentorships only, latest date first, with current occupancy
// @Tags mentorships
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(3)
// @Param department query string false "Department or All"
// @Param studyYear query string false "Study year or All"
// @Param mode query string false "Online, Offline, Hybrid or All"
// @Param search query string false "Matches title, description and target audience"
// @Success 200 {object} dto.APIResponse{data=[]dto.MentorshipResponse,meta=dto.ListMeta}
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /mentorships [get]
func (c *MentorshipController) ListMentorships(ctx *gin.Context) {
	page, limit := helpers.ParsePaginationParams(ctx, repositories.MentorshipPageSize)

	result, err := c.mentorshipService.ListMentorships(ctx.Request.Context(), repositories.MentorshipFilter{
		Page:       page,
		Limit:      limit,
		Search:     ctx.Query("search"),
		Department: ctx.Query("department"),
		StudyYear:  ctx.Query("studyYear"),
		Mode:       ctx.Query("mode"),
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.NewSuccessResponse(dto.NewMentorshipResponses(result.Items), "Mentorships retrieved successfully").
		WithMeta(dto.ListMeta{Pagination: dto.NewCompactPagination(result.PageInfo)})
	ctx.JSON(http.StatusOK, resp)
}

// GetMentorship retrieves one mentorship
// @Summary Get mentorship by ID
// @Tags mentorships
// @Produce json
// @Param id path int true "Mentorship ID"
// @Success 200 {object} dto.APIResponse{data=dto.MentorshipResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid mentorship ID"
// @Failure 404 {object} dto.ErrorResponse "Mentorship not found"
// @Router /mentorships/{id} [get]
func (c *MentorshipController) GetMentorship(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "mentorship")
	if !ok {
		return
	}

	m, err := c.mentorshipService.GetMentorship(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewMentorshipResponse(m), "Mentorship retrieved successfully"))
}

// CreateMentorship adds a mentorship awaiting approval
// @Summary Create mentorship
// @Tags mentorships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateMentorshipRequest true "Mentorship"
// @Success 201 {object} dto.APIResponse{data=dto.MentorshipResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /mentorships [post]
func (c *MentorshipController) CreateMentorship(ctx *gin.Context) {
	var req dto.CreateMentorshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	m, err := c.mentorshipService.CreateMentorship(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.NewMentorshipResponse(m), "Mentorship created and awaiting approval"))
}

// ApproveMentorship publishes a mentorship
// @Summary Approve mentorship
// @Tags mentorships
// @Produce json
// @Security BearerAuth
// @Param id path int true "Mentorship ID"
// @Success 200 {object} dto.APIResponse{data=dto.MentorshipResponse}
// @Failure 404 {object} dto.ErrorResponse "Mentorship not found"
// @Router /mentorships/{id}/approve [patch]
func (c *MentorshipController) ApproveMentorship(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "mentorship")
	if !ok {
		return
	}

	m, err := c.mentorshipService.ApproveMentorship(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewMentorshipResponse(m), "Mentorship approved successfully"))
}

// GetDepartments lists the departments mentorships exist for
// @Summary Mentorship departments
// @Tags mentorships
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]string}
// @Router /mentorships/metadata/departments [get]
func (c *MentorshipController) GetDepartments(ctx *gin.Context) {
	departments, err := c.mentorshipService.GetDepartments(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(departments, "Departments retrieved successfully"))
}

// GetStudyYears lists the study years mentorships target
// @Summary Mentorship study years
// @Tags mentorships
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]string}
// @Router /mentorships/metadata/studyyears [get]
func (c *MentorshipController) GetStudyYears(ctx *gin.Context) {
	years, err := c.mentorshipService.GetStudyYears(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(years, "Study years retrieved successfully"))
}
