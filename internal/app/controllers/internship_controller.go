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

// InternshipController handles internship listings and apply clicks
type InternshipController struct {
	internshipService services.InternshipService
}

// NewInternshipController creates a new InternshipController
func NewInternshipController(internshipService services.InternshipService) *InternshipController {
	return &InternshipController{internshipService: internshipService}
}

func (c *InternshipController) list(ctx *gin.Context, filter repositories.InternshipFilter, message string) {
	filter.Page, filter.Limit = helpers.ParsePaginationParams(ctx, repositories.InternshipPageSize)

	result, err := c.internshipService.ListInternships(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.NewSuccessResponse(dto.NewInternshipResponses(result.Items), message).
		WithMeta(dto.ListMeta{Pagination: result.PageInfo})
	ctx.JSON(http.StatusOK, resp)
}

// ListInternships lists open internships
// @Summary List internships
// @Tags internships
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=[]dto.InternshipResponse,meta=dto.ListMeta}
// @Router /internships [get]
func (c *InternshipController) ListInternships(ctx *gin.Context) {
	c.list(ctx, repositories.InternshipFilter{}, "Internships retrieved successfully")
}

// SearchInternships searches open internships
// @Summary Search internships
// @Tags internships
// @Produce json
// @Param query query string false "Matches title, company and description"
// @Param location query string false "Exact location or All"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=[]dto.InternshipResponse,meta=dto.ListMeta}
// @Router /internships/search [get]
func (c *InternshipController) SearchInternships(ctx *gin.Context) {
	c.list(ctx, repositories.InternshipFilter{
		Query:    ctx.Query("query"),
		Location: ctx.Query("location"),
	}, "Search results retrieved successfully")
}

// GetInternship retrieves one internship
// @Summary Get internship by ID
// @Tags internships
// @Produce json
// @Param id path int true "Internship ID"
// @Success 200 {object} dto.APIResponse{data=dto.InternshipResponse}
// @Failure 404 {object} dto.ErrorResponse "Internship not found"
// @Router /internships/{id} [get]
func (c *InternshipController) GetInternship(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "internship")
	if !ok {
		return
	}

	i, err := c.internshipService.GetInternship(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewInternshipResponse(i), "Internship retrieved successfully"))
}

// CreateInternship adds an internship
// @Summary Create internship
// @Tags internships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateInternshipRequest true "Internship"
// @Success 201 {object} dto.APIResponse{data=dto.InternshipResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /internships [post]
func (c *InternshipController) CreateInternship(ctx *gin.Context) {
	var req dto.CreateInternshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	i, err := c.internshipService.CreateInternship(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.NewInternshipResponse(i), "Internship created successfully"))
}

// ApplyToInternship records an apply click and returns the external form link
// @Summary Apply to internship
// @Tags internships
// @Produce json
// @Param id path int true "Internship ID"
// @Success 200 {object} dto.APIResponse{data=dto.InternshipApplyResponse}
// @Failure 404 {object} dto.ErrorResponse "Internship not found"
// @Router /internships/{id}/apply [post]
func (c *InternshipController) ApplyToInternship(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "internship")
	if !ok {
		return
	}

	i, err := c.internshipService.TrackApplication(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.InternshipApplyResponse{
		GoogleFormLink: i.GoogleFormLink,
		Title:          i.Title,
		Company:        i.Company,
	}, "Redirecting to application form"))
}
