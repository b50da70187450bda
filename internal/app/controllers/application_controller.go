package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/networknexus/nexushub/internal/app/models/dto"
	"github.com/networknexus/nexushub/internal/app/services"
	"github.com/networknexus/nexushub/internal/middleware"
)

// ApplicationController handles PRN lookup and mentorship applications
type ApplicationController struct {
	applicationService services.ApplicationService
	mentorshipService  services.MentorshipService
}

// NewApplicationController creates a new ApplicationController
func NewApplicationController(applicationService services.ApplicationService, mentorshipService services.MentorshipService) *ApplicationController {
	return &ApplicationController{
		applicationService: applicationService,
		mentorshipService:  mentorshipService,
	}
}

// ApplyToMentorship enrolls a student in a mentorship
// @Summary Apply to a mentorship
// @Description Looks the student up by PRN and enrolls them if a seat is left and they have not applied before
// @Tags applications
// @Accept json
// @Produce json
// @Param id path int true "Mentorship ID"
// @Param request body dto.ApplyMentorshipRequest true "Application"
// @Success 201 {object} dto.APIResponse{data=dto.ApplicationResponse}
// @Failure 400 {object} dto.ErrorResponse "Mentorship is already full, already applied or invalid input"
// @Failure 404 {object} dto.ErrorResponse "Student or mentorship not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /mentorships/{id}/apply [post]
// @Router /applications/mentorships/{id}/apply [post]
func (c *ApplicationController) ApplyToMentorship(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "mentorship")
	if !ok {
		return
	}

	var req dto.ApplyMentorshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	result, err := c.applicationService.ApplyToMentorship(ctx.Request.Context(), id, req.PRN, req.Justification)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.ApplicationResponse{
		Student: dto.NewStudentSnapshot(result.Student),
		Mentorship: dto.MentorshipOccupancy{
			ID:    result.Mentorship.ID,
			Title: result.Mentorship.Title,
			Limit: result.Mentorship.Occupancy(),
		},
	}, "Application submitted successfully"))
}

// ValidatePRN resolves a PRN to the student's profile for auto-fill
// @Summary Validate PRN
// @Tags applications
// @Produce json
// @Param prn path string true "Permanent registration number"
// @Success 200 {object} dto.APIResponse{data=dto.StudentSnapshot}
// @Failure 404 {object} dto.ErrorResponse "Student not found with this PRN"
// @Router /applications/validate-prn/{prn} [get]
func (c *ApplicationController) ValidatePRN(ctx *gin.Context) {
	student, err := c.applicationService.ValidatePRN(ctx.Request.Context(), ctx.Param("prn"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewStudentSnapshot(student), "PRN validated successfully"))
}

// GetParticipants lists a mentorship's participants
// @Summary Mentorship participants
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Mentorship ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.ParticipantResponse}
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Mentorship not found"
// @Router /applications/mentorships/{id}/participants [get]
func (c *ApplicationController) GetParticipants(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "mentorship")
	if !ok {
		return
	}

	participants, err := c.mentorshipService.GetParticipants(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewParticipantResponses(participants), "Participants retrieved successfully"))
}
