package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/networknexus/nexushub/internal/app/models/dto"
	"github.com/networknexus/nexushub/internal/app/services"
	"github.com/networknexus/nexushub/internal/middleware"
	"github.com/rs/zerolog"
)

// AdminController handles admin authentication
type AdminController struct {
	adminService services.AdminService
	logger       zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService services.AdminService, logger zerolog.Logger) *AdminController {
	return &AdminController{
		adminService: adminService,
		logger:       logger,
	}
}

// Login handles admin login
// @Summary Admin login
// @Description Authenticates the administrator and returns an access token for the admin routes
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.AdminLoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.TokenResponse} "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or validation error"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/login [post]
func (c *AdminController) Login(ctx *gin.Context) {
	var req dto.AdminLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid admin login payload")
		middleware.HandleBindingError(ctx, err)
		return
	}

	token, err := c.adminService.Login(ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(token, "Login successful"))
}
