package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/networknexus/nexushub/internal/app/controllers"
	"github.com/networknexus/nexushub/internal/middleware"
	"github.com/networknexus/nexushub/internal/pkg/websocket"
)

// Controllers groups every controller the router mounts
type Controllers struct {
	Alumni      *controllers.AlumniController
	Mentorship  *controllers.MentorshipController
	Application *controllers.ApplicationController
	Internship  *controllers.InternshipController
	Admin       *controllers.AdminController
}

// SetupRouter configures all application routes under /api/v1
func SetupRouter(
	router *gin.Engine,
	c Controllers,
	authMiddleware *middleware.AuthMiddleware,
	wsHandler *websocket.Handler,
) {
	v1 := router.Group("/api/v1")
	admin := authMiddleware.AdminOnly()

	v1.POST("/admin/login", c.Admin.Login)

	// --- Alumni ---
	alumni := v1.Group("/alumni")
	{
		alumni.GET("", c.Alumni.ListAlumni)
		alumni.GET("/:id", c.Alumni.GetAlumni)

		alumniAdmin := alumni.Group("", admin...)
		{
			alumniAdmin.POST("", c.Alumni.CreateAlumni)
			alumniAdmin.PUT("/:id", c.Alumni.UpdateAlumni)
			alumniAdmin.DELETE("/:id", c.Alumni.DeleteAlumni)
		}
	}
	v1.GET("/hall-of-fame", c.Alumni.GetHallOfFame)

	// --- Mentorships ---
	mentorships := v1.Group("/mentorships")
	{
		mentorships.GET("", c.Mentorship.ListMentorships)
		mentorships.GET("/ws", wsHandler.HandleConnection)
		mentorships.GET("/metadata/departments", c.Mentorship.GetDepartments)
		mentorships.GET("/metadata/studyyears", c.Mentorship.GetStudyYears)
		mentorships.GET("/:id", c.Mentorship.GetMentorship)
		mentorships.POST("/:id/apply", c.Application.ApplyToMentorship)

		mentorshipsAdmin := mentorships.Group("", admin...)
		{
			mentorshipsAdmin.POST("", c.Mentorship.CreateMentorship)
			mentorshipsAdmin.PATCH("/:id/approve", c.Mentorship.ApproveMentorship)
		}
	}

	// --- Applications ---
	applications := v1.Group("/applications")
	{
		applications.GET("/validate-prn/:prn", c.Application.ValidatePRN)
		applications.POST("/mentorships/:id/apply", c.Application.ApplyToMentorship)
		applications.GET("/mentorships/:id/participants", append(authMiddleware.AdminOnly(), c.Application.GetParticipants)...)
	}

	// --- Internships ---
	internships := v1.Group("/internships")
	{
		internships.GET("", c.Internship.ListInternships)
		internships.GET("/search", c.Internship.SearchInternships)
		internships.GET("/:id", c.Internship.GetInternship)
		internships.POST("/:id/apply", c.Internship.ApplyToInternship)
		internships.POST("", append(authMiddleware.AdminOnly(), c.Internship.CreateInternship)...)
	}
}
