package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/doruk/portfolio/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	publicController *controllers.PublicController,
	adminController *controllers.AdminController,
	projectController *controllers.ProjectController,
	skillController *controllers.SkillController,
	certificationController *controllers.CertificationController,
	experienceController *controllers.ExperienceController,
	educationController *controllers.EducationController,
	messageController *controllers.MessageController,
) {
	// --- Public routes ---
	router.GET("/", publicController.Index)
	router.POST("/contact", messageController.Submit)

	// --- Admin routes ---
	// The admin surface is intentionally unauthenticated: the site runs
	// for a single operator behind their own deployment.
	admin := router.Group("/admin")
	admin.GET("", adminController.Dashboard)

	projects := admin.Group("/projects")
	{
		projects.GET("", projectController.List)
		projects.GET("/create", projectController.CreateForm)
		projects.POST("/create", projectController.Create)
		projects.GET("/:id/edit", projectController.EditForm)
		projects.POST("/:id/edit", projectController.Update)
		projects.POST("/:id/delete", projectController.Delete)
	}

	skills := admin.Group("/skills")
	{
		skills.GET("", skillController.List)
		skills.POST("", skillController.Create)
		skills.POST("/:id/delete", skillController.Delete)
	}

	certifications := admin.Group("/certifications")
	{
		certifications.GET("", certificationController.List)
		certifications.GET("/create", certificationController.CreateForm)
		certifications.POST("/create", certificationController.Create)
		certifications.GET("/:id/edit", certificationController.EditForm)
		certifications.POST("/:id/edit", certificationController.Update)
		certifications.POST("/:id/delete", certificationController.Delete)
	}

	experience := admin.Group("/experience")
	{
		experience.GET("", experienceController.List)
		experience.GET("/create", experienceController.CreateForm)
		experience.POST("/create", experienceController.Create)
		experience.GET("/:id/edit", experienceController.EditForm)
		experience.POST("/:id/edit", experienceController.Update)
		experience.POST("/:id/delete", experienceController.Delete)
	}

	education := admin.Group("/education")
	{
		education.GET("", educationController.List)
		education.GET("/create", educationController.CreateForm)
		education.POST("/create", educationController.Create)
		education.GET("/:id/edit", educationController.EditForm)
		education.POST("/:id/edit", educationController.Update)
		education.POST("/:id/delete", educationController.Delete)
	}

	messages := admin.Group("/messages")
	{
		messages.GET("", messageController.List)
		messages.POST("/:id/delete", messageController.Delete)
	}
}
