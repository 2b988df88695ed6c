package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/doruk/portfolio/internal/app/models/dto"
	"github.com/doruk/portfolio/internal/app/services"
	"github.com/doruk/portfolio/internal/middleware"
)

// ExperienceController handles the admin experience pages
type ExperienceController struct {
	experienceService services.ExperienceService
}

// NewExperienceController creates a new ExperienceController
func NewExperienceController(experienceService services.ExperienceService) *ExperienceController {
	return &ExperienceController{
		experienceService: experienceService,
	}
}

// List renders the experience listing
func (ctrl *ExperienceController) List(c *gin.Context) {
	experiences, err := ctrl.experienceService.List(c)
	if err != nil {
		middleware.HandlePageError(c, err)
		return
	}

	c.HTML(http.StatusOK, "admin_experience.html", gin.H{
		"experiences": experiences,
	})
}

// CreateForm renders the empty experience form
func (ctrl *ExperienceController) CreateForm(c *gin.Context) {
	c.HTML(http.StatusOK, "experience_form.html", gin.H{
		"exp": nil,
	})
}

// Create handles the experience create submission
func (ctrl *ExperienceController) Create(c *gin.Context) {
	var form dto.ExperienceForm
	if err := c.ShouldBind(&form); err != nil {
		middleware.HandlePageError(c, err)
		return
	}

	if _, err := ctrl.experienceService.Create(c, form); err != nil {
		middleware.HandlePageError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/admin/experience")
}

// EditForm renders the form pre-filled with an existing experience
func (ctrl *ExperienceController) EditForm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	exp, err := ctrl.experienceService.Get(c, id)
	if err != nil {
		middleware.HandlePageError(c, err)
		return
	}

	c.HTML(http.StatusOK, "experience_form.html", gin.H{
		"exp": exp,
	})
}

// Update handles the experience edit submission
func (ctrl *ExperienceController) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var form dto.ExperienceForm
	if err := c.ShouldBind(&form); err != nil {
		middleware.HandlePageError(c, err)
		return
	}

	if _, err := ctrl.experienceService.Update(c, id, form); err != nil {
		middleware.HandlePageError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/admin/experience")
}

// Delete removes an experience
func (ctrl *ExperienceController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := ctrl.experienceService.Delete(c, id); err != nil {
		middleware.HandlePageError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/admin/experience")
}
