package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/doruk/portfolio/internal/app/models/dto"
	"github.com/doruk/portfolio/internal/app/services"
	"github.com/doruk/portfolio/internal/middleware"
)

// EducationController handles the admin education pages
type EducationController struct {
	educationService services.EducationService
}

// NewEducationController creates a new EducationController
func NewEducationController(educationService services.EducationService) *EducationController {
	return &EducationController{
		educationService: educationService,
	}
}

// List renders the education listing
func (ctrl *EducationController) List(c *gin.Context) {
	education, err := ctrl.educationService.List(c)
	if err != nil {
		middleware.HandlePageError(c, err)
		return
	}

	c.HTML(http.StatusOK, "admin_education.html", gin.H{
		"education": education,
	})
}

// CreateForm renders the empty education form
func (ctrl *EducationController) CreateForm(c *gin.Context) {
	c.HTML(http.StatusOK, "education_form.html", gin.H{
		"edu": nil,
	})
}

// Create handles the education create submission
func (ctrl *EducationController) Create(c *gin.Context) {
	var form dto.EducationForm
	if err := c.ShouldBind(&form); err != nil {
		middleware.HandlePageError(c, err)
		return
	}

	icon, err := c.FormFile("icon")
	if err != nil {
		icon = nil
	}

	if _, err := ctrl.educationService.Create(c, form, icon); err != nil {
		middleware.HandlePageError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/admin/education")
}

// EditForm renders the form pre-filled with an existing education entry
func (ctrl *EducationController) EditForm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	edu, err := ctrl.educationService.Get(c, id)
	if err != nil {
		middleware.HandlePageError(c, err)
		return
	}

	c.HTML(http.StatusOK, "education_form.html", gin.H{
		"edu": edu,
	})
}

// Update handles the education edit submission
func (ctrl *EducationController) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var form dto.EducationForm
	if err := c.ShouldBind(&form); err != nil {
		middleware.HandlePageError(c, err)
		return
	}

	icon, err := c.FormFile("icon")
	if err != nil {
		icon = nil
	}

	if _, err := ctrl.educationService.Update(c, id, form, icon); err != nil {
		middleware.HandlePageError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/admin/education")
}

// Delete removes an education entry
func (ctrl *EducationController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := ctrl.educationService.Delete(c, id); err != nil {
		middleware.HandlePageError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/admin/education")
}
