package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/doruk/portfolio/internal/app/models/dto"
	"github.com/doruk/portfolio/internal/app/services"
	"github.com/doruk/portfolio/internal/middleware"
)

// ProjectController handles the admin project pages
type ProjectController struct {
	projectService services.ProjectService
}

// NewProjectController creates a new ProjectController
func NewProjectController(projectService services.ProjectService) *ProjectController {
	return &ProjectController{
		projectService: projectService,
	}
}

// List renders the project listing
func (ctrl *ProjectController) List(c *gin.Context) {
	projects, err := ctrl.projectService.List(c)
	if err != nil {
		middleware.HandlePageError(c, err)
		return
	}

	c.HTML(http.StatusOK, "admin_projects.html", gin.H{
		"projects": projects,
	})
}

// CreateForm renders the empty project form
func (ctrl *ProjectController) CreateForm(c *gin.Context) {
	c.HTML(http.StatusOK, "project_form.html", gin.H{
		"project": nil,
	})
}

// Create handles the project create submission
func (ctrl *ProjectController) Create(c *gin.Context) {
	var form dto.ProjectForm
	if err := c.ShouldBind(&form); err != nil {
		middleware.HandlePageError(c, err)
		return
	}

	// Missing file field just means no image was uploaded.
	image, err := c.FormFile("image")
	if err != nil {
		image = nil
	}

	if _, err := ctrl.projectService.Create(c, form, image); err != nil {
		middleware.HandlePageError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/admin/projects")
}

// EditForm renders the form pre-filled with an existing project
func (ctrl *ProjectController) EditForm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	project, err := ctrl.projectService.Get(c, id)
	if err != nil {
		middleware.HandlePageError(c, err)
		return
	}

	c.HTML(http.StatusOK, "project_form.html", gin.H{
		"project": project,
	})
}

// Update handles the project edit submission
func (ctrl *ProjectController) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var form dto.ProjectForm
	if err := c.ShouldBind(&form); err != nil {
		middleware.HandlePageError(c, err)
		return
	}

	image, err := c.FormFile("image")
	if err != nil {
		image = nil
	}

	if _, err := ctrl.projectService.Update(c, id, form, image); err != nil {
		middleware.HandlePageError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/admin/projects")
}

// Delete removes a project
func (ctrl *ProjectController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := ctrl.projectService.Delete(c, id); err != nil {
		middleware.HandlePageError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/admin/projects")
}
