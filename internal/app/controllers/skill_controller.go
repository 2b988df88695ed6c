package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/doruk/portfolio/internal/app/models/dto"
	"github.com/doruk/portfolio/internal/app/services"
	"github.com/doruk/portfolio/internal/middleware"
)

// SkillController handles the admin skill page. Creation happens through
// a form embedded in the listing; there is no edit flow.
type SkillController struct {
	skillService services.SkillService
}

// NewSkillController creates a new SkillController
func NewSkillController(skillService services.SkillService) *SkillController {
	return &SkillController{
		skillService: skillService,
	}
}

// List renders the skill listing with the embedded create form
func (ctrl *SkillController) List(c *gin.Context) {
	skills, err := ctrl.skillService.List(c)
	if err != nil {
		middleware.HandlePageError(c, err)
		return
	}

	c.HTML(http.StatusOK, "admin_skills.html", gin.H{
		"skills": skills,
	})
}

// Create handles the embedded create form submission
func (ctrl *SkillController) Create(c *gin.Context) {
	var form dto.SkillForm
	if err := c.ShouldBind(&form); err != nil {
		middleware.HandlePageError(c, err)
		return
	}

	if _, err := ctrl.skillService.Create(c, form); err != nil {
		middleware.HandlePageError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/admin/skills")
}

// Delete removes a skill
func (ctrl *SkillController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := ctrl.skillService.Delete(c, id); err != nil {
		middleware.HandlePageError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/admin/skills")
}
