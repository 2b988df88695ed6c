package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/doruk/portfolio/internal/app/services"
	"github.com/doruk/portfolio/internal/middleware"
)

// PublicController renders the visitor-facing portfolio page
type PublicController struct {
	projectService       services.ProjectService
	skillService         services.SkillService
	certificationService services.CertificationService
	experienceService    services.ExperienceService
	educationService     services.EducationService
}

// NewPublicController creates a new PublicController
func NewPublicController(
	projectService services.ProjectService,
	skillService services.SkillService,
	certificationService services.CertificationService,
	experienceService services.ExperienceService,
	educationService services.EducationService,
) *PublicController {
	return &PublicController{
		projectService:       projectService,
		skillService:         skillService,
		certificationService: certificationService,
		experienceService:    experienceService,
		educationService:     educationService,
	}
}

// Index assembles every public listing in one pass. There is no partial
// rendering: if any query fails the whole page fails.
func (ctrl *PublicController) Index(c *gin.Context) {
	projects, err := ctrl.projectService.List(c)
	if err != nil {
		middleware.HandlePageError(c, err)
		return
	}

	skillGroups, err := ctrl.skillService.ListGrouped(c)
	if err != nil {
		middleware.HandlePageError(c, err)
		return
	}

	certs, err := ctrl.certificationService.List(c)
	if err != nil {
		middleware.HandlePageError(c, err)
		return
	}

	experiences, err := ctrl.experienceService.List(c)
	if err != nil {
		middleware.HandlePageError(c, err)
		return
	}

	education, err := ctrl.educationService.List(c)
	if err != nil {
		middleware.HandlePageError(c, err)
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"projects":    projects,
		"skillGroups": skillGroups,
		"certs":       certs,
		"experiences": experiences,
		"education":   education,
	})
}
