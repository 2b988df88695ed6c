package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/doruk/portfolio/internal/app/models/dto"
	"github.com/doruk/portfolio/internal/app/services"
	"github.com/doruk/portfolio/internal/middleware"
)

// CertificationController handles the admin certification pages
type CertificationController struct {
	certificationService services.CertificationService
}

// NewCertificationController creates a new CertificationController
func NewCertificationController(certificationService services.CertificationService) *CertificationController {
	return &CertificationController{
		certificationService: certificationService,
	}
}

// List renders the certification listing
func (ctrl *CertificationController) List(c *gin.Context) {
	certs, err := ctrl.certificationService.List(c)
	if err != nil {
		middleware.HandlePageError(c, err)
		return
	}

	c.HTML(http.StatusOK, "admin_certifications.html", gin.H{
		"certs": certs,
	})
}

// CreateForm renders the empty certification form
func (ctrl *CertificationController) CreateForm(c *gin.Context) {
	c.HTML(http.StatusOK, "certification_form.html", gin.H{
		"cert": nil,
	})
}

// Create handles the certification create submission
func (ctrl *CertificationController) Create(c *gin.Context) {
	var form dto.CertificationForm
	if err := c.ShouldBind(&form); err != nil {
		middleware.HandlePageError(c, err)
		return
	}

	if _, err := ctrl.certificationService.Create(c, form); err != nil {
		middleware.HandlePageError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/admin/certifications")
}

// EditForm renders the form pre-filled with an existing certification
func (ctrl *CertificationController) EditForm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	cert, err := ctrl.certificationService.Get(c, id)
	if err != nil {
		middleware.HandlePageError(c, err)
		return
	}

	c.HTML(http.StatusOK, "certification_form.html", gin.H{
		"cert": cert,
	})
}

// Update handles the certification edit submission
func (ctrl *CertificationController) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var form dto.CertificationForm
	if err := c.ShouldBind(&form); err != nil {
		middleware.HandlePageError(c, err)
		return
	}

	if _, err := ctrl.certificationService.Update(c, id, form); err != nil {
		middleware.HandlePageError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/admin/certifications")
}

// Delete removes a certification
func (ctrl *CertificationController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := ctrl.certificationService.Delete(c, id); err != nil {
		middleware.HandlePageError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/admin/certifications")
}
