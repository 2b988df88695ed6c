package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminController renders the admin dashboard landing page
type AdminController struct{}

// NewAdminController creates a new AdminController
func NewAdminController() *AdminController {
	return &AdminController{}
}

// Dashboard renders the admin landing page with links to each section
func (ctrl *AdminController) Dashboard(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_dashboard.html", gin.H{
		"title": "Admin",
	})
}
