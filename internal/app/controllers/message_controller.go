package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/doruk/portfolio/internal/app/models/dto"
	"github.com/doruk/portfolio/internal/app/services"
	"github.com/doruk/portfolio/internal/middleware"
)

// MessageController handles both sides of contact messages: the public
// submission endpoint and the admin listing/deletion pages
type MessageController struct {
	messageService services.MessageService
}

// NewMessageController creates a new MessageController
func NewMessageController(messageService services.MessageService) *MessageController {
	return &MessageController{
		messageService: messageService,
	}
}

// Submit persists a visitor contact message and returns a JSON
// acknowledgment. This is the only JSON endpoint on the site.
func (ctrl *MessageController) Submit(c *gin.Context) {
	var form dto.ContactForm
	if err := c.ShouldBind(&form); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if _, err := ctrl.messageService.Submit(c, form); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ContactResponse{
		Success: true,
		Message: "Message sent successfully!",
	})
}

// List renders the admin message listing, newest first
func (ctrl *MessageController) List(c *gin.Context) {
	messages, err := ctrl.messageService.List(c)
	if err != nil {
		middleware.HandlePageError(c, err)
		return
	}

	c.HTML(http.StatusOK, "admin_messages.html", gin.H{
		"messages": messages,
	})
}

// Delete removes a message
func (ctrl *MessageController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := ctrl.messageService.Delete(c, id); err != nil {
		middleware.HandlePageError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/admin/messages")
}
