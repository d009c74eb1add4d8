package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/splitr-app/splitr-backend/services"
	"github.com/splitr-app/splitr-backend/utils"
)

// ContactHandler handles contact-related HTTP requests
type ContactHandler struct {
	contactService *services.ContactService
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactService *services.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// GetAllContacts handles GET /contacts
func (h *ContactHandler) GetAllContacts(c *gin.Context) {
	contacts, err := h.contactService.GetAllContacts(CurrentUserID(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, contacts)
}
