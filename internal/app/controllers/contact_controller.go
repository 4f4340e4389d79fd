package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/registrar/internal/app/models/dto"
	"github.com/yigit/registrar/internal/app/services"
	"github.com/yigit/registrar/internal/middleware"
)

// ContactController handles contact endpoints
type ContactController struct {
	contactService services.ContactService
}

// NewContactController creates a new ContactController
func NewContactController(contactService services.ContactService) *ContactController {
	return &ContactController{contactService: contactService}
}

// ListContacts returns every contact, newest first
// @Summary List contacts
// @Tags contacts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Contact}
// @Router /contacts [get]
func (c *ContactController) ListContacts(ctx *gin.Context) {
	contacts, err := c.contactService.ListContacts(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, contacts, "")
}

// GetContact returns one contact
// @Summary Get contact
// @Tags contacts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Contact ID"
// @Success 200 {object} dto.APIResponse{data=models.Contact}
// @Router /contacts/{id} [get]
func (c *ContactController) GetContact(ctx *gin.Context) {
	id, valid := parseID(ctx, "id")
	if !valid {
		return
	}

	contact, err := c.contactService.GetContact(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, contact, "")
}

// CreateContact creates a contact
// @Summary Create contact
// @Tags contacts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ContactRequest true "Contact"
// @Success 201 {object} dto.APIResponse{data=models.Contact}
// @Router /contacts [post]
func (c *ContactController) CreateContact(ctx *gin.Context) {
	var req dto.ContactRequest
	if !middleware.BindRequest(ctx, &req) {
		return
	}

	contact, err := c.contactService.CreateContact(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	created(ctx, contact, "Contact created successfully")
}

// UpdateContact changes the supplied fields of a contact
// @Summary Update contact
// @Tags contacts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Contact ID"
// @Param request body dto.ContactRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Contact}
// @Router /contacts/{id} [put]
func (c *ContactController) UpdateContact(ctx *gin.Context) {
	id, valid := parseID(ctx, "id")
	if !valid {
		return
	}

	var req dto.ContactRequest
	if !middleware.BindRequest(ctx, &req) {
		return
	}

	contact, err := c.contactService.UpdateContact(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, contact, "Contact updated successfully")
}

// DeleteContact deletes a contact
// @Summary Delete contact
// @Tags contacts
// @Security BearerAuth
// @Param id path int true "Contact ID"
// @Success 200 {object} dto.APIResponse
// @Router /contacts/{id} [delete]
func (c *ContactController) DeleteContact(ctx *gin.Context) {
	id, valid := parseID(ctx, "id")
	if !valid {
		return
	}

	if err := c.contactService.DeleteContact(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, nil, "Contact deleted successfully")
}
