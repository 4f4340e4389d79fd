package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/registrar/internal/app/models/dto"
	"github.com/yigit/registrar/internal/app/services"
	"github.com/yigit/registrar/internal/middleware"
)

// FacultyController handles faculty member endpoints
type FacultyController struct {
	facultyService services.FacultyService
}

// NewFacultyController creates a new FacultyController
func NewFacultyController(facultyService services.FacultyService) *FacultyController {
	return &FacultyController{facultyService: facultyService}
}

// ListFaculty returns every faculty member
// @Summary List faculty members
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Faculty}
// @Router /faculty [get]
func (c *FacultyController) ListFaculty(ctx *gin.Context) {
	members, err := c.facultyService.ListFaculty(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, members, "")
}

// GetFaculty returns one faculty member
// @Summary Get faculty member
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty ID"
// @Success 200 {object} dto.APIResponse{data=models.Faculty}
// @Failure 404 {object} dto.APIResponse
// @Router /faculty/{id} [get]
func (c *FacultyController) GetFaculty(ctx *gin.Context) {
	id, valid := parseID(ctx, "id")
	if !valid {
		return
	}

	member, err := c.facultyService.GetFaculty(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, member, "")
}

// CreateFaculty creates a faculty member, allocating a missing id_number
// @Summary Create faculty member
// @Tags faculty
// @Accept json,mpfd
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateFacultyRequest true "Faculty member"
// @Success 201 {object} dto.APIResponse{data=models.Faculty}
// @Failure 400 {object} dto.APIResponse
// @Failure 500 {object} dto.APIResponse "Creation failed"
// @Router /faculty [post]
func (c *FacultyController) CreateFaculty(ctx *gin.Context) {
	var req dto.CreateFacultyRequest
	if !middleware.BindRequest(ctx, &req) {
		return
	}

	member, err := c.facultyService.CreateFaculty(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	created(ctx, member, "Faculty member created successfully")
}

// UpdateFaculty changes the supplied fields of a faculty member
// @Summary Update faculty member
// @Tags faculty
// @Accept json,mpfd
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty ID"
// @Param request body dto.UpdateFacultyRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Faculty}
// @Router /faculty/{id} [put]
func (c *FacultyController) UpdateFaculty(ctx *gin.Context) {
	id, valid := parseID(ctx, "id")
	if !valid {
		return
	}

	var req dto.UpdateFacultyRequest
	if !middleware.BindRequest(ctx, &req) {
		return
	}

	member, err := c.facultyService.UpdateFaculty(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, member, "Faculty member updated successfully")
}

// DeleteFaculty removes a faculty member
// @Summary Delete faculty member
// @Tags faculty
// @Security BearerAuth
// @Param id path int true "Faculty ID"
// @Success 200 {object} dto.APIResponse
// @Router /faculty/{id} [delete]
func (c *FacultyController) DeleteFaculty(ctx *gin.Context) {
	id, valid := parseID(ctx, "id")
	if !valid {
		return
	}

	if err := c.facultyService.DeleteFaculty(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, nil, "Faculty member deleted successfully")
}
