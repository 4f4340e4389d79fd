package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/registrar/internal/app/models/dto"
	"github.com/yigit/registrar/internal/app/services"
	"github.com/yigit/registrar/internal/middleware"
)

// AcademicYearController handles academic year endpoints
type AcademicYearController struct {
	academicYearService services.AcademicYearService
}

// NewAcademicYearController creates a new AcademicYearController
func NewAcademicYearController(academicYearService services.AcademicYearService) *AcademicYearController {
	return &AcademicYearController{academicYearService: academicYearService}
}

// ListAcademicYears lists academic years, latest start date first
// @Summary List academic years
// @Tags academic-years
// @Produce json
// @Security BearerAuth
// @Param search query string false "Substring of year_name"
// @Param status query string false "active, inactive or archived"
// @Success 200 {object} dto.APIResponse{data=[]models.AcademicYear}
// @Router /academic-years [get]
func (c *AcademicYearController) ListAcademicYears(ctx *gin.Context) {
	var filter dto.AcademicYearFilter
	if !middleware.BindQuery(ctx, &filter) {
		return
	}

	years, err := c.academicYearService.ListAcademicYears(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, years, "")
}

// GetAcademicYear returns one academic year
// @Summary Get academic year
// @Tags academic-years
// @Produce json
// @Security BearerAuth
// @Param id path int true "Academic year ID"
// @Success 200 {object} dto.APIResponse{data=models.AcademicYear}
// @Router /academic-years/{id} [get]
func (c *AcademicYearController) GetAcademicYear(ctx *gin.Context) {
	id, valid := parseID(ctx, "id")
	if !valid {
		return
	}

	year, err := c.academicYearService.GetAcademicYear(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, year, "")
}

// CreateAcademicYear creates an academic year
// @Summary Create academic year
// @Tags academic-years
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AcademicYearRequest true "Academic year"
// @Success 201 {object} dto.APIResponse{data=models.AcademicYear}
// @Failure 400 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse "Name already exists"
// @Router /academic-years [post]
func (c *AcademicYearController) CreateAcademicYear(ctx *gin.Context) {
	var req dto.AcademicYearRequest
	if !middleware.BindRequest(ctx, &req) {
		return
	}

	year, err := c.academicYearService.CreateAcademicYear(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	created(ctx, year, "Academic year created successfully")
}

// UpdateAcademicYear changes the supplied fields of an academic year
// @Summary Update academic year
// @Tags academic-years
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Academic year ID"
// @Param request body dto.AcademicYearRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.AcademicYear}
// @Router /academic-years/{id} [put]
func (c *AcademicYearController) UpdateAcademicYear(ctx *gin.Context) {
	id, valid := parseID(ctx, "id")
	if !valid {
		return
	}

	var req dto.AcademicYearRequest
	if !middleware.BindRequest(ctx, &req) {
		return
	}

	year, err := c.academicYearService.UpdateAcademicYear(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, year, "Academic year updated successfully")
}

// DeleteAcademicYear archives an academic year, or deletes it with force=1|true
// @Summary Archive or delete academic year
// @Tags academic-years
// @Produce json
// @Security BearerAuth
// @Param id path int true "Academic year ID"
// @Param force query bool false "Delete instead of archiving"
// @Success 200 {object} dto.APIResponse{data=models.AcademicYear}
// @Router /academic-years/{id} [delete]
func (c *AcademicYearController) DeleteAcademicYear(ctx *gin.Context) {
	id, valid := parseID(ctx, "id")
	if !valid {
		return
	}

	year, err := c.academicYearService.DeleteAcademicYear(ctx.Request.Context(), id, forceRequested(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if year == nil {
		ok(ctx, nil, "Academic year deleted successfully")
		return
	}
	ok(ctx, year, "Academic year archived successfully")
}

// forceRequested reads force from the query string, a form body or a JSON body
func forceRequested(ctx *gin.Context) bool {
	if v, found := ctx.GetQuery("force"); found {
		return truthy(v)
	}
	if v, found := ctx.GetPostForm("force"); found {
		return truthy(v)
	}
	if ctx.Request.Body == nil || ctx.ContentType() != gin.MIMEJSON {
		return false
	}

	body, err := io.ReadAll(ctx.Request.Body)
	if err != nil || len(body) == 0 {
		return false
	}
	ctx.Request.Body = io.NopCloser(bytes.NewReader(body))

	var payload struct {
		Force interface{} `json:"force"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.Force == nil {
		return false
	}
	return truthy(fmt.Sprint(payload.Force))
}

func truthy(v string) bool {
	b, err := strconv.ParseBool(v)
	return err == nil && b
}
