package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"edumodules/internal/model"
	"edumodules/internal/service"
)

// ModuleHandler handles module endpoints.
type ModuleHandler struct {
	modules service.ModuleService
}

// NewModuleHandler creates a new module handler.
func NewModuleHandler(modules service.ModuleService) *ModuleHandler {
	return &ModuleHandler{modules: modules}
}

// CreateModuleRequest represents a module creation payload.
type CreateModuleRequest struct {
	Title       string  `json:"title" validate:"required,max=150"`
	Description string  `json:"description" validate:"required"`
	Preview     *string `json:"preview" validate:"omitempty,max=255"`
}

// UpdateModuleRequest represents a module update payload. Absent fields
// stay unchanged.
type UpdateModuleRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=150"`
	Description *string `json:"description"`
	Preview     *string `json:"preview" validate:"omitempty,max=255"`
}

// Create godoc
// @Summary Create a module
// @Tags modules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateModuleRequest true "Module payload"
// @Success 201 {object} model.Module
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /module/create/ [post]
func (h *ModuleHandler) Create(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}

	var req CreateModuleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	module := &model.Module{
		Title:       req.Title,
		Description: req.Description,
		Preview:     req.Preview,
	}
	created, err := h.modules.Create(c.Request().Context(), actor, module)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

// List godoc
// @Summary List modules visible to the caller
// @Tags modules
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param page_size query int false "Page size (max 20)"
// @Param search query string false "Search in title and description"
// @Success 200 {object} service.ModuleList
// @Router /module/list/ [get]
func (h *ModuleHandler) List(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}

	page, err := h.modules.List(c.Request().Context(), actor, listParams(c))
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, page)
}

// Detail godoc
// @Summary Retrieve a module
// @Tags modules
// @Produce json
// @Security BearerAuth
// @Param id path int true "Module ID"
// @Success 200 {object} model.Module
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /module/detail/{id}/ [get]
func (h *ModuleHandler) Detail(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	module, err := h.modules.Get(c.Request().Context(), actor, id)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, module)
}

// Update godoc
// @Summary Update a module
// @Tags modules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Module ID"
// @Param request body UpdateModuleRequest true "Fields to update"
// @Success 200 {object} model.Module
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /module/update/{id}/ [put]
func (h *ModuleHandler) Update(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req UpdateModuleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.modules.Update(c.Request().Context(), actor, id, service.ModuleInput{
		Title:       req.Title,
		Description: req.Description,
		Preview:     req.Preview,
	})
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete a module and its lessons
// @Tags modules
// @Security BearerAuth
// @Param id path int true "Module ID"
// @Success 204
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /module/delete/{id}/ [delete]
func (h *ModuleHandler) Delete(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.modules.Delete(c.Request().Context(), actor, id); err != nil {
		return domainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
