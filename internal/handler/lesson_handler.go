package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"edumodules/internal/model"
	"edumodules/internal/service"
)

// LessonHandler handles lesson endpoints.
type LessonHandler struct {
	lessons service.LessonService
}

// NewLessonHandler creates a new lesson handler.
func NewLessonHandler(lessons service.LessonService) *LessonHandler {
	return &LessonHandler{lessons: lessons}
}

// CreateLessonRequest represents a lesson creation payload.
type CreateLessonRequest struct {
	Title       string  `json:"title" validate:"required,max=150"`
	Description string  `json:"description" validate:"required"`
	Preview     *string `json:"preview" validate:"omitempty,max=255"`
	VideoURL    *string `json:"video_url" validate:"omitempty,url"`
	Content     string  `json:"content" validate:"required"`
	Module      *uint   `json:"module"`
}

// UpdateLessonRequest represents a lesson update payload. Absent fields
// stay unchanged; a module reference is re-validated for ownership.
type UpdateLessonRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=150"`
	Description *string `json:"description"`
	Preview     *string `json:"preview" validate:"omitempty,max=255"`
	VideoURL    *string `json:"video_url" validate:"omitempty,url"`
	Content     *string `json:"content"`
	Module      *uint   `json:"module"`
}

// Create godoc
// @Summary Create a lesson
// @Tags lessons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateLessonRequest true "Lesson payload"
// @Success 201 {object} model.Lesson
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /lessons/ [post]
func (h *LessonHandler) Create(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}

	var req CreateLessonRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	lesson := &model.Lesson{
		Title:       req.Title,
		Description: req.Description,
		Preview:     req.Preview,
		VideoURL:    req.VideoURL,
		Content:     req.Content,
		ModuleID:    req.Module,
	}
	created, err := h.lessons.Create(c.Request().Context(), actor, lesson)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

// List godoc
// @Summary List lessons visible to the caller
// @Tags lessons
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param page_size query int false "Page size (max 20)"
// @Param search query string false "Search in title, description and content"
// @Success 200 {object} service.LessonList
// @Router /lessons/ [get]
func (h *LessonHandler) List(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}

	page, err := h.lessons.List(c.Request().Context(), actor, listParams(c))
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, page)
}

// Get godoc
// @Summary Retrieve a lesson
// @Tags lessons
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lesson ID"
// @Success 200 {object} model.Lesson
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /lessons/{id}/ [get]
func (h *LessonHandler) Get(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	lesson, err := h.lessons.Get(c.Request().Context(), actor, id)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, lesson)
}

// Update godoc
// @Summary Update a lesson
// @Tags lessons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lesson ID"
// @Param request body UpdateLessonRequest true "Fields to update"
// @Success 200 {object} model.Lesson
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /lessons/{id}/ [put]
func (h *LessonHandler) Update(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req UpdateLessonRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.lessons.Update(c.Request().Context(), actor, id, service.LessonInput{
		Title:       req.Title,
		Description: req.Description,
		Preview:     req.Preview,
		VideoURL:    req.VideoURL,
		Content:     req.Content,
		ModuleID:    req.Module,
	})
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete a lesson
// @Tags lessons
// @Security BearerAuth
// @Param id path int true "Lesson ID"
// @Success 204
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /lessons/{id}/ [delete]
func (h *LessonHandler) Delete(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.lessons.Delete(c.Request().Context(), actor, id); err != nil {
		return domainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
