package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mansi2425/punjab-alumni-connect/internal/model"
	"github.com/mansi2425/punjab-alumni-connect/internal/service"
)

// JobHandler handles job board endpoints.
type JobHandler struct {
	svc service.JobService
}

// NewJobHandler creates a new job handler.
func NewJobHandler(svc service.JobService) *JobHandler {
	return &JobHandler{svc: svc}
}

// JobRequest represents the editable fields of a job posting.
type JobRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Company     string `json:"company" validate:"required,max=200"`
	Location    string `json:"location" validate:"max=200"`
	Description string `json:"description"`
	JobType     string `json:"job_type" validate:"required"`
}

func (r JobRequest) toInput() service.JobInput {
	return service.JobInput{
		Title:       r.Title,
		Company:     r.Company,
		Location:    r.Location,
		Description: r.Description,
		JobType:     model.JobType(r.JobType),
	}
}

// List godoc
// @Summary List jobs
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Job
// @Router /jobs [get]
func (h *JobHandler) List(c echo.Context) error {
	jobs, err := h.svc.List(c.Request().Context())
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, jobs)
}

// Create godoc
// @Summary Post a job
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body JobRequest true "Job"
// @Success 201 {object} model.Job
// @Failure 400 {object} errors.ErrorResponse
// @Router /jobs [post]
func (h *JobHandler) Create(c echo.Context) error {
	user, err := actor(c)
	if err != nil {
		return err
	}
	var req JobRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	job, err := h.svc.Create(c.Request().Context(), user, req.toInput())
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusCreated, job)
}

// Get godoc
// @Summary Get a job
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Success 200 {object} model.Job
// @Failure 404 {object} errors.ErrorResponse
// @Router /jobs/{id} [get]
func (h *JobHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	job, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, job)
}

// Update godoc
// @Summary Update a job
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Param request body JobRequest true "Job"
// @Success 200 {object} model.Job
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /jobs/{id} [put]
func (h *JobHandler) Update(c echo.Context) error {
	user, err := actor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req JobRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	job, err := h.svc.Update(c.Request().Context(), user, id, req.toInput())
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, job)
}

// Delete godoc
// @Summary Delete a job
// @Tags jobs
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Success 204
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /jobs/{id} [delete]
func (h *JobHandler) Delete(c echo.Context) error {
	user, err := actor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), user, id); err != nil {
		return mapError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
