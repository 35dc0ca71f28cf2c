package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mansi2425/punjab-alumni-connect/internal/service"
)

// InstitutionHandler handles institution applications and their review.
type InstitutionHandler struct {
	svc service.InstitutionService
}

// NewInstitutionHandler creates a new institution handler.
func NewInstitutionHandler(svc service.InstitutionService) *InstitutionHandler {
	return &InstitutionHandler{svc: svc}
}

// InstitutionRequest represents an application or an edit of an institution.
type InstitutionRequest struct {
	Name          string `json:"name" validate:"required,max=255"`
	Address       string `json:"address"`
	ContactPerson string `json:"contact_person" validate:"required,max=255"`
	ContactEmail  string `json:"contact_email" validate:"required,email"`
	ContactPhone  string `json:"contact_phone" validate:"max=20"`
}

func (r InstitutionRequest) toInput() service.InstitutionInput {
	return service.InstitutionInput{
		Name:          r.Name,
		Address:       r.Address,
		ContactPerson: r.ContactPerson,
		ContactEmail:  r.ContactEmail,
		ContactPhone:  r.ContactPhone,
	}
}

// Apply godoc
// @Summary Apply to join the platform
// @Description Records a pending institution application. No account is needed.
// @Tags institutions
// @Accept json
// @Produce json
// @Param request body InstitutionRequest true "Application"
// @Success 201 {object} model.Institution
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /institutions/apply [post]
func (h *InstitutionHandler) Apply(c echo.Context) error {
	var req InstitutionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	inst, err := h.svc.Apply(c.Request().Context(), req.toInput())
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusCreated, inst)
}

// ListApproved godoc
// @Summary List approved institutions
// @Tags institutions
// @Produce json
// @Success 200 {array} model.Institution
// @Router /institutions/approved [get]
func (h *InstitutionHandler) ListApproved(c echo.Context) error {
	insts, err := h.svc.ListApproved(c.Request().Context())
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, insts)
}

// ListPending godoc
// @Summary List pending applications
// @Tags institutions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Institution
// @Failure 403 {object} errors.ErrorResponse
// @Router /institutions/pending [get]
func (h *InstitutionHandler) ListPending(c echo.Context) error {
	user, err := actor(c)
	if err != nil {
		return err
	}
	insts, err := h.svc.ListPending(c.Request().Context(), user)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, insts)
}

// Get godoc
// @Summary Get an institution
// @Tags institutions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Institution ID"
// @Success 200 {object} model.Institution
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /institutions/{id} [get]
func (h *InstitutionHandler) Get(c echo.Context) error {
	user, err := actor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	inst, err := h.svc.Get(c.Request().Context(), user, id)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, inst)
}

// Update godoc
// @Summary Edit an institution
// @Tags institutions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Institution ID"
// @Param request body InstitutionRequest true "Institution"
// @Success 200 {object} model.Institution
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /institutions/{id} [put]
func (h *InstitutionHandler) Update(c echo.Context) error {
	user, err := actor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req InstitutionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	inst, err := h.svc.Update(c.Request().Context(), user, id, req.toInput())
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, inst)
}

// Delete godoc
// @Summary Delete an institution
// @Tags institutions
// @Security BearerAuth
// @Param id path int true "Institution ID"
// @Success 204
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /institutions/{id} [delete]
func (h *InstitutionHandler) Delete(c echo.Context) error {
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

// Approve godoc
// @Summary Approve an application
// @Description Approves a pending institution and provisions its institution admin account.
// @Tags institutions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Institution ID"
// @Success 200 {object} service.ApproveInstitutionResult
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /institutions/{id}/approve [post]
func (h *InstitutionHandler) Approve(c echo.Context) error {
	user, err := actor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	result, err := h.svc.Approve(c.Request().Context(), user, id)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// Reject godoc
// @Summary Reject an application
// @Tags institutions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Institution ID"
// @Success 200 {object} model.Institution
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /institutions/{id}/reject [post]
func (h *InstitutionHandler) Reject(c echo.Context) error {
	user, err := actor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	inst, err := h.svc.Reject(c.Request().Context(), user, id)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, inst)
}

// MyStats godoc
// @Summary Analytics of the caller's institution
// @Tags institutions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.InstitutionStats
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /institutions/my-institution/analytics [get]
func (h *InstitutionHandler) MyStats(c echo.Context) error {
	user, err := actor(c)
	if err != nil {
		return err
	}
	stats, err := h.svc.MyStats(c.Request().Context(), user)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, stats)
}
