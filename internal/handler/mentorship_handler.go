package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mansi2425/punjab-alumni-connect/internal/service"
)

// MentorshipHandler handles mentorship request and connection endpoints.
type MentorshipHandler struct {
	svc service.MentorshipService
}

// NewMentorshipHandler creates a new mentorship handler.
func NewMentorshipHandler(svc service.MentorshipService) *MentorshipHandler {
	return &MentorshipHandler{svc: svc}
}

// CreateRequestRequest represents a new mentorship request.
type CreateRequestRequest struct {
	MentorID       uint   `json:"mentor_id" validate:"required"`
	InitialMessage string `json:"initial_message" validate:"required"`
}

// RespondRequest represents a mentor's answer to a request.
// Status is checked by the service after authorization.
type RespondRequest struct {
	Status            string  `json:"status"`
	SharedContactInfo *string `json:"shared_contact_info"`
	SharedMessage     *string `json:"shared_message"`
}

// ListRequests godoc
// @Summary List mentorship requests
// @Description Incoming (default) lists pending requests addressed to the caller. Outgoing lists requests the caller sent, optionally filtered by status.
// @Tags mentorship
// @Produce json
// @Security BearerAuth
// @Param view query string false "incoming or outgoing"
// @Param status query string false "pending, accepted or declined (outgoing only)"
// @Success 200 {array} model.MentorshipRequest
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /mentorship/requests [get]
func (h *MentorshipHandler) ListRequests(c echo.Context) error {
	user, err := actor(c)
	if err != nil {
		return err
	}

	view := service.RequestView(c.QueryParam("view"))
	reqs, err := h.svc.ListRequests(c.Request().Context(), user, view, c.QueryParam("status"))
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, reqs)
}

// CreateRequest godoc
// @Summary Request mentorship
// @Tags mentorship
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateRequestRequest true "Mentor and message"
// @Success 201 {object} model.MentorshipRequest
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /mentorship/requests [post]
func (h *MentorshipHandler) CreateRequest(c echo.Context) error {
	user, err := actor(c)
	if err != nil {
		return err
	}

	var req CreateRequestRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	created, err := h.svc.CreateRequest(c.Request().Context(), user, service.CreateRequestInput{
		MentorID:       req.MentorID,
		InitialMessage: req.InitialMessage,
	})
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

// Respond godoc
// @Summary Accept or decline a request
// @Description Only the addressed mentor may respond. Accepting creates a connection carrying the shared contact info.
// @Tags mentorship
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Param request body RespondRequest true "Response"
// @Success 200 {object} service.RespondResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /mentorship/requests/{id}/respond [post]
func (h *MentorshipHandler) Respond(c echo.Context) error {
	user, err := actor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req RespondRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body", "INVALID_BODY")
	}

	result, err := h.svc.Respond(c.Request().Context(), user, id, service.RespondInput{
		Status:            req.Status,
		SharedContactInfo: req.SharedContactInfo,
		SharedMessage:     req.SharedMessage,
	})
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// ListConnections godoc
// @Summary List connections
// @Description Connections of accepted requests where the caller is requester or mentor.
// @Tags mentorship
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.ConnectionInfo
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /mentorship/connections [get]
func (h *MentorshipHandler) ListConnections(c echo.Context) error {
	user, err := actor(c)
	if err != nil {
		return err
	}

	conns, err := h.svc.ListConnections(c.Request().Context(), user)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, conns)
}
