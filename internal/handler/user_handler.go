package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mansi2425/punjab-alumni-connect/internal/model"
	"github.com/mansi2425/punjab-alumni-connect/internal/service"
)

// UserHandler bundles user directory HTTP handlers.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// ProfilePayload is a partial profile. Omitted fields are left unchanged.
type ProfilePayload struct {
	Headline         *string `json:"headline"`
	About            *string `json:"about"`
	Location         *string `json:"location"`
	Company          *string `json:"company"`
	Skills           *string `json:"skills"`
	InstitutionID    *uint   `json:"institution_id"`
	Department       *string `json:"department"`
	GraduationYear   *int    `json:"graduation_year" validate:"omitempty,min=1900,max=2100"`
	EnrollmentNumber *string `json:"enrollment_number"`
}

func (p ProfilePayload) toInput() service.ProfileInput {
	return service.ProfileInput{
		Headline:         p.Headline,
		About:            p.About,
		Location:         p.Location,
		Company:          p.Company,
		Skills:           p.Skills,
		InstitutionID:    p.InstitutionID,
		Department:       p.Department,
		GraduationYear:   p.GraduationYear,
		EnrollmentNumber: p.EnrollmentNumber,
	}
}

// RegisterRequest represents a self-registration.
type RegisterRequest struct {
	Username  string         `json:"username" validate:"required,max=150"`
	Email     string         `json:"email" validate:"required,email"`
	FirstName string         `json:"first_name" validate:"max=150"`
	LastName  string         `json:"last_name" validate:"max=150"`
	Role      string         `json:"role"`
	Profile   ProfilePayload `json:"profile"`
}

// UpdateMeRequest represents a partial update of the caller.
type UpdateMeRequest struct {
	FirstName *string        `json:"first_name" validate:"omitempty,max=150"`
	LastName  *string        `json:"last_name" validate:"omitempty,max=150"`
	Profile   ProfilePayload `json:"profile"`
}

// Register godoc
// @Summary Register a new user
// @Description Creates an unapproved student or alumni account. Credentials are managed by the identity provider.
// @Tags users
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse "Institution not found or not approved"
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/register [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.svc.Register(c.Request().Context(), service.RegisterInput{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      model.Role(req.Role),
		Profile:   req.Profile.toInput(),
	})
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusCreated, user)
}

// Me godoc
// @Summary Current user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Router /users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	user, err := actor(c)
	if err != nil {
		return err
	}
	me, err := h.svc.Me(c.Request().Context(), user)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, me)
}

// UpdateMe godoc
// @Summary Update current user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateMeRequest true "Fields to change"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /users/me [patch]
func (h *UserHandler) UpdateMe(c echo.Context) error {
	user, err := actor(c)
	if err != nil {
		return err
	}

	var req UpdateMeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	updated, err := h.svc.UpdateProfile(c.Request().Context(), user, service.UpdateProfileInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Profile:   req.Profile.toInput(),
	})
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

// GetUser godoc
// @Summary Get user by id
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	user, err := h.svc.GetUser(c.Request().Context(), id)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// ListAlumni godoc
// @Summary Alumni directory
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.User
// @Router /users/alumni [get]
func (h *UserHandler) ListAlumni(c echo.Context) error {
	user, err := actor(c)
	if err != nil {
		return err
	}
	users, err := h.svc.ListAlumni(c.Request().Context(), user)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, users)
}

// ListPending godoc
// @Summary Users awaiting approval
// @Description Scoped to the admin's institution, or institution and department for department admins.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.User
// @Failure 403 {object} errors.ErrorResponse
// @Router /users/pending [get]
func (h *UserHandler) ListPending(c echo.Context) error {
	user, err := actor(c)
	if err != nil {
		return err
	}
	users, err := h.svc.ListPending(c.Request().Context(), user)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, users)
}

// Approve godoc
// @Summary Approve a user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} model.User
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id}/approve [post]
func (h *UserHandler) Approve(c echo.Context) error {
	user, err := actor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	approved, err := h.svc.Approve(c.Request().Context(), user, id)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, approved)
}

// RecommendMentors godoc
// @Summary Recommend mentors
// @Description Up to three approved alumni ranked by skills shared with the caller.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} matching.Match
// @Router /users/mentors/recommend [get]
func (h *UserHandler) RecommendMentors(c echo.Context) error {
	user, err := actor(c)
	if err != nil {
		return err
	}
	matches, err := h.svc.RecommendMentors(c.Request().Context(), user)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, matches)
}

// Stats godoc
// @Summary Platform statistics
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.PlatformStats
// @Failure 403 {object} errors.ErrorResponse
// @Router /users/stats [get]
func (h *UserHandler) Stats(c echo.Context) error {
	user, err := actor(c)
	if err != nil {
		return err
	}
	stats, err := h.svc.PlatformStats(c.Request().Context(), user)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, stats)
}
