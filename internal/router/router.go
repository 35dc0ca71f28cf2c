package router

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/mansi2425/punjab-alumni-connect/internal/auth"
	"github.com/mansi2425/punjab-alumni-connect/internal/config"
	"github.com/mansi2425/punjab-alumni-connect/internal/errors"
	"github.com/mansi2425/punjab-alumni-connect/internal/handler"
	"github.com/mansi2425/punjab-alumni-connect/internal/logger"
)

// Handlers groups the HTTP handlers mounted by Register.
type Handlers struct {
	User        *handler.UserHandler
	Institution *handler.InstitutionHandler
	Mentorship  *handler.MentorshipHandler
	Job         *handler.JobHandler
	Event       *handler.EventHandler
	Chat        *handler.ChatHandler
	Auth        *handler.AuthHandler
}

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	log *zap.Logger,
	users auth.UserLoader,
	revocations auth.RevocationStore,
	h Handlers,
) {
	e.Use(logger.RequestLogger(log))
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = NewValidator()

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/users/register", h.User.Register)
	api.POST("/institutions/apply", h.Institution.Apply)
	api.GET("/institutions/approved", h.Institution.ListApproved)

	// Secured routes (require a valid, unrevoked token for an existing user)
	secured := api.Group("", auth.JWT(cfg.JWTSecret), auth.ResolveActor(users, revocations))

	secured.POST("/auth/logout", h.Auth.Logout)

	// User routes; static paths are registered before /users/:id
	secured.GET("/users/me", h.User.Me)
	secured.PATCH("/users/me", h.User.UpdateMe)
	secured.GET("/users/alumni", h.User.ListAlumni)
	secured.GET("/users/pending", h.User.ListPending)
	secured.GET("/users/stats", h.User.Stats)
	secured.GET("/users/mentors/recommend", h.User.RecommendMentors)
	secured.GET("/users/:id", h.User.GetUser)
	secured.POST("/users/:id/approve", h.User.Approve)

	// Institution routes
	secured.GET("/institutions/pending", h.Institution.ListPending)
	secured.GET("/institutions/my-institution/analytics", h.Institution.MyStats)
	secured.GET("/institutions/:id", h.Institution.Get)
	secured.PUT("/institutions/:id", h.Institution.Update)
	secured.DELETE("/institutions/:id", h.Institution.Delete)
	secured.POST("/institutions/:id/approve", h.Institution.Approve)
	secured.POST("/institutions/:id/reject", h.Institution.Reject)

	// Mentorship routes
	secured.GET("/mentorship/requests", h.Mentorship.ListRequests)
	secured.POST("/mentorship/requests", h.Mentorship.CreateRequest)
	secured.POST("/mentorship/requests/:id/respond", h.Mentorship.Respond)
	secured.GET("/mentorship/connections", h.Mentorship.ListConnections)

	// Job board routes
	secured.GET("/jobs", h.Job.List)
	secured.POST("/jobs", h.Job.Create)
	secured.GET("/jobs/:id", h.Job.Get)
	secured.PUT("/jobs/:id", h.Job.Update)
	secured.DELETE("/jobs/:id", h.Job.Delete)

	// Event board routes
	secured.GET("/events", h.Event.List)
	secured.POST("/events", h.Event.Create)
	secured.GET("/events/:id", h.Event.Get)
	secured.PUT("/events/:id", h.Event.Update)
	secured.DELETE("/events/:id", h.Event.Delete)

	// Assistant route, rate limited per user
	secured.POST("/chatbot/query", h.Chat.Query, chatRateLimiter(cfg.ChatRequestsPerMinute))
}

// chatRateLimiter allows perMinute requests per user with a burst of the same size.
func chatRateLimiter(perMinute int) echo.MiddlewareFunc {
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:  rate.Limit(float64(perMinute) / 60),
		Burst: perMinute,
	})
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			if user := auth.Actor(c); user != nil {
				return "user:" + strconv.FormatUint(uint64(user.ID), 10), nil
			}
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return echo.NewHTTPError(http.StatusTooManyRequests, errors.ErrorResponse{
				Error: "too many requests",
				Code:  "RATE_LIMITED",
			})
		},
	})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a CustomValidator.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
