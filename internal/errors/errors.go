package errors

import (
	"errors"
	"net/http"
)

// Kinds classify domain errors. Every specific error below unwraps to one of them.
var (
	ErrNotFound        = errors.New("not found")
	ErrForbidden       = errors.New("forbidden")
	ErrConflict        = errors.New("conflict")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnavailable     = errors.New("unavailable")
	ErrInternal        = errors.New("internal")
)

// Error is a domain error with a stable machine-readable code.
type Error struct {
	Kind    error
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the kind so errors.Is(err, ErrNotFound) holds.
func (e *Error) Unwrap() error {
	return e.Kind
}

// New creates a domain error of the given kind.
func New(kind error, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = New(ErrNotFound, "USER_NOT_FOUND", "user not found")
	// ErrMentorNotFound is returned when the requested mentor does not exist.
	ErrMentorNotFound = New(ErrNotFound, "MENTOR_NOT_FOUND", "the selected mentor does not exist")
	// ErrRequestNotFound is returned when a mentorship request is not found.
	ErrRequestNotFound = New(ErrNotFound, "REQUEST_NOT_FOUND", "request not found")
	// ErrJobNotFound is returned when a job posting is not found.
	ErrJobNotFound = New(ErrNotFound, "JOB_NOT_FOUND", "job not found")
	// ErrEventNotFound is returned when an event is not found.
	ErrEventNotFound = New(ErrNotFound, "EVENT_NOT_FOUND", "event not found")
	// ErrInstitutionNotFound is returned when an institution is missing or not approved where approval is required.
	ErrInstitutionNotFound = New(ErrNotFound, "INSTITUTION_NOT_FOUND", "institution not found")

	// ErrPermissionDenied is returned when the actor lacks the capability for an action.
	ErrPermissionDenied = New(ErrForbidden, "PERMISSION_DENIED", "you do not have permission to perform this action")

	// ErrDuplicateActiveRequest is returned when a pending or accepted request already exists for the pair.
	ErrDuplicateActiveRequest = New(ErrConflict, "DUPLICATE_ACTIVE_REQUEST", "you already have an active or pending request with this mentor")
	// ErrRequestAlreadyResolved is returned when responding to an accepted or declined request.
	ErrRequestAlreadyResolved = New(ErrConflict, "REQUEST_ALREADY_RESOLVED", "request has already been responded to")
	// ErrUserAlreadyExists is returned when the username or email is taken.
	ErrUserAlreadyExists = New(ErrConflict, "USER_ALREADY_EXISTS", "username or email already registered")
	// ErrInstitutionAlreadyExists is returned when the contact email is already used by an institution.
	ErrInstitutionAlreadyExists = New(ErrConflict, "INSTITUTION_ALREADY_EXISTS", "an institution with this contact email already exists")
	// ErrInstitutionAlreadyResolved is returned when approving or rejecting an institution that is not pending.
	ErrInstitutionAlreadyResolved = New(ErrConflict, "INSTITUTION_ALREADY_RESOLVED", "institution has already been actioned")

	// ErrInvalidStatus is returned when a response status is not accepted or declined.
	ErrInvalidStatus = New(ErrInvalidArgument, "INVALID_STATUS", "invalid status provided")
	// ErrSelfRequest is returned when a user asks themselves for mentorship.
	ErrSelfRequest = New(ErrInvalidArgument, "SELF_REQUEST", "you cannot request mentorship from yourself")
	// ErrEmptyMessage is returned when a request carries no initial message.
	ErrEmptyMessage = New(ErrInvalidArgument, "EMPTY_MESSAGE", "initial message is required")
	// ErrInvalidRole is returned when a role is unknown.
	ErrInvalidRole = New(ErrInvalidArgument, "INVALID_ROLE", "invalid role")
	// ErrInvalidJobType is returned when a job type is unknown.
	ErrInvalidJobType = New(ErrInvalidArgument, "INVALID_JOB_TYPE", "invalid job type")
	// ErrInvalidSchedule is returned when an event ends before it starts.
	ErrInvalidSchedule = New(ErrInvalidArgument, "INVALID_SCHEDULE", "event must end after it starts")
	// ErrInvalidInstitution is returned when an application lacks a name, contact person or valid email.
	ErrInvalidInstitution = New(ErrInvalidArgument, "INVALID_INSTITUTION", "name, contact person and a valid contact email are required")
	// ErrEmptyQuery is returned when the assistant receives no query.
	ErrEmptyQuery = New(ErrInvalidArgument, "EMPTY_QUERY", "query is empty")

	// ErrAssistantUnavailable is returned when no assistant backend is configured.
	ErrAssistantUnavailable = New(ErrUnavailable, "ASSISTANT_UNAVAILABLE", "AI model not configured")
	// ErrAssistantFailed is returned when the assistant backend fails to answer.
	ErrAssistantFailed = New(ErrInternal, "ASSISTANT_FAILED", "an error occurred while generating the AI response")
)

// Is reports whether err matches target or any of others.
func Is(err, target error, others ...error) bool {
	if errors.Is(err, target) {
		return true
	}
	for _, o := range others {
		if errors.Is(err, o) {
			return true
		}
	}
	return false
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	var domainErr *Error
	if !errors.As(err, &domainErr) {
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
	return NewHTTPError(statusFor(domainErr.Kind), domainErr.Message, domainErr.Code)
}

func statusFor(kind error) int {
	switch kind {
	case ErrNotFound:
		return http.StatusNotFound
	case ErrForbidden:
		return http.StatusForbidden
	case ErrConflict:
		return http.StatusConflict
	case ErrInvalidArgument:
		return http.StatusBadRequest
	case ErrUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
