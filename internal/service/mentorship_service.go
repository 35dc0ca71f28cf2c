package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mansi2425/punjab-alumni-connect/internal/errors"
	"github.com/mansi2425/punjab-alumni-connect/internal/model"
	"github.com/mansi2425/punjab-alumni-connect/internal/policy"
	"github.com/mansi2425/punjab-alumni-connect/internal/repository"
)

// DefaultContactInfo is disclosed when a mentor accepts without sharing contact details.
const DefaultContactInfo = "Mentor has not provided contact info yet."

// RequestView selects which side of the request ledger to list.
type RequestView string

const (
	ViewIncoming RequestView = "incoming"
	ViewOutgoing RequestView = "outgoing"
)

// CreateRequestInput carries a new mentorship request.
type CreateRequestInput struct {
	MentorID       uint
	InitialMessage string
}

// RespondInput carries a mentor's answer to a request.
type RespondInput struct {
	Status            string
	SharedContactInfo *string
	SharedMessage     *string
}

// RespondResult is the updated request and, on accept, the created connection.
type RespondResult struct {
	Request    *model.MentorshipRequest `json:"request"`
	Connection *model.ConnectionInfo    `json:"connection,omitempty"`
}

// MentorshipService runs the request and connection workflow.
type MentorshipService interface {
	ListRequests(ctx context.Context, actor *model.User, view RequestView, status string) ([]model.MentorshipRequest, error)
	CreateRequest(ctx context.Context, actor *model.User, input CreateRequestInput) (*model.MentorshipRequest, error)
	Respond(ctx context.Context, actor *model.User, requestID uint, input RespondInput) (*RespondResult, error)
	ListConnections(ctx context.Context, actor *model.User) ([]model.ConnectionInfo, error)
}

type mentorshipService struct {
	requests repository.MentorshipRepository
	users    repository.UserRepository
	log      *zap.Logger
}

// NewMentorshipService creates a new mentorship service.
func NewMentorshipService(
	requests repository.MentorshipRepository,
	users repository.UserRepository,
	log *zap.Logger,
) MentorshipService {
	return &mentorshipService{
		requests: requests,
		users:    users,
		log:      log,
	}
}

// ListRequests lists incoming pending requests for the mentor, or the actor's
// outgoing requests optionally filtered by status. Unknown views list incoming;
// unknown status values are ignored.
func (s *mentorshipService) ListRequests(ctx context.Context, actor *model.User, view RequestView, status string) ([]model.MentorshipRequest, error) {
	var (
		reqs []model.MentorshipRequest
		err  error
	)
	if view == ViewOutgoing {
		var filter *model.RequestStatus
		if st := model.RequestStatus(status); st.Valid() {
			filter = &st
		}
		reqs, err = s.requests.ListOutgoing(ctx, actor.ID, filter)
	} else {
		reqs, err = s.requests.ListIncomingPending(ctx, actor.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	if reqs == nil {
		reqs = []model.MentorshipRequest{}
	}
	return reqs, nil
}

// CreateRequest records a pending request from actor to the mentor. Only one
// pending or accepted request may exist per requester and mentor.
func (s *mentorshipService) CreateRequest(ctx context.Context, actor *model.User, input CreateRequestInput) (*model.MentorshipRequest, error) {
	message := strings.TrimSpace(input.InitialMessage)
	if message == "" {
		return nil, errors.ErrEmptyMessage
	}
	if input.MentorID == actor.ID {
		return nil, errors.ErrSelfRequest
	}

	mentor, err := s.users.FindByID(ctx, input.MentorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrMentorNotFound
		}
		return nil, fmt.Errorf("find mentor: %w", err)
	}

	req := &model.MentorshipRequest{
		RequesterID:    actor.ID,
		MentorID:       mentor.ID,
		InitialMessage: message,
	}
	req.SetStatus(model.RequestStatusPending)

	err = s.requests.WithTransaction(ctx, func(ctx context.Context, txRepo repository.MentorshipRepository) error {
		active, err := txRepo.HasActiveBetween(ctx, actor.ID, mentor.ID)
		if err != nil {
			return fmt.Errorf("check active request: %w", err)
		}
		if active {
			return errors.ErrDuplicateActiveRequest
		}
		if err := txRepo.Create(ctx, req); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return errors.ErrDuplicateActiveRequest
			}
			return fmt.Errorf("create request: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	req.Requester = *actor
	req.Mentor = *mentor
	s.log.Info("mentorship request created",
		zap.Uint("request_id", req.ID),
		zap.Uint("requester_id", actor.ID),
		zap.Uint("mentor_id", mentor.ID),
	)
	return req, nil
}

// Respond accepts or declines a pending request addressed to actor. Accepting
// creates the connection record in the same transaction.
func (s *mentorshipService) Respond(ctx context.Context, actor *model.User, requestID uint, input RespondInput) (*RespondResult, error) {
	var conn *model.ConnectionInfo

	err := s.requests.WithTransaction(ctx, func(ctx context.Context, txRepo repository.MentorshipRepository) error {
		req, err := txRepo.FindByIDForUpdate(ctx, requestID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.ErrRequestNotFound
			}
			return fmt.Errorf("lock request: %w", err)
		}

		if err := policy.Authorize(actor, policy.RespondToRequest, req); err != nil {
			return err
		}

		status := model.RequestStatus(input.Status)
		if status != model.RequestStatusAccepted && status != model.RequestStatusDeclined {
			return errors.ErrInvalidStatus
		}
		if !req.IsPending() {
			return errors.ErrRequestAlreadyResolved
		}

		req.SetStatus(status)
		if err := txRepo.UpdateStatus(ctx, req); err != nil {
			return fmt.Errorf("update request status: %w", err)
		}

		if status != model.RequestStatusAccepted {
			return nil
		}

		conn = &model.ConnectionInfo{
			RequestID:         req.ID,
			SharedContactInfo: contactOrDefault(input.SharedContactInfo),
			SharedMessage:     valueOrEmpty(input.SharedMessage),
		}
		if err := txRepo.CreateConnection(ctx, conn); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return errors.ErrRequestAlreadyResolved
			}
			return fmt.Errorf("create connection: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	req, err := s.requests.FindByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("reload request: %w", err)
	}
	if conn != nil {
		conn, err = s.requests.FindConnectionByRequestID(ctx, requestID)
		if err != nil {
			return nil, fmt.Errorf("reload connection: %w", err)
		}
	}

	s.log.Info("mentorship request answered",
		zap.Uint("request_id", req.ID),
		zap.String("status", string(req.Status)),
		zap.Bool("connection_created", conn != nil),
	)
	return &RespondResult{Request: req, Connection: conn}, nil
}

// ListConnections lists connections of accepted requests where actor is either party.
func (s *mentorshipService) ListConnections(ctx context.Context, actor *model.User) ([]model.ConnectionInfo, error) {
	conns, err := s.requests.ListConnectionsFor(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("list connections: %w", err)
	}
	if conns == nil {
		conns = []model.ConnectionInfo{}
	}
	return conns, nil
}

func contactOrDefault(contact *string) string {
	if contact == nil || strings.TrimSpace(*contact) == "" {
		return DefaultContactInfo
	}
	return *contact
}

func valueOrEmpty(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
