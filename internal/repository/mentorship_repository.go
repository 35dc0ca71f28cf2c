package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mansi2425/punjab-alumni-connect/internal/model"
)

// MentorshipRepository defines request ledger and connection persistence operations.
type MentorshipRepository interface {
	Create(ctx context.Context, req *model.MentorshipRequest) error
	FindByID(ctx context.Context, id uint) (*model.MentorshipRequest, error)
	FindByIDForUpdate(ctx context.Context, id uint) (*model.MentorshipRequest, error)
	HasActiveBetween(ctx context.Context, requesterID, mentorID uint) (bool, error)
	UpdateStatus(ctx context.Context, req *model.MentorshipRequest) error
	ListOutgoing(ctx context.Context, requesterID uint, status *model.RequestStatus) ([]model.MentorshipRequest, error)
	ListIncomingPending(ctx context.Context, mentorID uint) ([]model.MentorshipRequest, error)
	CreateConnection(ctx context.Context, conn *model.ConnectionInfo) error
	FindConnectionByRequestID(ctx context.Context, requestID uint) (*model.ConnectionInfo, error)
	ListConnectionsFor(ctx context.Context, userID uint) ([]model.ConnectionInfo, error)
	// Transaction methods
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo MentorshipRepository) error) error
}

type mentorshipRepository struct {
	db *gorm.DB
}

// NewMentorshipRepository creates a new mentorship repository.
func NewMentorshipRepository(db *gorm.DB) MentorshipRepository {
	return &mentorshipRepository{db: db}
}

// forUpdate adds a row lock. SQLite has no FOR UPDATE and serializes writers anyway.
func forUpdate(db *gorm.DB) *gorm.DB {
	if db.Dialector.Name() == "sqlite" {
		return db
	}
	return db.Clauses(clause.Locking{Strength: "UPDATE"})
}

func withParties(db *gorm.DB) *gorm.DB {
	return db.Preload("Requester.Profile").Preload("Mentor.Profile")
}

// Create inserts a request. An empty status becomes pending.
func (r *mentorshipRepository) Create(ctx context.Context, req *model.MentorshipRequest) error {
	if req.Status == "" {
		req.Status = model.RequestStatusPending
	}
	req.SetStatus(req.Status)
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(req).Error
}

// FindByID finds a request with both parties and their profiles loaded.
func (r *mentorshipRepository) FindByID(ctx context.Context, id uint) (*model.MentorshipRequest, error) {
	var req model.MentorshipRequest
	if err := withParties(r.db.WithContext(ctx)).First(&req, id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

// FindByIDForUpdate finds a request with a row-level lock. Relations are not loaded.
func (r *mentorshipRepository) FindByIDForUpdate(ctx context.Context, id uint) (*model.MentorshipRequest, error) {
	var req model.MentorshipRequest
	if err := forUpdate(r.db.WithContext(ctx)).First(&req, id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

// HasActiveBetween reports whether a pending or accepted request from
// requesterID to mentorID exists, locking it when found.
func (r *mentorshipRepository) HasActiveBetween(ctx context.Context, requesterID, mentorID uint) (bool, error) {
	var reqs []model.MentorshipRequest
	err := forUpdate(r.db.WithContext(ctx)).
		Where("requester_id = ? AND mentor_id = ? AND status IN ?", requesterID, mentorID,
			[]model.RequestStatus{model.RequestStatusPending, model.RequestStatusAccepted}).
		Limit(1).
		Find(&reqs).Error
	if err != nil {
		return false, err
	}
	return len(reqs) > 0, nil
}

// UpdateStatus persists the request's status and active slot.
func (r *mentorshipRepository) UpdateStatus(ctx context.Context, req *model.MentorshipRequest) error {
	return r.db.WithContext(ctx).Model(&model.MentorshipRequest{}).
		Where("id = ?", req.ID).
		Updates(map[string]interface{}{
			"status":      req.Status,
			"active_slot": req.ActiveSlot,
		}).Error
}

// ListOutgoing lists requests sent by requesterID, newest first, optionally filtered by status.
func (r *mentorshipRepository) ListOutgoing(ctx context.Context, requesterID uint, status *model.RequestStatus) ([]model.MentorshipRequest, error) {
	q := withParties(r.db.WithContext(ctx)).Where("requester_id = ?", requesterID)
	if status != nil {
		q = q.Where("status = ?", *status)
	}

	var reqs []model.MentorshipRequest
	err := q.Order("created_at DESC, id DESC").Find(&reqs).Error
	return reqs, err
}

// ListIncomingPending lists pending requests addressed to mentorID, newest first.
func (r *mentorshipRepository) ListIncomingPending(ctx context.Context, mentorID uint) ([]model.MentorshipRequest, error) {
	var reqs []model.MentorshipRequest
	err := withParties(r.db.WithContext(ctx)).
		Where("mentor_id = ? AND status = ?", mentorID, model.RequestStatusPending).
		Order("created_at DESC, id DESC").
		Find(&reqs).Error
	return reqs, err
}

func (r *mentorshipRepository) CreateConnection(ctx context.Context, conn *model.ConnectionInfo) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(conn).Error
}

// FindConnectionByRequestID finds the connection of a request with the request and both parties loaded.
func (r *mentorshipRepository) FindConnectionByRequestID(ctx context.Context, requestID uint) (*model.ConnectionInfo, error) {
	var conn model.ConnectionInfo
	if err := r.db.WithContext(ctx).
		Preload("Request.Requester.Profile").
		Preload("Request.Mentor.Profile").
		Where("request_id = ?", requestID).
		First(&conn).Error; err != nil {
		return nil, err
	}
	return &conn, nil
}

// ListConnectionsFor lists connections of accepted requests where userID is either party.
func (r *mentorshipRepository) ListConnectionsFor(ctx context.Context, userID uint) ([]model.ConnectionInfo, error) {
	var conns []model.ConnectionInfo
	err := r.db.WithContext(ctx).
		Preload("Request.Requester.Profile").
		Preload("Request.Mentor.Profile").
		Joins("JOIN mentorship_requests ON mentorship_requests.id = connection_infos.request_id").
		Where("mentorship_requests.status = ?", model.RequestStatusAccepted).
		Where("(mentorship_requests.requester_id = ? OR mentorship_requests.mentor_id = ?)", userID, userID).
		Order("connection_infos.id").
		Find(&conns).Error
	return conns, err
}

// WithTransaction executes a function within a database transaction.
func (r *mentorshipRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo MentorshipRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := &mentorshipRepository{db: tx}
		return fn(ctx, txRepo)
	})
}
