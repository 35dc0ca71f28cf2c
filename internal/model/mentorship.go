package model

import "time"

// RequestStatus represents the lifecycle state of a mentorship request.
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusAccepted RequestStatus = "accepted"
	RequestStatusDeclined RequestStatus = "declined"
)

// Valid reports whether s is a known status.
func (s RequestStatus) Valid() bool {
	switch s {
	case RequestStatusPending, RequestStatusAccepted, RequestStatusDeclined:
		return true
	}
	return false
}

// Active reports whether s blocks a new request between the same pair.
func (s RequestStatus) Active() bool {
	return s == RequestStatusPending || s == RequestStatusAccepted
}

// MentorshipRequest is a directed request from a requester to a mentor.
//
// ActiveSlot is set while the request is pending or accepted and cleared once
// declined. Together with the requester and mentor it forms a unique index,
// so the store itself rejects a second active request for the same pair.
type MentorshipRequest struct {
	ID             uint          `json:"id" gorm:"primaryKey"`
	RequesterID    uint          `json:"-" gorm:"not null;uniqueIndex:idx_active_pair,priority:1"`
	MentorID       uint          `json:"-" gorm:"not null;uniqueIndex:idx_active_pair,priority:2"`
	ActiveSlot     *bool         `json:"-" gorm:"uniqueIndex:idx_active_pair,priority:3"`
	InitialMessage string        `json:"initial_message" gorm:"type:text;not null"`
	Status         RequestStatus `json:"status" gorm:"type:varchar(10);not null;default:'pending';index"`
	CreatedAt      time.Time     `json:"created_at" gorm:"index"`
	UpdatedAt      time.Time     `json:"-"`

	// Relations
	Requester User `json:"requester" gorm:"foreignKey:RequesterID;constraint:OnDelete:CASCADE"`
	Mentor    User `json:"mentor" gorm:"foreignKey:MentorID;constraint:OnDelete:CASCADE"`
}

// SetStatus moves the request to status and keeps ActiveSlot in step with it.
func (r *MentorshipRequest) SetStatus(status RequestStatus) {
	r.Status = status
	if status.Active() {
		active := true
		r.ActiveSlot = &active
		return
	}
	r.ActiveSlot = nil
}

// IsPending reports whether the mentor has not responded yet.
func (r *MentorshipRequest) IsPending() bool {
	return r.Status == RequestStatusPending
}

// ConnectionInfo holds the contact details a mentor disclosed when accepting a request.
type ConnectionInfo struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	RequestID         uint      `json:"-" gorm:"uniqueIndex;not null"`
	SharedContactInfo string    `json:"shared_contact_info" gorm:"type:text;not null"`
	SharedMessage     string    `json:"shared_message" gorm:"type:text"`
	CreatedAt         time.Time `json:"-"`

	// Relations
	Request MentorshipRequest `json:"request" gorm:"foreignKey:RequestID;constraint:OnDelete:CASCADE"`
}
