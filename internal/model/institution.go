package model

import "time"

// InstitutionStatus is the review state of an institution application.
type InstitutionStatus string

const (
	InstitutionStatusPending  InstitutionStatus = "pending"
	InstitutionStatusApproved InstitutionStatus = "approved"
	InstitutionStatusRejected InstitutionStatus = "rejected"
)

// Institution is a college that applied to join the platform.
type Institution struct {
	ID            uint              `json:"id" gorm:"primaryKey"`
	Name          string            `json:"name" gorm:"size:255;not null"`
	Address       string            `json:"address" gorm:"type:text"`
	ContactPerson string            `json:"contact_person" gorm:"size:255;not null"`
	ContactEmail  string            `json:"contact_email" gorm:"size:254;uniqueIndex;not null"`
	ContactPhone  string            `json:"contact_phone" gorm:"size:20"`
	Status        InstitutionStatus `json:"status" gorm:"type:varchar(10);not null;default:'pending';index"`
	AdminID       *uint             `json:"admin_id,omitempty" gorm:"index"`
	CreatedAt     time.Time         `json:"created_at" gorm:"index"`
	UpdatedAt     time.Time         `json:"-"`
}

// IsPending reports whether the application still awaits a decision.
func (i *Institution) IsPending() bool {
	return i.Status == InstitutionStatusPending
}
