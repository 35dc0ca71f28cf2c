package model

import (
	"time"

	"gorm.io/gorm"
)

// JobType is the kind of position a job posting offers.
type JobType string

const (
	JobTypeFullTime   JobType = "Full-Time"
	JobTypeInternship JobType = "Internship"
	JobTypePartTime   JobType = "Part-Time"
)

// Valid reports whether t is a known job type.
func (t JobType) Valid() bool {
	switch t {
	case JobTypeFullTime, JobTypeInternship, JobTypePartTime:
		return true
	}
	return false
}

// Job represents an opening posted on the job board.
type Job struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	Title            string    `json:"title" gorm:"size:200;not null"`
	Company          string    `json:"company" gorm:"size:200;not null"`
	Location         string    `json:"location" gorm:"size:200"`
	Description      string    `json:"description" gorm:"type:text"`
	JobType          JobType   `json:"job_type" gorm:"type:varchar(20);not null"`
	PostedByID       uint      `json:"posted_by" gorm:"not null;index"`
	PostedByUsername string    `json:"posted_by_username" gorm:"-"`
	CreatedAt        time.Time `json:"created_at" gorm:"index"`
	UpdatedAt        time.Time `json:"-"`

	// Relations
	PostedBy User `json:"-" gorm:"foreignKey:PostedByID;constraint:OnDelete:CASCADE"`
}

// AfterFind exposes the poster's username once the relation is loaded.
func (j *Job) AfterFind(tx *gorm.DB) error {
	if j.PostedBy.ID != 0 {
		j.PostedByUsername = j.PostedBy.Username
	}
	return nil
}

// Event represents a gathering published on the event board.
type Event struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	Title             string    `json:"title" gorm:"size:200;not null"`
	Description       string    `json:"description" gorm:"type:text"`
	StartTime         time.Time `json:"start_time" gorm:"not null;index"`
	EndTime           time.Time `json:"end_time" gorm:"not null"`
	Location          string    `json:"location" gorm:"size:200"`
	OrganizerID       uint      `json:"organizer" gorm:"not null;index"`
	OrganizerUsername string    `json:"organizer_username" gorm:"-"`
	CreatedAt         time.Time `json:"-"`
	UpdatedAt         time.Time `json:"-"`

	// Relations
	Organizer User `json:"-" gorm:"foreignKey:OrganizerID;constraint:OnDelete:CASCADE"`
}

// AfterFind exposes the organizer's username once the relation is loaded.
func (e *Event) AfterFind(tx *gorm.DB) error {
	if e.Organizer.ID != 0 {
		e.OrganizerUsername = e.Organizer.Username
	}
	return nil
}
