package model

import (
	"strings"
	"time"
)

// Role is the platform role of a user.
type Role string

const (
	RoleStudent          Role = "student"
	RoleAlumni           Role = "alumni"
	RoleDepartmentAdmin  Role = "department_admin"
	RoleInstitutionAdmin Role = "institution_admin"
	RoleSuperAdmin       Role = "super_admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleAlumni, RoleDepartmentAdmin, RoleInstitutionAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// User represents a registered member of the platform.
type User struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Username   string    `json:"username" gorm:"size:150;uniqueIndex;not null"`
	Email      string    `json:"email" gorm:"size:254;uniqueIndex;not null"`
	FirstName  string    `json:"first_name" gorm:"size:150"`
	LastName   string    `json:"last_name" gorm:"size:150"`
	Role       Role      `json:"role" gorm:"type:varchar(20);not null;default:'student';index"`
	IsApproved bool      `json:"is_approved" gorm:"not null;default:false;index"`
	CreatedAt  time.Time `json:"date_joined"`
	UpdatedAt  time.Time `json:"-"`

	// Relations
	Profile *Profile `json:"profile,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// DisplayName returns the first name when set, the username otherwise.
func (u *User) DisplayName() string {
	if name := strings.TrimSpace(u.FirstName); name != "" {
		return name
	}
	return u.Username
}

// Skills returns the raw skills text of the user's profile.
func (u *User) Skills() string {
	if u.Profile == nil {
		return ""
	}
	return u.Profile.Skills
}

// Profile holds the public attributes of a user. Every user has exactly one.
type Profile struct {
	ID               uint   `json:"-" gorm:"primaryKey"`
	UserID           uint   `json:"-" gorm:"uniqueIndex;not null"`
	Headline         string `json:"headline" gorm:"size:255"`
	About            string `json:"about" gorm:"type:text"`
	Location         string `json:"location" gorm:"size:100"`
	Company          string `json:"company" gorm:"size:100"`
	Skills           string `json:"skills" gorm:"type:text"` // comma-separated
	InstitutionID    *uint  `json:"institution_id" gorm:"index"`
	Department       string `json:"department" gorm:"size:255"`
	GraduationYear   *int   `json:"graduation_year"`
	EnrollmentNumber string `json:"enrollment_number" gorm:"size:50"`

	// Relations
	Institution *Institution `json:"-" gorm:"foreignKey:InstitutionID;constraint:OnDelete:SET NULL"`
}

// InstitutionOf returns the institution id of u's profile, or 0 when unset.
func InstitutionOf(u *User) uint {
	if u == nil || u.Profile == nil || u.Profile.InstitutionID == nil {
		return 0
	}
	return *u.Profile.InstitutionID
}
