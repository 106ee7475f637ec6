package model

import (
	"strings"
	"time"
)

type Role string

const (
	RoleVolunteer Role = "volunteer"
	RoleCommander Role = "commander"
	RoleHR        Role = "hr"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleVolunteer, RoleCommander, RoleHR:
		return true
	}
	return false
}

// ParseRole accepts the role names case-insensitively.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	return r, r.IsValid()
}

// User is the credential record. Role is fixed at creation and every user
// owns exactly one profile of the matching kind.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"type:varchar(120);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	Role         Role      `gorm:"type:varchar(20);not null" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NormalizeEmail is applied before every email lookup and insert.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
