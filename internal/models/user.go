package models

import (
	"strings"
	"time"

	"github.com/gymdesk/gymdesk-backend/internal/apperrors"
)

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         Role      `gorm:"type:varchar(10);not null;default:'USER'" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewUser builds a validated user for registration. Records loaded back from
// the database carry an ID and bypass this factory entirely: legacy and
// admin-created users may have empty name fields, and rejecting them on read
// would make those rows unreachable.
func NewUser(email, firstName, lastName, passwordHash string, role Role) (*User, error) {
	if email == "" || !strings.Contains(email, "@") {
		return nil, apperrors.Invalidf("email must contain @")
	}
	if len(strings.TrimSpace(firstName)) < 2 {
		return nil, apperrors.Invalidf("first name must be at least 2 characters")
	}
	if len(strings.TrimSpace(lastName)) < 2 {
		return nil, apperrors.Invalidf("last name must be at least 2 characters")
	}
	if role != RoleUser && role != RoleAdmin {
		return nil, apperrors.Invalidf("role must be USER or ADMIN, not %q", role)
	}
	if passwordHash == "" {
		return nil, apperrors.Invalidf("password hash must not be empty")
	}

	return &User{
		Email:        email,
		FirstName:    firstName,
		LastName:     lastName,
		PasswordHash: passwordHash,
		Role:         role,
	}, nil
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) CanManageResources() bool {
	return u.IsAdmin()
}

func (u *User) CanViewAllReservations() bool {
	return u.IsAdmin()
}
