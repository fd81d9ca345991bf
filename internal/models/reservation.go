package models

import (
	"strings"
	"time"

	"github.com/gymdesk/gymdesk-backend/internal/apperrors"
)

type ReservationStatus string

const (
	StatusActive    ReservationStatus = "ACTIVE"
	StatusCancelled ReservationStatus = "CANCELLED"
)

// Reservation binds a user to a resource and timeslot. It records an
// admission decision; cancellation flips the status, rows are never deleted
// by business logic.
type Reservation struct {
	ID         uint              `gorm:"primaryKey" json:"id"`
	UserID     uint              `gorm:"not null;index" json:"user_id"`
	ResourceID uint              `gorm:"not null;index" json:"resource_id"`
	TimeSlotID uint              `gorm:"not null;index" json:"time_slot_id"`
	Status     ReservationStatus `gorm:"type:varchar(20);not null;default:'ACTIVE'" json:"status"`
	Notes      *string           `json:"notes,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`

	User     *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Resource *Resource `gorm:"foreignKey:ResourceID" json:"resource,omitempty"`
	TimeSlot *TimeSlot `gorm:"foreignKey:TimeSlotID" json:"time_slot,omitempty"`
}

func NewReservation(userID, resourceID, timeSlotID uint, notes *string) (*Reservation, error) {
	if userID == 0 {
		return nil, apperrors.Invalidf("user_id must be a positive number")
	}
	if resourceID == 0 {
		return nil, apperrors.Invalidf("resource_id must be a positive number")
	}
	if timeSlotID == 0 {
		return nil, apperrors.Invalidf("time_slot_id must be a positive number")
	}

	r := &Reservation{
		UserID:     userID,
		ResourceID: resourceID,
		TimeSlotID: timeSlotID,
		Status:     StatusActive,
	}
	r.UpdateNotes(notes)
	return r, nil
}

func (r *Reservation) IsActive() bool {
	return r.Status == StatusActive
}

func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelled
}

// Cancel transitions ACTIVE -> CANCELLED. The transition is one-way;
// cancelling twice is an error, not a no-op.
func (r *Reservation) Cancel() error {
	if r.IsCancelled() {
		return apperrors.Invalidf("reservation is already cancelled")
	}
	if !r.IsActive() {
		return apperrors.Invalidf("only active reservations can be cancelled")
	}
	r.Status = StatusCancelled
	return nil
}

func (r *Reservation) CanBeCancelled() bool {
	return r.IsActive()
}

func (r *Reservation) HasNotes() bool {
	return r.Notes != nil && *r.Notes != ""
}

// UpdateNotes normalizes empty or whitespace-only notes to absent.
func (r *Reservation) UpdateNotes(notes *string) {
	if notes == nil {
		r.Notes = nil
		return
	}
	trimmed := strings.TrimSpace(*notes)
	if trimmed == "" {
		r.Notes = nil
		return
	}
	r.Notes = &trimmed
}
