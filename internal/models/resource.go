package models

import (
	"strings"
	"time"

	"github.com/gymdesk/gymdesk-backend/internal/apperrors"
)

type ResourceType string

const (
	TypeRoom      ResourceType = "ROOM"
	TypeEquipment ResourceType = "EQUIPMENT"
)

const (
	MinBookingsPerSlot = 1
	MaxBookingsPerSlot = 100
)

type Resource struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	Name        string       `gorm:"not null" json:"name"`
	Type        ResourceType `gorm:"type:varchar(20);not null" json:"type"`
	MaxBookings int          `gorm:"not null;default:1" json:"max_bookings"`
	ColorCode   string       `gorm:"type:varchar(7);not null" json:"color_code"`
	OwnerID     *uint        `json:"owner_id,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

func NewResource(name string, typ ResourceType, maxBookings int, colorCode string, ownerID *uint) (*Resource, error) {
	if len(strings.TrimSpace(name)) < 2 {
		return nil, apperrors.Invalidf("resource name must be at least 2 characters")
	}
	if typ != TypeRoom && typ != TypeEquipment {
		return nil, apperrors.Invalidf("type must be ROOM or EQUIPMENT, not %q", typ)
	}
	if maxBookings < MinBookingsPerSlot {
		return nil, apperrors.Invalidf("max_bookings must be at least %d", MinBookingsPerSlot)
	}
	if maxBookings > MaxBookingsPerSlot {
		return nil, apperrors.Invalidf("max_bookings must not exceed %d", MaxBookingsPerSlot)
	}
	if !strings.HasPrefix(colorCode, "#") || len(colorCode) != 7 {
		return nil, apperrors.Invalidf("color_code must be hex format (#RRGGBB)")
	}

	return &Resource{
		Name:        name,
		Type:        typ,
		MaxBookings: maxBookings,
		ColorCode:   colorCode,
		OwnerID:     ownerID,
	}, nil
}

func (r *Resource) IsRoom() bool {
	return r.Type == TypeRoom
}

func (r *Resource) IsEquipment() bool {
	return r.Type == TypeEquipment
}

// CanAcceptReservations reports whether one more reservation fits given the
// current count of active reservations on a timeslot.
func (r *Resource) CanAcceptReservations(currentCount int) bool {
	return currentCount < r.MaxBookings
}

func (r *Resource) AvailableSpots(currentCount int) int {
	if spots := r.MaxBookings - currentCount; spots > 0 {
		return spots
	}
	return 0
}
