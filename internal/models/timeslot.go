package models

import (
	"fmt"
	"time"

	"github.com/gymdesk/gymdesk-backend/internal/apperrors"
)

const (
	MinSlotDuration = 15 * time.Minute
	MaxSlotDuration = 24 * time.Hour
)

// TimeSlot is a bookable window belonging to one resource. Bounds are stored
// in UTC; the unique index keeps slot generation idempotent per resource.
type TimeSlot struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ResourceID  uint      `gorm:"not null;uniqueIndex:idx_slot_bounds" json:"resource_id"`
	StartTime   time.Time `gorm:"not null;uniqueIndex:idx_slot_bounds" json:"start_time"`
	EndTime     time.Time `gorm:"not null;uniqueIndex:idx_slot_bounds" json:"end_time"`
	IsAvailable bool      `gorm:"not null;default:true" json:"is_available"`

	Resource *Resource `gorm:"foreignKey:ResourceID" json:"resource,omitempty"`
}

func NewTimeSlot(resourceID uint, startTime, endTime time.Time) (*TimeSlot, error) {
	if resourceID == 0 {
		return nil, apperrors.Invalidf("resource_id must be a positive number")
	}
	start, end := startTime.UTC(), endTime.UTC()
	if !start.Before(end) {
		return nil, apperrors.Invalidf("start_time must be before end_time")
	}
	duration := end.Sub(start)
	if duration < MinSlotDuration {
		return nil, apperrors.Invalidf("timeslot must be at least 15 minutes")
	}
	if duration > MaxSlotDuration {
		return nil, apperrors.Invalidf("timeslot must not exceed 24 hours")
	}

	return &TimeSlot{
		ResourceID:  resourceID,
		StartTime:   start,
		EndTime:     end,
		IsAvailable: true,
	}, nil
}

func (t *TimeSlot) IsInPast(now time.Time) bool {
	return t.StartTime.Before(now.UTC())
}

func (t *TimeSlot) IsInFuture(now time.Time) bool {
	return !t.IsInPast(now)
}

// CanBeReserved reports whether the slot is open and starts strictly in the
// future relative to now.
func (t *TimeSlot) CanBeReserved(now time.Time) bool {
	return t.IsAvailable && t.IsInFuture(now)
}

func (t *TimeSlot) DurationMinutes() int {
	return int(t.EndTime.Sub(t.StartTime).Minutes())
}

func (t *TimeSlot) OverlapsWith(otherStart, otherEnd time.Time) bool {
	return t.StartTime.Before(otherEnd) && otherStart.Before(t.EndTime)
}

func (t *TimeSlot) CloseForMaintenance() error {
	if !t.IsAvailable {
		return apperrors.Invalidf("slot is already closed")
	}
	t.IsAvailable = false
	return nil
}

func (t *TimeSlot) OpenForReservations() error {
	if t.IsAvailable {
		return apperrors.Invalidf("slot is already open")
	}
	t.IsAvailable = true
	return nil
}

func (t *TimeSlot) String() string {
	return fmt.Sprintf("%s - %s (%d min)",
		t.StartTime.Format("2006-01-02 15:04"),
		t.EndTime.Format("15:04"),
		t.DurationMinutes())
}
