package dto

import (
	"time"

	"github.com/gymdesk/gymdesk-backend/internal/models"
)

type UserResponse struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type AuthResponse struct {
	Success bool         `json:"success"`
	Access  string       `json:"access"`
	Refresh string       `json:"refresh"`
	User    UserResponse `json:"user"`
}

type ResourceResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	MaxBookings int       `json:"max_bookings"`
	ColorCode   string    `json:"color_code"`
	OwnerID     *uint     `json:"owner_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type TimeSlotResponse struct {
	ID              uint      `json:"id"`
	ResourceID      uint      `json:"resource_id"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	IsAvailable     bool      `json:"is_available"`
	DurationMinutes int       `json:"duration_minutes"`
}

type SlotStatusResponse struct {
	ID             uint  `json:"id"`
	ResourceID     uint  `json:"resource_id"`
	MaxBookings    int   `json:"max_bookings"`
	ActiveCount    int64 `json:"active_count"`
	SpotsAvailable int   `json:"spots_available"`
	IsAvailable    bool  `json:"is_available"`
}

type ReservationResponse struct {
	ID         uint      `json:"id"`
	UserID     uint      `json:"user_id"`
	ResourceID uint      `json:"resource_id"`
	TimeSlotID uint      `json:"time_slot_id"`
	Status     string    `json:"status"`
	Notes      *string   `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func ToUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		FullName:  u.FullName(),
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

func ToResourceResponse(r *models.Resource) ResourceResponse {
	return ResourceResponse{
		ID:          r.ID,
		Name:        r.Name,
		Type:        string(r.Type),
		MaxBookings: r.MaxBookings,
		ColorCode:   r.ColorCode,
		OwnerID:     r.OwnerID,
		CreatedAt:   r.CreatedAt,
	}
}

func ToTimeSlotResponse(t *models.TimeSlot) TimeSlotResponse {
	return TimeSlotResponse{
		ID:              t.ID,
		ResourceID:      t.ResourceID,
		StartTime:       t.StartTime,
		EndTime:         t.EndTime,
		IsAvailable:     t.IsAvailable,
		DurationMinutes: t.DurationMinutes(),
	}
}

func ToReservationResponse(r *models.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:         r.ID,
		UserID:     r.UserID,
		ResourceID: r.ResourceID,
		TimeSlotID: r.TimeSlotID,
		Status:     string(r.Status),
		Notes:      r.Notes,
		CreatedAt:  r.CreatedAt,
	}
}
