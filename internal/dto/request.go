package dto

type RegisterRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

type CreateReservationRequest struct {
	ResourceID uint    `json:"resource_id"`
	TimeSlotID uint    `json:"timeslot_id"`
	Notes      *string `json:"notes,omitempty"`
}

type CreateResourceRequest struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	MaxBookings int    `json:"max_bookings"`
	ColorCode   string `json:"color_code"`
}

type GenerateTimeSlotsRequest struct {
	ResourceID      uint   `json:"resource_id"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
	DurationMinutes int    `json:"duration_minutes,omitempty"`
}
