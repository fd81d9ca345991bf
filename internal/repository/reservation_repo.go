package repository

import (
	"context"
	"time"

	"github.com/gymdesk/gymdesk-backend/internal/models"
	"gorm.io/gorm"
)

type ReservationRepository interface {
	Create(ctx context.Context, tx *gorm.DB, reservation *models.Reservation) error
	FindByID(ctx context.Context, id uint) (*models.Reservation, error)
	FindByUser(ctx context.Context, userID uint, status *models.ReservationStatus) ([]models.Reservation, error)
	FindAll(ctx context.Context, status *models.ReservationStatus) ([]models.Reservation, error)
	// FindByUserAndDateRange returns reservations whose timeslot falls fully
	// within [start, end], resource and timeslot preloaded, ordered by slot
	// start.
	FindByUserAndDateRange(ctx context.Context, userID uint, start, end time.Time, status models.ReservationStatus) ([]models.Reservation, error)
	CountByTimeSlot(ctx context.Context, tx *gorm.DB, timeSlotID uint, status models.ReservationStatus) (int64, error)
	UpdateStatus(ctx context.Context, tx *gorm.DB, reservationID uint, status models.ReservationStatus) error
	GetDB() *gorm.DB
}

type reservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *reservationRepository) Create(ctx context.Context, tx *gorm.DB, reservation *models.Reservation) error {
	return tx.WithContext(ctx).Create(reservation).Error
}

func (r *reservationRepository) FindByID(ctx context.Context, id uint) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := r.db.WithContext(ctx).First(&reservation, id).Error; err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (r *reservationRepository) FindByUser(ctx context.Context, userID uint, status *models.ReservationStatus) ([]models.Reservation, error) {
	var reservations []models.Reservation
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	if err := q.Order("created_at DESC").Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

func (r *reservationRepository) FindAll(ctx context.Context, status *models.ReservationStatus) ([]models.Reservation, error) {
	var reservations []models.Reservation
	q := r.db.WithContext(ctx)
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	if err := q.Order("created_at DESC").Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

func (r *reservationRepository) FindByUserAndDateRange(ctx context.Context, userID uint, start, end time.Time, status models.ReservationStatus) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := r.db.WithContext(ctx).
		Joins("JOIN time_slots ON time_slots.id = reservations.time_slot_id").
		Where("reservations.user_id = ? AND reservations.status = ?", userID, status).
		Where("time_slots.start_time >= ? AND time_slots.end_time <= ?", start.UTC(), end.UTC()).
		Preload("Resource").
		Preload("TimeSlot").
		Order("time_slots.start_time ASC").
		Find(&reservations).Error
	if err != nil {
		return nil, err
	}
	return reservations, nil
}

func (r *reservationRepository) CountByTimeSlot(ctx context.Context, tx *gorm.DB, timeSlotID uint, status models.ReservationStatus) (int64, error) {
	var count int64
	err := tx.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("time_slot_id = ? AND status = ?", timeSlotID, status).
		Count(&count).Error
	return count, err
}

func (r *reservationRepository) UpdateStatus(ctx context.Context, tx *gorm.DB, reservationID uint, status models.ReservationStatus) error {
	return tx.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("id = ?", reservationID).
		Update("status", status).Error
}
