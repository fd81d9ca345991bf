package repository

import (
	"context"
	"time"

	"github.com/gymdesk/gymdesk-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TimeSlotRepository interface {
	// FirstOrCreate returns the existing slot when one with identical
	// (resource, start, end) bounds exists, creating it otherwise.
	FirstOrCreate(ctx context.Context, slot *models.TimeSlot) error
	FindByID(ctx context.Context, id uint) (*models.TimeSlot, error)
	// FindByIDForUpdate acquires a row-level lock on the slot within the
	// given transaction, serializing admission decisions per timeslot.
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.TimeSlot, error)
	FindByResource(ctx context.Context, resourceID uint, start, end *time.Time) ([]models.TimeSlot, error)
	FindByDate(ctx context.Context, date time.Time) ([]models.TimeSlot, error)
	UpdateAvailability(ctx context.Context, tx *gorm.DB, slotID uint, available bool) error
	Delete(ctx context.Context, id uint) error
}

type timeSlotRepository struct {
	db *gorm.DB
}

func NewTimeSlotRepository(db *gorm.DB) TimeSlotRepository {
	return &timeSlotRepository{db: db}
}

func (r *timeSlotRepository) FirstOrCreate(ctx context.Context, slot *models.TimeSlot) error {
	// Atomic against concurrent generation: the insert defers to the
	// idx_slot_bounds unique index instead of a racy select-then-insert.
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "resource_id"}, {Name: "start_time"}, {Name: "end_time"}},
			DoNothing: true,
		}).
		Create(slot).Error
	if err != nil {
		return err
	}
	if slot.ID != 0 {
		return nil
	}
	// DO NOTHING fired, so the slot already exists. Load it.
	return r.db.WithContext(ctx).
		Where("resource_id = ? AND start_time = ? AND end_time = ?",
			slot.ResourceID, slot.StartTime, slot.EndTime).
		First(slot).Error
}

func (r *timeSlotRepository) FindByID(ctx context.Context, id uint) (*models.TimeSlot, error) {
	var slot models.TimeSlot
	if err := r.db.WithContext(ctx).First(&slot, id).Error; err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *timeSlotRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.TimeSlot, error) {
	var slot models.TimeSlot
	if err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&slot, id).Error; err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *timeSlotRepository) FindByResource(ctx context.Context, resourceID uint, start, end *time.Time) ([]models.TimeSlot, error) {
	var slots []models.TimeSlot
	q := r.db.WithContext(ctx).Where("resource_id = ?", resourceID)
	if start != nil {
		q = q.Where("start_time >= ?", start.UTC())
	}
	if end != nil {
		q = q.Where("end_time <= ?", end.UTC())
	}
	if err := q.Order("start_time ASC").Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *timeSlotRepository) FindByDate(ctx context.Context, date time.Time) ([]models.TimeSlot, error) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	next := day.AddDate(0, 0, 1)

	var slots []models.TimeSlot
	if err := r.db.WithContext(ctx).
		Where("start_time >= ? AND start_time < ?", day, next).
		Order("start_time ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *timeSlotRepository) UpdateAvailability(ctx context.Context, tx *gorm.DB, slotID uint, available bool) error {
	return tx.WithContext(ctx).
		Model(&models.TimeSlot{}).
		Where("id = ?", slotID).
		Update("is_available", available).Error
}

func (r *timeSlotRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.TimeSlot{}, id).Error
}
