package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gymdesk/gymdesk-backend/internal/models"
	"gorm.io/gorm"
)

// Function-field mocks for the repository interfaces. Unset finders behave
// as a record miss so each test only wires what it cares about.

type mockUserRepo struct {
	createFn      func(ctx context.Context, user *models.User) error
	findByIDFn    func(ctx context.Context, id uint) (*models.User, error)
	findByEmailFn func(ctx context.Context, email string) (*models.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return nil
}
func (m *mockUserRepo) FindByID(ctx context.Context, id uint) (*models.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *mockUserRepo) FindAll(ctx context.Context) ([]models.User, error) { return nil, nil }
func (m *mockUserRepo) Update(ctx context.Context, user *models.User) error {
	return nil
}
func (m *mockUserRepo) Delete(ctx context.Context, id uint) error { return nil }

type mockResourceRepo struct {
	createFn   func(ctx context.Context, resource *models.Resource) error
	findByIDFn func(ctx context.Context, id uint) (*models.Resource, error)
	findAllFn  func(ctx context.Context, typeFilter *models.ResourceType, ownerFilter *uint) ([]models.Resource, error)
	updateFn   func(ctx context.Context, resource *models.Resource) error
	deleteFn   func(ctx context.Context, id uint) error
}

func (m *mockResourceRepo) Create(ctx context.Context, resource *models.Resource) error {
	if m.createFn != nil {
		return m.createFn(ctx, resource)
	}
	return nil
}
func (m *mockResourceRepo) FindByID(ctx context.Context, id uint) (*models.Resource, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *mockResourceRepo) FindAll(ctx context.Context, typeFilter *models.ResourceType, ownerFilter *uint) ([]models.Resource, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx, typeFilter, ownerFilter)
	}
	return nil, nil
}
func (m *mockResourceRepo) Update(ctx context.Context, resource *models.Resource) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, resource)
	}
	return nil
}
func (m *mockResourceRepo) Delete(ctx context.Context, id uint) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

// mockTimeSlotRepo keeps an in-memory store keyed by slot bounds so
// FirstOrCreate behaves like the real unique-index-backed implementation.
type mockTimeSlotRepo struct {
	findByIDFn func(ctx context.Context, id uint) (*models.TimeSlot, error)

	store  map[string]models.TimeSlot
	nextID uint
}

func slotKey(s *models.TimeSlot) string {
	return fmt.Sprintf("%d/%d/%d", s.ResourceID, s.StartTime.Unix(), s.EndTime.Unix())
}

func (m *mockTimeSlotRepo) FirstOrCreate(ctx context.Context, slot *models.TimeSlot) error {
	if m.store == nil {
		m.store = make(map[string]models.TimeSlot)
	}
	key := slotKey(slot)
	if existing, ok := m.store[key]; ok {
		*slot = existing
		return nil
	}
	m.nextID++
	slot.ID = m.nextID
	m.store[key] = *slot
	return nil
}
func (m *mockTimeSlotRepo) FindByID(ctx context.Context, id uint) (*models.TimeSlot, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *mockTimeSlotRepo) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.TimeSlot, error) {
	return m.FindByID(ctx, id)
}
func (m *mockTimeSlotRepo) FindByResource(ctx context.Context, resourceID uint, start, end *time.Time) ([]models.TimeSlot, error) {
	return nil, nil
}
func (m *mockTimeSlotRepo) FindByDate(ctx context.Context, date time.Time) ([]models.TimeSlot, error) {
	return nil, nil
}
func (m *mockTimeSlotRepo) UpdateAvailability(ctx context.Context, tx *gorm.DB, slotID uint, available bool) error {
	return nil
}
func (m *mockTimeSlotRepo) Delete(ctx context.Context, id uint) error { return nil }

type mockReservationRepo struct {
	findByIDFn               func(ctx context.Context, id uint) (*models.Reservation, error)
	findByUserFn             func(ctx context.Context, userID uint, status *models.ReservationStatus) ([]models.Reservation, error)
	findAllFn                func(ctx context.Context, status *models.ReservationStatus) ([]models.Reservation, error)
	findByUserAndDateRangeFn func(ctx context.Context, userID uint, start, end time.Time, status models.ReservationStatus) ([]models.Reservation, error)
}

func (m *mockReservationRepo) Create(ctx context.Context, tx *gorm.DB, reservation *models.Reservation) error {
	return nil
}
func (m *mockReservationRepo) FindByID(ctx context.Context, id uint) (*models.Reservation, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *mockReservationRepo) FindByUser(ctx context.Context, userID uint, status *models.ReservationStatus) ([]models.Reservation, error) {
	if m.findByUserFn != nil {
		return m.findByUserFn(ctx, userID, status)
	}
	return nil, nil
}
func (m *mockReservationRepo) FindAll(ctx context.Context, status *models.ReservationStatus) ([]models.Reservation, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx, status)
	}
	return nil, nil
}
func (m *mockReservationRepo) FindByUserAndDateRange(ctx context.Context, userID uint, start, end time.Time, status models.ReservationStatus) ([]models.Reservation, error) {
	if m.findByUserAndDateRangeFn != nil {
		return m.findByUserAndDateRangeFn(ctx, userID, start, end, status)
	}
	return nil, nil
}
func (m *mockReservationRepo) CountByTimeSlot(ctx context.Context, tx *gorm.DB, timeSlotID uint, status models.ReservationStatus) (int64, error) {
	return 0, nil
}
func (m *mockReservationRepo) UpdateStatus(ctx context.Context, tx *gorm.DB, reservationID uint, status models.ReservationStatus) error {
	return nil
}
func (m *mockReservationRepo) GetDB() *gorm.DB { return nil }
