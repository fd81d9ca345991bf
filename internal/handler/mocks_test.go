package handler

import (
	"context"
	"time"

	"github.com/gymdesk/gymdesk-backend/internal/models"
	"github.com/gymdesk/gymdesk-backend/internal/token"
	"gorm.io/gorm"
)

type mockReservationService struct {
	createFn   func(ctx context.Context, userID, resourceID, timeSlotID uint, notes *string) (*models.Reservation, error)
	cancelFn   func(ctx context.Context, reservationID, actingUserID uint) (*models.Reservation, error)
	getFn      func(ctx context.Context, id uint) (*models.Reservation, error)
	listUserFn func(ctx context.Context, userID uint, status *models.ReservationStatus) ([]models.Reservation, error)
	listAllFn  func(ctx context.Context, status *models.ReservationStatus) ([]models.Reservation, error)
}

func (m *mockReservationService) CreateReservation(ctx context.Context, userID, resourceID, timeSlotID uint, notes *string) (*models.Reservation, error) {
	return m.createFn(ctx, userID, resourceID, timeSlotID, notes)
}
func (m *mockReservationService) CancelReservation(ctx context.Context, reservationID, actingUserID uint) (*models.Reservation, error) {
	return m.cancelFn(ctx, reservationID, actingUserID)
}
func (m *mockReservationService) GetReservation(ctx context.Context, id uint) (*models.Reservation, error) {
	return m.getFn(ctx, id)
}
func (m *mockReservationService) ListUserReservations(ctx context.Context, userID uint, status *models.ReservationStatus) ([]models.Reservation, error) {
	return m.listUserFn(ctx, userID, status)
}
func (m *mockReservationService) ListAllReservations(ctx context.Context, status *models.ReservationStatus) ([]models.Reservation, error) {
	return m.listAllFn(ctx, status)
}

type mockExportService struct {
	weeklyFn func(ctx context.Context, userID uint, start, end time.Time) ([]byte, error)
	icalFn   func(ctx context.Context, userID uint, start, end time.Time) ([]byte, error)
}

func (m *mockExportService) WeeklySchedule(ctx context.Context, userID uint, start, end time.Time) ([]byte, error) {
	return m.weeklyFn(ctx, userID, start, end)
}
func (m *mockExportService) ICalendar(ctx context.Context, userID uint, start, end time.Time) ([]byte, error) {
	return m.icalFn(ctx, userID, start, end)
}

type mockResourceService struct {
	createFn   func(ctx context.Context, name string, typ models.ResourceType, maxBookings int, colorCode string, ownerID *uint) (*models.Resource, error)
	getFn      func(ctx context.Context, id uint) (*models.Resource, error)
	listFn     func(ctx context.Context, typeFilter *models.ResourceType, ownerFilter *uint) ([]models.Resource, error)
	updateFn   func(ctx context.Context, id uint, name string, typ models.ResourceType, maxBookings int, colorCode string) (*models.Resource, error)
	deleteFn   func(ctx context.Context, id uint) error
	generateFn func(ctx context.Context, resourceID uint, startDate, endDate time.Time, durationMinutes int) ([]models.TimeSlot, error)
}

func (m *mockResourceService) CreateResource(ctx context.Context, name string, typ models.ResourceType, maxBookings int, colorCode string, ownerID *uint) (*models.Resource, error) {
	return m.createFn(ctx, name, typ, maxBookings, colorCode, ownerID)
}
func (m *mockResourceService) GetResource(ctx context.Context, id uint) (*models.Resource, error) {
	return m.getFn(ctx, id)
}
func (m *mockResourceService) ListResources(ctx context.Context, typeFilter *models.ResourceType, ownerFilter *uint) ([]models.Resource, error) {
	return m.listFn(ctx, typeFilter, ownerFilter)
}
func (m *mockResourceService) UpdateResource(ctx context.Context, id uint, name string, typ models.ResourceType, maxBookings int, colorCode string) (*models.Resource, error) {
	return m.updateFn(ctx, id, name, typ, maxBookings, colorCode)
}
func (m *mockResourceService) DeleteResource(ctx context.Context, id uint) error {
	return m.deleteFn(ctx, id)
}
func (m *mockResourceService) GenerateTimeSlots(ctx context.Context, resourceID uint, startDate, endDate time.Time, durationMinutes int) ([]models.TimeSlot, error) {
	return m.generateFn(ctx, resourceID, startDate, endDate, durationMinutes)
}

type mockAuthService struct {
	registerFn func(ctx context.Context, email, firstName, lastName, password string) (*models.User, *token.Pair, error)
	loginFn    func(ctx context.Context, email, password string) (*models.User, *token.Pair, error)
	refreshFn  func(ctx context.Context, refreshToken string) (*token.Pair, error)
}

func (m *mockAuthService) Register(ctx context.Context, email, firstName, lastName, password string) (*models.User, *token.Pair, error) {
	return m.registerFn(ctx, email, firstName, lastName, password)
}
func (m *mockAuthService) Login(ctx context.Context, email, password string) (*models.User, *token.Pair, error) {
	return m.loginFn(ctx, email, password)
}
func (m *mockAuthService) Refresh(ctx context.Context, refreshToken string) (*token.Pair, error) {
	return m.refreshFn(ctx, refreshToken)
}

// Repository mocks for the slot status and listing endpoints, which read
// through the repositories directly.

type mockTimeSlotRepo struct {
	findByIDFn       func(ctx context.Context, id uint) (*models.TimeSlot, error)
	findByDateFn     func(ctx context.Context, date time.Time) ([]models.TimeSlot, error)
	findByResourceFn func(ctx context.Context, resourceID uint, start, end *time.Time) ([]models.TimeSlot, error)
}

func (m *mockTimeSlotRepo) FirstOrCreate(ctx context.Context, slot *models.TimeSlot) error {
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
	if m.findByResourceFn != nil {
		return m.findByResourceFn(ctx, resourceID, start, end)
	}
	return nil, nil
}
func (m *mockTimeSlotRepo) FindByDate(ctx context.Context, date time.Time) ([]models.TimeSlot, error) {
	if m.findByDateFn != nil {
		return m.findByDateFn(ctx, date)
	}
	return nil, nil
}
func (m *mockTimeSlotRepo) UpdateAvailability(ctx context.Context, tx *gorm.DB, slotID uint, available bool) error {
	return nil
}
func (m *mockTimeSlotRepo) Delete(ctx context.Context, id uint) error { return nil }

type mockResourceRepo struct {
	findByIDFn func(ctx context.Context, id uint) (*models.Resource, error)
}

func (m *mockResourceRepo) Create(ctx context.Context, resource *models.Resource) error { return nil }
func (m *mockResourceRepo) FindByID(ctx context.Context, id uint) (*models.Resource, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *mockResourceRepo) FindAll(ctx context.Context, typeFilter *models.ResourceType, ownerFilter *uint) ([]models.Resource, error) {
	return nil, nil
}
func (m *mockResourceRepo) Update(ctx context.Context, resource *models.Resource) error { return nil }
func (m *mockResourceRepo) Delete(ctx context.Context, id uint) error                   { return nil }

type mockReservationRepo struct {
	countByTimeSlotFn func(ctx context.Context, tx *gorm.DB, timeSlotID uint, status models.ReservationStatus) (int64, error)
}

func (m *mockReservationRepo) Create(ctx context.Context, tx *gorm.DB, reservation *models.Reservation) error {
	return nil
}
func (m *mockReservationRepo) FindByID(ctx context.Context, id uint) (*models.Reservation, error) {
	return nil, gorm.ErrRecordNotFound
}
func (m *mockReservationRepo) FindByUser(ctx context.Context, userID uint, status *models.ReservationStatus) ([]models.Reservation, error) {
	return nil, nil
}
func (m *mockReservationRepo) FindAll(ctx context.Context, status *models.ReservationStatus) ([]models.Reservation, error) {
	return nil, nil
}
func (m *mockReservationRepo) FindByUserAndDateRange(ctx context.Context, userID uint, start, end time.Time, status models.ReservationStatus) ([]models.Reservation, error) {
	return nil, nil
}
func (m *mockReservationRepo) CountByTimeSlot(ctx context.Context, tx *gorm.DB, timeSlotID uint, status models.ReservationStatus) (int64, error) {
	if m.countByTimeSlotFn != nil {
		return m.countByTimeSlotFn(ctx, tx, timeSlotID, status)
	}
	return 0, nil
}
func (m *mockReservationRepo) UpdateStatus(ctx context.Context, tx *gorm.DB, reservationID uint, status models.ReservationStatus) error {
	return nil
}
func (m *mockReservationRepo) GetDB() *gorm.DB { return nil }
