package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gymdesk/gymdesk-backend/internal/apperrors"
	"github.com/gymdesk/gymdesk-backend/internal/models"
	"github.com/gymdesk/gymdesk-backend/internal/repository"
	"github.com/gymdesk/gymdesk-backend/pkg/rabbitmq"
	"gorm.io/gorm"
)

// CancelCutoff is the minimum lead time before a slot starts during which
// cancellation is still allowed.
const CancelCutoff = time.Hour

var (
	ErrSlotUnavailable    = apperrors.Invalidf("timeslot cannot be reserved")
	ErrSlotFull           = apperrors.Invalidf("timeslot is full")
	ErrTooLateToCancel    = apperrors.Invalidf("cannot cancel less than 1 hour before start")
	ErrNotYourReservation = apperrors.Forbiddenf("no permission to cancel this reservation")
)

type ReservationService interface {
	CreateReservation(ctx context.Context, userID, resourceID, timeSlotID uint, notes *string) (*models.Reservation, error)
	CancelReservation(ctx context.Context, reservationID, actingUserID uint) (*models.Reservation, error)
	GetReservation(ctx context.Context, id uint) (*models.Reservation, error)
	ListUserReservations(ctx context.Context, userID uint, status *models.ReservationStatus) ([]models.Reservation, error)
	ListAllReservations(ctx context.Context, status *models.ReservationStatus) ([]models.Reservation, error)
}

type reservationService struct {
	reservationRepo repository.ReservationRepository
	userRepo        repository.UserRepository
	resourceRepo    repository.ResourceRepository
	timeSlotRepo    repository.TimeSlotRepository
	publisher       *rabbitmq.Publisher
}

func NewReservationService(
	reservationRepo repository.ReservationRepository,
	userRepo repository.UserRepository,
	resourceRepo repository.ResourceRepository,
	timeSlotRepo repository.TimeSlotRepository,
	publisher *rabbitmq.Publisher,
) ReservationService {
	return &reservationService{
		reservationRepo: reservationRepo,
		userRepo:        userRepo,
		resourceRepo:    resourceRepo,
		timeSlotRepo:    timeSlotRepo,
		publisher:       publisher,
	}
}

func (s *reservationService) CreateReservation(ctx context.Context, userID, resourceID, timeSlotID uint, notes *string) (*models.Reservation, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, notFoundOr(err, "user %d does not exist", userID)
	}

	resource, err := s.resourceRepo.FindByID(ctx, resourceID)
	if err != nil {
		return nil, notFoundOr(err, "resource %d does not exist", resourceID)
	}

	timeSlot, err := s.timeSlotRepo.FindByID(ctx, timeSlotID)
	if err != nil {
		return nil, notFoundOr(err, "timeslot %d does not exist", timeSlotID)
	}
	if !timeSlot.CanBeReserved(time.Now()) {
		return nil, ErrSlotUnavailable
	}

	reservation, err := models.NewReservation(userID, resourceID, timeSlotID, notes)
	if err != nil {
		return nil, err
	}

	err = s.reservationRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Lock the slot row — serializes concurrent admission attempts
		// against the same timeslot.
		slot, err := s.timeSlotRepo.FindByIDForUpdate(ctx, tx, timeSlotID)
		if err != nil {
			return notFoundOr(err, "timeslot %d does not exist", timeSlotID)
		}
		if !slot.CanBeReserved(time.Now()) {
			return ErrSlotUnavailable
		}

		activeCount, err := s.reservationRepo.CountByTimeSlot(ctx, tx, timeSlotID, models.StatusActive)
		if err != nil {
			return err
		}
		if !resource.CanAcceptReservations(int(activeCount)) {
			return ErrSlotFull
		}

		if err := s.reservationRepo.Create(ctx, tx, reservation); err != nil {
			return err
		}

		// Close the slot once capacity is reached. Best effort: the
		// reservation is already admitted, a failed flip must not undo it.
		newCount, err := s.reservationRepo.CountByTimeSlot(ctx, tx, timeSlotID, models.StatusActive)
		if err == nil && !resource.CanAcceptReservations(int(newCount)) {
			if err := s.timeSlotRepo.UpdateAvailability(ctx, tx, timeSlotID, false); err != nil {
				log.Printf("failed to close full timeslot %d: %v", timeSlotID, err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("reservation.created", reservation)
	}

	return reservation, nil
}

func (s *reservationService) CancelReservation(ctx context.Context, reservationID, actingUserID uint) (*models.Reservation, error) {
	reservation, err := s.reservationRepo.FindByID(ctx, reservationID)
	if err != nil {
		return nil, notFoundOr(err, "reservation %d does not exist", reservationID)
	}

	if reservation.UserID != actingUserID {
		actor, err := s.userRepo.FindByID(ctx, actingUserID)
		if err != nil || !actor.IsAdmin() {
			return nil, ErrNotYourReservation
		}
	}

	// A missing slot skips the cutoff check instead of failing: the
	// reservation itself is still cancellable.
	if slot, err := s.timeSlotRepo.FindByID(ctx, reservation.TimeSlotID); err == nil {
		if slot.StartTime.Sub(time.Now().UTC()) < CancelCutoff {
			return nil, ErrTooLateToCancel
		}
	}

	if err := reservation.Cancel(); err != nil {
		return nil, err
	}

	err = s.reservationRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.reservationRepo.UpdateStatus(ctx, tx, reservationID, models.StatusCancelled)
	})
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("reservation.cancelled", reservation)
	}

	return reservation, nil
}

func (s *reservationService) GetReservation(ctx context.Context, id uint) (*models.Reservation, error) {
	reservation, err := s.reservationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "reservation %d does not exist", id)
	}
	return reservation, nil
}

func (s *reservationService) ListUserReservations(ctx context.Context, userID uint, status *models.ReservationStatus) ([]models.Reservation, error) {
	return s.reservationRepo.FindByUser(ctx, userID, status)
}

func (s *reservationService) ListAllReservations(ctx context.Context, status *models.ReservationStatus) ([]models.Reservation, error) {
	return s.reservationRepo.FindAll(ctx, status)
}

// notFoundOr maps a gorm record miss to the NotFound kind and passes other
// storage errors through unchanged.
func notFoundOr(err error, format string, args ...any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NotFoundf(format, args...)
	}
	return err
}
