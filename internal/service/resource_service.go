package service

import (
	"context"
	"time"

	"github.com/gymdesk/gymdesk-backend/internal/models"
	"github.com/gymdesk/gymdesk-backend/internal/repository"
)

// Timeslot generation covers the gym's opening hours: one slot starts at
// every full hour from 08:00 through 21:00.
const (
	GenerationStartHour    = 8
	GenerationEndHour      = 22
	DefaultSlotDurationMin = 60
)

type ResourceService interface {
	CreateResource(ctx context.Context, name string, typ models.ResourceType, maxBookings int, colorCode string, ownerID *uint) (*models.Resource, error)
	GetResource(ctx context.Context, id uint) (*models.Resource, error)
	ListResources(ctx context.Context, typeFilter *models.ResourceType, ownerFilter *uint) ([]models.Resource, error)
	UpdateResource(ctx context.Context, id uint, name string, typ models.ResourceType, maxBookings int, colorCode string) (*models.Resource, error)
	DeleteResource(ctx context.Context, id uint) error
	GenerateTimeSlots(ctx context.Context, resourceID uint, startDate, endDate time.Time, durationMinutes int) ([]models.TimeSlot, error)
}

type resourceService struct {
	resourceRepo repository.ResourceRepository
	timeSlotRepo repository.TimeSlotRepository
}

func NewResourceService(resourceRepo repository.ResourceRepository, timeSlotRepo repository.TimeSlotRepository) ResourceService {
	return &resourceService{resourceRepo: resourceRepo, timeSlotRepo: timeSlotRepo}
}

func (s *resourceService) CreateResource(ctx context.Context, name string, typ models.ResourceType, maxBookings int, colorCode string, ownerID *uint) (*models.Resource, error) {
	resource, err := models.NewResource(name, typ, maxBookings, colorCode, ownerID)
	if err != nil {
		return nil, err
	}
	if err := s.resourceRepo.Create(ctx, resource); err != nil {
		return nil, err
	}
	return resource, nil
}

func (s *resourceService) GetResource(ctx context.Context, id uint) (*models.Resource, error) {
	resource, err := s.resourceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "resource %d does not exist", id)
	}
	return resource, nil
}

func (s *resourceService) ListResources(ctx context.Context, typeFilter *models.ResourceType, ownerFilter *uint) ([]models.Resource, error) {
	return s.resourceRepo.FindAll(ctx, typeFilter, ownerFilter)
}

func (s *resourceService) UpdateResource(ctx context.Context, id uint, name string, typ models.ResourceType, maxBookings int, colorCode string) (*models.Resource, error) {
	existing, err := s.resourceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "resource %d does not exist", id)
	}

	updated, err := models.NewResource(name, typ, maxBookings, colorCode, existing.OwnerID)
	if err != nil {
		return nil, err
	}
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt

	if err := s.resourceRepo.Update(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *resourceService) DeleteResource(ctx context.Context, id uint) error {
	if _, err := s.resourceRepo.FindByID(ctx, id); err != nil {
		return notFoundOr(err, "resource %d does not exist", id)
	}
	return s.resourceRepo.Delete(ctx, id)
}

// GenerateTimeSlots bulk-creates one slot per opening hour for every calendar
// day in [startDate, endDate] inclusive. Generation is idempotent: a slot
// whose (resource, start, end) bounds already exist is returned as-is instead
// of being duplicated.
func (s *resourceService) GenerateTimeSlots(ctx context.Context, resourceID uint, startDate, endDate time.Time, durationMinutes int) ([]models.TimeSlot, error) {
	if _, err := s.resourceRepo.FindByID(ctx, resourceID); err != nil {
		return nil, notFoundOr(err, "resource %d does not exist", resourceID)
	}
	if durationMinutes <= 0 {
		durationMinutes = DefaultSlotDurationMin
	}

	start := startDate.UTC()
	end := endDate.UTC()
	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	lastDay := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)

	var slots []models.TimeSlot
	for !day.After(lastDay) {
		for hour := GenerationStartHour; hour < GenerationEndHour; hour++ {
			slotStart := day.Add(time.Duration(hour) * time.Hour)
			slotEnd := slotStart.Add(time.Duration(durationMinutes) * time.Minute)

			slot, err := models.NewTimeSlot(resourceID, slotStart, slotEnd)
			if err != nil {
				return nil, err
			}
			if err := s.timeSlotRepo.FirstOrCreate(ctx, slot); err != nil {
				return nil, err
			}
			slots = append(slots, *slot)
		}
		day = day.AddDate(0, 0, 1)
	}

	return slots, nil
}
