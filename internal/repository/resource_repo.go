package repository

import (
	"context"

	"github.com/gymdesk/gymdesk-backend/internal/models"
	"gorm.io/gorm"
)

type ResourceRepository interface {
	Create(ctx context.Context, resource *models.Resource) error
	FindByID(ctx context.Context, id uint) (*models.Resource, error)
	FindAll(ctx context.Context, typeFilter *models.ResourceType, ownerFilter *uint) ([]models.Resource, error)
	Update(ctx context.Context, resource *models.Resource) error
	Delete(ctx context.Context, id uint) error
}

type resourceRepository struct {
	db *gorm.DB
}

func NewResourceRepository(db *gorm.DB) ResourceRepository {
	return &resourceRepository{db: db}
}

func (r *resourceRepository) Create(ctx context.Context, resource *models.Resource) error {
	return r.db.WithContext(ctx).Create(resource).Error
}

func (r *resourceRepository) FindByID(ctx context.Context, id uint) (*models.Resource, error) {
	var resource models.Resource
	if err := r.db.WithContext(ctx).First(&resource, id).Error; err != nil {
		return nil, err
	}
	return &resource, nil
}

func (r *resourceRepository) FindAll(ctx context.Context, typeFilter *models.ResourceType, ownerFilter *uint) ([]models.Resource, error) {
	var resources []models.Resource
	q := r.db.WithContext(ctx)
	if typeFilter != nil {
		q = q.Where("type = ?", *typeFilter)
	}
	if ownerFilter != nil {
		q = q.Where("owner_id = ?", *ownerFilter)
	}
	if err := q.Order("id ASC").Find(&resources).Error; err != nil {
		return nil, err
	}
	return resources, nil
}

func (r *resourceRepository) Update(ctx context.Context, resource *models.Resource) error {
	return r.db.WithContext(ctx).Save(resource).Error
}

func (r *resourceRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Resource{}, id).Error
}
