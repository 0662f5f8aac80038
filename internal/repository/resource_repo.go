package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/chitresh99/cybersecurity-club-apsit/internal/model"
)

// ResourceRepository is the PDF resource data-access interface.
type ResourceRepository interface {
	Create(ctx context.Context, res *model.Resource) error
	GetByID(ctx context.Context, id string) (*model.Resource, error)
	List(ctx context.Context, level string) ([]model.Resource, error)
	Update(ctx context.Context, res *model.Resource) error
	Delete(ctx context.Context, id string) error
}

type resourceRepo struct {
	db *gorm.DB
}

// NewResourceRepo returns the GORM-backed ResourceRepository.
func NewResourceRepo(db *gorm.DB) ResourceRepository {
	return &resourceRepo{db: db}
}

func (r *resourceRepo) Create(ctx context.Context, res *model.Resource) error {
	return r.db.WithContext(ctx).Create(res).Error
}

func (r *resourceRepo) GetByID(ctx context.Context, id string) (*model.Resource, error) {
	var res model.Resource
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&res).Error; err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *resourceRepo) List(ctx context.Context, level string) ([]model.Resource, error) {
	db := r.db.WithContext(ctx).Model(&model.Resource{})

	if level != "" {
		db = db.Where("level = ?", level)
	}

	var resources []model.Resource
	if err := db.Order("created_at DESC").Find(&resources).Error; err != nil {
		return nil, err
	}
	return resources, nil
}

func (r *resourceRepo) Update(ctx context.Context, res *model.Resource) error {
	return r.db.WithContext(ctx).Save(res).Error
}

func (r *resourceRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Resource{}).Error
}
