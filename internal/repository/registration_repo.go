package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/chitresh99/cybersecurity-club-apsit/internal/model"
)

// RegistrationFilters narrows registration listings.
type RegistrationFilters struct {
	EventID  string
	MoodleID string
}

// RegistrationRepository is the registration data-access interface.
// Create relies on the storage layer's (event_id, moodle_id) unique
// constraint to reject the second of two racing duplicate inserts.
type RegistrationRepository interface {
	Create(ctx context.Context, reg *model.Registration) error
	GetByID(ctx context.Context, id string) (*model.Registration, error)
	// List returns registrations newest-first with events preloaded.
	List(ctx context.Context, filters *RegistrationFilters) ([]model.Registration, error)
}

type registrationRepo struct {
	db *gorm.DB
}

// NewRegistrationRepo returns the GORM-backed RegistrationRepository.
func NewRegistrationRepo(db *gorm.DB) RegistrationRepository {
	return &registrationRepo{db: db}
}

func (r *registrationRepo) Create(ctx context.Context, reg *model.Registration) error {
	return r.db.WithContext(ctx).Create(reg).Error
}

func (r *registrationRepo) GetByID(ctx context.Context, id string) (*model.Registration, error) {
	var reg model.Registration
	err := r.db.WithContext(ctx).
		Preload("Event").
		Where("id = ?", id).
		First(&reg).Error
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *registrationRepo) List(ctx context.Context, filters *RegistrationFilters) ([]model.Registration, error) {
	db := r.db.WithContext(ctx).Model(&model.Registration{})

	if filters != nil && filters.EventID != "" {
		db = db.Where("event_id = ?", filters.EventID)
	}
	if filters != nil && filters.MoodleID != "" {
		db = db.Where("moodle_id = ?", filters.MoodleID)
	}

	var regs []model.Registration
	err := db.Preload("Event").
		Order("timestamp DESC").
		Find(&regs).Error
	if err != nil {
		return nil, err
	}
	return regs, nil
}
