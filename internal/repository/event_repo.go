package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/chitresh99/cybersecurity-club-apsit/internal/model"
)

// EventFilters narrows event listings. IsActive nil means "only active":
// soft-deleted events stay out of default listings.
type EventFilters struct {
	Type     string
	IsActive *bool
}

// EventRepository is the event data-access interface.
type EventRepository interface {
	Create(ctx context.Context, event *model.Event) error
	GetByID(ctx context.Context, id string) (*model.Event, error)
	// GetActiveByID returns the event only if it exists and is active.
	GetActiveByID(ctx context.Context, id string) (*model.Event, error)
	List(ctx context.Context, filters *EventFilters) ([]model.Event, error)
	Update(ctx context.Context, event *model.Event) error
}

type eventRepo struct {
	db *gorm.DB
}

// NewEventRepo returns the GORM-backed EventRepository.
func NewEventRepo(db *gorm.DB) EventRepository {
	return &eventRepo{db: db}
}

func (r *eventRepo) Create(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepo) GetByID(ctx context.Context, id string) (*model.Event, error) {
	var event model.Event
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepo) GetActiveByID(ctx context.Context, id string) (*model.Event, error) {
	var event model.Event
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&event).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepo) List(ctx context.Context, filters *EventFilters) ([]model.Event, error) {
	db := r.db.WithContext(ctx).Model(&model.Event{})

	if filters != nil && filters.Type != "" {
		db = db.Where("type = ?", filters.Type)
	}
	if filters != nil && filters.IsActive != nil {
		db = db.Where("is_active = ?", *filters.IsActive)
	} else {
		db = db.Where("is_active = ?", true)
	}

	var events []model.Event
	if err := db.Order("date DESC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepo) Update(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Save(event).Error
}
