package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/chitresh99/cybersecurity-club-apsit/internal/dto"
	"github.com/chitresh99/cybersecurity-club-apsit/internal/model"
	"github.com/chitresh99/cybersecurity-club-apsit/internal/repository"
	"github.com/chitresh99/cybersecurity-club-apsit/pkg/sanitize"
)

var (
	ErrEventNotFound   = errors.New("event not found")
	ErrEventType       = errors.New("invalid event type")
	ErrEventDate       = errors.New("invalid event date, expected YYYY-MM-DD")
	ErrEventDateInPast = errors.New("event date cannot be in the past")
)

const eventDateLayout = "2006-01-02"

// EventService handles event CRUD. Deletion is always soft: the row stays
// with is_active=false so registrations keep a valid reference.
type EventService interface {
	Create(ctx context.Context, req *dto.CreateEventRequest) (*model.Event, error)
	GetByID(ctx context.Context, id string) (*model.Event, error)
	List(ctx context.Context, q *dto.EventListQuery) ([]model.Event, error)
	Update(ctx context.Context, id string, req *dto.UpdateEventRequest) (*model.Event, error)
	SoftDelete(ctx context.Context, id string) error
}

type eventService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewEventService builds the EventService.
func NewEventService(repo *repository.Repository, logger *zap.Logger) EventService {
	return &eventService{repo: repo, logger: logger}
}

func (s *eventService) Create(ctx context.Context, req *dto.CreateEventRequest) (*model.Event, error) {
	if !model.ValidEventType(req.Type) {
		return nil, ErrEventType
	}

	date, err := time.Parse(eventDateLayout, req.Date)
	if err != nil {
		return nil, ErrEventDate
	}
	if date.Before(today()) {
		return nil, ErrEventDateInPast
	}

	event := &model.Event{
		Title:       sanitize.Strict(req.Title, 200),
		Type:        req.Type,
		Date:        date,
		Description: sanitize.Rich(req.Description),
		IsActive:    true,
	}

	if err := s.repo.Event.Create(ctx, event); err != nil {
		s.logger.Error("event create failed", zap.Error(err))
		return nil, err
	}

	// re-read: id and timestamps are assigned by the storage layer
	return s.repo.Event.GetByID(ctx, event.ID)
}

func (s *eventService) GetByID(ctx context.Context, id string) (*model.Event, error) {
	event, err := s.repo.Event.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		s.logger.Error("event lookup failed", zap.Error(err))
		return nil, err
	}
	return event, nil
}

func (s *eventService) List(ctx context.Context, q *dto.EventListQuery) ([]model.Event, error) {
	filters := &repository.EventFilters{}
	if q != nil {
		if q.Type != "" && !model.ValidEventType(q.Type) {
			return nil, ErrEventType
		}
		filters.Type = q.Type
		filters.IsActive = q.IsActive
	}
	return s.repo.Event.List(ctx, filters)
}

func (s *eventService) Update(ctx context.Context, id string, req *dto.UpdateEventRequest) (*model.Event, error) {
	event, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		event.Title = sanitize.Strict(*req.Title, 200)
	}
	if req.Type != nil {
		if !model.ValidEventType(*req.Type) {
			return nil, ErrEventType
		}
		event.Type = *req.Type
	}
	if req.Date != nil {
		date, err := time.Parse(eventDateLayout, *req.Date)
		if err != nil {
			return nil, ErrEventDate
		}
		if date.Before(today()) {
			return nil, ErrEventDateInPast
		}
		event.Date = date
	}
	if req.Description != nil {
		event.Description = sanitize.Rich(*req.Description)
	}
	if req.IsActive != nil {
		event.IsActive = *req.IsActive
	}
	event.UpdatedAt = time.Now().UTC()

	if err := s.repo.Event.Update(ctx, event); err != nil {
		s.logger.Error("event update failed", zap.Error(err))
		return nil, err
	}

	return s.repo.Event.GetByID(ctx, event.ID)
}

func (s *eventService) SoftDelete(ctx context.Context, id string) error {
	event, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	event.IsActive = false
	event.UpdatedAt = time.Now().UTC()

	if err := s.repo.Event.Update(ctx, event); err != nil {
		s.logger.Error("event soft delete failed", zap.Error(err))
		return err
	}
	return nil
}

// today truncates now to the date boundary so a same-day event is valid.
func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
