package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/chitresh99/cybersecurity-club-apsit/internal/dto"
	"github.com/chitresh99/cybersecurity-club-apsit/internal/model"
	"github.com/chitresh99/cybersecurity-club-apsit/internal/repository"
	"github.com/chitresh99/cybersecurity-club-apsit/pkg/apperr"
	"github.com/chitresh99/cybersecurity-club-apsit/pkg/sanitize"
)

var ErrRegistrationNotFound = errors.New("registration not found")

// RegistrationService handles public event sign-ups and the admin listing.
type RegistrationService interface {
	Create(ctx context.Context, req *dto.CreateRegistrationRequest) (*model.Registration, error)
	GetByID(ctx context.Context, id string) (*model.Registration, error)
	List(ctx context.Context, q *dto.RegistrationListQuery) ([]model.Registration, error)
}

type registrationService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewRegistrationService builds the RegistrationService.
func NewRegistrationService(repo *repository.Repository, logger *zap.Logger) RegistrationService {
	return &registrationService{repo: repo, logger: logger}
}

// Create enforces the write-path protocol: the referenced event must exist
// and be active (soft-deleted events reject with not-found, never a
// conflict), free text is sanitized before storage, and a duplicate
// (event, moodle_id) insert is surfaced as a conflict naming the
// colliding pair. Concurrent duplicates are settled by the unique
// constraint, not by a pre-check.
func (s *registrationService) Create(ctx context.Context, req *dto.CreateRegistrationRequest) (*model.Registration, error) {
	event, err := s.repo.Event.GetActiveByID(ctx, req.EventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Event", req.EventID)
		}
		s.logger.Error("event lookup failed", zap.Error(err))
		return nil, err
	}

	reg := &model.Registration{
		EventID:       event.ID,
		OperativeName: sanitize.Strict(req.OperativeName, 100),
		MoodleID:      req.MoodleID,
	}

	if err := s.repo.Registration.Create(ctx, reg); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict(fmt.Sprintf(
				"Registration already exists for Moodle ID %s and event %s",
				req.MoodleID, event.Title,
			))
		}
		s.logger.Error("registration create failed", zap.Error(err))
		return nil, err
	}

	// re-read the committed row: id and timestamp are storage-assigned
	return s.repo.Registration.GetByID(ctx, reg.ID)
}

func (s *registrationService) GetByID(ctx context.Context, id string) (*model.Registration, error) {
	reg, err := s.repo.Registration.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRegistrationNotFound
		}
		s.logger.Error("registration lookup failed", zap.Error(err))
		return nil, err
	}
	return reg, nil
}

func (s *registrationService) List(ctx context.Context, q *dto.RegistrationListQuery) ([]model.Registration, error) {
	filters := &repository.RegistrationFilters{}
	if q != nil {
		filters.EventID = q.EventID
		filters.MoodleID = q.MoodleID
	}
	return s.repo.Registration.List(ctx, filters)
}
