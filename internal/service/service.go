package service

import (
	"go.uber.org/zap"

	"github.com/chitresh99/cybersecurity-club-apsit/config"
	"github.com/chitresh99/cybersecurity-club-apsit/internal/repository"
	"github.com/chitresh99/cybersecurity-club-apsit/pkg/hash"
	"github.com/chitresh99/cybersecurity-club-apsit/pkg/jwt"
	"github.com/chitresh99/cybersecurity-club-apsit/pkg/upload"
)

// Service aggregates all business-logic interfaces.
type Service struct {
	Auth         AuthService
	Event        EventService
	Registration RegistrationService
	Team         TeamService
	Resource     ResourceService
	Export       ExportService
}

// NewService wires the service layer. The JWT manager, hasher and upload
// store are built once from configuration and injected; nothing here is
// mutated after startup.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	hasher *hash.Hasher,
	store *upload.Store,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:         NewAuthService(cfg, repo, jwtMgr, hasher, logger),
		Event:        NewEventService(repo, logger),
		Registration: NewRegistrationService(repo, logger),
		Team:         NewTeamService(repo, logger),
		Resource:     NewResourceService(repo, store, logger),
		Export:       NewExportService(repo, logger),
	}
}
