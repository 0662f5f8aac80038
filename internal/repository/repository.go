package repository

import "gorm.io/gorm"

// Repository aggregates all data-access interfaces.
type Repository struct {
	User         UserRepository
	Event        EventRepository
	Registration RegistrationRepository
	Team         TeamRepository
	Resource     ResourceRepository
}

// NewRepository builds the aggregate with GORM-backed implementations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:         NewUserRepo(db),
		Event:        NewEventRepo(db),
		Registration: NewRegistrationRepo(db),
		Team:         NewTeamRepo(db),
		Resource:     NewResourceRepo(db),
	}
}
