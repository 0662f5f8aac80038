package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/chitresh99/cybersecurity-club-apsit/internal/model"
)

// TeamRepository is the hackathon team data-access interface.
type TeamRepository interface {
	// CreateWithMembers inserts the team and its members in one
	// transaction. Nothing persists if any insert fails.
	CreateWithMembers(ctx context.Context, team *model.HackathonTeam) error
	GetByID(ctx context.Context, id string) (*model.HackathonTeam, error)
	List(ctx context.Context, eventName string) ([]model.HackathonTeam, error)
}

type teamRepo struct {
	db *gorm.DB
}

// NewTeamRepo returns the GORM-backed TeamRepository.
func NewTeamRepo(db *gorm.DB) TeamRepository {
	return &teamRepo{db: db}
}

func (r *teamRepo) CreateWithMembers(ctx context.Context, team *model.HackathonTeam) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		members := team.Members
		team.Members = nil

		if err := tx.Create(team).Error; err != nil {
			return err
		}

		for i := range members {
			members[i].TeamID = team.ID
		}
		if err := tx.Create(&members).Error; err != nil {
			return err
		}

		team.Members = members
		return nil
	})
}

func (r *teamRepo) GetByID(ctx context.Context, id string) (*model.HackathonTeam, error) {
	var team model.HackathonTeam
	err := r.db.WithContext(ctx).
		Preload("Members").
		Where("id = ?", id).
		First(&team).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

func (r *teamRepo) List(ctx context.Context, eventName string) ([]model.HackathonTeam, error) {
	db := r.db.WithContext(ctx).Model(&model.HackathonTeam{})

	if eventName != "" {
		db = db.Where("event_name = ?", eventName)
	}

	var teams []model.HackathonTeam
	err := db.Preload("Members").
		Order("created_at DESC").
		Find(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}
