package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/chitresh99/cybersecurity-club-apsit/internal/dto"
	"github.com/chitresh99/cybersecurity-club-apsit/internal/model"
	"github.com/chitresh99/cybersecurity-club-apsit/internal/repository"
	"github.com/chitresh99/cybersecurity-club-apsit/pkg/apperr"
	"github.com/chitresh99/cybersecurity-club-apsit/pkg/sanitize"
)

var ErrTeamNotFound = errors.New("team not found")

const teamSize = 4

// TeamService handles hackathon team sign-ups.
type TeamService interface {
	Create(ctx context.Context, req *dto.CreateTeamRequest) (*model.HackathonTeam, error)
	GetByID(ctx context.Context, id string) (*model.HackathonTeam, error)
	List(ctx context.Context, q *dto.TeamListQuery) ([]model.HackathonTeam, error)
}

type teamService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTeamService builds the TeamService.
func NewTeamService(repo *repository.Repository, logger *zap.Logger) TeamService {
	return &teamService{repo: repo, logger: logger}
}

// Create validates team structure before anything touches storage, then
// inserts team and members in a single transaction. A duplicate
// (event_name, team_name) aborts the whole transaction: no partial team
// survives.
func (s *teamService) Create(ctx context.Context, req *dto.CreateTeamRequest) (*model.HackathonTeam, error) {
	if details := validateTeamStructure(req); len(details) > 0 {
		return nil, apperr.Validation("Team validation failed", details)
	}

	teamName := sanitize.Strict(req.TeamName, 100)

	team := &model.HackathonTeam{
		EventName: sanitize.Strict(req.EventName, 200),
		TeamName:  teamName,
		Members:   make([]model.TeamMember, 0, teamSize),
	}
	for _, m := range req.TeamMembers {
		team.Members = append(team.Members, model.TeamMember{
			Name:       sanitize.Strict(m.Name, 100),
			Email:      strings.ToLower(m.Email),
			MoodleID:   m.MoodleID,
			RollNo:     m.RollNo,
			Division:   strings.ToUpper(m.Division),
			Department: sanitize.Strict(m.Department, 100),
			Year:       m.Year,
			Mobile:     m.Mobile,
			IsLeader:   m.IsLeader,
		})
	}

	if err := s.repo.Team.CreateWithMembers(ctx, team); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict(fmt.Sprintf(
				"Team name '%s' already exists for %s", teamName, team.EventName,
			))
		}
		s.logger.Error("team create failed", zap.Error(err))
		return nil, err
	}

	// re-read: member ids and timestamps are storage-assigned
	return s.repo.Team.GetByID(ctx, team.ID)
}

// validateTeamStructure checks the cross-field invariants: exactly four
// members, exactly one leader, every mobile exactly 10 digits. All
// failures are collected so the client sees them together.
func validateTeamStructure(req *dto.CreateTeamRequest) map[string]string {
	details := make(map[string]string)

	if len(req.TeamMembers) != teamSize {
		details["team_members"] = fmt.Sprintf("team must have exactly %d members", teamSize)
		return details
	}

	leaders := 0
	for i, m := range req.TeamMembers {
		if m.IsLeader {
			leaders++
		}
		if !isTenDigits(m.Mobile) {
			details[fmt.Sprintf("team_members.%d.mobile", i)] = "mobile number must be exactly 10 digits"
		}
	}
	if leaders != 1 {
		details["team_members"] = "team must have exactly 1 leader"
	}

	return details
}

func isTenDigits(s string) bool {
	if len(s) != 10 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (s *teamService) GetByID(ctx context.Context, id string) (*model.HackathonTeam, error) {
	team, err := s.repo.Team.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		s.logger.Error("team lookup failed", zap.Error(err))
		return nil, err
	}
	return team, nil
}

func (s *teamService) List(ctx context.Context, q *dto.TeamListQuery) ([]model.HackathonTeam, error) {
	eventName := ""
	if q != nil {
		eventName = q.EventName
	}
	return s.repo.Team.List(ctx, eventName)
}
