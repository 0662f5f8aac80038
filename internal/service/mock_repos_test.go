package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/chitresh99/cybersecurity-club-apsit/internal/model"
	"github.com/chitresh99/cybersecurity-club-apsit/internal/repository"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User // keyed by username and id
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.ID == "" {
		user.ID = "user-" + user.Username
	}
	user.CreatedAt = time.Now()
	m.users[user.Username] = user
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	if u, ok := m.users[username]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.Username] = user
	m.users[user.ID] = user
	return nil
}

// ── Mock EventRepository ──

type mockEventRepo struct {
	events map[string]*model.Event
	seq    int
}

func newMockEventRepo() *mockEventRepo {
	return &mockEventRepo{events: make(map[string]*model.Event)}
}

func (m *mockEventRepo) Create(_ context.Context, event *model.Event) error {
	if event.ID == "" {
		m.seq++
		event.ID = fmt.Sprintf("event-%d", m.seq)
	}
	event.CreatedAt = time.Now()
	event.UpdatedAt = event.CreatedAt
	m.events[event.ID] = event
	return nil
}

func (m *mockEventRepo) GetByID(_ context.Context, id string) (*model.Event, error) {
	if e, ok := m.events[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEventRepo) GetActiveByID(_ context.Context, id string) (*model.Event, error) {
	if e, ok := m.events[id]; ok && e.IsActive {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEventRepo) List(_ context.Context, filters *repository.EventFilters) ([]model.Event, error) {
	var result []model.Event
	for _, e := range m.events {
		if filters != nil && filters.Type != "" && e.Type != filters.Type {
			continue
		}
		if filters != nil && filters.IsActive != nil {
			if e.IsActive != *filters.IsActive {
				continue
			}
		} else if !e.IsActive {
			continue
		}
		result = append(result, *e)
	}
	return result, nil
}

func (m *mockEventRepo) Update(_ context.Context, event *model.Event) error {
	if _, ok := m.events[event.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.events[event.ID] = event
	return nil
}

// ── Mock RegistrationRepository ──

type mockRegistrationRepo struct {
	regs   map[string]*model.Registration
	events *mockEventRepo // for preloading
	seq    int
}

func newMockRegistrationRepo(events *mockEventRepo) *mockRegistrationRepo {
	return &mockRegistrationRepo{regs: make(map[string]*model.Registration), events: events}
}

func (m *mockRegistrationRepo) Create(_ context.Context, reg *model.Registration) error {
	for _, existing := range m.regs {
		if existing.EventID == reg.EventID && existing.MoodleID == reg.MoodleID {
			return gorm.ErrDuplicatedKey
		}
	}
	m.seq++
	reg.ID = fmt.Sprintf("reg-%d", m.seq)
	if reg.Timestamp.IsZero() {
		reg.Timestamp = time.Now()
	}
	m.regs[reg.ID] = reg
	return nil
}

func (m *mockRegistrationRepo) GetByID(_ context.Context, id string) (*model.Registration, error) {
	reg, ok := m.regs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := *reg
	if e, ok := m.events.events[reg.EventID]; ok {
		out.Event = e
	}
	return &out, nil
}

func (m *mockRegistrationRepo) List(_ context.Context, filters *repository.RegistrationFilters) ([]model.Registration, error) {
	var result []model.Registration
	for _, reg := range m.regs {
		if filters != nil && filters.EventID != "" && reg.EventID != filters.EventID {
			continue
		}
		if filters != nil && filters.MoodleID != "" && reg.MoodleID != filters.MoodleID {
			continue
		}
		out := *reg
		if e, ok := m.events.events[reg.EventID]; ok {
			out.Event = e
		}
		result = append(result, out)
	}
	// newest-first, matching the repository contract
	sort.Slice(result, func(i, j int) bool {
		return result[i].Timestamp.After(result[j].Timestamp)
	})
	return result, nil
}

// ── Mock TeamRepository ──

type mockTeamRepo struct {
	teams map[string]*model.HackathonTeam
	seq   int
}

func newMockTeamRepo() *mockTeamRepo {
	return &mockTeamRepo{teams: make(map[string]*model.HackathonTeam)}
}

func (m *mockTeamRepo) CreateWithMembers(_ context.Context, team *model.HackathonTeam) error {
	for _, existing := range m.teams {
		if existing.EventName == team.EventName && existing.TeamName == team.TeamName {
			return gorm.ErrDuplicatedKey
		}
	}
	m.seq++
	team.ID = fmt.Sprintf("team-%d", m.seq)
	team.CreatedAt = time.Now()
	for i := range team.Members {
		team.Members[i].ID = fmt.Sprintf("member-%d-%d", m.seq, i)
		team.Members[i].TeamID = team.ID
	}
	m.teams[team.ID] = team
	return nil
}

func (m *mockTeamRepo) GetByID(_ context.Context, id string) (*model.HackathonTeam, error) {
	if t, ok := m.teams[id]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTeamRepo) List(_ context.Context, eventName string) ([]model.HackathonTeam, error) {
	var result []model.HackathonTeam
	for _, t := range m.teams {
		if eventName != "" && t.EventName != eventName {
			continue
		}
		result = append(result, *t)
	}
	return result, nil
}

// ── Mock ResourceRepository ──

type mockResourceRepo struct {
	resources map[string]*model.Resource
	seq       int
	createErr error // injected failure for cleanup-path tests
}

func newMockResourceRepo() *mockResourceRepo {
	return &mockResourceRepo{resources: make(map[string]*model.Resource)}
}

func (m *mockResourceRepo) Create(_ context.Context, res *model.Resource) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.seq++
	res.ID = fmt.Sprintf("res-%d", m.seq)
	res.CreatedAt = time.Now()
	res.UpdatedAt = res.CreatedAt
	m.resources[res.ID] = res
	return nil
}

func (m *mockResourceRepo) GetByID(_ context.Context, id string) (*model.Resource, error) {
	if r, ok := m.resources[id]; ok {
		out := *r
		return &out, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockResourceRepo) List(_ context.Context, level string) ([]model.Resource, error) {
	var result []model.Resource
	for _, r := range m.resources {
		if level != "" && r.Level != level {
			continue
		}
		result = append(result, *r)
	}
	return result, nil
}

func (m *mockResourceRepo) Update(_ context.Context, res *model.Resource) error {
	if _, ok := m.resources[res.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.resources[res.ID] = res
	return nil
}

func (m *mockResourceRepo) Delete(_ context.Context, id string) error {
	delete(m.resources, id)
	return nil
}

// newMockRepository wires all mocks into the aggregate.
func newMockRepository() (*repository.Repository, *mockUserRepo, *mockEventRepo, *mockRegistrationRepo, *mockTeamRepo, *mockResourceRepo) {
	users := newMockUserRepo()
	events := newMockEventRepo()
	regs := newMockRegistrationRepo(events)
	teams := newMockTeamRepo()
	resources := newMockResourceRepo()

	repo := &repository.Repository{
		User:         users,
		Event:        events,
		Registration: regs,
		Team:         teams,
		Resource:     resources,
	}
	return repo, users, events, regs, teams, resources
}
