package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/chitresh99/cybersecurity-club-apsit/internal/dto"
	"github.com/chitresh99/cybersecurity-club-apsit/internal/model"
)

func setupEventService(t *testing.T) (EventService, *mockEventRepo) {
	t.Helper()
	repo, _, events, _, _, _ := newMockRepository()
	return NewEventService(repo, zap.NewNop()), events
}

func futureDate() string {
	return time.Now().UTC().AddDate(0, 0, 7).Format("2006-01-02")
}

func TestCreateEvent(t *testing.T) {
	svc, _ := setupEventService(t)

	event, err := svc.Create(context.Background(), &dto.CreateEventRequest{
		Title:       "Intro to Reverse Engineering",
		Type:        model.EventTypeWorkshop,
		Date:        futureDate(),
		Description: "<p>Bring a laptop.</p>",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if event.ID == "" {
		t.Error("created event should have an id")
	}
	if !event.IsActive {
		t.Error("new events start active")
	}
	if event.Description != "<p>Bring a laptop.</p>" {
		t.Errorf("allowed formatting should survive, got %q", event.Description)
	}
}

func TestCreateEventSanitizesInput(t *testing.T) {
	svc, _ := setupEventService(t)

	event, err := svc.Create(context.Background(), &dto.CreateEventRequest{
		Title:       "<script>alert(1)</script>CTF Night",
		Type:        model.EventTypeHackathon,
		Date:        futureDate(),
		Description: "<p>ok</p><script>evil()</script>",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if strings.Contains(event.Title, "<") {
		t.Errorf("title should be plain text, got %q", event.Title)
	}
	if strings.Contains(event.Description, "script") {
		t.Errorf("script should be stripped from description, got %q", event.Description)
	}
}

func TestCreateEventRejectsBadInput(t *testing.T) {
	svc, _ := setupEventService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, &dto.CreateEventRequest{
		Title: "x", Type: "Party", Date: futureDate(),
	})
	if !errors.Is(err, ErrEventType) {
		t.Errorf("expected ErrEventType, got %v", err)
	}

	_, err = svc.Create(ctx, &dto.CreateEventRequest{
		Title: "x", Type: model.EventTypeSeminar, Date: "31-12-2026",
	})
	if !errors.Is(err, ErrEventDate) {
		t.Errorf("expected ErrEventDate, got %v", err)
	}

	_, err = svc.Create(ctx, &dto.CreateEventRequest{
		Title: "x", Type: model.EventTypeSeminar, Date: "2020-01-01",
	})
	if !errors.Is(err, ErrEventDateInPast) {
		t.Errorf("expected ErrEventDateInPast, got %v", err)
	}
}

func TestCreateEventSameDay(t *testing.T) {
	svc, _ := setupEventService(t)

	_, err := svc.Create(context.Background(), &dto.CreateEventRequest{
		Title: "Today's Event",
		Type:  model.EventTypeLecture,
		Date:  time.Now().UTC().Format("2006-01-02"),
	})
	if err != nil {
		t.Fatalf("same-day event should be allowed: %v", err)
	}
}

func TestUpdateEventPartial(t *testing.T) {
	svc, _ := setupEventService(t)
	ctx := context.Background()

	event, err := svc.Create(ctx, &dto.CreateEventRequest{
		Title: "Original", Type: model.EventTypeWorkshop, Date: futureDate(),
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	newTitle := "Renamed"
	updated, err := svc.Update(ctx, event.ID, &dto.UpdateEventRequest{Title: &newTitle})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if updated.Title != "Renamed" {
		t.Errorf("expected title=Renamed, got %s", updated.Title)
	}
	if updated.Type != model.EventTypeWorkshop {
		t.Errorf("untouched fields must keep their value, got type=%s", updated.Type)
	}
}

func TestUpdateEventNotFound(t *testing.T) {
	svc, _ := setupEventService(t)

	title := "x"
	if _, err := svc.Update(context.Background(), "missing", &dto.UpdateEventRequest{Title: &title}); !errors.Is(err, ErrEventNotFound) {
		t.Errorf("expected ErrEventNotFound, got %v", err)
	}
}

func TestSoftDeleteHidesFromDefaultListing(t *testing.T) {
	svc, events := setupEventService(t)
	ctx := context.Background()

	event, err := svc.Create(ctx, &dto.CreateEventRequest{
		Title: "Doomed", Type: model.EventTypeBootcamp, Date: futureDate(),
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := svc.SoftDelete(ctx, event.ID); err != nil {
		t.Fatalf("SoftDelete failed: %v", err)
	}

	// the row survives, flagged inactive
	stored := events.events[event.ID]
	if stored == nil {
		t.Fatal("soft delete must not remove the row")
	}
	if stored.IsActive {
		t.Error("soft-deleted event should be inactive")
	}

	// default listing excludes it
	listed, err := svc.List(ctx, nil)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	for _, e := range listed {
		if e.ID == event.ID {
			t.Error("soft-deleted event must not appear in the default listing")
		}
	}

	// explicit is_active=false finds it
	inactive := false
	listed, err = svc.List(ctx, &dto.EventListQuery{IsActive: &inactive})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	found := false
	for _, e := range listed {
		if e.ID == event.ID {
			found = true
		}
	}
	if !found {
		t.Error("is_active=false listing should include the soft-deleted event")
	}

	// direct fetch still works
	if _, err := svc.GetByID(ctx, event.ID); err != nil {
		t.Errorf("GetByID should return soft-deleted events: %v", err)
	}
}

func TestListEventsRejectsBadType(t *testing.T) {
	svc, _ := setupEventService(t)

	if _, err := svc.List(context.Background(), &dto.EventListQuery{Type: "Rave"}); !errors.Is(err, ErrEventType) {
		t.Errorf("expected ErrEventType, got %v", err)
	}
}
