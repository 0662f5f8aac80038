package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/chitresh99/cybersecurity-club-apsit/internal/model"
)

func setupExportService(t *testing.T) (ExportService, *mockEventRepo, *mockRegistrationRepo) {
	t.Helper()
	repo, _, events, regs, _, _ := newMockRepository()
	return NewExportService(repo, zap.NewNop()), events, regs
}

func TestRegistrationsCSV(t *testing.T) {
	svc, events, regs := setupExportService(t)
	ctx := context.Background()

	event := &model.Event{
		Title:    "CTF Night",
		Type:     model.EventTypeHackathon,
		Date:     time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		IsActive: true,
	}
	if err := events.Create(ctx, event); err != nil {
		t.Fatalf("event create failed: %v", err)
	}
	if err := regs.Create(ctx, &model.Registration{
		EventID: event.ID, OperativeName: "Alice", MoodleID: "21102A0042",
	}); err != nil {
		t.Fatalf("registration create failed: %v", err)
	}

	data, filename, err := svc.RegistrationsCSV(ctx, nil)
	if err != nil {
		t.Fatalf("RegistrationsCSV failed: %v", err)
	}
	if !strings.HasPrefix(filename, "registrations_") || !strings.HasSuffix(filename, ".csv") {
		t.Errorf("unexpected filename %q", filename)
	}

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header + 1 row, got %d rows", len(rows))
	}

	wantHeader := []string{
		"Registration ID", "Event Title", "Event Type", "Event Date",
		"Operative Name", "Moodle ID", "Registration Timestamp",
	}
	for i, col := range wantHeader {
		if rows[0][i] != col {
			t.Errorf("header[%d]: expected %q, got %q", i, col, rows[0][i])
		}
	}

	row := rows[1]
	if row[1] != "CTF Night" || row[2] != model.EventTypeHackathon || row[3] != "2026-10-01" {
		t.Errorf("unexpected event columns: %v", row)
	}
	if row[4] != "Alice" || row[5] != "21102A0042" {
		t.Errorf("unexpected registrant columns: %v", row)
	}
}

func TestRegistrationsCSVNewestFirst(t *testing.T) {
	svc, events, regs := setupExportService(t)
	ctx := context.Background()

	event := &model.Event{
		Title:    "CTF Night",
		Type:     model.EventTypeHackathon,
		Date:     time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		IsActive: true,
	}
	if err := events.Create(ctx, event); err != nil {
		t.Fatalf("event create failed: %v", err)
	}

	base := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	names := []string{"Alice", "Bob", "Carol"}
	for i, name := range names {
		if err := regs.Create(ctx, &model.Registration{
			EventID:       event.ID,
			OperativeName: name,
			MoodleID:      fmt.Sprintf("21102A00%02d", i),
			Timestamp:     base.Add(time.Duration(i) * time.Hour),
		}); err != nil {
			t.Fatalf("registration create failed: %v", err)
		}
	}

	data, _, err := svc.RegistrationsCSV(ctx, nil)
	if err != nil {
		t.Fatalf("RegistrationsCSV failed: %v", err)
	}

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected header + 3 rows, got %d", len(rows))
	}
	for i, want := range []string{"Carol", "Bob", "Alice"} {
		if got := rows[i+1][4]; got != want {
			t.Errorf("row %d: expected %q (newest first), got %q", i+1, want, got)
		}
	}
}

func TestRegistrationsCSVMissingEvent(t *testing.T) {
	svc, _, regs := setupExportService(t)
	ctx := context.Background()

	if err := regs.Create(ctx, &model.Registration{
		EventID: "gone", OperativeName: "Bob", MoodleID: "21102A0001",
	}); err != nil {
		t.Fatalf("registration create failed: %v", err)
	}

	data, _, err := svc.RegistrationsCSV(ctx, nil)
	if err != nil {
		t.Fatalf("RegistrationsCSV failed: %v", err)
	}

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	row := rows[1]
	if row[1] != "N/A" || row[2] != "N/A" || row[3] != "N/A" {
		t.Errorf("missing event should render as N/A, got %v", row)
	}
}

func TestRegistrationsXLSX(t *testing.T) {
	svc, events, regs := setupExportService(t)
	ctx := context.Background()

	event := &model.Event{
		Title:    "Workshop",
		Type:     model.EventTypeWorkshop,
		Date:     time.Date(2026, 11, 5, 0, 0, 0, 0, time.UTC),
		IsActive: true,
	}
	if err := events.Create(ctx, event); err != nil {
		t.Fatalf("event create failed: %v", err)
	}
	if err := regs.Create(ctx, &model.Registration{
		EventID: event.ID, OperativeName: "Carol", MoodleID: "21102A0007",
	}); err != nil {
		t.Fatalf("registration create failed: %v", err)
	}

	data, filename, err := svc.RegistrationsXLSX(ctx, nil)
	if err != nil {
		t.Fatalf("RegistrationsXLSX failed: %v", err)
	}
	if !strings.HasSuffix(filename, ".xlsx") {
		t.Errorf("unexpected filename %q", filename)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open xlsx: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Registrations")
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header + 1 row, got %d", len(rows))
	}
	if rows[0][0] != "Registration ID" {
		t.Errorf("unexpected first header cell %q", rows[0][0])
	}
	if rows[1][4] != "Carol" {
		t.Errorf("expected operative name in column 5, got %v", rows[1])
	}
}
