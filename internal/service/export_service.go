package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/chitresh99/cybersecurity-club-apsit/internal/dto"
	"github.com/chitresh99/cybersecurity-club-apsit/internal/model"
	"github.com/chitresh99/cybersecurity-club-apsit/internal/repository"
)

var exportHeader = []string{
	"Registration ID",
	"Event Title",
	"Event Type",
	"Event Date",
	"Operative Name",
	"Moodle ID",
	"Registration Timestamp",
}

// ExportService renders registration listings as downloadable files.
// Rows come out newest-first, same order as the JSON listing.
type ExportService interface {
	RegistrationsCSV(ctx context.Context, q *dto.RegistrationListQuery) ([]byte, string, error)
	RegistrationsXLSX(ctx context.Context, q *dto.RegistrationListQuery) ([]byte, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService builds the ExportService.
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

func (s *exportService) RegistrationsCSV(ctx context.Context, q *dto.RegistrationListQuery) ([]byte, string, error) {
	regs, err := s.list(ctx, q)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeader); err != nil {
		return nil, "", err
	}
	for _, reg := range regs {
		if err := w.Write(exportRow(&reg)); err != nil {
			return nil, "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		s.logger.Error("csv export failed", zap.Error(err))
		return nil, "", err
	}

	return buf.Bytes(), exportFilename("csv"), nil
}

func (s *exportService) RegistrationsXLSX(ctx context.Context, q *dto.RegistrationListQuery) ([]byte, string, error) {
	regs, err := s.list(ctx, q)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Registrations"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for col, name := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, "", err
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return nil, "", err
		}
	}

	for i, reg := range regs {
		for col, value := range exportRow(&reg) {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, "", err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, "", err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		s.logger.Error("xlsx export failed", zap.Error(err))
		return nil, "", err
	}

	return buf.Bytes(), exportFilename("xlsx"), nil
}

func (s *exportService) list(ctx context.Context, q *dto.RegistrationListQuery) ([]model.Registration, error) {
	filters := &repository.RegistrationFilters{}
	if q != nil {
		filters.EventID = q.EventID
		filters.MoodleID = q.MoodleID
	}
	regs, err := s.repo.Registration.List(ctx, filters)
	if err != nil {
		s.logger.Error("registration listing failed", zap.Error(err))
		return nil, err
	}
	return regs, nil
}

// exportRow flattens a registration. A missing event (should not happen,
// events are soft-deleted) renders as N/A rather than aborting the export.
func exportRow(reg *model.Registration) []string {
	title, typ, date := "N/A", "N/A", "N/A"
	if reg.Event != nil {
		title = reg.Event.Title
		typ = reg.Event.Type
		date = reg.Event.Date.Format("2006-01-02")
	}
	return []string{
		reg.ID,
		title,
		typ,
		date,
		reg.OperativeName,
		reg.MoodleID,
		reg.Timestamp.UTC().Format(time.RFC3339),
	}
}

func exportFilename(ext string) string {
	return fmt.Sprintf("registrations_%s.%s", time.Now().UTC().Format("20060102_150405"), ext)
}
