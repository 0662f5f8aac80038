package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/chitresh99/cybersecurity-club-apsit/internal/dto"
	"github.com/chitresh99/cybersecurity-club-apsit/internal/metrics"
	"github.com/chitresh99/cybersecurity-club-apsit/internal/service"
	"github.com/chitresh99/cybersecurity-club-apsit/pkg/apperr"
	"github.com/chitresh99/cybersecurity-club-apsit/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// RegistrationHandler serves event sign-ups. Creation is public; listing
// and exports are admin-only.
type RegistrationHandler struct {
	regSvc    service.RegistrationService
	exportSvc service.ExportService
}

// NewRegistrationHandler creates a RegistrationHandler.
func NewRegistrationHandler(regSvc service.RegistrationService, exportSvc service.ExportService) *RegistrationHandler {
	return &RegistrationHandler{regSvc: regSvc, exportSvc: exportSvc}
}

// Create registers an operative for an event.
// POST /api/registrations
func (h *RegistrationHandler) Create(c *gin.Context) {
	var req dto.CreateRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, bindError(err))
		return
	}

	reg, err := h.regSvc.Create(c.Request.Context(), &req)
	if err != nil {
		response.Fail(c, err)
		return
	}

	metrics.RegistrationsCreated.Inc()
	response.Created(c, reg)
}

// List returns registrations newest-first, events included.
// GET /api/registrations
func (h *RegistrationHandler) List(c *gin.Context) {
	var q dto.RegistrationListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Fail(c, bindError(err))
		return
	}

	regs, err := h.regSvc.List(c.Request.Context(), &q)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, regs)
}

// GetByID returns one registration with its event.
// GET /api/registrations/:id
func (h *RegistrationHandler) GetByID(c *gin.Context) {
	reg, err := h.regSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrRegistrationNotFound) {
			response.Fail(c, apperr.NotFound("Registration", c.Param("id")))
			return
		}
		response.Fail(c, err)
		return
	}

	response.OK(c, reg)
}

// ExportCSV downloads the registration listing as CSV.
// GET /api/registrations/export/csv
func (h *RegistrationHandler) ExportCSV(c *gin.Context) {
	var q dto.RegistrationListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Fail(c, bindError(err))
		return
	}

	data, filename, err := h.exportSvc.RegistrationsCSV(c.Request.Context(), &q)
	if err != nil {
		response.Fail(c, err)
		return
	}

	writeDownload(c, data, filename, "text/csv")
}

// ExportXLSX downloads the registration listing as a spreadsheet.
// GET /api/registrations/export/xlsx
func (h *RegistrationHandler) ExportXLSX(c *gin.Context) {
	var q dto.RegistrationListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Fail(c, bindError(err))
		return
	}

	data, filename, err := h.exportSvc.RegistrationsXLSX(c.Request.Context(), &q)
	if err != nil {
		response.Fail(c, err)
		return
	}

	writeDownload(c, data, filename, xlsxContentType)
}

func writeDownload(c *gin.Context, data []byte, filename, contentType string) {
	encoded := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encoded)
	c.Data(http.StatusOK, contentType, data)
}
