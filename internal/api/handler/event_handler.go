package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/chitresh99/cybersecurity-club-apsit/internal/dto"
	"github.com/chitresh99/cybersecurity-club-apsit/internal/service"
	"github.com/chitresh99/cybersecurity-club-apsit/pkg/apperr"
	"github.com/chitresh99/cybersecurity-club-apsit/pkg/response"
)

// EventHandler serves the event CRUD endpoints. Reads are public; every
// mutation sits behind the auth middleware.
type EventHandler struct {
	eventSvc service.EventService
}

// NewEventHandler creates an EventHandler.
func NewEventHandler(eventSvc service.EventService) *EventHandler {
	return &EventHandler{eventSvc: eventSvc}
}

// Create adds a new event.
// POST /api/events
func (h *EventHandler) Create(c *gin.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, bindError(err))
		return
	}

	event, err := h.eventSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Created(c, event)
}

// List returns events, active-only unless is_active is given explicitly.
// GET /api/events
func (h *EventHandler) List(c *gin.Context) {
	var q dto.EventListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Fail(c, bindError(err))
		return
	}

	events, err := h.eventSvc.List(c.Request.Context(), &q)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.OK(c, events)
}

// GetByID returns one event, active or not.
// GET /api/events/:id
func (h *EventHandler) GetByID(c *gin.Context) {
	event, err := h.eventSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}

	response.OK(c, event)
}

// Update applies a partial update.
// PUT /api/events/:id
func (h *EventHandler) Update(c *gin.Context) {
	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, bindError(err))
		return
	}

	event, err := h.eventSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.OK(c, event)
}

// Delete soft-deletes an event. The row stays; is_active flips to false.
// DELETE /api/events/:id
func (h *EventHandler) Delete(c *gin.Context) {
	if err := h.eventSvc.SoftDelete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}

	response.NoContent(c)
}

func (h *EventHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEventNotFound):
		response.Fail(c, apperr.NotFound("Event", c.Param("id")))
	case errors.Is(err, service.ErrEventType):
		response.Fail(c, apperr.Validation("Validation failed", map[string]string{
			"type": "must be one of: Workshop Hackathon Seminar Bootcamp Lecture",
		}))
	case errors.Is(err, service.ErrEventDate):
		response.Fail(c, apperr.Validation("Validation failed", map[string]string{
			"date": "must be a date in YYYY-MM-DD format",
		}))
	case errors.Is(err, service.ErrEventDateInPast):
		response.Fail(c, apperr.Validation("Validation failed", map[string]string{
			"date": "event date cannot be in the past",
		}))
	default:
		response.Fail(c, err)
	}
}
