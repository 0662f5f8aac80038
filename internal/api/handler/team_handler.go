package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/chitresh99/cybersecurity-club-apsit/internal/dto"
	"github.com/chitresh99/cybersecurity-club-apsit/internal/metrics"
	"github.com/chitresh99/cybersecurity-club-apsit/internal/service"
	"github.com/chitresh99/cybersecurity-club-apsit/pkg/apperr"
	"github.com/chitresh99/cybersecurity-club-apsit/pkg/response"
)

// TeamHandler serves hackathon team sign-ups.
type TeamHandler struct {
	teamSvc service.TeamService
}

// NewTeamHandler creates a TeamHandler.
func NewTeamHandler(teamSvc service.TeamService) *TeamHandler {
	return &TeamHandler{teamSvc: teamSvc}
}

// Create signs up a team of four with exactly one leader.
// POST /api/hackathon-teams
func (h *TeamHandler) Create(c *gin.Context) {
	var req dto.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, bindError(err))
		return
	}

	team, err := h.teamSvc.Create(c.Request.Context(), &req)
	if err != nil {
		response.Fail(c, err)
		return
	}

	metrics.TeamsCreated.Inc()
	response.Created(c, team)
}

// List returns teams with members, optionally filtered by event name.
// GET /api/hackathon-teams
func (h *TeamHandler) List(c *gin.Context) {
	var q dto.TeamListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Fail(c, bindError(err))
		return
	}

	teams, err := h.teamSvc.List(c.Request.Context(), &q)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, teams)
}

// GetByID returns one team with its members.
// GET /api/hackathon-teams/:id
func (h *TeamHandler) GetByID(c *gin.Context) {
	team, err := h.teamSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrTeamNotFound) {
			response.Fail(c, apperr.NotFound("Team", c.Param("id")))
			return
		}
		response.Fail(c, err)
		return
	}

	response.OK(c, team)
}
