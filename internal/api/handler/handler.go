package handler

import (
	"github.com/chitresh99/cybersecurity-club-apsit/internal/service"
	"github.com/chitresh99/cybersecurity-club-apsit/pkg/jwt"
	"github.com/chitresh99/cybersecurity-club-apsit/pkg/redis"
)

// Handler aggregates all HTTP handlers.
type Handler struct {
	Auth         *AuthHandler
	Event        *EventHandler
	Registration *RegistrationHandler
	Team         *TeamHandler
	Resource     *ResourceHandler
}

// NewHandler wires the handler layer. rdb may be nil when Redis is down;
// the auth handler degrades accordingly.
func NewHandler(svc *service.Service, jwtMgr *jwt.Manager, rdb *redis.Client) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(svc.Auth, jwtMgr, rdb),
		Event:        NewEventHandler(svc.Event),
		Registration: NewRegistrationHandler(svc.Registration, svc.Export),
		Team:         NewTeamHandler(svc.Team),
		Resource:     NewResourceHandler(svc.Resource),
	}
}
