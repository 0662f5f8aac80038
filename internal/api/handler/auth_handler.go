package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/chitresh99/cybersecurity-club-apsit/internal/api/middleware"
	"github.com/chitresh99/cybersecurity-club-apsit/internal/dto"
	"github.com/chitresh99/cybersecurity-club-apsit/internal/metrics"
	"github.com/chitresh99/cybersecurity-club-apsit/internal/service"
	"github.com/chitresh99/cybersecurity-club-apsit/pkg/apperr"
	"github.com/chitresh99/cybersecurity-club-apsit/pkg/jwt"
	"github.com/chitresh99/cybersecurity-club-apsit/pkg/redis"
	"github.com/chitresh99/cybersecurity-club-apsit/pkg/response"
)

// AuthHandler serves the admin authentication endpoints.
type AuthHandler struct {
	authSvc service.AuthService
	jwtMgr  *jwt.Manager
	rdb     *redis.Client
}

// NewAuthHandler creates an AuthHandler. rdb may be nil; logout then
// degrades to a no-op on the server side.
func NewAuthHandler(authSvc service.AuthService, jwtMgr *jwt.Manager, rdb *redis.Client) *AuthHandler {
	return &AuthHandler{authSvc: authSvc, jwtMgr: jwtMgr, rdb: rdb}
}

// Login authenticates the admin and issues an access token.
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, bindError(err))
		return
	}

	metrics.LoginAttempts.Inc()

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			metrics.LoginFailures.Inc()
			response.Fail(c, apperr.Unauthorized("Invalid username or password"))
		case errors.Is(err, service.ErrUserInactive):
			metrics.LoginFailures.Inc()
			response.Fail(c, apperr.Forbidden("User account is inactive"))
		default:
			response.Fail(c, err)
		}
		return
	}

	response.OK(c, result)
}

// GetMe returns the authenticated admin.
// GET /api/auth/me
func (h *AuthHandler) GetMe(c *gin.Context) {
	username := c.GetString(middleware.CtxUsername)

	user, err := h.authSvc.GetCurrentUser(c.Request.Context(), username)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.Fail(c, apperr.Unauthorized("Invalid token"))
		case errors.Is(err, service.ErrUserInactive):
			response.Fail(c, apperr.Forbidden("User account is inactive"))
		default:
			response.Fail(c, err)
		}
		return
	}

	response.OK(c, user)
}

// Logout revokes the presented token by denylisting its ID until expiry.
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if h.rdb != nil {
		jti := c.GetString(middleware.CtxTokenID)
		if jti != "" {
			// full TTL covers the worst case; a shorter remaining
			// lifetime just expires the key early
			if err := h.rdb.DenyToken(c.Request.Context(), jti, h.jwtMgr.TTL()); err != nil {
				response.Fail(c, apperr.Internal())
				return
			}
		}
	}
	response.NoContent(c)
}
