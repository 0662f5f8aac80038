package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chitresh99/cybersecurity-club-apsit/internal/repository"
	"github.com/chitresh99/cybersecurity-club-apsit/pkg/apperr"
	"github.com/chitresh99/cybersecurity-club-apsit/pkg/jwt"
	"github.com/chitresh99/cybersecurity-club-apsit/pkg/redis"
	"github.com/chitresh99/cybersecurity-club-apsit/pkg/response"
)

// Context keys set by JWTAuth for downstream handlers.
const (
	CtxUsername = "username"
	CtxTokenID  = "token_id"
)

// JWTAuth extracts and verifies the token from Authorization: Bearer <token>.
// Beyond signature and expiry it checks the Redis denylist (revoked tokens)
// and re-reads the account so a deactivated admin is cut off immediately,
// not at token expiry. rdb may be nil; the denylist check is then skipped.
func JWTAuth(jwtMgr *jwt.Manager, rdb *redis.Client, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.AbortWith(c, apperr.Unauthorized("Missing authorization header"))
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.AbortWith(c, apperr.Unauthorized("Invalid authorization header format"))
			return
		}

		claims, err := jwtMgr.Parse(parts[1])
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				response.AbortWith(c, apperr.Unauthorized("Token has expired"))
				return
			}
			response.AbortWith(c, apperr.Unauthorized("Invalid token"))
			return
		}

		if rdb != nil {
			denied, err := rdb.IsDenied(c.Request.Context(), claims.ID)
			if err == nil && denied {
				response.AbortWith(c, apperr.Unauthorized("Token has been revoked"))
				return
			}
		}

		user, err := users.GetByUsername(c.Request.Context(), claims.Subject)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.AbortWith(c, apperr.Unauthorized("Invalid token"))
				return
			}
			response.AbortWith(c, apperr.Internal())
			return
		}
		if !user.IsActive {
			response.AbortWith(c, apperr.Forbidden("User account is inactive"))
			return
		}

		c.Set(CtxUsername, user.Username)
		c.Set(CtxTokenID, claims.ID)

		c.Next()
	}
}
