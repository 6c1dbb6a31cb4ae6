package middleware

import (
	"net/http"
	"strings"

	"github.com/edwestfieldjr/BP-Tracker/internal/app/pkg/auth"
	"github.com/edwestfieldjr/BP-Tracker/internal/app/policy"

	"github.com/gin-gonic/gin"
)

const (
	UserIDKey  = "user_id"
	EmailKey   = "email"
	IsAdminKey = "is_admin"
)

// AuthService bundles the two ways a request can prove an identity.
type AuthService struct {
	JWT     *auth.JWTService
	Session *auth.SessionService
}

func (a *AuthService) resolve(c *gin.Context) bool {
	// Bearer JWT first
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := a.JWT.Validate(tokenString)
		if err == nil {
			c.Set(UserIDKey, claims.UserID)
			c.Set(EmailKey, claims.Email)
			c.Set(IsAdminKey, claims.IsAdmin)
			return true
		}
	}

	// Then the session cookie
	sessionID, err := c.Cookie("session_id")
	if err == nil && sessionID != "" {
		sessionData, err := a.Session.Get(c.Request.Context(), sessionID)
		if err == nil && sessionData != nil {
			c.Set(UserIDKey, sessionData.UserID)
			c.Set(EmailKey, sessionData.Email)
			c.Set(IsAdminKey, sessionData.IsAdmin)
			// Keep active sessions alive
			_ = a.Session.Extend(c.Request.Context(), sessionID)
			return true
		}
	}

	return false
}

// AuthMiddleware rejects requests that carry no valid identity.
func AuthMiddleware(authSvc *AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authSvc.resolve(c) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// OptionalAuthMiddleware resolves an identity when present but lets
// anonymous requests through.
func OptionalAuthMiddleware(authSvc *AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		_ = authSvc.resolve(c)
		c.Next()
	}
}

// CurrentActor builds the policy actor for this request; anonymous when
// no identity was resolved.
func CurrentActor(c *gin.Context) policy.Actor {
	userID, exists := c.Get(UserIDKey)
	if !exists {
		return policy.Actor{}
	}
	isAdmin, _ := c.Get(IsAdminKey)
	admin, _ := isAdmin.(bool)
	return policy.Actor{ID: userID.(uint), IsAdmin: admin}
}
