package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/timeclock-api/internal/constants"
	apierrors "github.com/yukikurage/timeclock-api/internal/errors"
	"github.com/yukikurage/timeclock-api/internal/models"
)

// SessionUser is the login result kept in the client-side session cookie.
type SessionUser struct {
	ID       uint64
	Username string
	Role     models.UserRole
}

// SaveSessionUser stores user in the session cookie.
func SaveSessionUser(c *gin.Context, user SessionUser) error {
	session := sessions.Default(c)
	session.Set(constants.ContextKeyUserID, user.ID)
	session.Set(constants.ContextKeyUsername, user.Username)
	session.Set(constants.ContextKeyRole, string(user.Role))
	return session.Save()
}

// ClearSession drops the session cookie content.
func ClearSession(c *gin.Context) error {
	session := sessions.Default(c)
	session.Clear()
	return session.Save()
}

// RequireSession checks if the user is logged in via the session cookie
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID := session.Get(constants.ContextKeyUserID)

		if userID == nil {
			apierrors.Unauthorized(c, "")
			return
		}

		// Store the session user in context for easy access in handlers
		c.Set(constants.ContextKeyUserID, userID)
		c.Set(constants.ContextKeyUsername, session.Get(constants.ContextKeyUsername))
		c.Set(constants.ContextKeyRole, session.Get(constants.ContextKeyRole))
		c.Next()
	}
}

// GetSessionUser retrieves the user put in context by RequireSession
func GetSessionUser(c *gin.Context) (SessionUser, bool) {
	id, ok := sessionUserID(c)
	if !ok {
		return SessionUser{}, false
	}
	username, _ := c.Get(constants.ContextKeyUsername)
	role, _ := c.Get(constants.ContextKeyRole)

	user := SessionUser{ID: id}
	user.Username, _ = username.(string)
	if r, ok := role.(string); ok {
		user.Role = models.UserRole(r)
	}
	return user, true
}

// sessionUserID retrieves the current user ID from context
func sessionUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	switch v := userID.(type) {
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}
