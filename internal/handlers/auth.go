package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/yukikurage/timeclock-api/internal/dto"
	apierrors "github.com/yukikurage/timeclock-api/internal/errors"
	"github.com/yukikurage/timeclock-api/internal/middleware"
	"github.com/yukikurage/timeclock-api/internal/services"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
	userService *services.UserService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, userService *services.UserService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		userService: userService,
	}
}

// Login authenticates a user. The response body is what the dashboard keeps
// as its session; the same user is also written to the session cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.authService.Login(c.Request.Context(), services.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	if err := middleware.SaveSessionUser(c, middleware.SessionUser{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
	}); err != nil {
		logrus.WithError(err).Error("failed to save session")
		apierrors.InternalError(c, "Failed to save session")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// Logout removes the session cookie content.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := middleware.ClearSession(c); err != nil {
		apierrors.InternalError(c, "Failed to logout")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}

// GetCurrentUser returns the logged in user.
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	sessionUser, exists := middleware.GetSessionUser(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	// the cookie may outlive the account or a role change
	user, err := h.authService.GetUser(c.Request.Context(), sessionUser.ID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			apierrors.Unauthorized(c, "Not authenticated")
			return
		}
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// Register creates an account; kept for initial setup.
func (h *AuthHandler) Register(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req.toInput())
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": user.ID})
}

func respondAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.InvalidCredentials(c, "User not found")
	case errors.Is(err, services.ErrInvalidPassword):
		apierrors.InvalidCredentials(c, "Invalid password")
	default:
		respondInternalError(c, err)
	}
}

// respondInternalError logs err and returns its message, as storage failures
// are reported verbatim to the dashboard.
func respondInternalError(c *gin.Context, err error) {
	logrus.WithError(err).WithField("reqid", middleware.GetRequestID(c)).Error("request failed")
	_ = c.Error(err)
	apierrors.InternalError(c, err.Error())
}
