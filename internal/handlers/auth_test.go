package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/timeclock-api/internal/constants"
	"github.com/yukikurage/timeclock-api/internal/dto"
	apierrors "github.com/yukikurage/timeclock-api/internal/errors"
	"github.com/yukikurage/timeclock-api/internal/models"
	"github.com/yukikurage/timeclock-api/internal/testutil"
)

func TestAuthHandler_Login(t *testing.T) {
	env := setupTestEnv(t, nil)
	testutil.CreateUser(t, env.db, "existing", "supersecret", models.RoleAdmin)

	w := env.doJSON(t, http.MethodPost, "/api/login", map[string]string{
		"username": "existing",
		"password": "supersecret",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.UserDTO
	decode(t, w, &response)
	require.Equal(t, "existing", response.Username)
	require.Equal(t, models.RoleAdmin, response.Role)
	require.NotContains(t, w.Body.String(), "password")

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies, "expected session cookie to be set")
}

func TestAuthHandler_LoginFailures(t *testing.T) {
	env := setupTestEnv(t, nil)
	testutil.CreateUser(t, env.db, "existing", "supersecret", models.RoleWorker)

	w := env.doJSON(t, http.MethodPost, "/api/login", map[string]string{"username": "existing", "password": "nope"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, apierrors.ErrCodeInvalidCredentials, errorCode(t, w))
	require.Contains(t, w.Body.String(), "Invalid password")

	w = env.doJSON(t, http.MethodPost, "/api/login", map[string]string{"username": "ghost", "password": "nope"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "User not found")

	w = env.doJSON(t, http.MethodPost, "/api/login", map[string]string{"username": "existing", "password": ""})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "Invalid password")

	w = env.doJSON(t, http.MethodPost, "/api/login", map[string]string{"username": "existing"})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.doJSON(t, http.MethodPost, "/api/login", map[string]string{"password": "supersecret"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, apierrors.ErrCodeInvalidInput, errorCode(t, w))
}

func TestAuthHandler_Register(t *testing.T) {
	env := setupTestEnv(t, nil)

	w := env.doJSON(t, http.MethodPost, "/api/register", map[string]string{
		"username": "newuser",
		"password": "supersecret",
		"role":     "worker",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var response struct {
		ID uint64 `json:"id"`
	}
	decode(t, w, &response)
	require.NotZero(t, response.ID)

	w = env.doJSON(t, http.MethodPost, "/api/login", map[string]string{"username": "newuser", "password": "supersecret"})
	require.Equal(t, http.StatusOK, w.Code)
}

func TestAuthHandler_GetCurrentUser(t *testing.T) {
	env := setupTestEnv(t, nil)
	user := testutil.CreateUser(t, env.db, "current-user", "supersecret", models.RoleWorker)
	handler := NewAuthHandler(env.authService, env.userService)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/me", nil)
	c.Set(constants.ContextKeyUserID, user.ID)
	c.Set(constants.ContextKeyUsername, "stale-name")
	c.Set(constants.ContextKeyRole, string(models.RoleAdmin))

	handler.GetCurrentUser(c)

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.UserDTO
	decode(t, w, &response)
	require.Equal(t, user.ID, response.ID)
	require.Equal(t, user.Username, response.Username)
	require.Equal(t, models.RoleWorker, response.Role)
}

func TestAuthHandler_GetCurrentUserWithoutSession(t *testing.T) {
	env := setupTestEnv(t, nil)
	handler := NewAuthHandler(env.authService, env.userService)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/me", nil)

	handler.GetCurrentUser(c)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}
