package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/timeclock-api/internal/constants"
	"github.com/yukikurage/timeclock-api/internal/repository"
	"github.com/yukikurage/timeclock-api/internal/services"
	"github.com/yukikurage/timeclock-api/internal/storage"
	"github.com/yukikurage/timeclock-api/internal/testutil"
	"gorm.io/gorm"
)

type testEnv struct {
	db     *gorm.DB
	fs     afero.Fs
	router *gin.Engine
	now    time.Time

	authService      *services.AuthService
	userService      *services.UserService
	timeClockService *services.TimeClockService
	profileService   *services.ProfileService
}

func setupTestEnv(t *testing.T, summarizer services.ReportSummarizer) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		db:  testutil.NewTestDB(t),
		fs:  afero.NewMemMapFs(),
		now: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
	}
	clock := func() time.Time { return env.now }

	photos, err := storage.NewFilePhotoStore(env.fs, "uploads")
	require.NoError(t, err)

	userRepo := repository.NewUserRepository(env.db)
	locationRepo := repository.NewLocationRepository(env.db)
	timeLogRepo := repository.NewTimeLogRepository(env.db)
	assignmentRepo := repository.NewAssignmentRepository(env.db)

	env.authService = services.NewAuthService(userRepo)
	env.userService = services.NewUserService(userRepo)
	locationService := services.NewLocationService(locationRepo)
	assignmentService := services.NewAssignmentService(assignmentRepo, userRepo, locationRepo)
	assignmentService.SetClock(clock)
	env.timeClockService = services.NewTimeClockService(timeLogRepo, photos)
	env.timeClockService.SetClock(clock)
	env.profileService = services.NewProfileService(userRepo, timeLogRepo, assignmentRepo)
	env.profileService.SetClock(clock)
	summaryService := services.NewReportSummaryService(userRepo, timeLogRepo, summarizer)
	summaryService.SetClock(clock)

	authHandler := NewAuthHandler(env.authService, env.userService)
	userHandler := NewUserHandler(env.userService)
	locationHandler := NewLocationHandler(locationService)
	assignmentHandler := NewAssignmentHandler(assignmentService)
	timeClockHandler := NewTimeClockHandler(env.timeClockService)
	workerHandler := NewWorkerHandler(env.profileService, summaryService)

	r := gin.New()
	store := cookie.NewStore([]byte("secret"))
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	r.POST("/api/login", authHandler.Login)
	r.POST("/api/register", authHandler.Register)
	r.POST("/api/clock-in", timeClockHandler.ClockIn)
	r.POST("/api/clock-out", timeClockHandler.ClockOut)
	r.POST("/api/report", timeClockHandler.SubmitReport)
	r.GET("/api/logs", timeClockHandler.ListLogs)
	r.GET("/api/users", userHandler.ListUsers)
	r.POST("/api/users", userHandler.CreateUser)
	r.PUT("/api/users/:id", userHandler.UpdateUser)
	r.DELETE("/api/users/:id", userHandler.DeleteUser)
	r.GET("/api/locations", locationHandler.ListLocations)
	r.GET("/api/locations/geojson", locationHandler.LocationsGeoJSON)
	r.POST("/api/locations", locationHandler.CreateLocation)
	r.DELETE("/api/locations/:id", locationHandler.DeleteLocation)
	r.GET("/api/assignments", assignmentHandler.ListAssignments)
	r.POST("/api/assignments", assignmentHandler.CreateAssignment)
	r.PATCH("/api/assignments/:id/status", assignmentHandler.UpdateAssignmentStatus)
	r.DELETE("/api/assignments/:id", assignmentHandler.DeleteAssignment)
	r.GET("/api/workers/:id/profile", workerHandler.GetProfile)
	r.GET("/api/workers/:id/report-summary", workerHandler.GetReportSummary)
	env.router = r

	return env
}

func (env *testEnv) doJSON(t *testing.T, method, url string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, url, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	decode(t, w, &body)
	return body.Code
}
