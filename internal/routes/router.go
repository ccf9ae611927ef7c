package routes

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/spf13/afero"
	"github.com/yukikurage/timeclock-api/internal/config"
	"github.com/yukikurage/timeclock-api/internal/constants"
	"github.com/yukikurage/timeclock-api/internal/handlers"
	"github.com/yukikurage/timeclock-api/internal/middleware"
	"github.com/yukikurage/timeclock-api/internal/repository"
	"github.com/yukikurage/timeclock-api/internal/services"
	"github.com/yukikurage/timeclock-api/internal/storage"
	"gorm.io/gorm"
)

// Deps are the collaborators the router is built from.
type Deps struct {
	Config     *config.Config
	DB         *gorm.DB
	Photos     *storage.FilePhotoStore
	Summarizer services.ReportSummarizer
}

// NewRouter wires repositories, services and handlers into a gin engine.
func NewRouter(deps Deps) *gin.Engine {
	cfg := deps.Config

	// Repositories
	userRepo := repository.NewUserRepository(deps.DB)
	locationRepo := repository.NewLocationRepository(deps.DB)
	timeLogRepo := repository.NewTimeLogRepository(deps.DB)
	assignmentRepo := repository.NewAssignmentRepository(deps.DB)

	// Services
	authService := services.NewAuthService(userRepo)
	userService := services.NewUserService(userRepo)
	locationService := services.NewLocationService(locationRepo)
	assignmentService := services.NewAssignmentService(assignmentRepo, userRepo, locationRepo)
	timeClockService := services.NewTimeClockService(timeLogRepo, deps.Photos)
	profileService := services.NewProfileService(userRepo, timeLogRepo, assignmentRepo)
	summaryService := services.NewReportSummaryService(userRepo, timeLogRepo, deps.Summarizer)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, userService)
	userHandler := handlers.NewUserHandler(userService)
	locationHandler := handlers.NewLocationHandler(locationService)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentService)
	timeClockHandler := handlers.NewTimeClockHandler(timeClockService)
	workerHandler := handlers.NewWorkerHandler(profileService, summaryService)
	healthHandler := handlers.NewHealthHandler(deps.DB)

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		gin.Recovery(),
		middleware.CORS(cfg.CORSAllowedOrigins),
	)

	// Client-side session: the cookie carries the logged in user, nothing is stored server side
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   cfg.SessionMaxAge,
		HttpOnly: true,
		Secure:   cfg.GinMode == gin.ReleaseMode,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	r.GET("/health", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	if deps.Photos != nil {
		r.StaticFS(constants.UploadsURLPrefix, afero.NewHttpFs(deps.Photos.FS()).Dir("/"))
	}

	api := r.Group("/api")
	{
		// Auth routes
		api.POST("/login", authHandler.Login)
		api.POST("/logout", authHandler.Logout)
		api.GET("/me", middleware.RequireSession(), authHandler.GetCurrentUser)
		api.POST("/register", authHandler.Register)

		// Time clock routes
		api.POST("/clock-in", timeClockHandler.ClockIn)
		api.POST("/clock-out", timeClockHandler.ClockOut)
		api.POST("/report", timeClockHandler.SubmitReport)
		api.GET("/logs", timeClockHandler.ListLogs)

		users := api.Group("/users")
		{
			users.GET("", userHandler.ListUsers)
			users.POST("", userHandler.CreateUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
		}

		locations := api.Group("/locations")
		{
			locations.GET("", locationHandler.ListLocations)
			locations.GET("/geojson", locationHandler.LocationsGeoJSON)
			locations.POST("", locationHandler.CreateLocation)
			locations.DELETE("/:id", locationHandler.DeleteLocation)
		}

		assignments := api.Group("/assignments")
		{
			assignments.GET("", assignmentHandler.ListAssignments)
			assignments.POST("", assignmentHandler.CreateAssignment)
			assignments.PATCH("/:id/status", assignmentHandler.UpdateAssignmentStatus)
			assignments.DELETE("/:id", assignmentHandler.DeleteAssignment)
		}

		workers := api.Group("/workers")
		{
			workers.GET("/:id/profile", workerHandler.GetProfile)
			workers.GET("/:id/report-summary", workerHandler.GetReportSummary)
		}
	}

	return r
}
