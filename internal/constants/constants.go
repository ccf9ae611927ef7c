package constants

// Session and context keys
const (
	SessionCookieName  = "timeclock_session"
	ContextKeyUserID   = "user_id"
	ContextKeyUsername = "username"
	ContextKeyRole     = "role"
	ContextKeyRequest  = "request_id"
)

// HeaderRequestID is echoed back on every response
const HeaderRequestID = "X-Request-Id"

// Uploads
const (
	UploadsURLPrefix = "/uploads"
	PhotoFormField   = "photo"
)

// BcryptCost matches the cost used for the seeded accounts
const BcryptCost = 10

// MonthLayout is the "YYYY-MM" form used by the worker profile
const MonthLayout = "2006-01"

// Default seeded accounts
const (
	DefaultAdminUsername  = "admin"
	DefaultAdminPassword  = "admin123"
	DefaultWorkerUsername = "worker"
	DefaultWorkerPassword = "worker123"
)

// MaxReportsForSummary bounds the prompt sent for a monthly report summary
const MaxReportsForSummary = 100
