package dto

import (
	"time"

	"github.com/yukikurage/timeclock-api/internal/models"
)

// UserDTO represents a user in API responses; the password hash never leaves the server
type UserDTO struct {
	ID       uint64          `json:"id"`
	Username string          `json:"username"`
	Role     models.UserRole `json:"role"`
}

// LocationDTO represents a job site in API responses
type LocationDTO struct {
	ID        uint64  `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Radius    float64 `json:"radius"`
}

// TimeLogDTO represents a time log in API responses
type TimeLogDTO struct {
	ID           uint64     `json:"id"`
	UserID       uint64     `json:"user_id"`
	ClockInTime  time.Time  `json:"clock_in_time"`
	ClockOutTime *time.Time `json:"clock_out_time"`
	ClockInLat   *float64   `json:"clock_in_lat"`
	ClockInLon   *float64   `json:"clock_in_lon"`
	ClockOutLat  *float64   `json:"clock_out_lat"`
	ClockOutLon  *float64   `json:"clock_out_lon"`
	ReportText   *string    `json:"report_text"`
	PhotoPath    *string    `json:"photo_path"`
}

// TimeLogWithUserDTO is a log row of the admin listing
type TimeLogWithUserDTO struct {
	TimeLogDTO
	Username string `json:"username"`
}

// AssignmentDTO represents an assignment in the admin listing
type AssignmentDTO struct {
	ID           uint64                  `json:"id"`
	UserID       uint64                  `json:"user_id"`
	LocationID   uint64                  `json:"location_id"`
	AssignedDate time.Time               `json:"assigned_date"`
	Status       models.AssignmentStatus `json:"status"`
	Username     string                  `json:"username"`
	LocationName string                  `json:"location_name"`
}

// ProfileAssignmentDTO is an assignment as shown on a worker profile
type ProfileAssignmentDTO struct {
	ID           uint64                  `json:"id"`
	LocationID   uint64                  `json:"location_id"`
	LocationName string                  `json:"location_name"`
	AssignedDate time.Time               `json:"assigned_date"`
	Status       models.AssignmentStatus `json:"status"`
}

// WorkerProfileDTO is the aggregated monthly view of one worker
type WorkerProfileDTO struct {
	ID           uint64                 `json:"id"`
	Username     string                 `json:"username"`
	Role         models.UserRole        `json:"role"`
	Month        string                 `json:"month"`
	MonthlyHours string                 `json:"monthlyHours"`
	TotalMinutes float64                `json:"totalMinutes"`
	Logs         []TimeLogDTO           `json:"logs"`
	Assignments  []ProfileAssignmentDTO `json:"assignments"`
}

// ReportSummaryDTO is the generated summary of a worker's monthly reports
type ReportSummaryDTO struct {
	UserID      uint64 `json:"userId"`
	Month       string `json:"month"`
	ReportCount int    `json:"reportCount"`
	Summary     string `json:"summary"`
}

// Conversion functions

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
	}
}

// ToUserDTOs converts a slice of users
func ToUserDTOs(users []models.User) []UserDTO {
	out := make([]UserDTO, len(users))
	for i, user := range users {
		out[i] = ToUserDTO(user)
	}
	return out
}

// ToLocationDTO converts a Location model to LocationDTO
func ToLocationDTO(location models.Location) LocationDTO {
	return LocationDTO{
		ID:        location.ID,
		Name:      location.Name,
		Latitude:  location.Latitude,
		Longitude: location.Longitude,
		Radius:    location.Radius,
	}
}

// ToLocationDTOs converts a slice of locations
func ToLocationDTOs(locations []models.Location) []LocationDTO {
	out := make([]LocationDTO, len(locations))
	for i, location := range locations {
		out[i] = ToLocationDTO(location)
	}
	return out
}

// ToTimeLogDTO converts a TimeLog model to TimeLogDTO
func ToTimeLogDTO(log models.TimeLog) TimeLogDTO {
	return TimeLogDTO{
		ID:           log.ID,
		UserID:       log.UserID,
		ClockInTime:  log.ClockInTime,
		ClockOutTime: log.ClockOutTime,
		ClockInLat:   log.ClockInLat,
		ClockInLon:   log.ClockInLon,
		ClockOutLat:  log.ClockOutLat,
		ClockOutLon:  log.ClockOutLon,
		ReportText:   log.ReportText,
		PhotoPath:    log.PhotoPath,
	}
}

// ToTimeLogDTOs converts a slice of logs
func ToTimeLogDTOs(logs []models.TimeLog) []TimeLogDTO {
	out := make([]TimeLogDTO, len(logs))
	for i, log := range logs {
		out[i] = ToTimeLogDTO(log)
	}
	return out
}

// ToTimeLogWithUserDTOs converts logs loaded together with their user
func ToTimeLogWithUserDTOs(logs []models.TimeLog) []TimeLogWithUserDTO {
	out := make([]TimeLogWithUserDTO, len(logs))
	for i, log := range logs {
		out[i] = TimeLogWithUserDTO{
			TimeLogDTO: ToTimeLogDTO(log),
			Username:   log.User.Username,
		}
	}
	return out
}

// ToAssignmentDTO converts an assignment loaded with user and location
func ToAssignmentDTO(a models.WorkerAssignment) AssignmentDTO {
	return AssignmentDTO{
		ID:           a.ID,
		UserID:       a.UserID,
		LocationID:   a.LocationID,
		AssignedDate: a.AssignedDate,
		Status:       a.Status,
		Username:     a.User.Username,
		LocationName: a.Location.Name,
	}
}

// ToAssignmentDTOs converts a slice of assignments
func ToAssignmentDTOs(assignments []models.WorkerAssignment) []AssignmentDTO {
	out := make([]AssignmentDTO, len(assignments))
	for i, a := range assignments {
		out[i] = ToAssignmentDTO(a)
	}
	return out
}

// ToProfileAssignmentDTOs converts assignments loaded with their location
func ToProfileAssignmentDTOs(assignments []models.WorkerAssignment) []ProfileAssignmentDTO {
	out := make([]ProfileAssignmentDTO, len(assignments))
	for i, a := range assignments {
		out[i] = ProfileAssignmentDTO{
			ID:           a.ID,
			LocationID:   a.LocationID,
			LocationName: a.Location.Name,
			AssignedDate: a.AssignedDate,
			Status:       a.Status,
		}
	}
	return out
}
