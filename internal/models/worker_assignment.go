package models

import "time"

type AssignmentStatus string

const (
	AssignmentStatusActive   AssignmentStatus = "active"
	AssignmentStatusFinished AssignmentStatus = "finished"
)

// Valid reports whether s is active or finished.
func (s AssignmentStatus) Valid() bool {
	return s == AssignmentStatusActive || s == AssignmentStatusFinished
}

// WorkerAssignment binds a worker to a location. An active assignment is what
// allows clocking in and out.
type WorkerAssignment struct {
	ID           uint64           `gorm:"primarykey" json:"id"`
	UserID       uint64           `gorm:"not null;index:idx_worker_assignments_user_id" json:"user_id"`
	LocationID   uint64           `gorm:"not null" json:"location_id"`
	AssignedDate time.Time        `gorm:"not null" json:"assigned_date"`
	Status       AssignmentStatus `gorm:"type:varchar(20);not null;default:'active';index:idx_worker_assignments_status" json:"status"`

	// Relations
	User     User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Location Location `gorm:"foreignKey:LocationID;constraint:OnDelete:CASCADE" json:"-"`
}
