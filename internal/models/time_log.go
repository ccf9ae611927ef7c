package models

import "time"

// TimeLog is one work session. A log with a nil ClockOutTime is open.
type TimeLog struct {
	ID           uint64     `gorm:"primarykey" json:"id"`
	UserID       uint64     `gorm:"not null;index:idx_time_logs_user_id" json:"user_id"`
	ClockInTime  time.Time  `gorm:"not null;index:idx_time_logs_clock_in" json:"clock_in_time"`
	ClockOutTime *time.Time `json:"clock_out_time"`
	ClockInLat   *float64   `json:"clock_in_lat"`
	ClockInLon   *float64   `json:"clock_in_lon"`
	ClockOutLat  *float64   `json:"clock_out_lat"`
	ClockOutLon  *float64   `json:"clock_out_lon"`
	ReportText   *string    `gorm:"type:text" json:"report_text"`
	PhotoPath    *string    `gorm:"type:varchar(512)" json:"photo_path"`

	// Relations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// IsOpen reports whether the session has not been clocked out yet.
func (l TimeLog) IsOpen() bool {
	return l.ClockOutTime == nil
}

// DurationMinutes is the closed session length in minutes; open logs count 0.
func (l TimeLog) DurationMinutes() float64 {
	if l.ClockOutTime == nil || l.ClockInTime.IsZero() {
		return 0
	}
	return l.ClockOutTime.Sub(l.ClockInTime).Minutes()
}
