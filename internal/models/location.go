package models

// Location is a job site. Radius is the geofence tolerance in meters; it is
// stored for the dashboard but clock-in coordinates are not checked against it.
type Location struct {
	ID        uint64  `gorm:"primarykey" json:"id"`
	Name      string  `gorm:"type:varchar(255);not null" json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Radius    float64 `json:"radius"`
}
