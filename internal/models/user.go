package models

type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleWorker UserRole = "worker"
)

// Valid reports whether r is one of the closed set of roles.
func (r UserRole) Valid() bool {
	return r == RoleAdmin || r == RoleWorker
}

type User struct {
	ID           uint64   `gorm:"primarykey" json:"id"`
	Username     string   `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
	PasswordHash string   `gorm:"column:password;type:varchar(255);not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null" json:"role"`
}
