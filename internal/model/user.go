package model

import "time"

// User is the admin principal. There is exactly one principal kind: a
// valid, active admin account. Created by seeding; mutated only on login
// (last_login) or deactivation.
type User struct {
	ID           string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Username     string     `gorm:"type:varchar(50);not null;uniqueIndex"          json:"username"`
	PasswordHash string     `gorm:"type:varchar(255);not null"                     json:"-"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	IsActive     bool       `gorm:"not null;default:true"                          json:"is_active"`
	CreatedAt    time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
}

// TableName sets the table name.
func (User) TableName() string { return "users" }
