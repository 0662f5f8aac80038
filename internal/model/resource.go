package model

import "time"

// Resource difficulty levels accepted by the API.
const (
	ResourceLevelBeginner     = "beginner"
	ResourceLevelIntermediate = "intermediate"
	ResourceLevelAdvanced     = "advanced"
)

// ValidResourceLevel reports whether l is one of the accepted levels.
func ValidResourceLevel(l string) bool {
	switch l {
	case ResourceLevelBeginner, ResourceLevelIntermediate, ResourceLevelAdvanced:
		return true
	}
	return false
}

// Resource is a PDF in the resource library. The row owns the file at
// FileURL: deleting the row deletes the file, replacing the file deletes
// the superseded one.
type Resource struct {
	ID        string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Title     string    `gorm:"type:varchar(200);not null"                     json:"title"`
	Level     string    `gorm:"type:varchar(20);not null"                      json:"level"`
	FileURL   string    `gorm:"type:varchar(500);not null;uniqueIndex"         json:"file_url"`
	FileSize  int64     `json:"file_size,omitempty"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"updated_at"`
}

// TableName sets the table name.
func (Resource) TableName() string { return "resources" }
