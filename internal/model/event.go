package model

import "time"

// Event types accepted by the API.
const (
	EventTypeWorkshop  = "Workshop"
	EventTypeHackathon = "Hackathon"
	EventTypeSeminar   = "Seminar"
	EventTypeBootcamp  = "Bootcamp"
	EventTypeLecture   = "Lecture"
)

// ValidEventType reports whether t is one of the accepted event types.
func ValidEventType(t string) bool {
	switch t {
	case EventTypeWorkshop, EventTypeHackathon, EventTypeSeminar, EventTypeBootcamp, EventTypeLecture:
		return true
	}
	return false
}

// Event is a club event. Events are soft-deleted (is_active=false), never
// hard-deleted, so registrations keep a valid reference.
type Event struct {
	ID          string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Title       string    `gorm:"type:varchar(200);not null"                     json:"title"`
	Type        string    `gorm:"type:varchar(20);not null"                      json:"type"`
	Date        time.Time `gorm:"type:date;not null"                             json:"date"`
	Description string    `gorm:"type:text"                                      json:"description,omitempty"`
	IsActive    bool      `gorm:"not null;default:true"                          json:"is_active"`
	CreatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"updated_at"`
}

// TableName sets the table name.
func (Event) TableName() string { return "events" }
