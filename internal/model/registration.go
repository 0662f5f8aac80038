package model

import "time"

// Registration is a public event sign-up. A moodle ID may register once
// per event, enforced by the (event_id, moodle_id) unique constraint.
type Registration struct {
	ID            string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"        json:"id"`
	EventID       string    `gorm:"type:uuid;not null;uniqueIndex:uniq_event_moodle"      json:"event_id"`
	OperativeName string    `gorm:"type:varchar(100);not null"                            json:"operative_name"`
	MoodleID      string    `gorm:"type:varchar(20);not null;uniqueIndex:uniq_event_moodle" json:"moodle_id"`
	Timestamp     time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"                    json:"timestamp"`

	Event *Event `gorm:"foreignKey:EventID;references:ID" json:"event,omitempty"`
}

// TableName sets the table name.
func (Registration) TableName() string { return "registrations" }
