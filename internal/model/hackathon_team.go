package model

import "time"

// HackathonTeam is a public hackathon sign-up: exactly four members, one
// of which is the leader. The (event_name, team_name) pair is unique.
type HackathonTeam struct {
	ID        string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"          json:"id"`
	EventName string    `gorm:"type:varchar(200);not null;uniqueIndex:uniq_event_team_name" json:"event_name"`
	TeamName  string    `gorm:"type:varchar(100);not null;uniqueIndex:uniq_event_team_name" json:"team_name"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"                      json:"created_at"`

	Members []TeamMember `gorm:"foreignKey:TeamID;references:ID;constraint:OnDelete:CASCADE" json:"team_members"`
}

// TableName sets the table name.
func (HackathonTeam) TableName() string { return "hackathon_teams" }

// TeamMember belongs exclusively to its team and is removed with it.
type TeamMember struct {
	ID         string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	TeamID     string    `gorm:"type:uuid;not null;index"                       json:"-"`
	Name       string    `gorm:"type:varchar(100);not null"                     json:"name"`
	Email      string    `gorm:"type:varchar(100);not null"                     json:"email"`
	MoodleID   string    `gorm:"type:varchar(20);not null"                      json:"moodle_id"`
	RollNo     string    `gorm:"type:varchar(20);not null"                      json:"roll_no"`
	Division   string    `gorm:"type:varchar(5);not null"                       json:"division"`
	Department string    `gorm:"type:varchar(100);not null"                     json:"department"`
	Year       string    `gorm:"type:varchar(10);not null"                      json:"year"`
	Mobile     string    `gorm:"type:varchar(15);not null"                      json:"mobile"`
	IsLeader   bool      `gorm:"not null;default:false"                         json:"is_leader"`
	CreatedAt  time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
}

// TableName sets the table name.
func (TeamMember) TableName() string { return "team_members" }
