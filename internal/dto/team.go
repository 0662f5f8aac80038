package dto

// ── hackathon team DTOs ──

// TeamMemberInput is one member of a team sign-up.
type TeamMemberInput struct {
	Name       string `json:"name"       binding:"required,min=1,max=100"`
	Email      string `json:"email"      binding:"required,email,max=100"`
	MoodleID   string `json:"moodle_id"  binding:"required,alphanum,min=8,max=12"`
	RollNo     string `json:"roll_no"    binding:"required,min=1,max=20"`
	Division   string `json:"division"   binding:"required,min=1,max=5"`
	Department string `json:"department" binding:"required,min=1,max=100"`
	Year       string `json:"year"       binding:"required,min=1,max=10"`
	Mobile     string `json:"mobile"     binding:"required,len=10,numeric"`
	IsLeader   bool   `json:"is_leader"`
}

// CreateTeamRequest is the public hackathon team sign-up payload.
// Structural invariants beyond the tags (exactly one leader) are enforced
// by the team service before anything touches storage.
type CreateTeamRequest struct {
	EventName   string            `json:"event_name"   binding:"required,min=1,max=200"`
	TeamName    string            `json:"team_name"    binding:"required,min=1,max=100"`
	TeamMembers []TeamMemberInput `json:"team_members" binding:"required,len=4,dive"`
}

// TeamListQuery filters the team listing.
type TeamListQuery struct {
	EventName string `form:"event_name"`
}
