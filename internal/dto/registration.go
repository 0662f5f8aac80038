package dto

// ── registration DTOs ──

// CreateRegistrationRequest is the public event sign-up payload.
// MoodleID is structured input: 8-12 alphanumeric characters, validated
// by pattern, never sanitized.
type CreateRegistrationRequest struct {
	EventID       string `json:"event_id"       binding:"required,uuid"`
	OperativeName string `json:"operative_name" binding:"required,min=1,max=100"`
	MoodleID      string `json:"moodle_id"      binding:"required,alphanum,min=8,max=12"`
}

// RegistrationListQuery filters the admin registration listing.
type RegistrationListQuery struct {
	EventID  string `form:"event_id"  binding:"omitempty,uuid"`
	MoodleID string `form:"moodle_id"`
}
