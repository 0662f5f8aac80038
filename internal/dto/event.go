package dto

// ── event DTOs ──

// CreateEventRequest creates an event. Date uses YYYY-MM-DD.
type CreateEventRequest struct {
	Title       string `json:"title"       binding:"required,min=1,max=200"`
	Type        string `json:"type"        binding:"required"`
	Date        string `json:"date"        binding:"required,datetime=2006-01-02"`
	Description string `json:"description"`
}

// UpdateEventRequest updates an event; every field is optional.
type UpdateEventRequest struct {
	Title       *string `json:"title"       binding:"omitempty,min=1,max=200"`
	Type        *string `json:"type"`
	Date        *string `json:"date"        binding:"omitempty,datetime=2006-01-02"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

// EventListQuery filters event listings. Inactive events are excluded
// unless is_active is supplied explicitly.
type EventListQuery struct {
	Type     string `form:"type"`
	IsActive *bool  `form:"is_active"`
}
