package dto

// ── resource DTOs ──

// CreateResourceForm is the multipart form for uploading a PDF resource.
// The file part is handled separately by the handler.
type CreateResourceForm struct {
	Title string `form:"title" binding:"required,min=1,max=200"`
	Level string `form:"level" binding:"required,oneof=beginner intermediate advanced"`
}

// UpdateResourceForm updates a resource; all parts are optional.
type UpdateResourceForm struct {
	Title *string `form:"title" binding:"omitempty,min=1,max=200"`
	Level *string `form:"level" binding:"omitempty,oneof=beginner intermediate advanced"`
}

// ResourceListQuery filters the resource listing.
type ResourceListQuery struct {
	Level string `form:"level" binding:"omitempty,oneof=beginner intermediate advanced"`
}
