package handler

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chitresh99/cybersecurity-club-apsit/internal/dto"
	"github.com/chitresh99/cybersecurity-club-apsit/internal/metrics"
	"github.com/chitresh99/cybersecurity-club-apsit/internal/service"
	"github.com/chitresh99/cybersecurity-club-apsit/pkg/apperr"
	"github.com/chitresh99/cybersecurity-club-apsit/pkg/response"
)

// ResourceHandler serves the PDF resource library. Listing and download
// are public; upload, replace and delete are admin-only.
type ResourceHandler struct {
	resSvc service.ResourceService
}

// NewResourceHandler creates a ResourceHandler.
func NewResourceHandler(resSvc service.ResourceService) *ResourceHandler {
	return &ResourceHandler{resSvc: resSvc}
}

// Create uploads a new PDF resource (multipart form: title, level, file).
// POST /api/resources
func (h *ResourceHandler) Create(c *gin.Context) {
	var form dto.CreateResourceForm
	if err := c.ShouldBind(&form); err != nil {
		response.Fail(c, bindError(err))
		return
	}

	file, err := formFile(c)
	if err != nil {
		response.Fail(c, err)
		return
	}
	defer file.close()

	res, svcErr := h.resSvc.Create(c.Request.Context(), &form, file.upload)
	if svcErr != nil {
		h.fail(c, svcErr)
		return
	}

	response.Created(c, res)
}

// List returns resources, optionally filtered by level.
// GET /api/resources
func (h *ResourceHandler) List(c *gin.Context) {
	var q dto.ResourceListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Fail(c, bindError(err))
		return
	}

	resources, err := h.resSvc.List(c.Request.Context(), &q)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.OK(c, resources)
}

// GetByID returns one resource's metadata.
// GET /api/resources/:id
func (h *ResourceHandler) GetByID(c *gin.Context) {
	res, err := h.resSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}

	response.OK(c, res)
}

// Download streams the stored PDF.
// GET /api/resources/:id/download
func (h *ResourceHandler) Download(c *gin.Context) {
	fullPath, name, err := h.resSvc.DownloadPath(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.FileAttachment(fullPath, name)
}

// Update changes metadata and optionally replaces the file. The old file
// is removed only after the new row state is committed.
// PUT /api/resources/:id
func (h *ResourceHandler) Update(c *gin.Context) {
	var form dto.UpdateResourceForm
	if err := c.ShouldBind(&form); err != nil {
		response.Fail(c, bindError(err))
		return
	}

	var upload *service.FileUpload
	fh, err := c.FormFile("file")
	if err == nil {
		file, appErr := openFormFile(fh)
		if appErr != nil {
			response.Fail(c, appErr)
			return
		}
		defer file.close()
		upload = file.upload
	} else if !errors.Is(err, http.ErrMissingFile) {
		response.Fail(c, apperr.Validation("Invalid request body", nil))
		return
	}

	res, svcErr := h.resSvc.Update(c.Request.Context(), c.Param("id"), &form, upload)
	if svcErr != nil {
		h.fail(c, svcErr)
		return
	}

	response.OK(c, res)
}

// Delete removes a resource and its file, row first.
// DELETE /api/resources/:id
func (h *ResourceHandler) Delete(c *gin.Context) {
	if err := h.resSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}

	response.NoContent(c)
}

func (h *ResourceHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrResourceNotFound):
		response.Fail(c, apperr.NotFound("Resource", c.Param("id")))
		return
	case errors.Is(err, service.ErrResourceFileNotFound):
		response.Fail(c, apperr.NotFound("Resource file", c.Param("id")))
		return
	}

	var appErr *apperr.Error
	if errors.As(err, &appErr) &&
		(appErr.Status == http.StatusBadRequest || appErr.Status == http.StatusRequestEntityTooLarge) {
		metrics.UploadsRejected.Inc()
	}
	response.Fail(c, err)
}

// openedFile ties a multipart part to its close handle.
type openedFile struct {
	upload *service.FileUpload
	close  func()
}

func formFile(c *gin.Context) (*openedFile, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return nil, apperr.Validation("Validation failed", map[string]string{
			"file": "this field is required",
		})
	}
	return openFormFile(fh)
}

func openFormFile(fh *multipart.FileHeader) (*openedFile, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, apperr.Internal()
	}
	return &openedFile{
		upload: &service.FileUpload{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Reader:      f,
		},
		close: func() { f.Close() },
	}, nil
}
