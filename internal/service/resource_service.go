package service

import (
	"context"
	"errors"
	"io"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/chitresh99/cybersecurity-club-apsit/internal/dto"
	"github.com/chitresh99/cybersecurity-club-apsit/internal/model"
	"github.com/chitresh99/cybersecurity-club-apsit/internal/repository"
	"github.com/chitresh99/cybersecurity-club-apsit/pkg/apperr"
	"github.com/chitresh99/cybersecurity-club-apsit/pkg/sanitize"
	"github.com/chitresh99/cybersecurity-club-apsit/pkg/upload"
)

var (
	ErrResourceNotFound     = errors.New("resource not found")
	ErrResourceFileNotFound = errors.New("resource file not found")
)

// FileUpload is an incoming multipart file part.
type FileUpload struct {
	Filename    string
	ContentType string
	Reader      io.Reader
}

// ResourceService manages the PDF resource library. The database row owns
// the stored file, so every mutation sequences file and row operations:
// replace is write-new, commit-row, delete-old; delete is delete-row,
// delete-file. Never the reverse, so a failure can orphan at worst an
// unreferenced file, never a referenced row without its file.
type ResourceService interface {
	Create(ctx context.Context, form *dto.CreateResourceForm, file *FileUpload) (*model.Resource, error)
	GetByID(ctx context.Context, id string) (*model.Resource, error)
	List(ctx context.Context, q *dto.ResourceListQuery) ([]model.Resource, error)
	Update(ctx context.Context, id string, form *dto.UpdateResourceForm, file *FileUpload) (*model.Resource, error)
	Delete(ctx context.Context, id string) error
	// DownloadPath resolves the on-disk path for a resource's file.
	DownloadPath(ctx context.Context, id string) (fullPath, downloadName string, err error)
}

type resourceService struct {
	repo   *repository.Repository
	store  *upload.Store
	logger *zap.Logger
}

// NewResourceService builds the ResourceService.
func NewResourceService(repo *repository.Repository, store *upload.Store, logger *zap.Logger) ResourceService {
	return &resourceService{repo: repo, store: store, logger: logger}
}

func (s *resourceService) Create(ctx context.Context, form *dto.CreateResourceForm, file *FileUpload) (*model.Resource, error) {
	path, size, err := s.store.SavePDF(file.Filename, file.ContentType, file.Reader)
	if err != nil {
		return nil, mapUploadError(err)
	}

	res := &model.Resource{
		Title:    sanitize.Strict(form.Title, 200),
		Level:    form.Level,
		FileURL:  path,
		FileSize: size,
	}

	if err := s.repo.Resource.Create(ctx, res); err != nil {
		// the row never existed; remove the just-written file
		if delErr := s.store.Delete(path); delErr != nil {
			s.logger.Warn("orphaned upload cleanup failed", zap.String("path", path), zap.Error(delErr))
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("Resource file path already exists")
		}
		s.logger.Error("resource create failed", zap.Error(err))
		return nil, err
	}

	return s.repo.Resource.GetByID(ctx, res.ID)
}

func (s *resourceService) GetByID(ctx context.Context, id string) (*model.Resource, error) {
	res, err := s.repo.Resource.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResourceNotFound
		}
		s.logger.Error("resource lookup failed", zap.Error(err))
		return nil, err
	}
	return res, nil
}

func (s *resourceService) List(ctx context.Context, q *dto.ResourceListQuery) ([]model.Resource, error) {
	level := ""
	if q != nil {
		level = q.Level
	}
	return s.repo.Resource.List(ctx, level)
}

func (s *resourceService) Update(ctx context.Context, id string, form *dto.UpdateResourceForm, file *FileUpload) (*model.Resource, error) {
	res, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if form.Title != nil {
		res.Title = sanitize.Strict(*form.Title, 200)
	}
	if form.Level != nil {
		res.Level = *form.Level
	}

	oldPath := ""
	if file != nil {
		// write-new first; the old file is deleted only after the row
		// commit confirms nothing references it anymore
		path, size, err := s.store.SavePDF(file.Filename, file.ContentType, file.Reader)
		if err != nil {
			return nil, mapUploadError(err)
		}
		oldPath = res.FileURL
		res.FileURL = path
		res.FileSize = size
	}
	res.UpdatedAt = time.Now().UTC()

	if err := s.repo.Resource.Update(ctx, res); err != nil {
		if res.FileURL != oldPath && oldPath != "" {
			if delErr := s.store.Delete(res.FileURL); delErr != nil {
				s.logger.Warn("orphaned upload cleanup failed", zap.String("path", res.FileURL), zap.Error(delErr))
			}
		}
		s.logger.Error("resource update failed", zap.Error(err))
		return nil, err
	}

	if oldPath != "" {
		if err := s.store.Delete(oldPath); err != nil {
			s.logger.Warn("superseded file delete failed", zap.String("path", oldPath), zap.Error(err))
		}
	}

	return s.repo.Resource.GetByID(ctx, res.ID)
}

func (s *resourceService) Delete(ctx context.Context, id string) error {
	res, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	// delete-row first: the file goes only once no row references it
	if err := s.repo.Resource.Delete(ctx, id); err != nil {
		s.logger.Error("resource delete failed", zap.Error(err))
		return err
	}

	if err := s.store.Delete(res.FileURL); err != nil {
		s.logger.Warn("resource file delete failed", zap.String("path", res.FileURL), zap.Error(err))
	}

	return nil
}

func (s *resourceService) DownloadPath(ctx context.Context, id string) (string, string, error) {
	res, err := s.GetByID(ctx, id)
	if err != nil {
		return "", "", err
	}

	if !s.store.Exists(res.FileURL) {
		return "", "", ErrResourceFileNotFound
	}

	full, err := s.store.FullPath(res.FileURL)
	if err != nil {
		return "", "", err
	}

	downloadName := sanitize.Strict(res.Title, 200)
	downloadName = replaceSpaces(downloadName) + ".pdf"

	return full, downloadName, nil
}

func replaceSpaces(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == ' ' {
			r = '_'
		}
		out = append(out, r)
	}
	return string(out)
}

// mapUploadError converts upload rejections to wire-level failures.
func mapUploadError(err error) error {
	switch {
	case errors.Is(err, upload.ErrBadExtension),
		errors.Is(err, upload.ErrBadContentType),
		errors.Is(err, upload.ErrInvalidSignature):
		return apperr.InvalidFile(err.Error())
	case errors.Is(err, upload.ErrTooLarge):
		return apperr.PayloadTooLarge("File size exceeds the maximum allowed size")
	default:
		return err
	}
}
