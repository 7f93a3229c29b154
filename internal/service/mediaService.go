package service

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/creativeclicks/studio-backend/internal/database"
	"github.com/creativeclicks/studio-backend/internal/entity"
	"github.com/creativeclicks/studio-backend/internal/pkg/storage"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type mediaService struct {
	repo      database.MediaRepository
	files     storage.FileStorage
	urlPrefix string
}

func NewMediaService(repo database.MediaRepository, files storage.FileStorage, urlPrefix string) MediaService {
	return &mediaService{
		repo:      repo,
		files:     files,
		urlPrefix: urlPrefix,
	}
}

func (s *mediaService) Upload(ctx context.Context, req *UploadMediaRequest) (*entity.MediaItem, error) {
	fileType, err := entity.FileTypeFromContentType(req.ContentType)
	if err != nil {
		return nil, err
	}

	category, err := entity.ParseMediaCategory(req.Category)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrInvalidInput, err)
	}

	// Collision-resistant name keeps the original extension for the static
	// file server.
	filename := uuid.New().String() + filepath.Ext(req.OriginalName)

	if err := s.files.Save(filename, req.File); err != nil {
		return nil, fmt.Errorf("failed to store upload: %w", err)
	}

	title := req.Title
	if title == "" {
		title = req.OriginalName
	}

	item := &entity.MediaItem{
		ID:           uuid.New().String(),
		Filename:     filename,
		OriginalName: req.OriginalName,
		FileType:     fileType,
		FilePath:     path.Join(s.urlPrefix, filename),
		Title:        title,
		Description:  req.Description,
		Category:     category,
		UploadedAt:   time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create media record: %w", err)
	}

	return item, nil
}

func (s *mediaService) List(ctx context.Context, category string) ([]*entity.MediaItem, error) {
	var filter entity.MediaCategory
	if category != "" {
		parsed, err := entity.ParseMediaCategory(category)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", entity.ErrInvalidInput, err)
		}
		filter = parsed
	}

	return s.repo.GetAll(ctx, filter)
}

// Delete removes the catalog record and the backing file. A missing backing
// file is tolerated so that delete stays idempotent on the filesystem side.
func (s *mediaService) Delete(ctx context.Context, id string) error {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.files.Delete(item.Filename); err != nil && !os.IsNotExist(err) {
		logrus.Warnf("failed to remove media file %s: %s", item.Filename, err.Error())
	}

	return s.repo.Delete(ctx, id)
}
