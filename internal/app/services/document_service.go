package services

import (
	"context"
	"mime/multipart"

	"github.com/edukta/backend/internal/app/models"
	"github.com/edukta/backend/internal/app/repositories"
	"github.com/edukta/backend/internal/pkg/filestorage"
	"github.com/edukta/backend/internal/pkg/logger"
)

// DocumentService handles CV uploads.
type DocumentService struct {
	documentRepo repositories.IDocumentRepository
	userRepo     repositories.IUserRepository
	storage      filestorage.FileStorage
}

// NewDocumentService creates a new DocumentService
func NewDocumentService(
	documentRepo repositories.IDocumentRepository,
	userRepo repositories.IUserRepository,
	storage filestorage.FileStorage,
) *DocumentService {
	return &DocumentService{
		documentRepo: documentRepo,
		userRepo:     userRepo,
		storage:      storage,
	}
}

// SaveCV stores a user's CV file, records it and flips the has_cv flag.
// A previous CV is replaced.
func (s *DocumentService) SaveCV(ctx context.Context, userID int64, fileHeader *multipart.FileHeader) (*models.Document, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	previous, _ := s.documentRepo.GetByUserID(ctx, userID)

	path, err := s.storage.SaveFile(fileHeader, "cvs")
	if err != nil {
		return nil, err
	}

	doc := &models.Document{
		UserID:   userID,
		Path:     path,
		FileName: fileHeader.Filename,
		MimeType: fileHeader.Header.Get("Content-Type"),
	}

	id, err := s.documentRepo.Save(ctx, doc)
	if err != nil {
		if delErr := s.storage.DeleteFile(path); delErr != nil {
			logger.Warn().Err(delErr).Str("path", path).Msg("Failed to remove orphaned CV file")
		}
		return nil, err
	}
	doc.ID = id

	if previous != nil && previous.Path != path {
		if err := s.storage.DeleteFile(previous.Path); err != nil {
			logger.Warn().Err(err).Str("path", previous.Path).Msg("Failed to remove replaced CV file")
		}
	}

	return doc, nil
}

// GetCV returns the CV record of a user.
func (s *DocumentService) GetCV(ctx context.Context, userID int64) (*models.Document, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.documentRepo.GetByUserID(ctx, userID)
}
