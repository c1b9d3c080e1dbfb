package services

import (
	"context"
	"errors"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edukta/backend/internal/app/models"
)

func cvFileHeader() *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: "cv.pdf",
		Header:   textproto.MIMEHeader{"Content-Type": []string{"application/pdf"}},
	}
}

func TestSaveCVReplacesPrevious(t *testing.T) {
	userRepo := &fakeUserRepo{
		getByIDFn: func(ctx context.Context, id int64) (*models.User, error) {
			return &models.User{ID: id, RoleID: models.RoleStudent}, nil
		},
	}
	var saved *models.Document
	documentRepo := &fakeDocumentRepo{
		saveFn: func(ctx context.Context, doc *models.Document) (int64, error) {
			saved = doc
			return 9, nil
		},
		getByUserIDFn: func(ctx context.Context, userID int64) (*models.Document, error) {
			return &models.Document{ID: 9, UserID: userID, Path: "/uploads/cvs/old"}, nil
		},
	}
	storage := &fakeStorage{}
	svc := NewDocumentService(documentRepo, userRepo, storage)

	doc, err := svc.SaveCV(context.Background(), 5, cvFileHeader())
	require.NoError(t, err)
	assert.Equal(t, int64(9), doc.ID)
	assert.Equal(t, "cv.pdf", doc.FileName)
	require.NotNil(t, saved)
	assert.Equal(t, int64(5), saved.UserID)
	// The replaced file is removed once the new record is in place.
	assert.Equal(t, []string{"/uploads/cvs/old"}, storage.deletedPaths)
}

func TestSaveCVCleansUpOnFailure(t *testing.T) {
	userRepo := &fakeUserRepo{
		getByIDFn: func(ctx context.Context, id int64) (*models.User, error) {
			return &models.User{ID: id, RoleID: models.RoleStudent}, nil
		},
	}
	documentRepo := &fakeDocumentRepo{
		saveFn: func(ctx context.Context, doc *models.Document) (int64, error) {
			return 0, errors.New("insert failed")
		},
	}
	storage := &fakeStorage{}
	svc := NewDocumentService(documentRepo, userRepo, storage)

	_, err := svc.SaveCV(context.Background(), 5, cvFileHeader())
	require.Error(t, err)
	require.Len(t, storage.savedPaths, 1)
	assert.Equal(t, storage.savedPaths, storage.deletedPaths)
}
