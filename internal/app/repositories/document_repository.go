package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edukta/backend/internal/app/models"
	"github.com/edukta/backend/internal/db"
	"github.com/edukta/backend/internal/pkg/apperrors"
	"github.com/edukta/backend/internal/pkg/logger"
)

// IDocumentRepository defines the CV document data-access contract.
type IDocumentRepository interface {
	Save(ctx context.Context, doc *models.Document) (int64, error)
	GetByUserID(ctx context.Context, userID int64) (*models.Document, error)
}

// DocumentRepository handles uploaded document database operations
type DocumentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewDocumentRepository creates a new DocumentRepository
func NewDocumentRepository(db *pgxpool.Pool) *DocumentRepository {
	return &DocumentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Save inserts the user's CV record, replacing any previous upload, and
// flips the users.has_cv flag in the same transaction. A user keeps at
// most one CV on file.
func (r *DocumentRepository) Save(ctx context.Context, doc *models.Document) (int64, error) {
	upsertSQL, upsertArgs, err := r.sb.Insert("documents").
		Columns("user_id", "path", "file_name", "mime_type").
		Values(doc.UserID, doc.Path, doc.FileName, doc.MimeType).
		Suffix(`ON CONFLICT (user_id) DO UPDATE
			SET path = EXCLUDED.path,
			    file_name = EXCLUDED.file_name,
			    mime_type = EXCLUDED.mime_type,
			    uploaded_at = NOW()
			RETURNING id`).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build upsert document query: %w", err)
	}

	flagSQL, flagArgs, err := r.sb.Update("users").
		Set("has_cv", true).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": doc.UserID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build set has_cv query: %w", err)
	}

	var id int64
	err = db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, upsertSQL, upsertArgs...).Scan(&id); err != nil {
			return fmt.Errorf("error saving document: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, flagSQL, flagArgs...)
		if err != nil {
			return fmt.Errorf("error setting has_cv: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrUserNotFound
		}
		return nil
	})
	if err != nil {
		logger.Error().Err(err).Int64("userID", doc.UserID).Msg("Error saving document record")
		return 0, err
	}

	return id, nil
}

// GetByUserID retrieves the CV record of a user.
func (r *DocumentRepository) GetByUserID(ctx context.Context, userID int64) (*models.Document, error) {
	sql, args, err := r.sb.Select("id", "user_id", "path", "file_name", "mime_type", "uploaded_at").
		From("documents").
		Where(squirrel.Eq{"user_id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get document query: %w", err)
	}

	doc := &models.Document{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&doc.ID, &doc.UserID, &doc.Path, &doc.FileName, &doc.MimeType, &doc.UploadedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("error getting document: %w", err)
	}

	return doc, nil
}
