package models

import "time"

// Document defines an uploaded CV based on the 'documents' table. Each user
// has at most one CV; a re-upload replaces the previous row.
type Document struct {
	ID         int64     `json:"id" db:"id"`
	UserID     int64     `json:"userId" db:"user_id"`
	Path       string    `json:"path" db:"path"`
	FileName   string    `json:"fileName" db:"file_name"`
	MimeType   string    `json:"mimeType" db:"mime_type"`
	UploadedAt time.Time `json:"uploadedAt" db:"uploaded_at"`
}
