package dto

import "time"

// DocumentResponse represents CV metadata returned by the API
type DocumentResponse struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"userId"`
	FileName   string    `json:"fileName"`
	MimeType   string    `json:"mimeType"`
	URL        string    `json:"url"`
	UploadedAt time.Time `json:"uploadedAt"`
}
