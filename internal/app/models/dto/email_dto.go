package dto

// NotificationRequest represents an outbound notification email payload
type NotificationRequest struct {
	To      string `json:"to" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Body    string `json:"body" binding:"required"`
}
