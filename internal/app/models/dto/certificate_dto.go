package dto

// IssueCertificateRequest represents a certificate emission payload
type IssueCertificateRequest struct {
	CourseID  int64 `json:"courseId" binding:"required,min=1"`
	StudentID int64 `json:"studentId" binding:"required,min=1"`
}
