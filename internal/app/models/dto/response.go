package dto

// APIResponse is the fixed envelope every endpoint returns: a message and a
// payload. Error paths use the same shape with a null payload.
type APIResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// Default messages per status code, used when a handler does not provide one.
var defaultMessages = map[int]string{
	200: "Success",
	201: "Success",
	400: "Bad Request",
	401: "Unauthorized",
	403: "Forbidden",
	404: "Not Found",
	409: "Conflict",
	422: "Unprocessable Entity",
	500: "Internal Server Error",
}

// NewAPIResponse builds the envelope for a status code. An empty message falls
// back to the status default; any status >= 400 forces a null payload.
func NewAPIResponse(status int, message string, data interface{}) APIResponse {
	if message == "" {
		if m, ok := defaultMessages[status]; ok {
			message = m
		} else {
			message = "Success"
		}
	}
	if status >= 400 {
		data = nil
	}
	return APIResponse{Message: message, Data: data}
}

// PaginationInfo describes the page window of a list response.
type PaginationInfo struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	PageSize    int   `json:"pageSize"`
	TotalItems  int64 `json:"totalItems"`
}

// PaginatedResponse represents a paginated list with metadata
type PaginatedResponse struct {
	Items      interface{}    `json:"items"`
	Pagination PaginationInfo `json:"pagination"`
}
