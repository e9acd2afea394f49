package model

// Response is the envelope every endpoint returns.
type Response struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Data       any         `json:"data,omitempty"`
	Error      *APIError   `json:"error,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// APIError is the error half of the envelope.
type APIError struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Details map[string][]string `json:"details,omitempty"`
}

// Pagination describes one page of a list result.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// NewSuccessResponse wraps data in a success envelope.
func NewSuccessResponse(message string, data any) Response {
	return Response{Success: true, Message: message, Data: data}
}

// NewErrorResponse wraps an error code/message in a failure envelope.
func NewErrorResponse(code, message string, details map[string][]string) Response {
	return Response{Success: false, Error: &APIError{Code: code, Message: message, Details: details}}
}

// NewPaginatedResponse wraps a page of results plus its pagination block.
func NewPaginatedResponse(data any, page, pageSize int, total int64) Response {
	return Response{Success: true, Data: data, Pagination: NewPagination(page, pageSize, total)}
}

// NewPagination computes totalPages as ceil(total/pageSize), never below 1,
// so an empty collection still reports a single (empty) page.
func NewPagination(page, pageSize int, total int64) *Pagination {
	totalPages := 1
	if pageSize > 0 {
		totalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
		if totalPages < 1 {
			totalPages = 1
		}
	}
	return &Pagination{Page: page, PageSize: pageSize, Total: total, TotalPages: totalPages}
}
