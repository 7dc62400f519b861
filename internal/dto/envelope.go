package dto

// SuccessResponse is the envelope of every successful JSON response.
type SuccessResponse struct {
	Success bool   `json:"success" example:"true"`
	Data    any    `json:"data"`
	Message string `json:"message" example:"OK"`
	Meta    *Meta  `json:"meta,omitempty"`
}

// Meta carries paging information for list endpoints.
type Meta struct {
	NextToken *string `json:"nextToken,omitempty"`
}

// ErrorBody describes a failed request.
type ErrorBody struct {
	Code    string `json:"code" example:"NOT_FOUND"`
	Message string `json:"message" example:"Transaction not found"`
	Details any    `json:"details,omitempty"`
}

// ErrorResponse is the envelope of every failed JSON response.
type ErrorResponse struct {
	Success bool      `json:"success" example:"false"`
	Error   ErrorBody `json:"error"`
}

// FieldError is one entry of ErrorBody.Details for validation failures.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// OK wraps data in a success envelope.
func OK(data any, message string) SuccessResponse {
	return SuccessResponse{Success: true, Data: data, Message: message}
}

// Fail builds an error envelope.
func Fail(code, message string, details any) ErrorResponse {
	return ErrorResponse{Success: false, Error: ErrorBody{Code: code, Message: message, Details: details}}
}
