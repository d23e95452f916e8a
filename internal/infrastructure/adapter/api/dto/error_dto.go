package dto

// ErrorResponse is the standardized error payload
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
