package dto

// ErrorResponse is the uniform error body returned by the JSON API.
type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}
