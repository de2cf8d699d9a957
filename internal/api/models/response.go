package models

// ErrorResponse is the body of every failed request: a single "error" key.
type ErrorResponse struct {
	Error string `json:"error"`
}

// PolicyInfo describes a validation policy.
type PolicyInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Default     bool   `json:"default"`
}
