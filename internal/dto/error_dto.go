package dto

// ErrorResponse is the body of every non-2xx response.
// Detail is a string for server errors and a []FieldError for validation failures.
type ErrorResponse struct {
	Detail interface{} `json:"detail"`
}

// FieldError describes one invalid input location.
type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}
