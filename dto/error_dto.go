package dto

type ErrorResponse struct {
	Detail string `json:"detail"`
}

// ValidationDetail describes one rejected input. Loc starts with
// "body", "query" or "path" followed by the field name.
type ValidationDetail struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

type ValidationErrorResponse struct {
	Detail []ValidationDetail `json:"detail"`
}
