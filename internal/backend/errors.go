package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnauthorized is matched by any 401 response.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrConflict is matched by a 409 response or a registration rejected as a duplicate.
	ErrConflict = errors.New("conflict")
	// ErrUnavailable wraps transport failures: the server could not be reached.
	ErrUnavailable = errors.New("story api unavailable")
)

const detailEmailRegistered = "Email already registered"

// APIError is a non-2xx response from the Story API.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("story api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("story api: status %d: %s", e.StatusCode, e.Detail)
}

// Is lets errors.Is match the sentinel errors against an APIError.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case ErrConflict:
		return e.StatusCode == http.StatusConflict || e.Detail == detailEmailRegistered
	}
	return false
}

// parseDetail extracts the "detail" field of an error body. Validation failures carry a
// list rather than a string; those are kept as raw JSON.
func parseDetail(body []byte) string {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.Detail) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(payload.Detail, &s); err == nil {
		return s
	}
	return string(payload.Detail)
}
