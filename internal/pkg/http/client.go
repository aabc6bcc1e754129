package http

import (
	"encoding/json"
	"fmt"
)

// envelope mirrors the JSON body every service responds with
type envelope struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
	Error     string          `json:"error,omitempty"`
	ErrorCode string          `json:"errorCode,omitempty"`
}

// StatusError is returned for non-2xx responses
type StatusError struct {
	Service    string
	StatusCode int
	Code       string
	Message    string
}

func (e *StatusError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s responded %d %s: %s", e.Service, e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("%s responded %d: %s", e.Service, e.StatusCode, e.Message)
}

// NotFound reports whether the upstream answered 404
func (e *StatusError) NotFound() bool {
	return e.StatusCode == 404
}

// ClientError reports whether the upstream rejected the request itself
func (e *StatusError) ClientError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}
