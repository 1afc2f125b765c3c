package model

import (
	"fmt"
	"strings"
)

// Payload is the JSON envelope shared by the member, auth and refresh
// endpoints. Fields absent from a response stay at their zero value.
type Payload struct {
	Success *bool        `json:"success,omitempty"`
	Message string       `json:"message,omitempty"`
	Error   string       `json:"error,omitempty"`
	Detail  string       `json:"detail,omitempty"`
	Code    string       `json:"code,omitempty"`
	Users   []UserOption `json:"users,omitempty"`
	Access  string       `json:"access,omitempty"`
	Refresh string       `json:"refresh,omitempty"`
	User    *Member      `json:"user,omitempty"`
}

// Succeeded reports whether the payload carries an explicit success flag
func (p *Payload) Succeeded() bool {
	return p != nil && p.Success != nil && *p.Success
}

// Failed reports whether the payload carries an explicit failure flag
func (p *Payload) Failed() bool {
	return p != nil && p.Success != nil && !*p.Success
}

// HasMarker reports whether the message contains one of the markers,
// case-insensitively
func (p *Payload) HasMarker(markers []string) bool {
	if p == nil || p.Message == "" {
		return false
	}
	msg := strings.ToLower(p.Message)
	for _, m := range markers {
		if m != "" && strings.Contains(msg, strings.ToLower(m)) {
			return true
		}
	}
	return false
}

// ErrorText returns the error reported by the server, if any
func (p *Payload) ErrorText() string {
	if p == nil {
		return ""
	}
	if p.Error != "" {
		return p.Error
	}
	return p.Detail
}

// APIResponse is a decoded response of a JSON endpoint
type APIResponse struct {
	StatusCode int
	// Payload is nil when the body is empty or not JSON
	Payload *Payload
	Body    []byte
}

// OK reports whether the status code is 2xx
func (r *APIResponse) OK() bool {
	return r != nil && r.StatusCode >= 200 && r.StatusCode < 300
}

// Unauthorized reports whether the server rejected the credential
func (r *APIResponse) Unauthorized() bool {
	return r != nil && r.StatusCode == 401
}

// FailureText describes a failed response for the user, preferring the
// server-supplied text
func (r *APIResponse) FailureText() string {
	if r == nil {
		return ""
	}
	if text := r.Payload.ErrorText(); text != "" {
		return text
	}
	return fmt.Sprintf("HTTP %d", r.StatusCode)
}

// Navigation describes the page reached by a full form submission
type Navigation struct {
	StatusCode int
	Location   string
}
