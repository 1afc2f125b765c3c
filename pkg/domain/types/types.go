package types

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// ProjectID identifies a project on the backend. The backend uses integer
// keys, but the client treats them as opaque strings.
type ProjectID string

// String returns the string representation
func (id ProjectID) String() string {
	return string(id)
}

// UnmarshalJSON accepts both JSON numbers and strings
func (id *ProjectID) UnmarshalJSON(data []byte) error {
	v, err := unmarshalKey(data)
	if err != nil {
		return err
	}
	*id = ProjectID(v)
	return nil
}

// UserID identifies a user on the backend
type UserID string

// String returns the string representation
func (id UserID) String() string {
	return string(id)
}

// UnmarshalJSON accepts both JSON numbers and strings
func (id *UserID) UnmarshalJSON(data []byte) error {
	v, err := unmarshalKey(data)
	if err != nil {
		return err
	}
	*id = UserID(v)
	return nil
}

// unmarshalKey decodes a primary key that the API serializes as a number
// into its string form. Strings and null are accepted too.
func unmarshalKey(data []byte) (string, error) {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return "", nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", goerr.Wrap(err, "invalid key", goerr.V("raw", string(data)))
		}
		return s, nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return "", goerr.Wrap(err, "invalid key", goerr.V("raw", string(data)))
	}
	return n.String(), nil
}

// CredentialName names a value held by a credential store
type CredentialName string

// String returns the string representation
func (n CredentialName) String() string {
	return string(n)
}

const (
	// CredentialAccess is the bearer access token
	CredentialAccess CredentialName = "access"
	// CredentialRefresh is the token used to obtain a new access token
	CredentialRefresh CredentialName = "refresh"
	// CredentialCSRF is the anti-forgery token issued by the web front
	CredentialCSRF CredentialName = "csrftoken"
	// CredentialProjectMessage carries a success message across a reload
	CredentialProjectMessage CredentialName = "project_message"
)

// RequestID is attached to every outgoing request as X-Request-ID
type RequestID string

// String returns the string representation
func (id RequestID) String() string {
	return string(id)
}

// NewRequestID creates a new RequestID using UUID v7
func NewRequestID() RequestID {
	id, err := uuid.NewV7()
	if err != nil {
		return RequestID(uuid.New().String())
	}
	return RequestID(id.String())
}

// MemberAction is the kind of membership change
type MemberAction string

const (
	MemberActionAdd    MemberAction = "add"
	MemberActionRemove MemberAction = "remove"
)

// String returns the string representation
func (a MemberAction) String() string {
	return string(a)
}

// IsValid checks if the action is known
func (a MemberAction) IsValid() bool {
	switch a {
	case MemberActionAdd, MemberActionRemove:
		return true
	}
	return false
}

// Severity is the visual level of a feedback banner
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

// String returns the string representation
func (s Severity) String() string {
	return string(s)
}

// IsValid checks if the severity is one of the known levels
func (s Severity) IsValid() bool {
	switch s {
	case SeveritySuccess, SeverityInfo, SeverityWarning, SeverityDanger:
		return true
	}
	return false
}

// ParseSeverity parses a severity name, case-insensitively.
// "error" is accepted as an alias of danger.
func ParseSeverity(s string) (Severity, error) {
	v := Severity(strings.ToLower(strings.TrimSpace(s)))
	if v == "error" {
		return SeverityDanger, nil
	}
	if !v.IsValid() {
		return "", goerr.New("invalid severity", goerr.V("severity", s))
	}
	return v, nil
}
