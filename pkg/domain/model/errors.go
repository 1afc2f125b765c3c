package model

import "github.com/m-mizutani/goerr/v2"

// Error tags categorize failures of member management operations
var (
	// ErrTagMissingInput marks an operation aborted before any network call
	// because a project or user reference was absent
	ErrTagMissingInput = goerr.NewTag("missing_input")
	// ErrTagAuth marks an absent credential or a failed reauthentication
	ErrTagAuth = goerr.NewTag("auth")
	// ErrTagTransport marks network failures and non-success statuses
	ErrTagTransport = goerr.NewTag("transport")
	// ErrTagApplication marks a failure reported by the server in the body
	ErrTagApplication = goerr.NewTag("application")
)

// Sentinel errors for member management operations
var (
	ErrNotAuthenticated = goerr.New("no access token available")
	ErrReauthFailed     = goerr.New("reauthentication failed")
	ErrCSRFUnavailable  = goerr.New("anti-forgery token not available")
)
