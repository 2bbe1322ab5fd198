package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Authentication errors
	ErrAuthFailed       = fmt.Errorf("authentication failed")
	ErrNotAuthenticated = fmt.Errorf("not authenticated")
	ErrSignupFailed     = fmt.Errorf("signup failed")

	// API and service errors
	ErrAPIRequest         = fmt.Errorf("API request failed")
	ErrServiceUnavailable = fmt.Errorf("service unavailable")
	ErrImageNotFound      = fmt.Errorf("image not found")
	ErrUploadFailed       = fmt.Errorf("upload failed")
	ErrReorderFailed      = fmt.Errorf("reorder failed")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrFileNotFound    = fmt.Errorf("file not found")

	// Staging errors
	ErrNotStaged       = fmt.Errorf("file not staged")
	ErrHandleReleased  = fmt.Errorf("preview handle already released")
	ErrNothingToSubmit = fmt.Errorf("nothing to submit")
)
