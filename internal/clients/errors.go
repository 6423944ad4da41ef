package clients

import "fmt"

// FetchError reports a non-success HTTP status or an unreadable body from a
// remote marketplace endpoint. The pagination loop stops on the first
// page-level FetchError.
type FetchError struct {
	Endpoint   string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: unexpected status %d", e.Endpoint, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.Endpoint, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ValidationError reports a response body that does not match the expected
// record shape. The affected section's data stays unavailable; the rest of
// the dashboard keeps working.
type ValidationError struct {
	Endpoint string
	Field    string
	Err      error
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validate %s: field %q: %v", e.Endpoint, e.Field, e.Err)
	}
	return fmt.Sprintf("validate %s: %v", e.Endpoint, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }
