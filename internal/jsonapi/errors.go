package jsonapi

import "fmt"

// StatusError reports a non-2xx response from the remote API. The transport
// itself does not treat those as errors, so the client converts them here.
type StatusError struct {
	Endpoint string
	Code     int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d", e.Endpoint, e.Code)
}

// NotFound reports whether the remote answered 404 for the request.
func (e *StatusError) NotFound() bool {
	return e.Code == 404
}
