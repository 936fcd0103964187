package localetests

import (
	"fmt"
)

// TransportError means that no usable page was obtained: the request could not be made, the
// connection failed or timed out, or the response was not a successful HTML document.
type TransportError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("transport error: GET %s returned HTTP %d: %s", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("transport error: GET %s: %s", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// AssertionError means that a page was obtained but one of its properties did not have the
// expected value.
type AssertionError struct {
	Property string
	Expected string
	Actual   string
}

func (e *AssertionError) Error() string {
	return fmt.Sprintf("assertion failed: expected %s to equal %q, but it was %q", e.Property, e.Expected, e.Actual)
}

func assertEqualProperty(property, expected, actual string) error {
	if expected == actual {
		return nil
	}
	return &AssertionError{Property: property, Expected: expected, Actual: actual}
}
