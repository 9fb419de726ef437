// Package models defines the request/result types and the typed errors the
// analysis pipeline can surface.
package models

import "fmt"

// InputError indicates one or more of the four required fields was empty.
// It is raised before any network call.
type InputError struct{}

func (e *InputError) Error() string {
	return "❌ Please fill in all fields: URL, Primary Keyword, Secondary Keyword, and Brand Name."
}

// FetchError indicates the target page could not be retrieved: network
// failure, timeout, or a non-2xx status.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("Error: Failed to fetch URL %s. Error: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ProcessingError indicates an unexpected failure after the page was
// fetched, typically a hard parser limit.
type ProcessingError struct {
	URL string
	Err error
}

func (e *ProcessingError) Error() string {
	return fmt.Sprintf("Error: Unexpected error while analyzing %s. Error: %v", e.URL, e.Err)
}

func (e *ProcessingError) Unwrap() error { return e.Err }
