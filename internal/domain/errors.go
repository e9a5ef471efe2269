package domain

import "fmt" // Error formatting

// ValidationError reports a client input problem; the store is never touched
type ValidationError struct {
	Message string // Human readable message
}

func (e *ValidationError) Error() string { return e.Message }

// NotFoundError reports a missing resource or route
type NotFoundError struct {
	Resource string // What was looked up
}

func (e *NotFoundError) Error() string { return e.Resource + " not found" }

// ParseError reports a request parameter that could not be parsed
type ParseError struct {
	Param string // Query parameter name
	Err   error  // Underlying strconv error
}

func (e *ParseError) Error() string { return fmt.Sprintf("invalid %s: %v", e.Param, e.Err) }

func (e *ParseError) Unwrap() error { return e.Err }

// StoreError wraps a failure of the relational store
type StoreError struct {
	Op  string // Store operation that failed
	Err error  // Driver error
}

// Error returns the driver message unchanged so callers can surface it verbatim
func (e *StoreError) Error() string { return e.Err.Error() }

func (e *StoreError) Unwrap() error { return e.Err }
