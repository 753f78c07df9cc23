package client

import (
	"errors"
	"fmt"
)

// NotFoundError reports a backend "no such record" response.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	if e.ID == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

// BackendError reports a non-success HTTP status other than not-found.
type BackendError struct {
	Status int
	URL    string
}

func (e BackendError) Error() string {
	return fmt.Sprintf("backend returned HTTP %d for %s", e.Status, e.URL)
}

// NetworkError reports a transport failure: no usable response arrived.
// Timeouts and cancellations land here too.
type NetworkError struct {
	Op  string
	Err error
}

func (e NetworkError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("network error: %v", e.Err)
	}
	return fmt.Sprintf("%s: network error: %v", e.Op, e.Err)
}

func (e NetworkError) Unwrap() error { return e.Err }

// ValidationError reports a request the client refused to send.
type ValidationError struct {
	Msg string
}

func (e ValidationError) Error() string {
	if e.Msg == "" {
		return "validation error"
	}
	return e.Msg
}

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsBackend(err error) bool {
	var target BackendError
	return errors.As(err, &target)
}

func IsNetwork(err error) bool {
	var target NetworkError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}
