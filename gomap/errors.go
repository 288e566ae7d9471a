package gomap

import "fmt"

// MarshalError represents an error during marshaling.
type MarshalError struct {
	FieldPath string // field path (e.g., "person.address.street")
	Message   string
	Err       error
}

func (e *MarshalError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("marshal error at %s: %s", e.FieldPath, e.Message)
	}
	return fmt.Sprintf("marshal error: %s", e.Message)
}

func (e *MarshalError) Unwrap() error {
	return e.Err
}

// UnmarshalError represents an error during unmarshaling.
type UnmarshalError struct {
	FieldPath string
	Message   string
	Err       error
}

func (e *UnmarshalError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("unmarshal error at %s: %s", e.FieldPath, e.Message)
	}
	return fmt.Sprintf("unmarshal error: %s", e.Message)
}

func (e *UnmarshalError) Unwrap() error {
	return e.Err
}

// TypeError represents a mismatch between a wire value and the Go type
// it is being mapped to.
type TypeError struct {
	FieldPath string
	Expected  string
	Actual    string
	Message   string
}

func (e *TypeError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = fmt.Sprintf("expected %s, got %s", e.Expected, e.Actual)
	}
	if e.FieldPath != "" {
		return fmt.Sprintf("type error at %s: %s", e.FieldPath, msg)
	}
	return fmt.Sprintf("type error: %s", msg)
}
