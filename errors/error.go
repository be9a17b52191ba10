package errors

import (
	"fmt"
)

// NameCollisionError occurs when a method or accessor is registered under a name which is already taken
type NameCollisionError struct {
	Kind string
	Name string
}

// Error returns a textual representation of this NameCollisionError
func (e NameCollisionError) Error() string {
	return fmt.Sprintf("%s %s is already registered", e.Kind, e.Name)
}

// NilRegistrationError occurs when a registration is attempted with an empty name or a nil implementation
type NilRegistrationError struct {
	Kind string
	Name string
}

// Error returns a textual representation of this NilRegistrationError
func (e NilRegistrationError) Error() string {
	if len(e.Name) == 0 {
		return fmt.Sprintf("Cannot register %s without a name", e.Kind)
	}
	return fmt.Sprintf("Cannot register nil %s %s", e.Kind, e.Name)
}

// UnknownMethodError occurs when a method is requested which was never registered
type UnknownMethodError struct{ Name string }

// Error returns a textual representation of this UnknownMethodError
func (e UnknownMethodError) Error() string {
	return fmt.Sprintf("No DataFrame method named %s", e.Name)
}

// UnknownAccessorError occurs when an accessor is requested which was never registered
type UnknownAccessorError struct{ Name string }

// Error returns a textual representation of this UnknownAccessorError
func (e UnknownAccessorError) Error() string {
	return fmt.Sprintf("No DataFrame accessor named %s", e.Name)
}

// DuplicateColumnError occurs when a column is added to a Schema which already has a column by that name
type DuplicateColumnError struct{ Name string }

// Error returns a textual representation of this DuplicateColumnError
func (e DuplicateColumnError) Error() string {
	return fmt.Sprintf("Schema already contains column %s", e.Name)
}

// MissingColumnError occurs when a column is requested from a Schema which does not contain it
type MissingColumnError struct{ Name string }

// Error returns a textual representation of this MissingColumnError
func (e MissingColumnError) Error() string {
	return fmt.Sprintf("Schema does not contain column %s", e.Name)
}

// IncompatibleRowError occurs when a Row's width does not match an expected Schema
type IncompatibleRowError struct {
	Expected int
	Actual   int
}

// Error returns a textual representation of this IncompatibleRowError
func (e IncompatibleRowError) Error() string {
	return fmt.Sprintf("Row width %d is not compatible with Schema width %d", e.Actual, e.Expected)
}
