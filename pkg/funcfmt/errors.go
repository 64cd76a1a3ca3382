// Package funcfmt error types. Compile errors and render errors form two
// disjoint taxonomies: a compile error makes the template unusable until
// the input is fixed, a render error fails only that one render call.
package funcfmt

import (
	"errors"
	"fmt"
)

// UnknownPlaceholderError reports a template reference to a name that has
// no entry in the registry. Position is the byte offset of the
// placeholder's opening marker.
type UnknownPlaceholderError struct {
	Name     string
	Position int
}

func (e *UnknownPlaceholderError) Error() string {
	return fmt.Sprintf("unknown placeholder '%s' at position %d", e.Name, e.Position)
}

// UnterminatedPlaceholderError reports an opening marker whose placeholder
// never meets a closing marker. Position is the byte offset of the
// opening marker.
type UnterminatedPlaceholderError struct {
	Position int
}

func (e *UnterminatedPlaceholderError) Error() string {
	return fmt.Sprintf("unterminated placeholder at position %d", e.Position)
}

// EmptyPlaceholderNameError reports an empty placeholder ("{}").
// Position is the byte offset of the opening marker.
type EmptyPlaceholderNameError struct {
	Position int
}

func (e *EmptyPlaceholderNameError) Error() string {
	return fmt.Sprintf("empty placeholder name at position %d", e.Position)
}

// UnmatchedClosingMarkerError reports a closing marker that neither closes
// an open placeholder nor forms a doubled-marker escape. Position is the
// byte offset of the stray marker.
type UnmatchedClosingMarkerError struct {
	Position int
}

func (e *UnmatchedClosingMarkerError) Error() string {
	return fmt.Sprintf("unmatched closing marker at position %d", e.Position)
}

// MissingValueError reports that the named placeholder's callback produced
// no output for the data passed to one specific Render call. The prepared
// template remains valid for subsequent renders.
type MissingValueError struct {
	Name string
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("no value for placeholder '%s'", e.Name)
}

// IsUnknownPlaceholderError checks if an error is an unknown-placeholder
// compile error.
func IsUnknownPlaceholderError(err error) bool {
	var target *UnknownPlaceholderError
	return errors.As(err, &target)
}

// IsUnterminatedPlaceholderError checks if an error is an
// unterminated-placeholder compile error.
func IsUnterminatedPlaceholderError(err error) bool {
	var target *UnterminatedPlaceholderError
	return errors.As(err, &target)
}

// IsEmptyPlaceholderNameError checks if an error is an
// empty-placeholder-name compile error.
func IsEmptyPlaceholderNameError(err error) bool {
	var target *EmptyPlaceholderNameError
	return errors.As(err, &target)
}

// IsUnmatchedClosingMarkerError checks if an error is an
// unmatched-closing-marker compile error.
func IsUnmatchedClosingMarkerError(err error) bool {
	var target *UnmatchedClosingMarkerError
	return errors.As(err, &target)
}

// IsMissingValueError checks if an error is a missing-value render error.
func IsMissingValueError(err error) bool {
	var target *MissingValueError
	return errors.As(err, &target)
}

// IsCompileError checks if an error belongs to the compile-time taxonomy.
func IsCompileError(err error) bool {
	return IsUnknownPlaceholderError(err) ||
		IsUnterminatedPlaceholderError(err) ||
		IsEmptyPlaceholderNameError(err) ||
		IsUnmatchedClosingMarkerError(err)
}
