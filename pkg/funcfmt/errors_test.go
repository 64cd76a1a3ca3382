package funcfmt

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "unknown placeholder",
			err:  &UnknownPlaceholderError{Name: "baz", Position: 4},
			want: "unknown placeholder 'baz' at position 4",
		},
		{
			name: "unterminated placeholder",
			err:  &UnterminatedPlaceholderError{Position: 7},
			want: "unterminated placeholder at position 7",
		},
		{
			name: "empty placeholder name",
			err:  &EmptyPlaceholderNameError{Position: 0},
			want: "empty placeholder name at position 0",
		},
		{
			name: "unmatched closing marker",
			err:  &UnmatchedClosingMarkerError{Position: 2},
			want: "unmatched closing marker at position 2",
		},
		{
			name: "missing value",
			err:  &MissingValueError{Name: "nodata"},
			want: "no value for placeholder 'nodata'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestErrorPredicates(t *testing.T) {
	unknown := &UnknownPlaceholderError{Name: "x"}
	unterminated := &UnterminatedPlaceholderError{}
	empty := &EmptyPlaceholderNameError{}
	unmatched := &UnmatchedClosingMarkerError{}
	missing := &MissingValueError{Name: "x"}

	assert.True(t, IsUnknownPlaceholderError(unknown))
	assert.False(t, IsUnknownPlaceholderError(missing))

	assert.True(t, IsUnterminatedPlaceholderError(unterminated))
	assert.False(t, IsUnterminatedPlaceholderError(unmatched))

	assert.True(t, IsEmptyPlaceholderNameError(empty))
	assert.False(t, IsEmptyPlaceholderNameError(unknown))

	assert.True(t, IsUnmatchedClosingMarkerError(unmatched))
	assert.False(t, IsUnmatchedClosingMarkerError(unterminated))

	assert.True(t, IsMissingValueError(missing))
	assert.False(t, IsMissingValueError(unknown))
}

func TestErrorPredicatesOnWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("preparing rename pattern: %w", &UnknownPlaceholderError{Name: "artist"})
	require.True(t, IsUnknownPlaceholderError(wrapped))

	var unknownErr *UnknownPlaceholderError
	require.True(t, errors.As(wrapped, &unknownErr))
	require.Equal(t, "artist", unknownErr.Name)
}

func TestIsCompileError(t *testing.T) {
	assert.True(t, IsCompileError(&UnknownPlaceholderError{Name: "x"}))
	assert.True(t, IsCompileError(&UnterminatedPlaceholderError{}))
	assert.True(t, IsCompileError(&EmptyPlaceholderNameError{}))
	assert.True(t, IsCompileError(&UnmatchedClosingMarkerError{}))

	assert.False(t, IsCompileError(&MissingValueError{Name: "x"}))
	assert.False(t, IsCompileError(errors.New("something else")))
	assert.False(t, IsCompileError(nil))
}
