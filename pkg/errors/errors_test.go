package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("oklch(0.5 0.1)", underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "oklch(0.5 0.1)", parseErr.Literal)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "oklch(0.5 0.1)")
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("output_dir", "must not be empty when dry_run is unset", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "output_dir", validationErr.Field)
	require.Contains(t, validationErr.Message, "must not be empty")
}

func TestStateErrorIncludesOperation(t *testing.T) {
	t.Parallel()

	err := NewStateError("project", "palette has not been parsed")

	var stateErr *StateError
	require.ErrorAs(t, err, &stateErr)
	require.Equal(t, "project", stateErr.Op)
	require.Contains(t, err.Error(), "project")
	require.Contains(t, err.Error(), "has not been parsed")
}

func TestNotFoundErrorNamesKindAndName(t *testing.T) {
	t.Parallel()

	err := NewNotFoundError("palette", "solarized")

	var notFoundErr *NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	require.Equal(t, "palette", notFoundErr.Kind)
	require.Equal(t, "solarized", notFoundErr.Name)
	require.Contains(t, err.Error(), `"solarized"`)
}

func TestIOErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("permission denied")
	err := NewIOError("write", "/tmp/out/theme.lua", underlying)

	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
	require.Equal(t, "write", ioErr.Op)
	require.Equal(t, "/tmp/out/theme.lua", ioErr.Path)
	require.True(t, stdErrors.Is(err, underlying))
}
