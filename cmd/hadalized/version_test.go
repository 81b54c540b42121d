package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"hadalized/internal/palette"
)

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion := version
	originalCommit := commit
	originalDate := date
	t.Cleanup(func() {
		version = originalVersion
		commit = originalCommit
		date = originalDate
	})

	version = "2.1.0"
	commit = "abcdef1"
	date = "2026-08-25"

	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())

	output := buf.String()
	require.Contains(t, output, "hadalized 2.1.0")
	require.Contains(t, output, "abcdef1")
	require.Contains(t, output, "2026-08-25")
	require.Contains(t, output, "palette format: "+palette.DefaultVersion)
}

func TestReleaseVersionPrefersLdflags(t *testing.T) {
	original := version
	t.Cleanup(func() { version = original })

	version = "3.0.0"
	require.Equal(t, "3.0.0", releaseVersion())
}
