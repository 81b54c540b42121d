// Package homedirs resolves the XDG base directories the application
// stores its configuration, cache, and build state under.
package homedirs

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// appDir is the per-application directory name appended to each XDG
// base directory.
const appDir = "hadalized"

// Config returns the application configuration directory.
func Config() string {
	return filepath.Join(xdg.ConfigHome, appDir)
}

// Cache returns the application cache directory.
func Cache() string {
	return filepath.Join(xdg.CacheHome, appDir)
}

// State returns the application state directory.
func State() string {
	return filepath.Join(xdg.StateHome, appDir)
}

// Data returns the application data directory.
func Data() string {
	return filepath.Join(xdg.DataHome, appDir)
}

// Template returns the user template override directory.
func Template() string {
	return filepath.Join(Config(), "templates")
}

// Build returns the directory built theme files are written to.
func Build() string {
	return filepath.Join(State(), "build")
}

// Reload re-reads the XDG environment variables. Tests use it after
// overriding XDG_CONFIG_HOME and friends.
func Reload() {
	xdg.Reload()
}
