package config

import (
	"path/filepath"

	"hadalized/internal/homedirs"
	"hadalized/pkg/errors"
)

// Options holds the runtime settings shared by every command. Values
// arrive from flags, HADALIZED_* environment variables, or config
// files, merged in that order of priority.
type Options struct {
	// IncludeBuilds restricts a build run to the named directives.
	// Empty means every configured build.
	IncludeBuilds []string `mapstructure:"include_builds" json:"include_builds,omitempty" toml:"include_builds,omitempty" yaml:"include_builds,omitempty"`

	// IncludePalettes restricts palette-context builds to the named
	// palettes or aliases. Empty means all of them.
	IncludePalettes []string `mapstructure:"include_palettes" json:"include_palettes,omitempty" toml:"include_palettes,omitempty" yaml:"include_palettes,omitempty"`

	// CacheDir is where the build cache database lives.
	CacheDir string `mapstructure:"cache_dir" json:"cache_dir" toml:"cache_dir" yaml:"cache_dir"`

	// CacheInMemory keeps digests in memory instead of on disk.
	CacheInMemory bool `mapstructure:"cache_in_memory" json:"cache_in_memory,omitempty" toml:"cache_in_memory,omitempty" yaml:"cache_in_memory,omitempty"`

	// ConfigFile names a single config file to load, skipping the
	// standard search locations.
	ConfigFile string `mapstructure:"config_file" json:"config_file,omitempty" toml:"config_file,omitempty" yaml:"config_file,omitempty"`

	// DryRun renders everything but writes no files and no cache
	// entries.
	DryRun bool `mapstructure:"dry_run" json:"dry_run,omitempty" toml:"dry_run,omitempty" yaml:"dry_run,omitempty"`

	// Force regenerates files even when their cached digest matches.
	Force bool `mapstructure:"force" json:"force,omitempty" toml:"force,omitempty" yaml:"force,omitempty"`

	// NoCache disables the build cache entirely.
	NoCache bool `mapstructure:"no_cache" json:"no_cache,omitempty" toml:"no_cache,omitempty" yaml:"no_cache,omitempty"`

	// NoConfig ignores user config files and environment variables.
	// Implies NoTemplates.
	NoConfig bool `mapstructure:"no_config" json:"no_config,omitempty" toml:"no_config,omitempty" yaml:"no_config,omitempty"`

	// NoTemplates ignores user template directories.
	NoTemplates bool `mapstructure:"no_templates" json:"no_templates,omitempty" toml:"no_templates,omitempty" yaml:"no_templates,omitempty"`

	// OutputDir is an extra directory built files are copied to.
	OutputDir string `mapstructure:"output_dir" json:"output_dir,omitempty" toml:"output_dir,omitempty" yaml:"output_dir,omitempty"`

	// Parse expands palette colors immediately after loading.
	Parse bool `mapstructure:"parse" json:"parse,omitempty" toml:"parse,omitempty" yaml:"parse,omitempty"`

	// Prefix keeps each file's build subdirectory when copying to
	// OutputDir instead of flattening.
	Prefix bool `mapstructure:"prefix" json:"prefix,omitempty" toml:"prefix,omitempty" yaml:"prefix,omitempty"`

	// Quiet suppresses log output.
	Quiet bool `mapstructure:"quiet" json:"quiet,omitempty" toml:"quiet,omitempty" yaml:"quiet,omitempty"`

	// StateDir holds application state, including built theme files.
	StateDir string `mapstructure:"state_dir" json:"state_dir" toml:"state_dir" yaml:"state_dir"`

	// TemplateDir is searched for templates before the built-in set.
	TemplateDir string `mapstructure:"template_dir" json:"template_dir" toml:"template_dir" yaml:"template_dir"`

	// Verbose enables debug logging.
	Verbose bool `mapstructure:"verbose" json:"verbose,omitempty" toml:"verbose,omitempty" yaml:"verbose,omitempty"`
}

// DefaultOptions returns options rooted at the user's XDG directories.
func DefaultOptions() Options {
	return Options{
		CacheDir:    homedirs.Cache(),
		StateDir:    homedirs.State(),
		TemplateDir: homedirs.Template(),
	}
}

// BuildDir is where generated theme files land before any copy to
// OutputDir.
func (o Options) BuildDir() string {
	return filepath.Join(o.StateDir, "build")
}

// UseCache reports whether digests should be read from and written to
// the build cache.
func (o Options) UseCache() bool {
	return !o.NoCache
}

// UseTemplates reports whether user template directories are searched
// before the built-in templates. NoConfig implies NoTemplates.
func (o Options) UseTemplates() bool {
	return !o.NoConfig && !o.NoTemplates
}

// Validate rejects mutually exclusive option combinations.
func (o Options) Validate() error {
	if o.Verbose && o.Quiet {
		return errors.NewValidationError("verbose", "cannot set both verbose and quiet", nil)
	}
	if o.NoCache && o.CacheInMemory {
		return errors.NewValidationError("no_cache", "cannot set both no_cache and cache_in_memory", nil)
	}
	if o.NoConfig && o.ConfigFile != "" {
		return errors.NewValidationError("no_config", "cannot set both no_config and config_file", nil)
	}
	return nil
}
