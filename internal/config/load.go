package config

import (
	"os"
	"path/filepath"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"hadalized/internal/color"
	"hadalized/internal/homedirs"
	"hadalized/pkg/errors"
)

// envPrefix namespaces the environment variables consulted during
// loading, e.g. HADALIZED_CACHE_DIR.
const envPrefix = "hadalized"

// flagBindings maps option keys to the command line flags that set
// them.
var flagBindings = map[string]string{
	"include_builds":   "app",
	"include_palettes": "palette",
	"cache_dir":        "cache-dir",
	"cache_in_memory":  "cache-in-memory",
	"config_file":      "config-file",
	"dry_run":          "dry-run",
	"force":            "force",
	"no_cache":         "no-cache",
	"no_config":        "no-config",
	"no_templates":     "no-templates",
	"output_dir":       "output",
	"parse":            "parse",
	"prefix":           "prefix",
	"quiet":            "quiet",
	"state_dir":        "state-dir",
	"template_dir":     "template-dir",
	"verbose":          "verbose",
}

// Load merges configuration sources in priority order: command line
// flags, HADALIZED_* environment variables (including variables read
// from hadalized.env and .env), ./hadalized.toml, and finally
// $XDG_CONFIG_HOME/hadalized/config.toml. A config_file setting
// short-circuits the file search to exactly that file; no_config skips
// files and the environment entirely.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetConfigType("toml")
	registerDefaults(v)
	if err := bindFlags(v, flags); err != nil {
		return nil, err
	}

	if !v.GetBool("no_config") {
		// Dotenv files never override variables already set in the
		// real environment, and hadalized.env wins over .env.
		_ = godotenv.Load("hadalized.env", ".env")
		v.SetEnvPrefix(envPrefix)
		v.AutomaticEnv()

		if file := v.GetString("config_file"); file != "" {
			v.SetConfigFile(file)
			if err := v.ReadInConfig(); err != nil {
				return nil, errors.NewIOError("read config", file, err)
			}
		} else {
			// Later merges win, so the working directory file takes
			// priority over the XDG one.
			for _, file := range []string{
				filepath.Join(homedirs.Config(), "config.toml"),
				"hadalized.toml",
			} {
				if _, err := os.Stat(file); err != nil {
					continue
				}
				v.SetConfigFile(file)
				if err := v.MergeInConfig(); err != nil {
					return nil, errors.NewIOError("read config", file, err)
				}
			}
		}
	}

	return decode(v)
}

// decode materializes the merged settings into a Config, fills
// defaults, and validates the result.
func decode(v *viper.Viper) (*Config, error) {
	cfg := New()
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToSliceHookFunc(","),
		stringToFieldHook(),
	))
	if err := v.Unmarshal(cfg, hook); err != nil {
		return nil, errors.NewValidationError("config", "cannot decode configuration", err)
	}

	for key, p := range cfg.Palettes {
		p.Normalize(key)
	}
	for i := range cfg.Builds {
		cfg.Builds[i].Normalize()
	}
	cfg.buildLookup()

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	if cfg.Parse {
		return cfg.ParsePalettes()
	}
	return cfg, nil
}

func registerDefaults(v *viper.Viper) {
	o := DefaultOptions()
	v.SetDefault("include_builds", []string{})
	v.SetDefault("include_palettes", []string{})
	v.SetDefault("cache_dir", o.CacheDir)
	v.SetDefault("cache_in_memory", false)
	v.SetDefault("config_file", "")
	v.SetDefault("dry_run", false)
	v.SetDefault("force", false)
	v.SetDefault("no_cache", false)
	v.SetDefault("no_config", false)
	v.SetDefault("no_templates", false)
	v.SetDefault("output_dir", "")
	v.SetDefault("parse", false)
	v.SetDefault("prefix", false)
	v.SetDefault("quiet", false)
	v.SetDefault("state_dir", o.StateDir)
	v.SetDefault("template_dir", o.TemplateDir)
	v.SetDefault("verbose", false)
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	if flags == nil {
		return nil
	}
	for key, name := range flagBindings {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return err
		}
	}
	return nil
}

var colorFieldType = reflect.TypeOf(color.Field{})

// stringToFieldHook decodes bare string literals into color fields.
func stringToFieldHook() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String || to != colorFieldType {
			return data, nil
		}
		s, ok := data.(string)
		if !ok {
			return data, nil
		}
		return color.Literal(s), nil
	}
}
