package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"hadalized/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator
// instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// GetValidator returns the configured validator instance for use
// outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// Validate checks an assembled configuration: option exclusions,
// struct-level rules on palettes and directives, and name uniqueness.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := cfg.Options.Validate(); err != nil {
		return err
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	buildIndex := make(map[string]int, len(cfg.Builds))
	for i, b := range cfg.Builds {
		if j, exists := buildIndex[b.Name]; exists {
			return errors.NewValidationError(
				fmt.Sprintf("builds[%d].name", i),
				fmt.Sprintf("duplicate build name %q (first defined at index %d)", b.Name, j),
				nil,
			)
		}
		buildIndex[b.Name] = i
	}

	// Keys, names, and aliases share one namespace; collisions would
	// make palette lookup ambiguous.
	owner := make(map[string]string, len(cfg.Palettes)*2)
	for _, key := range cfg.PaletteNames() {
		p := cfg.Palettes[key]
		names := append([]string{key, p.Name}, p.Aliases...)
		for _, name := range names {
			if prev, exists := owner[name]; exists && prev != key {
				return errors.NewValidationError(
					fmt.Sprintf("palettes.%s", key),
					fmt.Sprintf("name %q already used by palette %q", name, prev),
					nil,
				)
			}
			owner[name] = key
		}
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := tomlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return errors.NewValidationError(field, msg, err)
	}

	return errors.NewValidationError("config", err.Error(), err)
}

func tomlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	var lowered []string
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}
