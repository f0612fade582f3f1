// Package validation adapts go-playground/validator for per-argument value
// constraints declared on specs.
package validation

import (
	"github.com/go-playground/validator/v10"

	"github.com/kherven/argos/internal/scan"
)

// NewDefault returns a check function backed by a default validator instance.
func NewDefault() scan.CheckFunc {
	return NewWith(validator.New())
}

// NewWith returns a check function backed by the given validator, so callers
// can register custom validations before handing it over.
func NewWith(valid *validator.Validate) scan.CheckFunc {
	return func(name, value, constraint string) error {
		if err := valid.Var(value, constraint); err != nil {
			return &invalidVarError{
				argName:      name,
				argValue:     value,
				validatorErr: err,
			}
		}

		return nil
	}
}
