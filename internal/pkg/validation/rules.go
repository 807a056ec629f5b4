package validation

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterRules installs the custom binding rules used by the request DTOs
// on gin's validator engine. Safe to call more than once.
func RegisterRules() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected gin validator engine type %T", binding.Validator.Engine())
	}

	if err := v.RegisterValidation("notblank", notBlank); err != nil {
		return fmt.Errorf("failed to register notblank rule: %w", err)
	}

	return nil
}

// notBlank rejects strings that are empty or whitespace only. The stock
// "required" tag accepts a name of spaces, which the faculty table must not
// store.
func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
