package portal

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

type Validator struct {
	mu        sync.Mutex
	validator *validator.Validate
	errors    map[string]any
}

var (
	defaultValidator *Validator
	defaultOnce      sync.Once
)

func GetDefaultValidator() *Validator {
	defaultOnce.Do(func() {
		defaultValidator = MakeValidatorFrom(
			validator.New(validator.WithRequiredStructEnabled()),
		)
	})

	return defaultValidator
}

func MakeValidatorFrom(abstract *validator.Validate) *Validator {
	return &Validator{
		validator: abstract,
		errors:    make(map[string]any),
	}
}

func (v *Validator) Passes(data any) (bool, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.errors = make(map[string]any)

	if err := v.validator.Struct(data); err != nil {
		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			v.errors["_"] = invalid.Error()

			return false, fmt.Errorf("invalid validation input: %w", err)
		}

		var fieldErrors validator.ValidationErrors
		if errors.As(err, &fieldErrors) {
			for _, fe := range fieldErrors {
				v.errors[fe.Namespace()] = describe(fe)
			}
		}

		return false, fmt.Errorf("validation failed: %w", err)
	}

	return true, nil
}

func (v *Validator) Rejects(data any) (bool, error) {
	passes, err := v.Passes(data)

	return !passes, err
}

func (v *Validator) GetErrors() map[string]any {
	v.mu.Lock()
	defer v.mu.Unlock()

	out := make(map[string]any, len(v.errors))
	for key, value := range v.errors {
		out[key] = value
	}

	return out
}

func (v *Validator) GetErrorsAsJson() string {
	content, err := json.Marshal(v.GetErrors())

	if err != nil {
		return ""
	}

	return string(content)
}

func describe(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())

	if fe.Param() == "" {
		return fmt.Sprintf("field %s failed on the [%s] rule with value %q", field, fe.Tag(), fmt.Sprint(fe.Value()))
	}

	return fmt.Sprintf("field %s failed on the [%s=%s] rule with value %q", field, fe.Tag(), fe.Param(), fmt.Sprint(fe.Value()))
}
