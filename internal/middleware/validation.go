package middleware

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/networknexus/nexushub/internal/app/models"
	"github.com/networknexus/nexushub/internal/pkg/validation"
)

// FieldError is one failed field in a validation error response
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// RegisterValidators adds the custom binding tags used by the request DTOs to gin's validator
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected gin validator engine")
	}
	return registerOn(v)
}

func registerOn(v *validator.Validate) error {
	// report JSON names rather than Go field names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	validators := map[string]validator.Func{
		"department": func(fl validator.FieldLevel) bool {
			return models.Department(fl.Field().String()).IsValid()
		},
		"mentorshipmode": func(fl validator.FieldLevel) bool {
			return models.MentorshipMode(fl.Field().String()).IsValid()
		},
		"hoftier": func(fl validator.FieldLevel) bool {
			return models.HallOfFameTier(fl.Field().String()).IsValid()
		},
		"prn": func(fl validator.FieldLevel) bool {
			return validation.IsValidPRN(fl.Field().String())
		},
	}
	for tag, fn := range validators {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s validator: %w", tag, err)
		}
	}
	return nil
}

// FormatValidationErrors flattens validator errors into field messages; nil for other errors
func FormatValidationErrors(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	out := make([]FieldError, 0, len(verrs))
	for _, e := range verrs {
		out = append(out, FieldError{Field: e.Field(), Message: formatValidationError(e)})
	}
	return out
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	case "url":
		return e.Field() + " must be a valid URL"
	case "department":
		return fmt.Sprintf("%s must be one of %v", e.Field(), models.Departments)
	case "mentorshipmode":
		return e.Field() + " must be Online, Offline or Hybrid"
	case "hoftier":
		return e.Field() + " must be empty, notable or featured"
	case "prn":
		return e.Field() + " must be an alphanumeric PRN"
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
