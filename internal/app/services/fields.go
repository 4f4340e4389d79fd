package services

import (
	"strings"

	"github.com/yigit/registrar/internal/pkg/apperrors"
)

// optional copies a request value into a nullable column. Blank strings
// become NULL.
func optional(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// patchOptional applies a supplied request value to a nullable column
func patchOptional(dst **string, v *string) {
	if v != nil {
		*dst = optional(v)
	}
}

// patchRequired applies a supplied, non-blank request value to a required column
func patchRequired(dst *string, v *string) {
	if v != nil && strings.TrimSpace(*v) != "" {
		*dst = strings.TrimSpace(*v)
	}
}

func valueOrEmpty(v *string) string {
	if v == nil {
		return ""
	}
	return strings.TrimSpace(*v)
}

// validationError reports a single invalid field
func validationError(field, message string) error {
	return apperrors.NewCustomError(apperrors.ErrValidationFailed, message).
		WithDetails(map[string]interface{}{field: message})
}

// requireFields reports every field whose value is blank
func requireFields(fields map[string]*string) error {
	missing := make(map[string]interface{})
	for name, v := range fields {
		if v == nil || strings.TrimSpace(*v) == "" {
			missing[name] = name + " is required"
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return apperrors.NewCustomError(apperrors.ErrValidationFailed, "required fields are missing").WithDetails(missing)
}
