package validation

import (
	"strings"
	"unicode"

	"recruitai-backend/internal/domain"

	"github.com/go-playground/validator/v10"
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("valid_username", ValidUsername)
	_ = v.RegisterValidation("valid_role", ValidRole)
	_ = v.RegisterValidation("valid_decision", ValidDecision)
}

// ValidUsername accepts any name that is not blank and has no control characters
func ValidUsername(fl validator.FieldLevel) bool {
	username := fl.Field().String()
	if strings.TrimSpace(username) == "" {
		return false
	}
	return strings.IndexFunc(username, unicode.IsControl) < 0
}

// ValidRole accepts the account roles a user can register with
func ValidRole(fl validator.FieldLevel) bool {
	return domain.Role(fl.Field().String()).Valid()
}

// ValidDecision accepts the statuses a recruiter can set from the applications page
func ValidDecision(fl validator.FieldLevel) bool {
	switch domain.ApplicationStatus(fl.Field().String()) {
	case domain.ApplicationStatusHired, domain.ApplicationStatusNotHired:
		return true
	}
	return false
}
