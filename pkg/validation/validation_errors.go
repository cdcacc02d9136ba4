package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-facing labels
var FieldLabels = map[string]string{
	// Auth fields
	"Username": "Username",
	"Password": "Password",
	"Role":     "Role",

	// Job fields
	"Title":        "Job Title",
	"Company":      "Company",
	"Department":   "Department",
	"Requirements": "Requirements",
	"Description":  "Description",

	// Application fields
	"Status": "Status",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// Malformed body or similar; not a field error
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

// Message joins the formatted errors into a single line
func Message(err error) string {
	return strings.Join(FormatValidationErrors(err), "; ")
}

func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: Please fill in this field", label)
	case "min":
		return fmt.Sprintf("%s: Must be at least %s characters", label, e.Param())
	case "max":
		return fmt.Sprintf("%s: Must be at most %s characters", label, e.Param())
	case "valid_username":
		return fmt.Sprintf("%s: Must not be blank or contain control characters", label)
	case "valid_role":
		return fmt.Sprintf("%s: Must be one of: Candidate, HR/Recruiter", label)
	case "valid_decision":
		return fmt.Sprintf("%s: Must be one of: Hired, Not Hired", label)
	default:
		return fmt.Sprintf("%s: Validation failed (%s)", label, e.Tag())
	}
}

func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
