// Package validation implements field-presence checks on incoming request
// payloads. Validators are pure predicates over the decoded JSON body; the
// handler decides to short-circuit with a 400 when one fails.
package validation

import (
	"fmt"
	"strings"

	"ripple/internal/models"
)

// MissingFields returns the names from fields that are absent as keys in the
// payload, preserving the given order. Presence is a key check only; an
// explicit null or empty string still counts as present.
func MissingFields(payload map[string]any, fields []string) []string {
	var missing []string
	for _, field := range fields {
		if _, ok := payload[field]; !ok {
			missing = append(missing, field)
		}
	}
	return missing
}

// ValidateRegister checks the register payload for the mandatory account
// fields and reports all missing names at once.
func ValidateRegister(payload map[string]any) error {
	mandatory := []string{"username", "firstName", "lastName", "email", "password"}
	if missing := MissingFields(payload, mandatory); len(missing) > 0 {
		return models.NewValidationError(
			fmt.Sprintf("Required fields %s are missing", strings.Join(missing, ",")))
	}
	return nil
}

// ValidateLogin requires at least one of username/email plus a password.
func ValidateLogin(payload map[string]any) error {
	_, hasUsername := payload["username"]
	_, hasEmail := payload["email"]
	_, hasPassword := payload["password"]
	if (!hasUsername && !hasEmail) || !hasPassword {
		return models.NewValidationError("Required fields username/email and password are needed")
	}
	return nil
}

// ValidateUserID requires a userId either in the body payload or as the given
// path parameter value.
func ValidateUserID(payload map[string]any, pathValue string) error {
	if _, ok := payload["userId"]; ok {
		return nil
	}
	if pathValue != "" {
		return nil
	}
	return models.NewValidationError("Required field userId is missing")
}
