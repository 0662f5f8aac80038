package handler

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/chitresh99/cybersecurity-club-apsit/pkg/apperr"
)

// bindError converts a gin binding failure into the validation envelope.
// Field-tag failures become field-path → message details; anything else
// (malformed JSON, wrong types) gets a single generic message.
func bindError(err error) *apperr.Error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperr.Validation("Invalid request body", nil)
	}

	details := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		details[fieldPath(fe)] = fieldMessage(fe)
	}
	return apperr.Validation("Validation failed", details)
}

// fieldPath renders the error's namespace in wire form: struct segments
// become snake_case and the root type is dropped, so
// "CreateTeamRequest.TeamMembers[2].Mobile" becomes "team_members.2.mobile".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	ns = strings.ReplaceAll(ns, "[", ".")
	ns = strings.ReplaceAll(ns, "]", "")

	parts := strings.Split(ns, ".")
	for i, p := range parts {
		parts[i] = toSnake(p)
	}
	return strings.Join(parts, ".")
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "uuid":
		return "must be a valid UUID"
	case "alphanum":
		return "must contain only letters and digits"
	case "numeric":
		return "must contain only digits"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "len":
		return fmt.Sprintf("must be exactly %s characters", fe.Param())
	case "oneof":
		return "must be one of: " + fe.Param()
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	default:
		return "is invalid"
	}
}

func toSnake(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			// "MoodleID" -> "moodle_id", not "moodle_i_d"
			if i > 0 && !unicode.IsUpper(runes[i-1]) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
