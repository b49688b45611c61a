package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

const (
	messageSeparator = "; "
	anonymousField   = "value"
)

var (
	messages = map[string]string{
		"required": "{field} is required",
		"gte":      "{field} must be greater than or equal to {param}",
		"lte":      "{field} must be less than or equal to {param}",
		"gt":       "{field} must be greater than {param}",
		"oneof":    "{field} must be one of {param}",
		"max":      "{field} must be at most {param} characters",
		"min":      "{field} must be at least {param} characters",
		"email":    "{field} must be a valid email address",
		"clock":    "{field} must be a time in HH:MM format",
		"isodate":  "{field} must be a date in YYYY-MM-DD format",
	}
)

// message lists one line per invalid field, named by its JSON key, in declaration order.
func message(err error) string {
	var valErrors val.ValidationErrors

	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	lines := make([]string, 0, len(valErrors))

	for _, valErr := range valErrors {
		template, ok := messages[valErr.Tag()]
		if !ok {
			lines = append(lines, valErr.Error())

			continue
		}

		field := valErr.Field()
		if field == "" {
			field = anonymousField
		}

		line := strings.ReplaceAll(template, "{field}", field)
		line = strings.ReplaceAll(line, "{param}", valErr.Param())

		lines = append(lines, line)
	}

	return strings.Join(lines, messageSeparator)
}
