package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required":    "{field} is required",
		"gte":         "{field} must be greater than or equal to {param}",
		"lte":         "{field} must be less than or equal to {param}",
		"gt":          "{field} must be greater than {param}",
		"oneof":       "{field} must be one of {param}",
		"max":         "{field} must be less than or equal to {param}",
		"min":         "{field} must be greater than or equal to {param}",
		"uuid":        "{field} must be a valid UUID",
		"seat_id":     "{field} must look like <room_id>:<row>:<number>",
		"datetime":    "{field} must match the {param} layout",
		"mimetypes":   "{field} must be one of these types: {param}",
		"maxfilesize": "{field} must not be larger than {param} MB",
	}
)

// message renders the first failing rule and reports the offending field by its JSON name.
func message(err error) (string, string) {
	var valErrors val.ValidationErrors

	if errors.As(err, &valErrors) {
		for _, valErr := range valErrors {
			errStr := ""
			field := valErr.Field()
			param := valErr.Param()

			errStr = messages[valErr.Tag()]
			if errStr != "" {
				errStr = strings.ReplaceAll(errStr, "{field}", field)
				errStr = strings.ReplaceAll(errStr, "{param}", param)

				return field, errStr
			}
		}

		return "", valErrors.Error()
	}

	return "", err.Error()
}
