package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/deckform/deckform/internal/types"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var titlePattern = regexp.MustCompile(`^[a-zA-Z0-9 ]+$`)

// Register installs the custom tags on gin's binding engine. Called once from
// router setup.
func Register() {
	v, ok := binding.Validator.Engine().(*validator.Validate)

	if !ok {
		return
	}

	v.RegisterValidation("titlechars", func(fl validator.FieldLevel) bool {
		return titlePattern.MatchString(fl.Field().String())
	})

	v.RegisterValidation("strongpassword", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		return strings.ContainsAny(value, "abcdefghijklmnopqrstuvwxyz") &&
			strings.ContainsAny(value, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") &&
			strings.ContainsAny(value, "0123456789")
	})
}

// Issues flattens a binding error into per-field issues. Non-validator errors
// (malformed JSON, type mismatches) collapse to a single body-level issue.
func Issues(err error) []types.ValidationIssue {
	var verrs validator.ValidationErrors

	if !errors.As(err, &verrs) {
		return []types.ValidationIssue{{Path: "body", Message: "Invalid request body"}}
	}

	issues := make([]types.ValidationIssue, 0, len(verrs))

	for _, fe := range verrs {
		issues = append(issues, types.ValidationIssue{
			Path:    strings.ToLower(fe.Field()),
			Message: message(fe),
		})
	}

	return issues
}

func message(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("%s must be %s characters or less", field, fe.Param())
		}
		return fmt.Sprintf("%s must be %s or less", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "titlechars":
		return fmt.Sprintf("%s must only include alphanumeric characters", field)
	case "strongpassword":
		return fmt.Sprintf("%s must contain at least one lowercase letter, one uppercase letter, and one number", field)
	case "gte":
		return fmt.Sprintf("%s must be %s or greater", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be %s or less", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
