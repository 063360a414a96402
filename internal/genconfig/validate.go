package genconfig

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrIncomplete is returned when a record is missing a field its type needs.
var ErrIncomplete = errors.New("generation config is incomplete")

var identifierPattern = regexp.MustCompile(`(?i)^[a-z0-9][a-z0-9-]*$`)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	err := validate.RegisterValidation("extid", func(fl validator.FieldLevel) bool {
		return ValidateExtensionID(fl.Field().String()) == nil
	})
	if err != nil {
		panic(fmt.Sprintf("genconfig: registering extid validation: %v", err))
	}
}

// ValidateExtensionID checks the identifier used as the package name and the
// output directory name.
func ValidateExtensionID(id string) error {
	if id == "" {
		return errors.New("missing extension identifier")
	}
	if !identifierPattern.MatchString(id) {
		return fmt.Errorf("invalid extension identifier %q: use letters, digits and '-', starting with a letter or digit", id)
	}
	return nil
}

var fieldMessages = map[string]string{
	"required": "%s is required",
	"extid":    "%s is not a valid extension identifier",
	"oneof":    "%s must be one of: %s",
}

// Validate reports whether c is complete for its type: every field the type
// needs is set, and no field belonging to the other type is present.
func Validate(c *GenerationConfig) error {
	if c == nil {
		return fmt.Errorf("%w: nil config", ErrIncomplete)
	}

	var problems []string
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("validating generation config: %w", err)
		}
		for _, fe := range verrs {
			problems = append(problems, fieldMessage(fe))
		}
	}

	switch c.Type {
	case TypeNewExtension:
		if c.Project == nil {
			problems = append(problems, "project settings are required for a new extension")
		}
		if c.Pack != nil {
			problems = append(problems, "a new extension cannot carry an extension list")
		}
	case TypeExtensionPack:
		if c.Pack == nil {
			problems = append(problems, "pack settings are required for an extension pack")
		}
		if c.Project != nil {
			problems = append(problems, "an extension pack cannot carry project settings")
		}
		if c.InstallDependencies {
			problems = append(problems, "an extension pack has no dependencies to install")
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrIncomplete, strings.Join(problems, "; "))
	}
	return nil
}

func fieldMessage(fe validator.FieldError) string {
	name := fe.StructNamespace()
	if msg, ok := fieldMessages[fe.Tag()]; ok {
		if strings.Count(msg, "%s") == 2 {
			return fmt.Sprintf(msg, name, fe.Param())
		}
		return fmt.Sprintf(msg, name)
	}
	return fmt.Sprintf("%s is invalid: %s", name, fe.Tag())
}
