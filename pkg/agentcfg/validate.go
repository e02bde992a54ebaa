package agentcfg

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// namePattern matches agent names: letters, digits and spaces only.
	namePattern = regexp.MustCompile(`^[a-zA-Z0-9 ]+$`)

	// jwtPattern matches Agentverse API keys: a three-part dot-delimited
	// token whose first two parts are base64url JSON objects ("eyJ" is
	// base64 for `{"`).
	jwtPattern = regexp.MustCompile(`^eyJ[A-Za-z0-9\-_]+\.eyJ[A-Za-z0-9\-_]+\.[A-Za-z0-9\-_=]*$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report errors under the snake_case context-key names.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "name_chars", func(fl validator.FieldLevel) bool {
		return namePattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "agentverse_jwt", func(fl validator.FieldLevel) bool {
		return jwtPattern.MatchString(fl.Field().String())
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// Validate checks every per-field constraint, then the cross-field port
// invariant. Per-field failures come back as *ValidationError; a port
// collision between individually valid ports comes back as
// *PortConflictError.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]FieldError, len(verrs))
			for i, fe := range verrs {
				fields[i] = FieldError{Field: fe.Field(), Constraint: constraintMessage(fe)}
			}
			return &ValidationError{Fields: fields}
		}
		return fmt.Errorf("validating configuration: %w", err)
	}

	if c.AgentPort == c.HostingPort {
		return &PortConflictError{AgentPort: c.AgentPort, HostingPort: c.HostingPort}
	}

	return nil
}

func constraintMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "alphanum":
		return "must contain only letters and digits"
	case "name_chars":
		return "must contain only letters, digits and spaces"
	case "agentverse_jwt":
		return "must be a JWT-shaped token (xxxxx.yyyyy.zzzzz)"
	default:
		return fmt.Sprintf("failed %q constraint", fe.Tag())
	}
}

// validateVar checks a single value against a tag expression, reporting a
// failure as a FieldError under the given context-key name. Used by the
// wizard to validate inputs as they are typed.
func validateVar(value any, field, tag string) error {
	err := validate.Var(value, tag)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return FieldError{Field: field, Constraint: constraintMessage(verrs[0])}
	}
	return fmt.Errorf("validating %s: %w", field, err)
}

// Per-field validators for interactive collection.

func ValidateAgentName(name string) error {
	return validateVar(name, "agent_name", "omitempty,min=1,max=100,name_chars")
}

func ValidateSeedPhrase(seed string) error {
	return validateVar(seed, "agent_seed_phrase", "required,min=1,max=500,alphanum")
}

func ValidatePort(port int) error {
	return validateVar(port, "port", "gte=1024,lte=65535")
}

func ValidateDescription(desc string) error {
	return validateVar(desc, "agent_description", "required,min=1,max=500")
}

func ValidateHostingAddress(addr string) error {
	return validateVar(addr, "hosting_address", "required,min=1,max=255")
}

func ValidateAPIKey(key string) error {
	return validateVar(key, "agentverse_api_key", "omitempty,min=20,max=1000,agentverse_jwt")
}
