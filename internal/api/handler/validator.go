package handler

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/devflow/bugtracker/internal/core/domain"
)

// echoValidator wraps go-playground/validator so Echo can call
// c.Validate(req), translating validation failures into the tagged domain
// errors the envelope expects.
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to
// echo.Echo.Validator. Field names in messages come from json tags.
func NewValidator() *echoValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface.
func (ev *echoValidator) Validate(i any) error {
	err := ev.v.Struct(i)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	// Missing required fields take precedence and share one machine code.
	var missing []string
	for _, fe := range ve {
		if fe.Tag() == "required" {
			missing = append(missing, fe.Field())
		}
	}
	if len(missing) > 0 {
		return domain.NewError(http.StatusBadRequest, "MISSING_FIELDS",
			fmt.Sprintf("Required fields missing: %s", strings.Join(missing, ", ")))
	}

	fe := ve[0]
	switch fe.Tag() {
	case "email":
		return domain.ErrInvalidEmail
	case "oneof":
		return domain.NewError(http.StatusBadRequest,
			"INVALID_"+strings.ToUpper(fe.Field()),
			fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param()))
	default:
		return domain.NewError(http.StatusBadRequest, "VALIDATION_ERROR",
			fmt.Sprintf("%s failed validation (%s)", fe.Field(), fe.Tag()))
	}
}
