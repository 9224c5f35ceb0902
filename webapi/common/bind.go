package common

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/gofiber/fiber/v2"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		// report fields by their JSON names
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
		_ = validate.RegisterValidation("notblank", validators.NotBlank)
	})
	return validate
}

// BindAndValidate parses the request body into T and validates it with
// go-playground/validator. action completes the "must provide [...]
// parameters to <action>" message written when required fields are absent.
// A nil input means the problem response has been written; the returned
// error then only reports a failure to write it.
func BindAndValidate[T any](c *fiber.Ctx, action string) (*T, error) {
	var input T
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&input); err != nil {
			return nil, writeBindError(c, "Invalid request body", err, fiber.StatusBadRequest)
		}
	}
	if err := getValidator().Struct(input); err != nil {
		ve := toValidationError(err)
		if ve == nil {
			return nil, writeBindError(c, "Validation failed", err, fiber.StatusBadRequest)
		}
		if missing := ve.Missing(); len(missing) > 0 {
			return nil, writeBindError(c, "Validation failed", ve,
				fmt.Sprintf("must provide %v parameters to %s", missing, action),
				missing,
			)
		}
		return nil, writeBindError(c, "Validation failed", ve)
	}
	return &input, nil
}

func writeBindError(c *fiber.Ctx, title string, err error, opts ...any) error {
	return ProblemDetailsJSON(c, title, err, opts...)
}

func toValidationError(err error) *domain.ValidationError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	fields := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		reason := fe.Tag()
		switch {
		case reason == "notblank":
			// a blank string counts as absent
			reason = domain.ReasonRequired
		case fe.Param() != "":
			reason += "=" + fe.Param()
		}
		fields = append(fields, domain.FieldError{Field: fe.Field(), Reason: reason})
	}
	return domain.NewValidationError(nil, fields...)
}

// ParseID parses the named route parameter as a positive integer id.
func ParseID(c *fiber.Ctx, param string) (uint, bool) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}
