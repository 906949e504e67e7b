// Package validation checks request DTOs with go-playground/validator and
// reports failures per JSON field.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/saulo-duarte/okrun-lambda/internal/apperror"
)

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// Struct validates v and returns an *apperror.Error of kind validation
// describing every failing field, or nil.
func Struct(v interface{}) error {
	err := instance().Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		key := fieldPath(fe)
		if _, exists := fields[key]; !exists {
			fields[key] = message(fe)
		}
	}
	return apperror.Validation(fields)
}

// Merge folds extra field messages into err, which may be nil.
func Merge(err error, fields map[string]string) error {
	if len(fields) == 0 {
		return err
	}
	if err == nil {
		return apperror.Validation(fields)
	}

	var appErr *apperror.Error
	if !errors.As(err, &appErr) || appErr.Kind != apperror.KindValidation {
		return err
	}
	for k, v := range fields {
		if _, exists := appErr.Fields[k]; !exists {
			appErr.Fields[k] = v
		}
	}
	return appErr
}

// fieldPath drops the top-level struct name: "CreateObjectiveDTO.key_results[0].unit"
// becomes "key_results.0.unit".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	ns = strings.ReplaceAll(ns, "[", ".")
	return strings.ReplaceAll(ns, "]", "")
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("the %s field is required", field)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("the %s field must not be greater than %s characters", field, fe.Param())
		}
		return fmt.Sprintf("the %s field must not be greater than %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("the %s field must be at least %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("the %s field must be greater than or equal to %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("the %s field must be less than or equal to %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("the selected %s is invalid, allowed: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "email":
		return fmt.Sprintf("the %s field must be a valid email address", field)
	case "url", "uri":
		return fmt.Sprintf("the %s field must be a valid URL", field)
	default:
		return fmt.Sprintf("the %s field is invalid", field)
	}
}

// Prefix nests the field keys of a validation error under prefix, e.g.
// "unit" becomes "key_results.2.unit". Other errors are returned unchanged.
func Prefix(err error, prefix string) error {
	var appErr *apperror.Error
	if !errors.As(err, &appErr) || appErr.Kind != apperror.KindValidation {
		return err
	}
	fields := make(map[string]string, len(appErr.Fields))
	for k, v := range appErr.Fields {
		fields[prefix+"."+k] = v
	}
	return apperror.Validation(fields)
}

// Join combines validation errors into one. The first error of any other
// kind is returned as is.
func Join(errs ...error) error {
	fields := map[string]string{}
	for _, err := range errs {
		if err == nil {
			continue
		}
		var appErr *apperror.Error
		if !errors.As(err, &appErr) || appErr.Kind != apperror.KindValidation {
			return err
		}
		for k, v := range appErr.Fields {
			if _, exists := fields[k]; !exists {
				fields[k] = v
			}
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return apperror.Validation(fields)
}
