package v1

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate 全部请求共用的校验器，字段名取 json 标签
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	// date: YYYY-MM-DD 或 RFC 3339
	if err := v.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		_, err := ParseDate(fl.Field().String())
		return err == nil
	}); err != nil {
		panic(err)
	}
	return v
}

// FieldError 参数校验错误
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string { return e.Field + ": " + e.Reason }

var reasons = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"gt":       "must be greater than 0",
	"date":     "must be a date (YYYY-MM-DD or RFC 3339)",
}

// check 按 validate 标签校验请求，只返回第一个字段错误
func check(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return err
	}
	fe := errs[0]
	reason, ok := reasons[fe.Tag()]
	if !ok {
		reason = "failed on " + fe.Tag()
	}
	return &FieldError{Field: fe.Field(), Reason: reason}
}
