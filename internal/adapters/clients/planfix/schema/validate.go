package schema

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validate checks v against its `validate` tags. Field names in the returned
// validator.ValidationErrors use the JSON names.
func Validate(v any) error {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(jsonFieldName)
		validate.RegisterStructValidation(validateEnvelope, Envelope{})
	})
	return validate.Struct(v)
}

// validateEnvelope rejects success envelopes that also carry an error code,
// including a code of zero.
func validateEnvelope(sl validator.StructLevel) {
	env, ok := sl.Current().Interface().(Envelope)
	if !ok {
		return
	}
	if env.Code != nil {
		sl.ReportError(env.Code, "code", "Code", "absent", "")
	}
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}
