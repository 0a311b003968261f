package req

import (
	"errors"
	"reflect"
	"strings"

	v10 "github.com/go-playground/validator/v10"
	"github.com/xy-planning-network/antsy"
)

type validator struct {
	valid *v10.Validate
}

func newValidator() validator {
	v := v10.New()
	v.RegisterValidation("enum", isEnum)
	v.RegisterTagNameFunc(fieldName)

	return validator{v}
}

// fieldName names a struct field the way clients send it:
// its "json" name, else its "schema" name.
// Fields hidden from both are reported by their Go name.
func fieldName(field reflect.StructField) string {
	for _, key := range []string{"json", "schema"} {
		name, _, _ := strings.Cut(field.Tag.Get(key), ",")
		if name != "" && name != "-" {
			return name
		}
	}

	return ""
}

// validate checks structPtr against its "validate" struct tags,
// returning every broken rule as ValidationErrors.
func (v validator) validate(structPtr any) error {
	err := v.valid.Struct(structPtr)

	var fieldErrs v10.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	verrs := make(ValidationErrors, len(fieldErrs))
	for i, fe := range fieldErrs {
		verrs[i] = ValidationError{Field: namespace(fe), Got: fe.Value(), Rule: rule(fe)}
	}

	return verrs
}

// namespace drops the struct's own name from a field's path: "thing.owner.id" becomes "owner.id".
func namespace(fe v10.FieldError) string {
	if _, rest, ok := strings.Cut(fe.Namespace(), "."); ok {
		return rest
	}

	return fe.Field()
}

func rule(fe v10.FieldError) string {
	if fe.Param() == "" {
		return fe.Tag()
	}

	return fe.Tag() + "=" + fe.Param()
}

// isEnum reports whether a field, or every element of a slice field, is a valid antsy.Enumerable.
// An empty slice is not.
func isEnum(fl v10.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.Slice {
		return validEnum(field)
	}

	if field.Len() == 0 {
		return false
	}

	for i := 0; i < field.Len(); i++ {
		if !validEnum(field.Index(i)) {
			return false
		}
	}

	return true
}

func validEnum(v reflect.Value) bool {
	if !v.CanInterface() {
		return false
	}

	enum, ok := v.Interface().(antsy.Enumerable)
	return ok && enum.Valid() == nil
}
