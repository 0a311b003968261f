package req

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/gorilla/schema"
	"github.com/xy-planning-network/antsy"
)

type valuesDecoder struct {
	dec *schema.Decoder
}

func newValuesDecoder() valuesDecoder {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)

	return valuesDecoder{dec}
}

// decode fills structPtr from vals read from source, matching keys with "schema" struct tags.
func (d valuesDecoder) decode(structPtr any, vals map[string][]string, source Source) error {
	if err := checkStructPtr(structPtr); err != nil {
		return err
	}

	if err := d.dec.Decode(structPtr, vals); err != nil {
		return translateDecoderError(err, vals, source)
	}

	return nil
}

func checkStructPtr(structPtr any) error {
	v := reflect.ValueOf(structPtr)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w: %T is not a pointer to a struct", antsy.ErrBadAny, structPtr)
	}

	return nil
}

// translateDecoderError converts an error returned by *schema.Decoder into standardized errors.
// Values that do not convert become ValidationErrors carrying the raw value sent;
// anything else is a problem with the destination struct.
func translateDecoderError(err error, vals map[string][]string, source Source) error {
	var pkgErrs schema.MultiError
	if !errors.As(err, &pkgErrs) {
		return fmt.Errorf("%w: %s", antsy.ErrBadFormat, err)
	}

	var verrs ValidationErrors
	for key, pkgErr := range pkgErrs {
		switch err := pkgErr.(type) {
		case schema.ConversionError:
			verrs = append(verrs, ValidationError{
				Field:  err.Key,
				Source: source,
				Got:    rawValue(vals[key], err.Index),
				Rule:   "type=" + err.Type.String(),
			})

		case schema.UnknownKeyError:
			verrs = append(verrs, ValidationError{
				Field:  err.Key,
				Source: source,
				Got:    rawValue(vals[key], 0),
				Rule:   "unknown",
			})

		case schema.EmptyFieldError:
			return fmt.Errorf(`%w: use validate tags to set "required" fields, not schema`, antsy.ErrNotImplemented)

		default:
			// A field of a type without a registered converter only errors once a value for it arrives.
			if strings.Contains(err.Error(), "schema: converter not found for") {
				return fmt.Errorf("%w: cannot convert values into unsupported type", antsy.ErrNotImplemented)
			}

			return fmt.Errorf("%w: %s", antsy.ErrUnexpected, err)
		}
	}

	// MultiError is a map.
	sort.Slice(verrs, func(i, j int) bool { return verrs[i].Field < verrs[j].Field })
	return verrs
}

// rawValue returns the value at index, -1 meaning a single value.
func rawValue(vals []string, index int) string {
	index = max(0, index)
	if index >= len(vals) {
		return ""
	}

	return vals[index]
}
