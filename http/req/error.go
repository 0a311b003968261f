package req

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xy-planning-network/antsy"
)

// A Source is the part of a request a value was read from.
type Source string

const (
	SourceBody  Source = "body"
	SourcePath  Source = "path"
	SourceQuery Source = "query"
)

// A ValidationError is one value in a request that broke the rule on the field it was parsed into.
//
// Rule reads like a "validate" struct tag: "required", "gt=10", "enum".
// Values that could not be converted at all have the Rule "type=" followed by the field's Go type.
type ValidationError struct {
	Field  string `json:"field"`
	Source Source `json:"source,omitempty"`
	Got    any    `json:"got"`
	Rule   string `json:"rule"`
}

func (ve ValidationError) String() string {
	where := "field"
	if ve.Source != "" {
		where = string(ve.Source)
	}

	return fmt.Sprintf("%s %q: got %q, want %s", where, ve.Field, fmt.Sprint(ve.Got), ve.Rule)
}

// ValidationErrors collects every ValidationError found parsing one request.
// It unwraps to antsy.ErrNotValid.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, ve := range v {
		msgs[i] = ve.String()
	}

	return strings.Join(msgs, "; ")
}

// From returns the errors for values read from source.
func (v ValidationErrors) From(source Source) ValidationErrors {
	var from ValidationErrors
	for _, ve := range v {
		if ve.Source == source {
			from = append(from, ve)
		}
	}

	return from
}

// MarshalJSON renders v as {"errors": [...]} for responding to clients.
func (v ValidationErrors) MarshalJSON() ([]byte, error) {
	errs := struct {
		Errors []ValidationError `json:"errors"`
	}{Errors: v}
	if errs.Errors == nil {
		errs.Errors = []ValidationError{}
	}

	return json.Marshal(errs)
}

func (ValidationErrors) Unwrap() error { return antsy.ErrNotValid }
