package req

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/url"

	"github.com/xy-planning-network/antsy"
)

// A Parser decodes request payloads into structs and validates them.
// A Parser is safe for concurrent use.
type Parser struct {
	values valuesDecoder
	validator
}

// NewParser constructs a *Parser.
func NewParser() *Parser {
	return &Parser{
		values:    newValuesDecoder(),
		validator: newValidator(),
	}
}

// Parse fills structPtr from the request, in this order:
// query params, a JSON body when the Content-Type says so, then route placeholders.
// Later sources overwrite earlier ones,
// so neither the query string nor the body can replace a value matched in the route's path.
// Validation runs once, after all three,
// and each ValidationError names the Source its field was read from.
//
// Parse consumes a JSON body; it cannot be read from again.
func (p *Parser) Parse(r *antsy.Request, structPtr any) error {
	query := r.Raw().URL.Query()
	if err := p.values.decode(structPtr, query, SourceQuery); err != nil {
		return fmt.Errorf("antsy/http/req: failed decoding request query params: %w", err)
	}

	body := isJSON(r.Header("Content-Type"))
	if body {
		if err := p.decodeBody(r.Body(), structPtr); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
	}

	params := r.Params()
	if err := p.values.decode(structPtr, placeholders(params), SourcePath); err != nil {
		return fmt.Errorf("antsy/http/req: failed decoding route params: %w", err)
	}

	return p.check(structPtr, func(field string) Source {
		switch _, isParam := params[field]; {
		case isParam:
			return SourcePath
		case query.Has(field):
			return SourceQuery
		case body:
			return SourceBody
		default:
			return ""
		}
	})
}

// ParseBody decodes into a pointer to a struct the JSON data in body.
// If successful, ParseBody runs validation against the contents,
// returning an ErrNotValid if the data fails validation rules.
//
// ParseBody reads the entire body; wrap it in an [io.TeeReader] to reuse it.
func (p *Parser) ParseBody(body io.Reader, structPtr any) error {
	if err := p.decodeBody(body, structPtr); err != nil {
		return err
	}

	return p.check(structPtr, from(SourceBody))
}

// ParseParams decodes into a pointer to a struct the placeholders matched in a route's path.
// If successful, ParseParams runs validation against the contents.
func (p *Parser) ParseParams(params map[string]string, structPtr any) error {
	if err := p.values.decode(structPtr, placeholders(params), SourcePath); err != nil {
		return fmt.Errorf("antsy/http/req: failed decoding route params: %w", err)
	}

	return p.check(structPtr, from(SourcePath))
}

// ParseQueryParams decodes into a pointer to a struct the query param data in params.
// If successful, ParseQueryParams runs validation against the contents,
// returning an ErrNotValid if the data fails validation rules.
func (p *Parser) ParseQueryParams(params url.Values, structPtr any) error {
	if err := p.values.decode(structPtr, params, SourceQuery); err != nil {
		return fmt.Errorf("antsy/http/req: failed decoding request query params: %w", err)
	}

	return p.check(structPtr, from(SourceQuery))
}

func (p *Parser) decodeBody(body io.Reader, structPtr any) error {
	var ourFault *json.InvalidUnmarshalError
	err := json.NewDecoder(body).Decode(structPtr)
	if errors.As(err, &ourFault) {
		return fmt.Errorf("antsy/http/req: %w: called with non-pointer: %s", antsy.ErrBadAny, err)
	}

	if errors.Is(err, io.EOF) {
		return fmt.Errorf("antsy/http/req: %w: empty request body: %w", antsy.ErrBadFormat, err)
	}

	if err != nil {
		return fmt.Errorf("antsy/http/req: %w: failed decoding request body: %s", antsy.ErrBadFormat, err)
	}

	return nil
}

// check validates structPtr, attributing each ValidationError to the Source sourceOf names.
func (p *Parser) check(structPtr any, sourceOf func(field string) Source) error {
	err := p.validate(structPtr)
	if err == nil {
		return nil
	}

	var verrs ValidationErrors
	if errors.As(err, &verrs) {
		for i := range verrs {
			verrs[i].Source = sourceOf(verrs[i].Field)
		}
	}

	return fmt.Errorf("antsy/http/req: %T failed validation: %w", structPtr, err)
}

func from(source Source) func(string) Source {
	return func(string) Source { return source }
}

func placeholders(params map[string]string) url.Values {
	vals := make(url.Values, len(params))
	for k, v := range params {
		vals.Set(k, v)
	}

	return vals
}

func isJSON(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	return err == nil && mt == "application/json"
}
