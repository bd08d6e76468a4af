package validation

import (
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

type enumerated interface {
	Valid() bool
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their boundary name rather than the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	err := v.RegisterValidation("enum", func(fl validator.FieldLevel) bool {
		e, ok := fl.Field().Interface().(enumerated)
		return ok && e.Valid()
	})
	if err != nil {
		panic(err)
	}
	return v
}

var defaultMessages = map[string]string{
	"required": "This field is required.",
	"number":   "Must be a valid number.",
	"integer":  "Must be an integer.",
	"date":     "Must be a valid date.",
	"min":      "Must be 0 or more.",
	"enum":     "Select one of the listed values.",
}

// messages holds the user-facing text of one schema. Keys are "field.tag" or
// "field"; the more specific key wins, then the per-tag default.
type messages map[string]string

func (m messages) lookup(field, tag string) string {
	if msg, ok := m[field+"."+tag]; ok {
		return msg
	}
	if msg, ok := m[field]; ok {
		return msg
	}
	if msg, ok := defaultMessages[tag]; ok {
		return msg
	}
	return "Invalid value."
}

// parser coerces raw text into typed fields, collecting one error per failing field.
type parser struct {
	raw  Raw
	msgs messages
	errs FieldErrors
}

func newParser(raw Raw, msgs messages) *parser {
	return &parser{raw: raw, msgs: msgs}
}

func (p *parser) fail(field, tag string) {
	p.errs.Add(field, p.msgs.lookup(field, tag))
}

// text returns the raw text of a field; absent reads as "".
func (p *parser) text(field string) string {
	return p.raw[field].String()
}

// optionalText normalizes blank and absent to nil.
func (p *parser) optionalText(field string) *string {
	v := p.raw[field]
	if v.Blank() {
		return nil
	}
	s := v.String()
	return &s
}

func (p *parser) checkbox(field string) bool {
	return p.raw[field].Present()
}

func (p *parser) integer(field string) int64 {
	v := p.raw[field]
	if v.Blank() {
		p.fail(field, "required")
		return 0
	}
	n, tag := parseInteger(v.String())
	if tag != "" {
		p.fail(field, tag)
	}
	return n
}

func (p *parser) optionalInteger(field string) *int64 {
	v := p.raw[field]
	if v.Blank() {
		return nil
	}
	n, tag := parseInteger(v.String())
	if tag != "" {
		p.fail(field, tag)
		return nil
	}
	return &n
}

func (p *parser) date(field string) time.Time {
	t, ok := parseDate(p.raw[field].String())
	if !ok {
		p.fail(field, "date")
	}
	return t
}

// check runs the struct constraints of in. Fields that already failed coercion
// keep only their coercion error.
func (p *parser) check(in any) {
	failed := make(map[string]bool, len(p.errs))
	for field := range p.errs {
		failed[field] = true
	}

	err := validate.Struct(in)
	if err == nil {
		return
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		p.errs.Add("", err.Error())
		return
	}
	for _, fe := range verrs {
		if failed[fe.Field()] {
			continue
		}
		p.fail(fe.Field(), fe.Tag())
	}
}

// parseInteger returns the failure tag ("number" or "integer") when s is not a whole number.
func parseInteger(s string) (int64, string) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, ""
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, "number"
	}
	if f != math.Trunc(f) {
		return 0, "integer"
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, "number"
	}
	return int64(f), ""
}

var dateLayouts = []string{"2006-01-02", time.RFC3339}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
