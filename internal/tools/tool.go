// Package tools turns the calc formulas into form-driven tools. Every tool
// runs through the same pipeline: read named string inputs, validate them,
// compute, then describe the result as label/value stats that the web pages,
// the JSON API and the CLI all render.
package tools

import (
	"errors"

	"lg/health-tools-go/internal/calc"
)

// Input is a source of named form values. url.Values satisfies it.
type Input interface {
	Get(name string) string
}

// FieldKind controls how a field is parsed and rendered.
type FieldKind string

const (
	KindNumber  FieldKind = "number"
	KindInteger FieldKind = "integer"
	KindChoice  FieldKind = "choice"
	KindTime    FieldKind = "time"
)

// Option is one allowed value of a choice field.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Field describes one named input of a tool.
type Field struct {
	Name     string    `json:"name"`
	Label    string    `json:"label"`
	Kind     FieldKind `json:"kind"`
	Default  string    `json:"default,omitempty"` // pre-fills the form; only choice fields fall back to it
	Optional bool      `json:"optional,omitempty"`
	Hint     string    `json:"hint,omitempty"`
	Options  []Option  `json:"options,omitempty"`
}

// Stat is one labelled line of a result.
type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Result is a computed tool result.
type Result interface {
	Stats() []Stat
}

// Gauged results expose a 0-100 position for a gauge bar.
type Gauged interface {
	GaugePercent() int
}

// Advised results carry short follow-up suggestions.
type Advised interface {
	AdviceLines() []string
}

// Tool is one calculator.
type Tool struct {
	Slug    string  `json:"slug"`
	Title   string  `json:"title"`
	Summary string  `json:"summary"`
	Fields  []Field `json:"fields"`

	compute func(f *form) (Result, error)
}

// Path is the page route of the tool.
func (t *Tool) Path() string {
	return "/" + t.Slug
}

// Field returns the named field definition.
func (t *Tool) Field(name string) (Field, bool) {
	for _, f := range t.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Defaults returns the initial form values shown before a submission.
func (t *Tool) Defaults() map[string]string {
	values := make(map[string]string, len(t.Fields))
	for _, f := range t.Fields {
		values[f.Name] = f.Default
	}
	return values
}

// Outcome is the result of running a tool once: the echoed inputs plus either
// a Result or an error message, never both.
type Outcome struct {
	Tool   *Tool             `json:"-"`
	Values map[string]string `json:"inputs"`
	Result Result            `json:"result,omitempty"`
	Err    string            `json:"error,omitempty"`
	Field  string            `json:"field,omitempty"`
}

// OK reports whether the run produced a result.
func (o Outcome) OK() bool {
	return o.Err == "" && o.Result != nil
}

// Run validates in, computes, and returns the outcome. Any validation or
// domain failure yields an Outcome with Err set and no Result.
func (t *Tool) Run(in Input) Outcome {
	out := Outcome{Tool: t, Values: t.echo(in)}

	f := &form{tool: t, in: in}
	res, err := t.compute(f)
	if err == nil {
		err = f.err
	}
	if err != nil {
		out.Err = err.Error()
		var ve *calc.ValidationError
		if errors.As(err, &ve) {
			out.Field = ve.Field
		}
		return out
	}
	out.Result = res
	return out
}

// echo copies submitted values for redisplay, falling back to defaults for
// choice fields that were left out.
func (t *Tool) echo(in Input) map[string]string {
	values := make(map[string]string, len(t.Fields))
	for _, fd := range t.Fields {
		v := in.Get(fd.Name)
		if v == "" && fd.Kind == KindChoice {
			v = fd.Default
		}
		values[fd.Name] = v
	}
	return values
}
