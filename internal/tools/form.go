package tools

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"lg/health-tools-go/internal/calc"
)

// form reads typed values out of an Input. The first failure sticks: later
// reads return zero values and the error is reported once by Tool.Run.
type form struct {
	tool *Tool
	in   Input
	err  error
}

func (f *form) fail(name, format string, args ...any) {
	if f.err == nil {
		f.err = &calc.ValidationError{Field: name, Message: f.label(name) + " " + fmt.Sprintf(format, args...)}
	}
}

func (f *form) label(name string) string {
	if fd, ok := f.tool.Field(name); ok && fd.Label != "" {
		return fd.Label
	}
	return name
}

// raw returns the trimmed value, or "" once an earlier read has failed.
func (f *form) raw(name string) string {
	if f.err != nil {
		return ""
	}
	return strings.TrimSpace(f.in.Get(name))
}

func (f *form) required(name string) (string, bool) {
	s := f.raw(name)
	if f.err != nil {
		return "", false
	}
	if s == "" {
		f.fail(name, "is required")
		return "", false
	}
	return s, true
}

// number parses a required decimal field. NaN and Inf spellings are refused.
func (f *form) number(name string) float64 {
	s, ok := f.required(name)
	if !ok {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		f.fail(name, "must be a number")
		return 0
	}
	return v
}

// optionalNumber parses a decimal field that may be left blank.
func (f *form) optionalNumber(name string) (float64, bool) {
	if f.raw(name) == "" {
		return 0, false
	}
	return f.number(name), f.err == nil
}

// integer parses a required whole-number field.
func (f *form) integer(name string) int {
	s, ok := f.required(name)
	if !ok {
		return 0
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		f.fail(name, "must be a whole number")
		return 0
	}
	return v
}

// done returns the first read failure, if any.
func (f *form) done() error {
	return f.err
}

// text returns a required free-form field such as a time of day or an
// activity preset name.
func (f *form) text(name string) string {
	s, _ := f.required(name)
	return s
}

// choice returns the value of a choice field, using the field default when it
// is blank and rejecting anything not in its options.
func (f *form) choice(name string) string {
	s := f.raw(name)
	if f.err != nil {
		return ""
	}
	fd, _ := f.tool.Field(name)
	if s == "" {
		s = fd.Default
	}
	if !slices.ContainsFunc(fd.Options, func(o Option) bool { return o.Value == s }) {
		f.fail(name, "must be one of %s", strings.Join(optionValues(fd.Options), ", "))
		return ""
	}
	return s
}

func optionValues(opts []Option) []string {
	out := make([]string, len(opts))
	for i, o := range opts {
		out[i] = o.Value
	}
	return out
}
