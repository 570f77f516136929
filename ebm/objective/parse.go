package objective

import (
	"sort"
	"strconv"
	"strings"

	"github.com/YuminosukeSato/goebm/pkg/errors"
)

// Recipe is a parsed loss specification: the loss name plus its numeric
// parameters.
type Recipe struct {
	Name   string
	Params map[string]float64
}

// Parse splits a loss specification of the form "name" or
// "name:key=value,key=value,...". Whitespace around every token is ignored,
// so "pseudo_huber : delta = 1.5" parses the same as
// "pseudo_huber:delta=1.5". Duplicate keys, empty keys and non-numeric
// values are rejected.
func Parse(spec string) (*Recipe, error) {
	name, rest, hasParams := strings.Cut(spec, ":")
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.NewUnknownLossError(spec)
	}

	r := &Recipe{Name: name, Params: map[string]float64{}}
	if !hasParams {
		return r, nil
	}

	for _, field := range strings.Split(rest, ",") {
		key, value, ok := strings.Cut(field, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, errors.NewLossParamError(name, strings.TrimSpace(field), "expected key=value", nil)
		}
		if _, dup := r.Params[key]; dup {
			return nil, errors.NewLossParamError(name, key, "duplicate parameter", nil)
		}

		value = strings.TrimSpace(value)
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, errors.NewLossParamError(name, key, "not a number", value)
		}
		r.Params[key] = v
	}
	return r, nil
}

// Take removes the named parameter and returns its value, or def when the
// specification did not set it.
func (r *Recipe) Take(key string, def float64) float64 {
	if v, ok := r.Params[key]; ok {
		delete(r.Params, key)
		return v
	}
	return def
}

// Leftover returns the lexically first parameter no loss consumed. The
// catalog turns a leftover into an unknown-parameter error so that typos in
// specifications fail loudly instead of silently using defaults.
func (r *Recipe) Leftover() (string, bool) {
	if len(r.Params) == 0 {
		return "", false
	}
	keys := make([]string, 0, len(r.Params))
	for k := range r.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys[0], true
}
