package feedback

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formkit/pkg/form"
)

// Layout holds the element ids of one form.
type Layout struct {
	Form          string            `yaml:"form"`
	Fields        map[string]string `yaml:"fields"`
	SuccessBanner string            `yaml:"success_banner"`
	ErrorBanner   string            `yaml:"error_banner"`
	Submit        string            `yaml:"submit"`
	Spinner       string            `yaml:"spinner"`
	Feedback      string            `yaml:"feedback"`
}

// DefaultLayout returns the stock ids for kind: "<kind>-form",
// "<kind>-<field>", "<kind>-success", "<kind>-error", "<kind>-submit",
// "<kind>-spinner" and "<kind>-feedback". Unknown kinds get an empty layout.
func DefaultLayout(kind form.Kind) Layout {
	names := form.FieldNames(kind)
	if names == nil {
		return Layout{}
	}

	prefix := kind.String() + "-"
	fields := make(map[string]string, len(names))
	for _, name := range names {
		fields[name] = prefix + name
	}

	return Layout{
		Form:          prefix + "form",
		Fields:        fields,
		SuccessBanner: prefix + "success",
		ErrorBanner:   prefix + "error",
		Submit:        prefix + "submit",
		Spinner:       prefix + "spinner",
		Feedback:      prefix + "feedback",
	}
}

// FieldID returns the input id for field, or "" when the layout has none.
func (l Layout) FieldID(field string) string {
	return l.Fields[field]
}

// IDs lists every non-empty id of the layout.
func (l Layout) IDs() []string {
	ids := make([]string, 0, len(l.Fields)+6)
	for _, id := range []string{l.Form, l.SuccessBanner, l.ErrorBanner, l.Submit, l.Spinner, l.Feedback} {
		if id != "" {
			ids = append(ids, id)
		}
	}
	for _, id := range l.Fields {
		if id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// merge overlays non-empty values of o onto l.
func (l Layout) merge(o Layout) Layout {
	fields := make(map[string]string, len(l.Fields))
	for k, v := range l.Fields {
		fields[k] = v
	}
	for k, v := range o.Fields {
		if v != "" {
			fields[k] = v
		}
	}
	l.Fields = fields

	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&l.Form, o.Form)
	set(&l.SuccessBanner, o.SuccessBanner)
	set(&l.ErrorBanner, o.ErrorBanner)
	set(&l.Submit, o.Submit)
	set(&l.Spinner, o.Spinner)
	set(&l.Feedback, o.Feedback)
	return l
}

// Layouts maps a form kind to its layout.
type Layouts map[form.Kind]Layout

// DefaultLayouts returns DefaultLayout for both forms.
func DefaultLayouts() Layouts {
	return Layouts{
		form.Contact:    DefaultLayout(form.Contact),
		form.Newsletter: DefaultLayout(form.Newsletter),
	}
}

// Get returns the layout for kind, falling back to DefaultLayout.
func (ls Layouts) Get(kind form.Kind) Layout {
	if l, ok := ls[kind]; ok {
		return l
	}
	return DefaultLayout(kind)
}

// LoadLayouts reads YAML overrides keyed by form kind and merges them over
// the defaults. Unknown kinds are rejected.
func LoadLayouts(r io.Reader) (Layouts, error) {
	var overrides map[string]Layout
	if err := yaml.NewDecoder(r).Decode(&overrides); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLayout, err)
	}

	layouts := DefaultLayouts()
	for name, override := range overrides {
		kind, err := form.ParseKind(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidLayout, err)
		}
		for field := range override.Fields {
			if !slices.Contains(form.FieldNames(kind), field) {
				return nil, fmt.Errorf("%w: %s has no field %q", ErrInvalidLayout, kind, field)
			}
		}
		layouts[kind] = layouts[kind].merge(override)
	}
	return layouts, nil
}

// LoadLayoutsFile is LoadLayouts for a file path. An empty path yields the
// defaults.
func LoadLayoutsFile(path string) (Layouts, error) {
	if path == "" {
		return DefaultLayouts(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLayout, err)
	}
	defer func() { _ = f.Close() }()
	return LoadLayouts(f)
}
