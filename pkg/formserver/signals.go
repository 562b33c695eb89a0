package formserver

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dmitrymomot/formkit/pkg/feedback"
	"github.com/dmitrymomot/formkit/pkg/form"
)

const (
	signalInstance = "instance"
	signalUI       = "ui"
)

// submitSignals is the subset of page signals a submit needs.
type submitSignals struct {
	Instance   string            `json:"instance"`
	Contact    map[string]string `json:"contact"`
	Newsletter map[string]string `json:"newsletter"`
}

// values returns the posted values of kind. It is never nil, so fields the
// page omitted are emptied rather than kept from an earlier submit.
func (s submitSignals) values(kind form.Kind) form.Fields {
	var v map[string]string
	switch kind {
	case form.Contact:
		v = s.Contact
	case form.Newsletter:
		v = s.Newsletter
	}
	if v == nil {
		return form.Fields{}
	}
	return form.Fields(v)
}

// signalKey turns an element id such as "contact-success" into the
// camelCase signal name "contactSuccess".
func signalKey(id string) string {
	parts := strings.FieldsFunc(id, func(r rune) bool {
		return r == '-' || r == '_' || r == '.' || unicode.IsSpace(r)
	})
	var b strings.Builder
	b.Grow(len(id))
	for i, p := range parts {
		r, size := utf8.DecodeRuneInString(p)
		if i == 0 {
			r = unicode.ToLower(r)
		} else {
			r = unicode.ToUpper(r)
		}
		b.WriteRune(r)
		b.WriteString(p[size:])
	}
	return b.String()
}

// changePatch maps one document change to a signal patch. Field value
// changes also update the bound value signal so cleared inputs empty out.
func (f *formInstance) changePatch(c feedback.Change) map[string]any {
	patch := map[string]any{
		signalUI: map[string]feedback.ElementState{signalKey(c.ID): c.State},
	}
	if c.Kind == feedback.ChangeValue {
		if name, ok := f.fieldByID[c.ID]; ok {
			patch[f.kind.String()] = map[string]string{name: c.State.Value}
		}
	}
	return patch
}

// snapshotPatch returns the full UI and value state of the form.
func (f *formInstance) snapshotPatch() map[string]any {
	return map[string]any{
		signalUI:        uiSignals(f.layout, f.doc.Signals()),
		f.kind.String(): f.values(),
	}
}

// uiSignals keys the layout's element states by signal name.
func uiSignals(layout feedback.Layout, states map[string]feedback.ElementState) map[string]feedback.ElementState {
	out := make(map[string]feedback.ElementState, len(states))
	for _, id := range layout.IDs() {
		if st, ok := states[id]; ok {
			out[signalKey(id)] = st
		}
	}
	return out
}
