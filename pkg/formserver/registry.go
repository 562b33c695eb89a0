package formserver

import (
	"fmt"

	"github.com/dmitrymomot/formkit/pkg/cache"
	"github.com/dmitrymomot/formkit/pkg/feedback"
	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/formctl"
	"github.com/dmitrymomot/formkit/pkg/logger"
)

var kinds = []form.Kind{form.Contact, form.Newsletter}

// formInstance is one form of one page view.
type formInstance struct {
	kind      form.Kind
	layout    feedback.Layout
	doc       *feedback.MemDocument
	ctl       *formctl.Controller
	fieldByID map[string]string
}

func (f *formInstance) values() map[string]string {
	names := form.FieldNames(f.kind)
	out := make(map[string]string, len(names))
	for _, name := range names {
		if el, ok := f.doc.Element(f.layout.FieldID(name)); ok {
			out[name] = el.Value()
		}
	}
	return out
}

type instance struct {
	id    string
	forms map[form.Kind]*formInstance
}

// buildInstance wires a fresh document and controller for every form.
func (s *Server) buildInstance(id string) (*instance, error) {
	inst := &instance{id: id, forms: make(map[form.Kind]*formInstance, len(kinds))}
	for _, kind := range kinds {
		layout := s.layouts.Get(kind)
		doc := feedback.NewMemDocumentFor(layout)

		ui, err := feedback.Bind(doc, layout, form.RequiredFields(kind))
		if err != nil {
			return nil, fmt.Errorf("bind %s form: %w", kind, err)
		}

		opts := []formctl.Option{formctl.WithLogger(s.log)}
		if m, ok := s.messages[kind]; ok {
			opts = append(opts, formctl.WithMessages(m))
		}
		ctl, err := formctl.New(kind, ui, s.selector, opts...)
		if err != nil {
			return nil, fmt.Errorf("create %s controller: %w", kind, err)
		}

		fieldByID := make(map[string]string, len(layout.Fields))
		for name, fid := range layout.Fields {
			fieldByID[fid] = name
		}
		inst.forms[kind] = &formInstance{kind: kind, layout: layout, doc: doc, ctl: ctl, fieldByID: fieldByID}
	}
	return inst, nil
}

func (s *Server) newRegistry(capacity int) *cache.LRU[string, *instance] {
	return cache.NewLRU(capacity, cache.WithEvictCallback(func(id string, _ *instance) {
		s.log.Debug("form instance evicted", logger.InstanceID(id))
	}))
}

// instance returns the registry entry for id, creating it on first use.
func (s *Server) instance(id string) *instance {
	inst, created := s.instances.GetOrAdd(id, func() *instance {
		inst, err := s.buildInstance(id)
		if err != nil {
			// Layouts are verified by New, so this cannot fail for a running server.
			panic(err)
		}
		return inst
	})
	if created {
		s.log.Debug("form instance created", logger.InstanceID(id))
	}
	return inst
}
