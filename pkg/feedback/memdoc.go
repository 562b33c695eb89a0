package feedback

import (
	"maps"
	"slices"
	"strconv"
	"sync"
)

// ChangeKind names the property a Change touched.
type ChangeKind string

const (
	ChangeClass    ChangeKind = "class"
	ChangeAttr     ChangeKind = "attr"
	ChangeText     ChangeKind = "text"
	ChangeValue    ChangeKind = "value"
	ChangeDisabled ChangeKind = "disabled"
	ChangeHidden   ChangeKind = "hidden"
)

// Change describes one effective mutation of a MemDocument element.
type Change struct {
	ID    string
	Kind  ChangeKind
	Name  string // class or attribute name
	Value string // "" for a removed class or attribute
	State ElementState
}

// ElementState is a snapshot of one element.
type ElementState struct {
	Value    string            `json:"value"`
	Text     string            `json:"text"`
	Hidden   bool              `json:"hidden"`
	Disabled bool              `json:"disabled"`
	Classes  []string          `json:"classes"`
	Attrs    map[string]string `json:"attrs"`
}

// MemDocument is an in-memory Document safe for concurrent use. Subscribers
// are notified of every effective change, outside the document lock, in the
// order changes were made by a single goroutine.
type MemDocument struct {
	mu       sync.RWMutex
	elements map[string]*memElement
	subs     map[int]func(Change)
	nextSub  int
}

func NewMemDocument() *MemDocument {
	return &MemDocument{
		elements: make(map[string]*memElement),
		subs:     make(map[int]func(Change)),
	}
}

// NewMemDocumentFor creates a document holding every element of layout.
// Banners and the spinner start hidden.
func NewMemDocumentFor(layout Layout) *MemDocument {
	d := NewMemDocument()
	for _, id := range layout.IDs() {
		d.Add(id)
	}
	for _, id := range []string{layout.SuccessBanner, layout.ErrorBanner, layout.Spinner} {
		if el, ok := d.lookup(id); ok {
			el.hidden = true
			if id != layout.Spinner {
				el.attrs[AttrAriaHidden] = "true"
			}
		}
	}
	return d
}

// Add creates the element id, or returns the existing one.
func (d *MemDocument) Add(id string) Element {
	d.mu.Lock()
	defer d.mu.Unlock()
	if el, ok := d.elements[id]; ok {
		return el
	}
	el := &memElement{
		doc:     d,
		id:      id,
		classes: make(map[string]struct{}),
		attrs:   make(map[string]string),
	}
	d.elements[id] = el
	return el
}

// Remove deletes the element id.
func (d *MemDocument) Remove(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.elements, id)
}

func (d *MemDocument) Element(id string) (Element, bool) {
	el, ok := d.lookup(id)
	if !ok {
		return nil, false
	}
	return el, true
}

func (d *MemDocument) lookup(id string) (*memElement, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	el, ok := d.elements[id]
	return el, ok
}

// Subscribe registers fn for every subsequent change. The returned func
// removes the subscription.
func (d *MemDocument) Subscribe(fn func(Change)) (unsubscribe func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	id := d.nextSub
	d.nextSub++
	d.subs[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			d.mu.Lock()
			defer d.mu.Unlock()
			delete(d.subs, id)
		})
	}
}

// Signals returns a snapshot of every element keyed by id.
func (d *MemDocument) Signals() map[string]ElementState {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make(map[string]ElementState, len(d.elements))
	for id, el := range d.elements {
		out[id] = el.stateLocked()
	}
	return out
}

// mutate applies fn under the document lock. fn reports whether anything
// changed; if so subscribers receive the change.
func (d *MemDocument) mutate(el *memElement, kind ChangeKind, name, value string, fn func() bool) {
	d.mu.Lock()
	if !fn() {
		d.mu.Unlock()
		return
	}
	change := Change{ID: el.id, Kind: kind, Name: name, Value: value, State: el.stateLocked()}
	subs := make([]func(Change), 0, len(d.subs))
	for _, k := range slices.Sorted(maps.Keys(d.subs)) {
		subs = append(subs, d.subs[k])
	}
	d.mu.Unlock()

	for _, notify := range subs {
		notify(change)
	}
}

type memElement struct {
	doc      *MemDocument
	id       string
	classes  map[string]struct{}
	attrs    map[string]string
	text     string
	value    string
	disabled bool
	hidden   bool
}

func (e *memElement) ID() string { return e.id }

func (e *memElement) AddClass(name string) {
	e.doc.mutate(e, ChangeClass, name, name, func() bool {
		if _, ok := e.classes[name]; ok {
			return false
		}
		e.classes[name] = struct{}{}
		return true
	})
}

func (e *memElement) RemoveClass(name string) {
	e.doc.mutate(e, ChangeClass, name, "", func() bool {
		if _, ok := e.classes[name]; !ok {
			return false
		}
		delete(e.classes, name)
		return true
	})
}

func (e *memElement) HasClass(name string) bool {
	e.doc.mu.RLock()
	defer e.doc.mu.RUnlock()
	_, ok := e.classes[name]
	return ok
}

func (e *memElement) SetAttr(name, value string) {
	e.doc.mutate(e, ChangeAttr, name, value, func() bool {
		if cur, ok := e.attrs[name]; ok && cur == value {
			return false
		}
		e.attrs[name] = value
		return true
	})
}

func (e *memElement) RemoveAttr(name string) {
	e.doc.mutate(e, ChangeAttr, name, "", func() bool {
		if _, ok := e.attrs[name]; !ok {
			return false
		}
		delete(e.attrs, name)
		return true
	})
}

func (e *memElement) Attr(name string) (string, bool) {
	e.doc.mu.RLock()
	defer e.doc.mu.RUnlock()
	v, ok := e.attrs[name]
	return v, ok
}

func (e *memElement) Text() string {
	e.doc.mu.RLock()
	defer e.doc.mu.RUnlock()
	return e.text
}

func (e *memElement) SetText(text string) {
	e.doc.mutate(e, ChangeText, "", text, func() bool {
		if e.text == text {
			return false
		}
		e.text = text
		return true
	})
}

func (e *memElement) Value() string {
	e.doc.mu.RLock()
	defer e.doc.mu.RUnlock()
	return e.value
}

func (e *memElement) SetValue(value string) {
	e.doc.mutate(e, ChangeValue, "", value, func() bool {
		if e.value == value {
			return false
		}
		e.value = value
		return true
	})
}

func (e *memElement) Disabled() bool {
	e.doc.mu.RLock()
	defer e.doc.mu.RUnlock()
	return e.disabled
}

func (e *memElement) SetDisabled(disabled bool) {
	e.doc.mutate(e, ChangeDisabled, "", strconv.FormatBool(disabled), func() bool {
		if e.disabled == disabled {
			return false
		}
		e.disabled = disabled
		return true
	})
}

func (e *memElement) Hidden() bool {
	e.doc.mu.RLock()
	defer e.doc.mu.RUnlock()
	return e.hidden
}

func (e *memElement) SetHidden(hidden bool) {
	e.doc.mutate(e, ChangeHidden, "", strconv.FormatBool(hidden), func() bool {
		if e.hidden == hidden {
			return false
		}
		e.hidden = hidden
		return true
	})
}

func (e *memElement) stateLocked() ElementState {
	classes := slices.Sorted(maps.Keys(e.classes))
	if classes == nil {
		classes = []string{}
	}
	return ElementState{
		Value:    e.value,
		Text:     e.text,
		Hidden:   e.hidden,
		Disabled: e.disabled,
		Classes:  classes,
		Attrs:    maps.Clone(e.attrs),
	}
}
