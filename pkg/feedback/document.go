package feedback

// Element is a single node of a document.
type Element interface {
	ID() string

	AddClass(name string)
	RemoveClass(name string)
	HasClass(name string) bool

	SetAttr(name, value string)
	RemoveAttr(name string)
	Attr(name string) (string, bool)

	Text() string
	SetText(text string)

	Value() string
	SetValue(value string)

	Disabled() bool
	SetDisabled(disabled bool)

	Hidden() bool
	SetHidden(hidden bool)
}

// Document resolves elements by id.
type Document interface {
	Element(id string) (Element, bool)
}

// Attribute and class names the controller writes.
const (
	ClassInvalid    = "is-invalid"
	AttrAriaInvalid = "aria-invalid"
	AttrAriaHidden  = "aria-hidden"
	AttrAriaBusy    = "aria-busy"
)
