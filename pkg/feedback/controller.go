package feedback

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/dmitrymomot/formkit/pkg/form"
)

// Controller mutates the elements of one bound form.
type Controller struct {
	doc    Document
	layout Layout
}

// Bind checks that the form container, submit control and every required
// input of layout exist in doc. A missing one fails with ErrMissingElement
// and only affects this form.
func Bind(doc Document, layout Layout, required []string) (*Controller, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: document is nil", ErrMissingElement)
	}

	check := func(what, id string) error {
		if id == "" {
			return fmt.Errorf("%w: %s has no id", ErrMissingElement, what)
		}
		if _, ok := doc.Element(id); !ok {
			return fmt.Errorf("%w: %s #%s", ErrMissingElement, what, id)
		}
		return nil
	}

	if err := check("form", layout.Form); err != nil {
		return nil, err
	}
	if err := check("submit control", layout.Submit); err != nil {
		return nil, err
	}
	for _, field := range required {
		if err := check("field "+field, layout.FieldID(field)); err != nil {
			return nil, err
		}
	}

	return &Controller{doc: doc, layout: layout}, nil
}

// Layout returns the bound layout.
func (c *Controller) Layout() Layout {
	return c.layout
}

func (c *Controller) element(id string) (Element, bool) {
	if id == "" {
		return nil, false
	}
	return c.doc.Element(id)
}

// SetFieldInvalid marks the input of field as invalid or valid. The value is
// never touched.
func (c *Controller) SetFieldInvalid(field string, invalid bool) {
	el, ok := c.element(c.layout.FieldID(field))
	if !ok {
		return
	}
	if invalid {
		el.AddClass(ClassInvalid)
		el.SetAttr(AttrAriaInvalid, "true")
		return
	}
	el.RemoveClass(ClassInvalid)
	el.RemoveAttr(AttrAriaInvalid)
}

// ApplyValidation marks every field of names according to result, clearing
// marks left over from a previous attempt.
func (c *Controller) ApplyValidation(result form.ValidationResult, names []string) {
	for _, name := range names {
		c.SetFieldInvalid(name, result.IsInvalid(name))
	}
}

// ToggleBanner shows or hides the banner with the given id and keeps
// aria-hidden in sync. A non-empty message replaces the banner text.
func (c *Controller) ToggleBanner(bannerID string, show bool, message string) {
	el, ok := c.element(bannerID)
	if !ok {
		return
	}
	if message != "" {
		el.SetText(message)
	}
	el.SetHidden(!show)
	el.SetAttr(AttrAriaHidden, strconv.FormatBool(!show))
}

// ShowSuccess shows the success banner and hides the error banner.
func (c *Controller) ShowSuccess(message string) {
	c.ToggleBanner(c.layout.ErrorBanner, false, "")
	c.ToggleBanner(c.layout.SuccessBanner, true, message)
}

// ShowError shows the error banner and hides the success banner.
func (c *Controller) ShowError(message string) {
	c.ToggleBanner(c.layout.SuccessBanner, false, "")
	c.ToggleBanner(c.layout.ErrorBanner, true, message)
}

// HideBanners hides both banners.
func (c *Controller) HideBanners() {
	c.ToggleBanner(c.layout.SuccessBanner, false, "")
	c.ToggleBanner(c.layout.ErrorBanner, false, "")
}

// SetBusy shows the spinner and disables the submit control, or the reverse.
func (c *Controller) SetBusy(busy bool) {
	if el, ok := c.element(c.layout.Spinner); ok {
		el.SetHidden(!busy)
	}
	if el, ok := c.element(c.layout.Submit); ok {
		el.SetDisabled(busy)
	}
	if el, ok := c.element(c.layout.Form); ok {
		if busy {
			el.SetAttr(AttrAriaBusy, "true")
		} else {
			el.RemoveAttr(AttrAriaBusy)
		}
	}
}

// SetFeedback writes text into the inline feedback region.
func (c *Controller) SetFeedback(text string) {
	if el, ok := c.element(c.layout.Feedback); ok {
		el.SetText(text)
	}
}

// ReadFields returns the raw values of names. Missing inputs read as "".
func (c *Controller) ReadFields(names []string) form.Fields {
	fields := make(form.Fields, len(names))
	for _, name := range names {
		if el, ok := c.element(c.layout.FieldID(name)); ok {
			fields[name] = el.Value()
		} else {
			fields[name] = ""
		}
	}
	return fields
}

// WriteFields sets the inputs of names to their values in fields. Names
// missing from fields are emptied.
func (c *Controller) WriteFields(names []string, fields form.Fields) {
	for _, name := range names {
		if el, ok := c.element(c.layout.FieldID(name)); ok {
			el.SetValue(fields[name])
		}
	}
}

// ClearFields empties the inputs of names and drops their invalid marks.
func (c *Controller) ClearFields(names []string) {
	for _, name := range names {
		if el, ok := c.element(c.layout.FieldID(name)); ok {
			el.SetValue("")
		}
		c.SetFieldInvalid(name, false)
	}
}

// InvalidFields lists the fields currently marked invalid, sorted.
func (c *Controller) InvalidFields() []string {
	var out []string
	for name, id := range c.layout.Fields {
		if el, ok := c.element(id); ok && el.HasClass(ClassInvalid) {
			out = append(out, name)
		}
	}
	slices.Sort(out)
	return out
}

