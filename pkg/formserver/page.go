package formserver

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"slices"

	"github.com/dmitrymomot/formkit/pkg/feedback"
	"github.com/dmitrymomot/formkit/pkg/form"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(
	template.New("index.html").
		Funcs(template.FuncMap{"key": signalKey}).
		ParseFS(templateFS, "templates/index.html"),
)

type pageField struct {
	Name      string
	ID        string
	Label     string
	Type      string
	Required  bool
	Multiline bool
}

type pageForm struct {
	Kind   form.Kind
	Title  string
	Submit string
	Layout feedback.Layout
	Fields []pageField
}

type pageData struct {
	Signals string
	Forms   []pageForm
}

var fieldInputs = map[string]pageField{
	form.FieldName:    {Label: "Name", Type: "text"},
	form.FieldEmail:   {Label: "Email", Type: "email"},
	form.FieldPhone:   {Label: "Phone", Type: "tel"},
	form.FieldCompany: {Label: "Company", Type: "text"},
	form.FieldSubject: {Label: "Subject", Type: "text"},
	form.FieldMessage: {Label: "Message", Type: "text", Multiline: true},
	form.FieldRef:     {Type: "hidden"},
}

var formCopy = map[form.Kind][2]string{
	form.Contact:    {"Get in touch", "Send message"},
	form.Newsletter: {"Subscribe to our newsletter", "Subscribe"},
}

// pageModel builds the template data for one page view. ref prefills the
// hidden contact reference field.
func (s *Server) pageModel(instanceID, ref string) (pageData, error) {
	signals := map[string]any{signalInstance: instanceID}
	ui := make(map[string]feedback.ElementState)
	forms := make([]pageForm, 0, len(kinds))

	for _, kind := range kinds {
		layout := s.layouts.Get(kind)
		required := form.RequiredFields(kind)

		values := make(map[string]string)
		fields := make([]pageField, 0, len(layout.Fields))
		for _, name := range form.FieldNames(kind) {
			id := layout.FieldID(name)
			if id == "" {
				continue
			}
			f := fieldInputs[name]
			f.Name, f.ID = name, id
			f.Required = slices.Contains(required, name)
			fields = append(fields, f)
			values[name] = ""
		}
		if kind == form.Contact {
			values[form.FieldRef] = ref
		}
		signals[kind.String()] = values

		for key, st := range uiSignals(layout, feedback.NewMemDocumentFor(layout).Signals()) {
			ui[key] = st
		}

		text := formCopy[kind]
		forms = append(forms, pageForm{Kind: kind, Title: text[0], Submit: text[1], Layout: layout, Fields: fields})
	}
	signals[signalUI] = ui

	raw, err := json.Marshal(signals)
	if err != nil {
		return pageData{}, fmt.Errorf("encode page signals: %w", err)
	}
	return pageData{Signals: string(raw), Forms: forms}, nil
}
