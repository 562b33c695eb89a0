package email

import (
	"bytes"
	"fmt"
	"html"
	"html/template"
	"slices"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

var (
	strictPolicy *bluemonday.Policy
	bodyPolicy   *bluemonday.Policy
	markdown     goldmark.Markdown
	bodyTemplate *template.Template
	initOnce     sync.Once
)

func initRenderer() {
	initOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
		bodyPolicy = bluemonday.UGCPolicy()
		markdown = goldmark.New(goldmark.WithRendererOptions(gmhtml.WithHardWraps()))
		bodyTemplate = template.Must(template.New("message").Parse(messageLayout))
	})
}

const messageLayout = `<!doctype html>
<html><body>
<h2>{{.Title}}</h2>
<table>
{{- range .Rows}}
<tr><th align="left">{{.Name}}</th><td>{{.Value}}</td></tr>
{{- end}}
</table>
{{- if .Message}}
<div>{{.Message}}</div>
{{- end}}
</body></html>`

type messageRow struct {
	Name  string
	Value string
}

// sanitizeParams strips any markup from parameter values; provider templates
// only ever receive plain text.
func sanitizeParams(params map[string]string) map[string]string {
	initRenderer()
	clean := make(map[string]string, len(params))
	for k, v := range params {
		clean[k] = html.UnescapeString(strictPolicy.Sanitize(v))
	}
	return clean
}

// renderMessage builds HTML and plain-text bodies listing params. The
// "message" param is rendered as markdown with hard line breaks.
func renderMessage(title string, params map[string]string) (htmlBody, textBody string, err error) {
	initRenderer()
	params = sanitizeParams(params)

	keys := make([]string, 0, len(params))
	for k := range params {
		if k != "message" {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)

	rows := make([]messageRow, 0, len(keys))
	var text strings.Builder
	text.WriteString(title + "\n\n")
	for _, k := range keys {
		rows = append(rows, messageRow{Name: k, Value: params[k]})
		fmt.Fprintf(&text, "%s: %s\n", k, params[k])
	}

	var message template.HTML
	if msg := params["message"]; msg != "" {
		var buf bytes.Buffer
		if err := markdown.Convert([]byte(msg), &buf); err != nil {
			return "", "", fmt.Errorf("render message: %w", err)
		}
		message = template.HTML(bodyPolicy.Sanitize(buf.String())) //nolint:gosec // sanitized above
		text.WriteString("\n" + msg + "\n")
	}

	var out bytes.Buffer
	if err := bodyTemplate.Execute(&out, struct {
		Title   string
		Rows    []messageRow
		Message template.HTML
	}{Title: title, Rows: rows, Message: message}); err != nil {
		return "", "", fmt.Errorf("render layout: %w", err)
	}

	return out.String(), text.String(), nil
}

// replyTo returns the submitter address when it is usable as Reply-To.
func replyTo(params map[string]string) string {
	addr := strings.TrimSpace(params["email"])
	if requireAddress("reply-to", addr) != nil {
		return ""
	}
	return addr
}

// subjectFor picks the message subject for a submission.
func subjectFor(templateID string, params map[string]string) string {
	if s := strings.TrimSpace(params["subject"]); s != "" {
		return s
	}
	return "New submission: " + templateID
}
