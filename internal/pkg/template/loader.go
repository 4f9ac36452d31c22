package template

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"time"

	appErrors "github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/pkg/errors"
)

//go:embed html/*.html
var templateFS embed.FS

var templates = htmltemplate.Must(htmltemplate.ParseFS(templateFS, "html/*.html"))

// Render renders the template for the given type with the supplied
// context and returns the subject and HTML body. The subject comes from
// the context's "subject" value when present, otherwise from the
// type's default. A "current_year" value is injected when absent.
func Render(t Type, context map[string]interface{}) (subject, body string, err error) {
	if !t.Valid() {
		return "", "", fmt.Errorf("%w: unknown template type %q", appErrors.ErrTemplate, t)
	}

	tmpl := templates.Lookup(string(t) + ".html")
	if tmpl == nil {
		return "", "", fmt.Errorf("%w: template %q not found", appErrors.ErrTemplate, t)
	}

	data := make(map[string]interface{}, len(context)+1)
	for k, v := range context {
		data[k] = v
	}
	if _, ok := data["current_year"]; !ok {
		data["current_year"] = time.Now().Year()
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", "", fmt.Errorf("%w: %v", appErrors.ErrTemplate, err)
	}

	subject = t.DefaultSubject()
	if s, ok := data["subject"].(string); ok && s != "" {
		subject = s
	}
	return subject, buf.String(), nil
}
