// Package templates renders e-mail bodies from embedded templates.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"
)

//go:embed *.html *.txt
var templateFS embed.FS

// Renderer renders the HTML and plain-text bodies of an e-mail.
type Renderer struct {
	htmlTemplates *htmltemplate.Template
	textTemplates *texttemplate.Template
}

// NewRenderer parses every embedded template.
func NewRenderer() (*Renderer, error) {
	htmlTmpl, err := htmltemplate.ParseFS(templateFS, "*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML templates: %w", err)
	}

	textTmpl, err := texttemplate.ParseFS(templateFS, "*.txt")
	if err != nil {
		return nil, fmt.Errorf("failed to parse text templates: %w", err)
	}

	return &Renderer{
		htmlTemplates: htmlTmpl,
		textTemplates: textTmpl,
	}, nil
}

// Render renders both bodies of templateName. A missing text template yields an empty text body.
func (r *Renderer) Render(templateName string, data interface{}) (string, string, error) {
	var htmlBuf bytes.Buffer
	if err := r.htmlTemplates.ExecuteTemplate(&htmlBuf, templateName+".html", data); err != nil {
		return "", "", fmt.Errorf("failed to render HTML template %s: %w", templateName, err)
	}

	var textBuf bytes.Buffer
	if r.textTemplates.Lookup(templateName+".txt") == nil {
		return htmlBuf.String(), "", nil
	}
	if err := r.textTemplates.ExecuteTemplate(&textBuf, templateName+".txt", data); err != nil {
		return "", "", fmt.Errorf("failed to render text template %s: %w", templateName, err)
	}

	return htmlBuf.String(), textBuf.String(), nil
}

// Metric is one labelled figure of a report e-mail.
type Metric struct {
	Label string
	Value string
}

// ReportDeliveryData contains data for the report_delivery template.
type ReportDeliveryData struct {
	RecipientName    string
	EntrepreneurName string
	PeriodLabel      string
	Summary          string
	Highlights       []string
	Recommendations  []string
	Metrics          []Metric
	SentBy           string
}

// StaffWelcomeData contains data for the staff_welcome template.
type StaffWelcomeData struct {
	UserName string
	Role     string
	LoginURL string
}
