package draft

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"
	"time"

	"legaldesk/internal/domain/record"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var boilerplate = template.Must(
	template.New("notice.tmpl").
		Funcs(template.FuncMap{"upper": strings.ToUpper}).
		ParseFS(templateFS, "templates/notice.tmpl"),
)

// TemplateInput identifies the advocate the boilerplate is written for.
type TemplateInput struct {
	Category     Category
	DocType      string
	Advocate     string
	EnrollmentID string
	Date         time.Time
}

type templateData struct {
	CourtHeader  string
	Date         string
	Advocate     string
	EnrollmentID string
	DocType      string
	Category     string
}

// Template renders the boilerplate for a category/document type pair.
func Template(in TemplateInput) (string, error) {
	if err := Validate(in.Category, in.DocType); err != nil {
		return "", err
	}
	info, _ := lookup(in.Category)

	var buf bytes.Buffer
	err := boilerplate.Execute(&buf, templateData{
		CourtHeader:  info.CourtHeader,
		Date:         in.Date.Format(record.DateLayout),
		Advocate:     in.Advocate,
		EnrollmentID: in.EnrollmentID,
		DocType:      in.DocType,
		Category:     string(in.Category),
	})
	if err != nil {
		return "", fmt.Errorf("execute template: %w", err)
	}

	return strings.TrimRight(buf.String(), "\n"), nil
}
