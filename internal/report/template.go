package report

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/pixil98/go-saveinject/internal/session"
)

// templateFuncs provides utility functions for templates.
var templateFuncs = sprig.TxtFuncMap()

// DefaultSummary is used when no summary template is configured.
const DefaultSummary = `Injected {{ .SlotsWritten }} items.
{{- if .Conflicts }} Overwrote slots {{ .Overwritten }}.{{ end }}
{{- if .BackupCreated }} Backup written to {{ .BackupPath }}.{{ end }}`

// Expand expands a template string using the provided data.
func Expand(tmplStr string, data any) (string, error) {
	tmpl, err := template.New("").Funcs(templateFuncs).Parse(tmplStr)
	if err != nil {
		return "", fmt.Errorf("parsing template: %w", err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, data)
	if err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}

	return buf.String(), nil
}

// Summary is the data available to summary templates.
type Summary struct {
	session.CommitReport
	// Overwritten is Conflicts with consecutive slots collapsed.
	Overwritten string
}

// Summarize renders a commit report with tmplStr, or DefaultSummary when
// tmplStr is empty.
func Summarize(tmplStr string, rep session.CommitReport) (string, error) {
	if tmplStr == "" {
		tmplStr = DefaultSummary
	}
	return Expand(tmplStr, Summary{
		CommitReport: rep,
		Overwritten:  session.FormatSlots(rep.Conflicts),
	})
}
