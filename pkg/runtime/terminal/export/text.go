package export

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/de-tools/factory-atlas/pkg/models/domain"
)

// TextReporter outputs reports to the console in a formatted text form
type TextReporter struct {
	writer io.Writer
}

// NewTextReporter creates a new console reporter
func NewTextReporter(writer io.Writer) *TextReporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &TextReporter{writer: writer}
}

func (c *TextReporter) Handle(report *domain.Report) error {
	tmpl := `
{{.Title}} {{.Period.Label}}
Period: {{.Period.Start.Format "2006-01-02"}} to {{.Period.End.Format "2006-01-02"}}
{{range .Sections}}
=== {{.Title}} ===
{{range $key, $value := .Summary}}{{$key}}: {{$value}}
{{end}}{{range .Details}}- {{.Name}}: {{value .Value}}{{if .Unit}} {{.Unit}}{{end}}
{{if .Description}}  {{.Description}}
{{end}}{{end}}{{end}}`

	t, err := template.New("report").Funcs(template.FuncMap{"value": formatValue}).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}
