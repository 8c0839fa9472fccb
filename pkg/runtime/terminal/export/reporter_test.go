package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/de-tools/factory-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *domain.Report {
	return &domain.Report{
		Title: "Efficiency metrics",
		Period: domain.TimePeriod{
			Start:    time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			End:      time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
			Label:    "2024-02",
			Duration: 29,
		},
		Sections: []domain.ReportSection{
			{
				Title:   "Production efficiency",
				Summary: map[string]interface{}{"Status": "good"},
				Details: []domain.ReportDetail{
					{Name: "Efficiency rate", Value: 92.456, Unit: "%", Description: "Produced over planned"},
				},
			},
			{Title: "Slow stages"},
		},
	}
}

func TestReporter_Handle(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewReporter(&buf).Handle(sampleReport()))

	out := buf.String()
	assert.Contains(t, out, "Efficiency metrics 2024-02 (29 days)")
	assert.Contains(t, out, "Period: 2024-02-01 to 2024-02-29")
	assert.Contains(t, out, "=== Production efficiency ===")
	assert.Contains(t, out, "Status: good")
	assert.Contains(t, out, "| Efficiency rate")
	assert.Contains(t, out, "92.46")
	assert.Contains(t, out, "=== Slow stages ===")
	// A section without details has no table.
	tail := out[strings.Index(out, "=== Slow stages ==="):]
	assert.NotContains(t, tail, "+---")
}

func TestReporter_ClipsLongValues(t *testing.T) {
	report := sampleReport()
	report.Sections[0].Details[0].Description = strings.Repeat("x", 200)

	var buf bytes.Buffer
	require.NoError(t, NewReporter(&buf).Handle(report))

	assert.Contains(t, buf.String(), strings.Repeat("x", 67)+"...")
	assert.NotContains(t, buf.String(), strings.Repeat("x", 71))
}

func TestTextReporter_Handle(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTextReporter(&buf).Handle(sampleReport()))

	out := buf.String()
	assert.Contains(t, out, "Efficiency metrics 2024-02")
	assert.Contains(t, out, "- Efficiency rate: 92.46 %")
	assert.Contains(t, out, "  Produced over planned")
	assert.NotContains(t, out, "+---")
}

func TestClip(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"longer than ten", 10, "longer ..."},
		{"tiny", 3, "tiny"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, clip(tt.in, tt.width), tt.in)
	}
}
