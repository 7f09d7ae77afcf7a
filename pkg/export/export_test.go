package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDataset() Dataset {
	return Dataset{
		Title:   "Debtors",
		Headers: []string{"Full Name", "Debt"},
		Rows: []map[string]string{
			{"Full Name": "Alice", "Debt": "120.50"},
			{"Full Name": "Bob", "Debt": "80"},
		},
	}
}

func TestCSVExporterRender(t *testing.T) {
	exporter := NewCSVExporter()

	out, err := exporter.Render(sampleDataset())
	require.NoError(t, err)

	assert.Equal(t, "Full Name,Debt\nAlice,120.50\nBob,80\n", string(out))
	assert.Equal(t, "text/csv", exporter.ContentType())
	assert.Equal(t, "csv", exporter.Extension())
}

func TestCSVExporterRequiresHeaders(t *testing.T) {
	_, err := NewCSVExporter().Render(Dataset{})
	assert.Error(t, err)
}

func TestPDFExporterRender(t *testing.T) {
	exporter := NewPDFExporter()

	out, err := exporter.Render(sampleDataset())
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
	assert.Equal(t, "application/pdf", exporter.ContentType())
}

func TestForFormat(t *testing.T) {
	exporter, err := ForFormat("")
	require.NoError(t, err)
	assert.IsType(t, &CSVExporter{}, exporter)

	exporter, err = ForFormat(FormatPDF)
	require.NoError(t, err)
	assert.IsType(t, &PDFExporter{}, exporter)

	_, err = ForFormat("xlsx")
	assert.Error(t, err)
}
