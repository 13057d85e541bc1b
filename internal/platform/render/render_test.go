package render

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/SscSPs/ar_statements/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEngine struct {
	out any
	err error
}

func (stubEngine) Name() string           { return "stub" }
func (stubEngine) Supports(f Format) bool { return f == FormatPDF }
func (s stubEngine) Export(context.Context, Document, Format) (any, error) {
	return s.out, s.err
}

func sampleDocument() Document {
	return Document{
		Title:  "Customer Statement",
		Header: []string{"Acme Corp", "Printed 07/03/2024"},
		Columns: []Column{
			{Label: "Invoice Date", Width: 30},
			{Label: "Number"},
			{Label: "Balance", Align: AlignRight, Width: 40},
		},
		Sections: []Section{{
			Heading: "EUR",
			Rows: []Row{
				{Cells: []string{"01/03/2024", "INV/2024/0001", "100.00 €"}},
				{Cells: []string{"", "Total", "100.00 €"}, Emphasis: true},
			},
		}},
	}
}

func TestNewRenderer_UnknownEngine(t *testing.T) {
	_, err := NewRenderer("wkhtmltopdf")
	assert.True(t, errors.Is(err, apperrors.ErrUnsupportedCapability))
}

func TestRenderer_FPDFProducesPDF(t *testing.T) {
	r, err := NewRenderer("fpdf")
	require.NoError(t, err)

	out, err := r.Render(context.Background(), sampleDocument(), FormatPDF)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestRenderer_HTMLEscapesContent(t *testing.T) {
	r, err := NewRenderer("fpdf")
	require.NoError(t, err)

	doc := sampleDocument()
	doc.Header = []string{"<script>Acme</script>"}
	out, err := r.Render(context.Background(), doc, FormatHTML)
	require.NoError(t, err)

	html := string(out)
	assert.Contains(t, html, "INV/2024/0001")
	assert.Contains(t, html, `class="total"`)
	assert.NotContains(t, html, "<script>Acme")
}

func TestRenderer_HTMLEngineCannotExportPDF(t *testing.T) {
	r, err := NewRenderer("html")
	require.NoError(t, err)

	assert.False(t, r.Supports(FormatPDF))
	_, err = r.Render(context.Background(), sampleDocument(), FormatPDF)
	assert.True(t, errors.Is(err, apperrors.ErrUnsupportedCapability))
	assert.Contains(t, err.Error(), `"html"`)
}

func TestRenderer_CoercesEngineOutput(t *testing.T) {
	tests := []struct {
		name string
		out  any
		want string
	}{
		{"bytes", []byte("pdf"), "pdf"},
		{"string", "pdf", "pdf"},
		{"buffer", bytes.NewBufferString("pdf"), "pdf"},
		{"reader", strings.NewReader("pdf"), "pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRendererWithEngines("stub", stubEngine{out: tt.out})
			got, err := r.Render(context.Background(), Document{}, FormatPDF)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestRenderer_MalformedOutput(t *testing.T) {
	for _, out := range []any{nil, 42, map[string]string{}} {
		r := NewRendererWithEngines("stub", stubEngine{out: out})
		_, err := r.Render(context.Background(), Document{}, FormatPDF)
		assert.True(t, errors.Is(err, apperrors.ErrMalformedOutput), "%T", out)
	}
}

func TestRenderer_ExportErrorPropagates(t *testing.T) {
	r := NewRendererWithEngines("stub", stubEngine{err: errors.New("font missing")})
	_, err := r.Render(context.Background(), Document{}, FormatPDF)
	assert.ErrorContains(t, err, "font missing")
}

func TestColumnWidths(t *testing.T) {
	w := columnWidths([]Column{{Width: 30}, {}, {}}, 190)
	assert.InDeltaSlice(t, []float64{30, 80, 80}, w, 0.001)
}
