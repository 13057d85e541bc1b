package render

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/SscSPs/ar_statements/internal/apperrors"
)

// Format is an output format a Renderer can produce.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatHTML Format = "html"
)

// ContentType returns the MIME type of f.
func (f Format) ContentType() string {
	switch f {
	case FormatPDF:
		return "application/pdf"
	case FormatHTML:
		return "text/html; charset=utf-8"
	default:
		return "application/octet-stream"
	}
}

// Align is the horizontal alignment of a column.
type Align string

const (
	AlignLeft  Align = "L"
	AlignRight Align = "R"
)

// Column describes one table column. Width is in millimetres and only used
// by paged formats; zero shares the remaining width evenly.
type Column struct {
	Label string
	Align Align
	Width float64
}

// Row is one table row. Level indents the first cell; Emphasis marks totals.
type Row struct {
	Cells    []string
	Level    int
	Emphasis bool
}

// Section is a titled table.
type Section struct {
	Heading string
	Rows    []Row
}

// Document is the engine-neutral description of a printable report.
type Document struct {
	Title    string
	Header   []string
	Columns  []Column
	Sections []Section
	Footer   string
}

// Engine exports documents. Export may return any binary-like value; the
// Renderer coerces it to bytes.
type Engine interface {
	Name() string
	Supports(f Format) bool
	Export(ctx context.Context, doc Document, f Format) (any, error)
}

// Renderer routes each format to the first engine that supports it.
// It is built once at startup from configuration.
type Renderer struct {
	name    string
	engines []Engine
}

// NewRenderer resolves the configured PDF engine.
//   - "fpdf": native PDF output plus HTML previews.
//   - "html": HTML only; PDF requests fail with ErrUnsupportedCapability.
func NewRenderer(engine string) (*Renderer, error) {
	switch engine {
	case "fpdf", "":
		return &Renderer{name: "fpdf", engines: []Engine{NewFPDFEngine(), NewHTMLEngine()}}, nil
	case "html":
		return &Renderer{name: "html", engines: []Engine{NewHTMLEngine()}}, nil
	default:
		return nil, fmt.Errorf("%w: unknown render engine %q", apperrors.ErrUnsupportedCapability, engine)
	}
}

// NewRendererWithEngines is used by tests to plug custom engines.
func NewRendererWithEngines(name string, engines ...Engine) *Renderer {
	return &Renderer{name: name, engines: engines}
}

// Name returns the configured engine name.
func (r *Renderer) Name() string {
	return r.name
}

// Supports reports whether any configured engine can export f.
func (r *Renderer) Supports(f Format) bool {
	return r.engineFor(f) != nil
}

// Render exports doc in format f.
func (r *Renderer) Render(ctx context.Context, doc Document, f Format) ([]byte, error) {
	engine := r.engineFor(f)
	if engine == nil {
		return nil, fmt.Errorf("%w: render engine %q cannot export %s", apperrors.ErrUnsupportedCapability, r.name, f)
	}
	out, err := engine.Export(ctx, doc, f)
	if err != nil {
		return nil, fmt.Errorf("%s export failed: %w", engine.Name(), err)
	}
	return ToBytes(out)
}

func (r *Renderer) engineFor(f Format) Engine {
	for _, e := range r.engines {
		if e.Supports(f) {
			return e
		}
	}
	return nil
}

// ToBytes coerces an engine result to binary content.
func ToBytes(v any) ([]byte, error) {
	switch out := v.(type) {
	case []byte:
		if out == nil {
			break
		}
		return out, nil
	case string:
		return []byte(out), nil
	case *bytes.Buffer:
		if out == nil {
			break
		}
		return out.Bytes(), nil
	case io.Reader:
		if out == nil {
			break
		}
		data, err := io.ReadAll(out)
		if err != nil {
			return nil, fmt.Errorf("%w: reading output: %v", apperrors.ErrMalformedOutput, err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("%w: cannot use %T as binary content", apperrors.ErrMalformedOutput, v)
}
