package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/go-pdf/fpdf"
)

const (
	pageMargin  = 10.0
	rowHeight   = 6.0
	indentWidth = 4.0
)

type fpdfEngine struct{}

// NewFPDFEngine returns an engine that draws A4 PDFs with the core fonts.
func NewFPDFEngine() Engine {
	return fpdfEngine{}
}

func (fpdfEngine) Name() string { return "fpdf" }

func (fpdfEngine) Supports(f Format) bool { return f == FormatPDF }

func (fpdfEngine) Export(ctx context.Context, doc Document, f Format) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, 15)
	pdf.SetTitle(doc.Title, true)
	pdf.AliasNbPages("")
	// Core fonts are cp1252; translate so symbols such as € survive.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "I", 8)
		footer := fmt.Sprintf("Page %d/{nb}", pdf.PageNo())
		if doc.Footer != "" {
			footer = tr(doc.Footer) + " - " + footer
		}
		pdf.CellFormat(0, 8, footer, "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, tr(doc.Title), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, line := range doc.Header {
		pdf.CellFormat(0, 5, tr(line), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pageWidth, _ := pdf.GetPageSize()
	widths := columnWidths(doc.Columns, pageWidth-2*pageMargin)

	for _, section := range doc.Sections {
		if section.Heading != "" {
			pdf.SetFont("Helvetica", "B", 11)
			pdf.CellFormat(0, 8, tr(section.Heading), "", 1, "L", false, 0, "")
		}

		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		for i, col := range doc.Columns {
			pdf.CellFormat(widths[i], rowHeight, tr(col.Label), "B", 0, string(alignOf(col)), true, 0, "")
		}
		pdf.Ln(-1)

		for _, row := range section.Rows {
			style := ""
			border := ""
			if row.Emphasis {
				style = "B"
				border = "T"
			}
			pdf.SetFont("Helvetica", style, 9)
			for i, col := range doc.Columns {
				text := ""
				if i < len(row.Cells) {
					text = tr(row.Cells[i])
				}
				w := widths[i]
				if i == 0 && row.Level > 1 {
					indent := float64(row.Level-1) * indentWidth
					pdf.CellFormat(indent, rowHeight, "", border, 0, "L", false, 0, "")
					w -= indent
				}
				pdf.CellFormat(w, rowHeight, text, border, 0, string(alignOf(col)), false, 0, "")
			}
			pdf.Ln(-1)
		}
		pdf.Ln(4)
	}

	if err := pdf.Error(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return &buf, nil
}

func alignOf(c Column) Align {
	if c.Align == "" {
		return AlignLeft
	}
	return c.Align
}

func columnWidths(cols []Column, total float64) []float64 {
	widths := make([]float64, len(cols))
	remaining := total
	flexible := 0
	for i, c := range cols {
		if c.Width > 0 {
			widths[i] = c.Width
			remaining -= c.Width
		} else {
			flexible++
		}
	}
	if flexible > 0 && remaining > 0 {
		share := remaining / float64(flexible)
		for i, c := range cols {
			if c.Width <= 0 {
				widths[i] = share
			}
		}
	}
	return widths
}
