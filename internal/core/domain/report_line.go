package domain

import "github.com/shopspring/decimal"

// ReportCell is one formatted column value of a report line.
type ReportCell struct {
	Name     string           `json:"name"`
	NoFormat *decimal.Decimal `json:"no_format,omitempty"`
	Class    string           `json:"class,omitempty"`
}

// ReportLine is a display row of the foldable outstanding report.
type ReportLine struct {
	ID           string       `json:"id"`
	ParentID     string       `json:"parent_id,omitempty"`
	Name         string       `json:"name"`
	Level        int          `json:"level"`
	Unfoldable   bool         `json:"unfoldable"`
	Unfolded     bool         `json:"unfolded"`
	CaretOptions string       `json:"caret_options,omitempty"`
	Columns      []ReportCell `json:"columns"`
}

// ReportOptions carry the filters and fold state of an outstanding report request.
type ReportOptions struct {
	Criteria      SelectionCriteria
	UnfoldAll     bool
	UnfoldedLines []string
	ShowSubtotals bool
}

// IsUnfolded reports whether lineID is expanded under these options.
func (o ReportOptions) IsUnfolded(lineID string) bool {
	if o.UnfoldAll {
		return true
	}
	for _, id := range o.UnfoldedLines {
		if id == lineID {
			return true
		}
	}
	return false
}

// OutstandingReport is the rendered interactive report.
type OutstandingReport struct {
	Title   string       `json:"title"`
	Columns []string     `json:"columns"`
	Lines   []ReportLine `json:"lines"`
}
