package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/ar_statements/internal/apperrors"
	"github.com/SscSPs/ar_statements/internal/core/domain"
	"github.com/SscSPs/ar_statements/internal/dto"
)

const queryDateLayout = "2006-01-02"

// NewReportOptions initializes report options from query parameters.
// Partner ids come from partner_ids and fall back to selected_partner_ids.
// When no company is given the default company is used.
func NewReportOptions(q dto.OutstandingReportQuery, defaultCompanyID int64) (domain.ReportOptions, error) {
	var opts domain.ReportOptions
	var err error

	if opts.Criteria.DateFrom, err = ParseQueryDate(q.DateFrom, "date_from"); err != nil {
		return opts, err
	}
	if opts.Criteria.DateTo, err = ParseQueryDate(q.DateTo, "date_to"); err != nil {
		return opts, err
	}

	rawPartners := q.PartnerIDs
	if strings.TrimSpace(rawPartners) == "" {
		rawPartners = q.SelectedPartnerIDs
	}
	if opts.Criteria.Partners.PartnerIDs, err = ParseIDList(rawPartners, "partner_ids"); err != nil {
		return opts, err
	}
	if opts.Criteria.CompanyIDs, err = ParseIDList(q.CompanyIDs, "company_ids"); err != nil {
		return opts, err
	}
	if len(opts.Criteria.CompanyIDs) == 0 && defaultCompanyID > 0 {
		opts.Criteria.CompanyIDs = []int64{defaultCompanyID}
	}
	if opts.Criteria.JournalIDs, err = ParseIDList(q.JournalIDs, "journal_ids"); err != nil {
		return opts, err
	}

	opts.UnfoldAll = q.UnfoldAll
	opts.ShowSubtotals = q.ShowSubtotals
	for _, raw := range q.UnfoldedLines {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				opts.UnfoldedLines = append(opts.UnfoldedLines, id)
			}
		}
	}
	return opts, nil
}

// ParseQueryDate parses an optional YYYY-MM-DD query value.
func ParseQueryDate(raw, field string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(queryDateLayout, raw)
	if err != nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("%s must be a date in YYYY-MM-DD format", field))
	}
	return &t, nil
}

// ParseIDList parses a comma-separated list of positive ids.
func ParseIDList(raw, field string) ([]int64, error) {
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil || id <= 0 {
			return nil, apperrors.NewValidationError(fmt.Sprintf("%s contains an invalid id %q", field, part))
		}
		ids = append(ids, id)
	}
	return ids, nil
}
