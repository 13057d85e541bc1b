package services_test

import (
	"testing"

	"github.com/SscSPs/ar_statements/internal/apperrors"
	"github.com/SscSPs/ar_statements/internal/core/services"
	"github.com/SscSPs/ar_statements/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReportOptions(t *testing.T) {
	opts, err := services.NewReportOptions(dto.OutstandingReportQuery{
		DateFrom:      "2024-01-01",
		DateTo:        "2024-12-31",
		PartnerIDs:    "7, 9",
		JournalIDs:    "3",
		ShowSubtotals: true,
		UnfoldedLines: []string{"partner~res.partner~7", "a,b"},
	}, 1)
	require.NoError(t, err)

	assert.Equal(t, "2024-01-01", opts.Criteria.DateFrom.Format("2006-01-02"))
	assert.Equal(t, "2024-12-31", opts.Criteria.DateTo.Format("2006-01-02"))
	assert.Equal(t, []int64{7, 9}, opts.Criteria.Partners.PartnerIDs)
	assert.Equal(t, []int64{1}, opts.Criteria.CompanyIDs)
	assert.Equal(t, []int64{3}, opts.Criteria.JournalIDs)
	assert.True(t, opts.ShowSubtotals)
	assert.False(t, opts.UnfoldAll)
	assert.Equal(t, []string{"partner~res.partner~7", "a", "b"}, opts.UnfoldedLines)
}

func TestNewReportOptions_SelectedPartnersFallback(t *testing.T) {
	opts, err := services.NewReportOptions(dto.OutstandingReportQuery{SelectedPartnerIDs: "5", CompanyIDs: "2,3"}, 1)
	require.NoError(t, err)

	assert.Equal(t, []int64{5}, opts.Criteria.Partners.PartnerIDs)
	assert.Equal(t, []int64{2, 3}, opts.Criteria.CompanyIDs)
	assert.Nil(t, opts.Criteria.DateFrom)
}

func TestNewReportOptions_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		query dto.OutstandingReportQuery
	}{
		{"bad date", dto.OutstandingReportQuery{DateFrom: "01/02/2024"}},
		{"bad partner id", dto.OutstandingReportQuery{PartnerIDs: "7,x"}},
		{"negative company id", dto.OutstandingReportQuery{CompanyIDs: "-1"}},
		{"zero journal id", dto.OutstandingReportQuery{JournalIDs: "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := services.NewReportOptions(tt.query, 0)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}

func TestParseIDList_Empty(t *testing.T) {
	ids, err := services.ParseIDList(" , ", "partner_ids")
	require.NoError(t, err)
	assert.Empty(t, ids)
}
