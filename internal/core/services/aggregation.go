package services

import (
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/ar_statements/internal/core/domain"
	"github.com/SscSPs/ar_statements/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// NoPartnerName labels documents without a partner.
const NoPartnerName = "No Partner"

// missingDate sorts undated documents first.
var missingDate = time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)

// GroupByPartnerCurrency groups outstanding documents by partner and, inside
// each partner, by document currency. Partners are ordered by
// case-insensitive name, currencies by name.
func GroupByPartnerCurrency(moves []domain.Move) []domain.PartnerGroup {
	type partnerAcc struct {
		key        domain.PartnerKey
		currencies map[int64]*domain.CurrencyBucket
	}

	partners := make(map[int64]*partnerAcc)
	for _, m := range moves {
		if isSettled(m) {
			continue
		}
		key := partnerKeyOf(m)
		acc, ok := partners[key.ID]
		if !ok {
			acc = &partnerAcc{key: key, currencies: make(map[int64]*domain.CurrencyBucket)}
			partners[key.ID] = acc
		}
		bucket, ok := acc.currencies[m.Currency.ID]
		if !ok {
			bucket = newCurrencyBucket(m.Currency)
			acc.currencies[m.Currency.ID] = bucket
		}
		addToCurrencyBucket(bucket, m)
	}

	groups := make([]domain.PartnerGroup, 0, len(partners))
	for _, acc := range partners {
		groups = append(groups, domain.PartnerGroup{
			Partner:    acc.key,
			Currencies: sortedCurrencyBuckets(acc.currencies),
		})
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return partnerLess(groups[i].Partner, groups[j].Partner)
	})
	return groups
}

// GroupByCurrency groups outstanding documents by currency alone, ordered by
// currency name. Used for single-customer statements.
func GroupByCurrency(moves []domain.Move) []domain.CurrencyBucket {
	buckets := make(map[int64]*domain.CurrencyBucket)
	for _, m := range moves {
		if isSettled(m) {
			continue
		}
		bucket, ok := buckets[m.Currency.ID]
		if !ok {
			bucket = newCurrencyBucket(m.Currency)
			buckets[m.Currency.ID] = bucket
		}
		addToCurrencyBucket(bucket, m)
	}
	return sortedCurrencyBuckets(buckets)
}

// GroupByPartner groups outstanding documents by partner regardless of
// currency. Subtotals are only meaningful when every document of a partner
// shares one currency.
func GroupByPartner(moves []domain.Move) []domain.PartnerBucket {
	buckets := make(map[int64]*domain.PartnerBucket)
	for _, m := range moves {
		if isSettled(m) {
			continue
		}
		key := partnerKeyOf(m)
		bucket, ok := buckets[key.ID]
		if !ok {
			bucket = &domain.PartnerBucket{Partner: key, SubtotalOriginal: decimal.Zero, SubtotalResidual: decimal.Zero}
			buckets[key.ID] = bucket
		}
		summary := summarize(m)
		bucket.SubtotalOriginal = bucket.SubtotalOriginal.Add(summary.OriginalAmount)
		bucket.SubtotalResidual = bucket.SubtotalResidual.Add(summary.ResidualAmount)
		bucket.Moves = append(bucket.Moves, summary)
	}

	out := make([]domain.PartnerBucket, 0, len(buckets))
	for _, b := range buckets {
		sortSummaries(b.Moves)
		out = append(out, *b)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return partnerLess(out[i].Partner, out[j].Partner)
	})
	return out
}

func isSettled(m domain.Move) bool {
	return m.Currency.IsZero(m.AmountResidual)
}

func partnerKeyOf(m domain.Move) domain.PartnerKey {
	name := m.PartnerName
	if m.PartnerID == 0 || name == "" {
		name = NoPartnerName
	}
	return domain.PartnerKey{ID: m.PartnerID, Name: name}
}

func partnerLess(a, b domain.PartnerKey) bool {
	an, bn := strings.ToLower(a.Name), strings.ToLower(b.Name)
	if an != bn {
		return an < bn
	}
	return a.ID < b.ID
}

func summarize(m domain.Move) domain.MoveSummary {
	original, residual := accounting.SignedTotals(m)
	return domain.MoveSummary{
		ID:             m.ID,
		InvoiceDate:    m.InvoiceDate,
		InvoiceDateDue: m.InvoiceDateDue,
		DisplayNumber:  m.DisplayNumber(),
		OriginalAmount: original,
		ResidualAmount: residual,
	}
}

func newCurrencyBucket(c domain.Currency) *domain.CurrencyBucket {
	return &domain.CurrencyBucket{Currency: c, SubtotalOriginal: decimal.Zero, SubtotalResidual: decimal.Zero}
}

func addToCurrencyBucket(bucket *domain.CurrencyBucket, m domain.Move) {
	summary := summarize(m)
	bucket.SubtotalOriginal = bucket.SubtotalOriginal.Add(summary.OriginalAmount)
	bucket.SubtotalResidual = bucket.SubtotalResidual.Add(summary.ResidualAmount)
	bucket.Moves = append(bucket.Moves, summary)
}

func sortedCurrencyBuckets(buckets map[int64]*domain.CurrencyBucket) []domain.CurrencyBucket {
	out := make([]domain.CurrencyBucket, 0, len(buckets))
	for _, b := range buckets {
		sortSummaries(b.Moves)
		out = append(out, *b)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Currency.Name != out[j].Currency.Name {
			return out[i].Currency.Name < out[j].Currency.Name
		}
		return out[i].Currency.ID < out[j].Currency.ID
	})
	return out
}

// sortSummaries orders documents by invoice date then id.
func sortSummaries(moves []domain.MoveSummary) {
	sort.SliceStable(moves, func(i, j int) bool {
		di, dj := dateOrMissing(moves[i].InvoiceDate), dateOrMissing(moves[j].InvoiceDate)
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return moves[i].ID < moves[j].ID
	})
}

func dateOrMissing(t *time.Time) time.Time {
	if t == nil {
		return missingDate
	}
	return *t
}
