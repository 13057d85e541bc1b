package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/ar_statements/internal/core/domain"
	portsrepo "github.com/SscSPs/ar_statements/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ar_statements/internal/core/ports/services"
)

type CurrencyService struct {
	currencyRepo portsrepo.CurrencyReader
}

func NewCurrencyService(currencyRepo portsrepo.CurrencyReader) *CurrencyService {
	return &CurrencyService{currencyRepo: currencyRepo}
}

var _ portssvc.CurrencySvcFacade = (*CurrencyService)(nil)

func (s *CurrencyService) GetCurrencyByID(ctx context.Context, currencyID int64) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByID(ctx, currencyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get currency by id in service: %w", err)
	}
	return currency, nil
}

func (s *CurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies in service: %w", err)
	}
	// Return empty slice if no currencies found, not nil
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}
