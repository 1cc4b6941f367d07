package services

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"vintedmanager/internal/domain"
	"vintedmanager/internal/repos"
)

var (
	hundred      = decimal.NewFromInt(100)
	errNotFinite = errors.New("not a finite number")
)

// MetricsService computes revenue and profit straight from the products
// table on every call.
type MetricsService struct {
	Prods    *repos.ProductRepo
	Settings *SettingsService
}

func NewMetricsService(prods *repos.ProductRepo, settings *SettingsService) *MetricsService {
	return &MetricsService{Prods: prods, Settings: settings}
}

// Actual covers sold products, limited to sales inside period when it is
// not nil.
func (s *MetricsService) Actual(period *domain.Period) (domain.Metrics, error) {
	t, err := s.Prods.SoldTotals(period)
	if err != nil {
		return domain.Metrics{}, fmt.Errorf("actual metrics: %w", err)
	}
	return s.metrics(t), nil
}

// Estimated projects the unsold stock at its estimated value.
func (s *MetricsService) Estimated() (domain.Metrics, error) {
	t, err := s.Prods.StockTotals()
	if err != nil {
		return domain.Metrics{}, fmt.Errorf("estimated metrics: %w", err)
	}
	return s.metrics(t), nil
}

func (s *MetricsService) metrics(t repos.Totals) domain.Metrics {
	return domain.Metrics{
		Revenue:     t.Revenue,
		GrossProfit: t.Gross,
		NetProfit:   NetOf(t.Gross, s.Settings.TaxRate()),
	}
}

// NetOf applies a tax rate given in percent: gross * (1 - pct/100).
// Sums that overflowed to an infinity are carried through in plain float
// arithmetic, since decimal cannot represent them.
func NetOf(gross, pct float64) float64 {
	if !finite(gross) || !finite(pct) {
		return gross * (1 - pct/100)
	}
	keep := decimal.NewFromInt(1).Sub(decimal.NewFromFloat(pct).Div(hundred))
	return decimal.NewFromFloat(gross).Mul(keep).InexactFloat64()
}
