package services

import (
	"fmt"
	"math"
	"strconv"

	"vintedmanager/internal/domain"
	applog "vintedmanager/internal/log"
	"vintedmanager/internal/repos"
)

// SettingsService keeps the tax rate in memory next to its stored copy.
// The cached value only changes after the store accepted the new one.
type SettingsService struct {
	Settings *repos.SettingsRepo
	taxRate  float64
}

func NewSettingsService(settings *repos.SettingsRepo) *SettingsService {
	return &SettingsService{Settings: settings}
}

// Load reads the stored tax rate; an unset rate is 0.
func (s *SettingsService) Load() error {
	v, ok, err := s.Settings.Get(repos.KeyTaxRate)
	if err != nil {
		return fmt.Errorf("load tax rate: %w", err)
	}
	if !ok {
		s.taxRate = 0
		return nil
	}
	rate, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("stored tax rate %q: %w", v, err)
	}
	if !finite(rate) {
		return fmt.Errorf("stored tax rate %q: not a finite number", v)
	}
	s.taxRate = rate
	return nil
}

// TaxRate is a percentage, e.g. 20 for 20%.
func (s *SettingsService) TaxRate() float64 { return s.taxRate }

// SetTaxRate rejects NaN and infinities with a *domain.InputError.
func (s *SettingsService) SetTaxRate(pct float64) error {
	if !finite(pct) {
		return &domain.InputError{Field: "tax_rate", Value: strconv.FormatFloat(pct, 'g', -1, 64), Err: errNotFinite}
	}
	if err := s.Settings.Set(repos.KeyTaxRate, strconv.FormatFloat(pct, 'f', -1, 64)); err != nil {
		applog.Error("settings.tax_rate.fail", err, map[string]any{"tax_rate": pct})
		return fmt.Errorf("save tax rate: %w", err)
	}
	applog.Audit("settings.tax_rate", map[string]any{"old": s.taxRate, "new": pct})
	s.taxRate = pct
	return nil
}

func finite(v float64) bool { return !math.IsInf(v, 0) && !math.IsNaN(v) }
