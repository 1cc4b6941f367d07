package validate

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"vintedmanager/internal/domain"
)

var (
	ErrNotNumber = errors.New("not a number")
	ErrBadDate   = errors.New("expected DD/MM/YYYY")
	ErrBadMonth  = errors.New("expected MM/YYYY")
)

// accepted date inputs, tried in order
var dateLayouts = []string{domain.DisplayLayout, "2/1/2006", domain.DateLayout}

// Amount parses a money amount. Both "." and "," are accepted as the
// decimal separator. Values too large for a float64 are rejected.
func Amount(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if s == "" {
		return 0, ErrNotNumber
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, ErrNotNumber
	}
	v := d.InexactFloat64()
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, ErrNotNumber
	}
	return v, nil
}

// Date parses a calendar date. Empty input yields the zero time.
func Date(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrBadDate
}

// Month parses MM/YYYY into the metrics period starting that month.
func Month(s string) (domain.Period, error) {
	t, err := time.Parse("1/2006", strings.TrimSpace(s))
	if err != nil {
		return domain.Period{}, ErrBadMonth
	}
	return domain.MonthStarting(t.Year(), t.Month()), nil
}

// ID validates a product identifier.
func ID(s string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// Field maps an edit menu choice ("1".."11") to a field.
func Field(s string) (domain.Field, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	f := domain.Field(n)
	return f, f.Valid()
}

// Yes accepts the usual affirmative answers, French "o"/"oui" included.
func Yes(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "o", "oui", "y", "yes":
		return true
	}
	return false
}

// Change coerces a raw value for field f. An empty value clears the
// nullable sale fields.
func Change(f domain.Field, raw string) (domain.Change, error) {
	if !f.Valid() {
		return domain.Change{}, domain.ErrUnknownField
	}
	if f.Nullable() && strings.TrimSpace(raw) == "" {
		if f == domain.FieldSalePrice {
			return domain.ClearSalePrice(), nil
		}
		return domain.ClearSaleDate(), nil
	}

	switch f.Kind() {
	case domain.KindAmount:
		v, err := Amount(raw)
		if err != nil {
			return domain.Change{}, &domain.InputError{Field: f.Column(), Value: raw, Err: err}
		}
		switch f {
		case domain.FieldPurchasePrice:
			return domain.SetPurchasePrice(v), nil
		case domain.FieldEstimatedValue:
			return domain.SetEstimatedValue(v), nil
		default:
			return domain.SetSalePrice(v), nil
		}
	case domain.KindDate:
		t, err := Date(raw)
		if err != nil {
			return domain.Change{}, &domain.InputError{Field: f.Column(), Value: raw, Err: err}
		}
		if f == domain.FieldPurchaseDate {
			return domain.SetPurchaseDate(t), nil
		}
		return domain.SetSaleDate(t), nil
	}

	switch f {
	case domain.FieldType:
		return domain.SetType(raw), nil
	case domain.FieldBrand:
		return domain.SetBrand(raw), nil
	case domain.FieldSize:
		return domain.SetSize(raw), nil
	case domain.FieldColor:
		return domain.SetColor(raw), nil
	case domain.FieldCondition:
		return domain.SetCondition(raw), nil
	default:
		return domain.SetDescription(raw), nil
	}
}
