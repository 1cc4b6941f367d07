package validate_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vintedmanager/internal/domain"
	"vintedmanager/internal/validate"
)

func TestAmount(t *testing.T) {
	cases := map[string]float64{
		"10":     10,
		"12.5":   12.5,
		"12,5":   12.5,
		" 3,99 ": 3.99,
		"0":      0,
	}
	for in, want := range cases {
		got, err := validate.Amount(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"", "abc", "1.2.3", "12€", "1e400", "-1e400", "1,5e309"} {
		_, err := validate.Amount(in)
		assert.ErrorIs(t, err, validate.ErrNotNumber, in)
	}
}

func TestAmount_LargeButFinite(t *testing.T) {
	v, err := validate.Amount("1.7e308")
	require.NoError(t, err)
	assert.Equal(t, 1.7e308, v)
}

func TestDate(t *testing.T) {
	want := time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)
	for _, in := range []string{"05/06/2024", "5/6/2024", "2024-06-05"} {
		got, err := validate.Date(in)
		require.NoError(t, err, in)
		assert.True(t, want.Equal(got), in)
	}

	got, err := validate.Date("")
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	_, err = validate.Date("31/02/2024")
	assert.ErrorIs(t, err, validate.ErrBadDate)
	_, err = validate.Date("June 5th")
	assert.ErrorIs(t, err, validate.ErrBadDate)
}

func TestMonth(t *testing.T) {
	p, err := validate.Month("06/2024")
	require.NoError(t, err)
	assert.Equal(t, domain.MonthStarting(2024, time.June), p)

	p, err = validate.Month("6/2024")
	require.NoError(t, err)
	assert.Equal(t, time.June, p.Start.Month())

	_, err = validate.Month("13/2024")
	assert.ErrorIs(t, err, validate.ErrBadMonth)
}

func TestIDAndField(t *testing.T) {
	id, ok := validate.ID(" 42 ")
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)
	_, ok = validate.ID("0")
	assert.False(t, ok)
	_, ok = validate.ID("x")
	assert.False(t, ok)

	f, ok := validate.Field("10")
	assert.True(t, ok)
	assert.Equal(t, domain.FieldSalePrice, f)
	_, ok = validate.Field("12")
	assert.False(t, ok)

	assert.True(t, validate.Yes("o"))
	assert.True(t, validate.Yes("Y"))
	assert.False(t, validate.Yes("n"))
	assert.False(t, validate.Yes(""))
}

func TestChange(t *testing.T) {
	c, err := validate.Change(domain.FieldSalePrice, "25,50")
	require.NoError(t, err)
	assert.Equal(t, domain.SetSalePrice(25.5), c)

	c, err = validate.Change(domain.FieldSaleDate, "01/06/2024")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", c.Value())

	c, err = validate.Change(domain.FieldSalePrice, "  ")
	require.NoError(t, err)
	assert.Equal(t, domain.ClearSalePrice(), c)

	c, err = validate.Change(domain.FieldColor, "navy")
	require.NoError(t, err)
	assert.Equal(t, domain.SetColor("navy"), c)

	_, err = validate.Change(domain.FieldPurchasePrice, "cheap")
	var ie *domain.InputError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, "purchase_price", ie.Field)
	assert.ErrorIs(t, err, validate.ErrNotNumber)

	_, err = validate.Change(domain.FieldPurchaseDate, "yesterday")
	assert.ErrorIs(t, err, validate.ErrBadDate)

	_, err = validate.Change(domain.Field(99), "x")
	assert.ErrorIs(t, err, domain.ErrUnknownField)
}
