package services_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vintedmanager/internal/domain"
	"vintedmanager/internal/repos"
	"vintedmanager/internal/services"
)

func TestSettingsService_DefaultsToZero(t *testing.T) {
	f := setup(t)
	assert.Equal(t, 0.0, f.settings.TaxRate())
}

func TestSettingsService_SetPersistsAndCaches(t *testing.T) {
	f := setup(t)
	require.NoError(t, f.settings.SetTaxRate(21.5))
	assert.Equal(t, 21.5, f.settings.TaxRate())

	// a fresh service over the same db sees the stored value
	reloaded := services.NewSettingsService(repos.NewSettingsRepo(f.db))
	require.NoError(t, reloaded.Load())
	assert.Equal(t, 21.5, reloaded.TaxRate())

	assert.Len(t, f.logs.FilterMessage("settings.tax_rate").All(), 1)
}

func TestSettingsService_LoadRejectsGarbage(t *testing.T) {
	f := setup(t)
	require.NoError(t, repos.NewSettingsRepo(f.db).Set(repos.KeyTaxRate, "twenty"))
	assert.Error(t, f.settings.Load())
}

func TestSettingsService_FailedSaveKeepsCache(t *testing.T) {
	f := setup(t)
	require.NoError(t, f.settings.SetTaxRate(10))
	f.db.Close()

	assert.Error(t, f.settings.SetTaxRate(30))
	assert.Equal(t, 10.0, f.settings.TaxRate())
}

func TestSettingsService_RejectsNonFiniteRate(t *testing.T) {
	f := setup(t)
	require.NoError(t, f.settings.SetTaxRate(20))

	for _, bad := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		err := f.settings.SetTaxRate(bad)
		var ie *domain.InputError
		require.True(t, errors.As(err, &ie))
		assert.Equal(t, "tax_rate", ie.Field)
	}
	assert.Equal(t, 20.0, f.settings.TaxRate())

	v, _, err := repos.NewSettingsRepo(f.db).Get(repos.KeyTaxRate)
	require.NoError(t, err)
	assert.Equal(t, "20", v, "nothing written for a rejected rate")

	assert.NotPanics(t, func() {
		_, err = f.metrics.Actual(nil)
	})
	assert.NoError(t, err)
}

func TestSettingsService_LoadRejectsStoredInfinity(t *testing.T) {
	f := setup(t)
	require.NoError(t, repos.NewSettingsRepo(f.db).Set(repos.KeyTaxRate, "+Inf"))

	reloaded := services.NewSettingsService(repos.NewSettingsRepo(f.db))
	assert.Error(t, reloaded.Load())
	assert.Equal(t, 0.0, reloaded.TaxRate())
}
