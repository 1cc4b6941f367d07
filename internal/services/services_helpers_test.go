package services_test

import (
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"vintedmanager/internal/domain"
	applog "vintedmanager/internal/log"
	"vintedmanager/internal/repos"
	"vintedmanager/internal/services"
)

type fixture struct {
	db       *sqlx.DB
	inv      *services.InventoryService
	settings *services.SettingsService
	metrics  *services.MetricsService
	logs     *observer.ObservedLogs
}

func setup(t *testing.T) *fixture {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	core, logs := observer.New(zap.InfoLevel)
	applog.Use(zap.New(core))
	t.Cleanup(func() { applog.Use(nil) })

	prods := repos.NewProductRepo(db)
	settings := services.NewSettingsService(repos.NewSettingsRepo(db))
	require.NoError(t, settings.Load())
	return &fixture{
		db:       db,
		inv:      services.NewInventoryService(prods),
		settings: settings,
		metrics:  services.NewMetricsService(prods, settings),
		logs:     logs,
	}
}

func form(price, estimate string) services.ProductForm {
	return services.ProductForm{
		Type:           "sneakers",
		Brand:          "Nike",
		Size:           "42",
		Color:          "white",
		Condition:      "like new",
		Description:    "Air Force 1",
		PurchaseDate:   "20/05/2024",
		PurchasePrice:  price,
		EstimatedValue: estimate,
	}
}

func (f *fixture) create(t *testing.T, price, estimate string) int64 {
	t.Helper()
	id, err := f.inv.Create(form(price, estimate))
	require.NoError(t, err)
	return id
}

func (f *fixture) sell(t *testing.T, id int64, price, date string) {
	t.Helper()
	require.NoError(t, f.inv.UpdateFromInput(id, domain.FieldSalePrice, price))
	require.NoError(t, f.inv.UpdateFromInput(id, domain.FieldSaleDate, date))
}
