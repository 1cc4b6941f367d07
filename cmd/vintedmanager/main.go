package main

import (
	"log"
	"os"

	"vintedmanager/internal/cli"
	"vintedmanager/internal/config"
	applog "vintedmanager/internal/log"
	"vintedmanager/internal/repos"
	"vintedmanager/internal/services"
)

func main() {
	cfg := config.Load()

	if _, err := applog.Setup(cfg.LogLevel, cfg.LogFile); err != nil {
		log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
	}
	defer applog.Sync()

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	prodRepo := repos.NewProductRepo(db)
	settingsSvc := services.NewSettingsService(repos.NewSettingsRepo(db))
	if err := settingsSvc.Load(); err != nil {
		log.Fatal(err)
	}
	invSvc := services.NewInventoryService(prodRepo)
	metricsSvc := services.NewMetricsService(prodRepo, settingsSvc)

	applog.Info("app.start", map[string]any{"db": cfg.DBDSN, "tax_rate": settingsSvc.TaxRate()})
	app := cli.New(invSvc, settingsSvc, metricsSvc, cfg.Currency, os.Stdin, os.Stdout)
	if err := app.Run(); err != nil {
		applog.Error("app.input", err, nil)
		log.Print(err)
	}
	applog.Info("app.stop", nil)
}
