package main

import (
	"context"
	"net/http"
	"os"
	"strings"

	"menuboard/bot"
	"menuboard/config"
	"menuboard/currency"
	"menuboard/db"
	"menuboard/httpapi"
	"menuboard/imagestore"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("main")

// InitLogger parses the level string and installs a leveled stdout backend.
func InitLogger(logLevel string) error {
	baseBackend := logging.NewLogBackend(os.Stdout, "", 0)
	format := logging.MustStringFormatter(
		`%{time:2006-01-02 15:04:05} %{level:.5s} %{module} %{message}`,
	)
	backendFormatter := logging.NewBackendFormatter(baseBackend, format)

	backendLeveled := logging.AddModuleLevel(backendFormatter)
	logLevelCode, err := logging.LogLevel(logLevel)
	if err != nil {
		return err
	}
	backendLeveled.SetLevel(logLevelCode, "")

	logging.SetBackend(backendLeveled)
	return nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %s", err)
	}
	if err := InitLogger(cfg.LogLevel); err != nil {
		log.Fatalf("logger: %s", err)
	}

	// Check for migrate subcommand
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		runMigrate(cfg)
		return
	}

	if err := db.Init(cfg.DB); err != nil {
		log.Fatalf("db: %s", err)
	}
	defer db.Close()

	// Optional auto-migration (useful in production and for fresh DBs).
	// Set AUTO_MIGRATE=1 (or "true") to enable.
	if v := strings.TrimSpace(os.Getenv("AUTO_MIGRATE")); v == "1" || strings.EqualFold(v, "true") {
		if err := applyMigrations(context.Background(), false); err != nil {
			log.Fatalf("migrate: %s", err)
		}
	}

	rates := currency.NewCache(cfg.Rates.URL, cfg.Rates.TTL, cfg.Rates.Timeout)

	images, err := imagestore.New(cfg.Images.Dir)
	if err != nil {
		log.Fatalf("imagestore: %s", err)
	}

	var notifier *bot.Notifier
	if cfg.Telegram.Token != "" && cfg.Telegram.AdminChatID != 0 {
		notifier, err = bot.NewNotifier(cfg.Telegram.Token, cfg.Telegram.AdminChatID)
		if err != nil {
			log.Fatalf("notifier: %s", err)
		}
		log.Infof("telegram notifier enabled for chat %d", cfg.Telegram.AdminChatID)
	}

	srv, err := httpapi.New(cfg, rates, images, notifier)
	if err != nil {
		log.Fatalf("httpapi: %s", err)
	}

	log.Infof("listening on %s", cfg.HTTP.Addr)
	if err := http.ListenAndServe(cfg.HTTP.Addr, srv.Handler()); err != nil {
		log.Fatalf("http: %s", err)
	}
}

func runMigrate(cfg *config.Config) {
	if err := db.Init(cfg.DB); err != nil {
		log.Fatalf("db: %s", err)
	}
	defer db.Close()

	if err := applyMigrations(context.Background(), true); err != nil {
		log.Fatalf("migrate: %s", err)
	}
}
