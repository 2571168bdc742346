package db

import (
	"testing"

	"menuboard/config"
)

func TestPoolConfig(t *testing.T) {
	cfg, err := poolConfig(config.DBConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "menuboard",
		Password: "secret",
		Database: "menuboard",
	})
	if err != nil {
		t.Fatalf("poolConfig: %v", err)
	}
	if cfg.ConnConfig.ConnectTimeout != connectTimeout {
		t.Errorf("ConnectTimeout = %v, want %v", cfg.ConnConfig.ConnectTimeout, connectTimeout)
	}
	if cfg.ConnConfig.Host != "localhost" {
		t.Errorf("Host = %q, want %q", cfg.ConnConfig.Host, "localhost")
	}
	if cfg.ConnConfig.Database != "menuboard" {
		t.Errorf("Database = %q, want %q", cfg.ConnConfig.Database, "menuboard")
	}
}
