package db

import (
	"context"
	"fmt"
	"time"

	"menuboard/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

const connectTimeout = 5 * time.Second

var Pool *pgxpool.Pool

func Init(cfg config.DBConfig) error {
	poolCfg, err := poolConfig(cfg)
	if err != nil {
		return err
	}
	Pool, err = pgxpool.NewWithConfig(context.Background(), poolCfg)
	return err
}

func poolConfig(cfg config.DBConfig) (*pgxpool.Config, error) {
	connStr := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database,
	)
	poolCfg, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		return nil, fmt.Errorf("parse db config: %w", err)
	}
	poolCfg.ConnConfig.ConnectTimeout = connectTimeout
	return poolCfg, nil
}

func Close() {
	if Pool != nil {
		Pool.Close()
	}
}
