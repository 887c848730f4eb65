package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/rogerio-castellano/product-catalog/internal/config"
	"github.com/rogerio-castellano/product-catalog/internal/repo"
)

// Connect opens the configured product store and checks it is reachable.
func Connect(cfg config.Database) (*sql.DB, repo.Dialect, error) {
	if cfg.DSN == "" {
		return nil, repo.Dialect{}, fmt.Errorf("connection string for driver %q is empty", cfg.Driver)
	}

	dialect, err := repo.DialectFor(cfg.Driver)
	if err != nil {
		return nil, repo.Dialect{}, err
	}

	dsn := cfg.DSN
	if dialect.Name == repo.MySQL.Name {
		if dsn, err = mysqlDSN(dsn); err != nil {
			return nil, repo.Dialect{}, err
		}
	}

	db, err := sql.Open(dialect.DriverName, dsn)
	if err != nil {
		return nil, repo.Dialect{}, fmt.Errorf("failed to open database: %w", err)
	}

	if dialect.Name == repo.MySQL.Name {
		db.SetConnMaxLifetime(3 * time.Minute)
	}
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MaxOpenConns)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, repo.Dialect{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, dialect, nil
}

// mysqlDSN makes DATETIME columns scan into time.Time.
func mysqlDSN(dsn string) (string, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", fmt.Errorf("invalid mysql connection string: %w", err)
	}
	cfg.ParseTime = true
	return cfg.FormatDSN(), nil
}
