package repo

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// CreateSchema creates the Products table when it is missing.
func CreateSchema(ctx context.Context, db *sql.DB, dialect Dialect) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if _, err := db.ExecContext(ctx, dialect.schema); err != nil {
		return fmt.Errorf("failed to create products table: %w", err)
	}
	return nil
}
