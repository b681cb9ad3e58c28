//go:build integration

package testutil

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Gunvolt24/gift_ledger/internal/repo/postgres"
)

// ApplyMigrationsGoose — накатывает встроенные миграции реестра на базу по DSN
// через тот же путь, что и сервис при старте.
func ApplyMigrationsGoose(dsn string) error {
	ctx := context.Background()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return fmt.Errorf("open pool: %w", err)
	}
	defer pool.Close()

	return postgres.Migrate(ctx, pool)
}
