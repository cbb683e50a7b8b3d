// Package pgtest starts a disposable PostgreSQL container for integration suites.
package pgtest

import (
	"context"
	"fmt"
	"strings"
	"time"

	"dietrack/internal/adapters/out/postgres"

	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Start runs postgres:15-alpine, connects GORM to it and migrates the schema.
func Start(ctx context.Context) (*pgcontainer.PostgresContainer, *gorm.DB, error) {
	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, nil, err
	}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return container, nil, err
	}

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return container, nil, err
	}

	if err = postgres.Migrate(db); err != nil {
		return container, nil, fmt.Errorf("migrate: %w", err)
	}
	return container, db, nil
}

// Truncate empties every table of the schema.
func Truncate(db *gorm.DB) error {
	return db.Exec("TRUNCATE TABLE " + strings.Join(postgres.Tables(), ", ") + " CASCADE").Error
}
