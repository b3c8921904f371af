// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package tests

import (
	"context"
	"log"
	"testing"
	"time"

	"github.com/l3montree-dev/scrmguard/database"
	"github.com/l3montree-dev/scrmguard/shared"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

// InitDatabaseContainer starts a disposable postgres, applies the embedded
// migrations and returns a gorm handle to it. The test is skipped when no
// container provider is reachable or when running with -short.
func InitDatabaseContainer(t *testing.T) shared.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping database integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()

	dbName := "scrmguard"
	dbUser := "user"
	dbPassword := "password"

	postgresC, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		postgres.BasicWaitStrategies(),
	)
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(postgresC); err != nil {
			log.Printf("failed to terminate container: %s", err)
		}
	})
	if err != nil {
		t.Fatalf("failed to start postgres container: %s", err)
	}

	host, _ := postgresC.Host(ctx)
	port, _ := postgresC.MappedPort(ctx, "5432")

	db, pool, err := database.NewConnection(ctx, database.PoolConfig{
		MaxOpenConns:    5,
		ConnMaxIdleTime: 5 * time.Minute,
		ConnMaxLifetime: 30 * time.Minute,
		User:            dbUser,
		DBName:          dbName,
		Password:        dbPassword,
		Host:            host,
		Port:            port.Port(),
	})
	if err != nil {
		t.Fatalf("failed to connect to postgres container: %s", err)
	}
	t.Cleanup(pool.Close)

	if err := database.RunMigrationsWithDB(db); err != nil {
		t.Fatalf("failed to run migrations: %s", err)
	}

	return db
}
