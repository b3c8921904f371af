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

package database

import (
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

func newMigrator(gormDB *gorm.DB) (*migrate.Migrate, error) {
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	driver, err := postgres.WithInstance(sqlDB, &postgres.Config{})
	if err != nil {
		return nil, err
	}

	source, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return nil, err
	}

	return migrate.NewWithInstance("iofs", source, "postgres", driver)
}

// RunMigrationsWithDB applies the embedded schema. It runs from the migrate
// command and on serve unless DISABLE_AUTOMIGRATE is set.
func RunMigrationsWithDB(gormDB *gorm.DB) error {
	migrator, err := newMigrator(gormDB)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	if err := migrator.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			slog.Info("no pending migrations")
			return nil
		}
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	slog.Info("migrations completed successfully")
	return nil
}

func GetMigrationVersionWithDB(gormDB *gorm.DB) (uint, bool, error) {
	migrator, err := newMigrator(gormDB)
	if err != nil {
		return 0, false, fmt.Errorf("failed to create migrator: %w", err)
	}
	return migrator.Version()
}
