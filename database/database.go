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
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/l3montree-dev/scrmguard/monitoring"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/opentelemetry/tracing"
)

// alertingLogger forwards database errors to the error tracking
type alertingLogger struct {
	defaultLogger logger.Interface
}

func (s *alertingLogger) LogMode(level logger.LogLevel) logger.Interface {
	var newDefault logger.Interface
	if s.defaultLogger != nil {
		newDefault = s.defaultLogger.LogMode(level)
	}
	return &alertingLogger{defaultLogger: newDefault}
}

func (s *alertingLogger) Info(ctx context.Context, msg string, data ...any) {
	s.defaultLogger.Info(ctx, msg, data...)
}

func (s *alertingLogger) Warn(ctx context.Context, msg string, data ...any) {
	s.defaultLogger.Warn(ctx, msg, data...)
}

func (s *alertingLogger) Error(ctx context.Context, msg string, data ...any) {
	s.alert(msg, data...)
	s.defaultLogger.Error(ctx, msg, data...)
}

func (s *alertingLogger) alert(msg string, data ...any) {
	if len(data) == 0 {
		monitoring.Alert(msg, nil)
		return
	}
	err, ok := data[0].(error)
	if !ok {
		monitoring.Alert(msg, fmt.Errorf("%v", data[0]))
		return
	}
	// not found is an expected outcome and surfaces as a 404
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return
	}
	monitoring.Alert(msg, err)
}

func (s *alertingLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && !errors.Is(err, context.Canceled) {
		s.alert("database error", err)
	}
	s.defaultLogger.Trace(ctx, begin, fc, err)
}

// getDSN builds a PostgreSQL connection string from parameters
func getDSN(host, user, password, dbname, port string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, dbname)
}

func NewPgxConnPool(ctx context.Context, cfg PoolConfig) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(getDSN(cfg.Host, cfg.User, cfg.Password, cfg.DBName, cfg.Port))
	if err != nil {
		return nil, fmt.Errorf("could not parse pgx pool config: %w", err)
	}
	config.MaxConnIdleTime = cfg.ConnMaxIdleTime
	config.MaxConnLifetime = cfg.ConnMaxLifetime
	config.MaxConns = cfg.MaxOpenConns
	config.MinConns = cfg.MinConns
	config.ConnConfig.Tracer = otelpgx.NewTracer()

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("could not create pgx pool: %w", err)
	}

	slog.Info("database connection pool configured",
		"maxOpenConns", cfg.MaxOpenConns,
		"minConns", cfg.MinConns,
		"connMaxLifetime", cfg.ConnMaxLifetime,
		"connMaxIdleTime", cfg.ConnMaxIdleTime,
	)

	return pool, nil
}

// NewGormDB creates a GORM instance using an existing *pgxpool.Pool
func NewGormDB(existingPool *pgxpool.Pool) (*gorm.DB, error) {
	db := stdlib.OpenDBFromPool(existingPool)
	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{
		Logger: &alertingLogger{
			defaultLogger: logger.Default,
		},
	})
	if err != nil {
		return nil, err
	}

	if err := gormDB.Use(tracing.NewPlugin(tracing.WithoutMetrics())); err != nil {
		return nil, fmt.Errorf("could not register tracing plugin: %w", err)
	}

	return gormDB, nil
}

// NewConnection opens a pool and wraps it with gorm.
func NewConnection(ctx context.Context, cfg PoolConfig) (*gorm.DB, *pgxpool.Pool, error) {
	pool, err := NewPgxConnPool(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	db, err := NewGormDB(pool)
	if err != nil {
		pool.Close()
		return nil, nil, err
	}
	return db, pool, nil
}

func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
