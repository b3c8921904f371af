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
	"log/slog"
	"os"
	"strconv"
	"time"
)

// PoolConfig is everything needed to open the shared pgx pool that backs
// both gorm and the health/info endpoints.
type PoolConfig struct {
	User     string
	Password string
	Host     string
	Port     string
	DBName   string

	MaxOpenConns    int32
	MinConns        int32
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

func DefaultPoolConfig() PoolConfig {
	return PoolConfig{
		Port:            "5432",
		MaxOpenConns:    25,
		MinConns:        2,
		ConnMaxLifetime: 4 * time.Hour,
		ConnMaxIdleTime: 15 * time.Minute,
	}
}

// envInt32 keeps fallback when the variable is unset, unparseable or below lowest.
func envInt32(name string, fallback, lowest int32) int32 {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	val, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || int32(val) < lowest {
		slog.Warn("ignoring invalid pool setting", "name", name, "value", raw)
		return fallback
	}
	return int32(val)
}

func envDuration(name string, fallback time.Duration) time.Duration {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	val, err := time.ParseDuration(raw)
	if err != nil || val <= 0 {
		slog.Warn("ignoring invalid pool setting", "name", name, "value", raw)
		return fallback
	}
	return val
}

// GetPoolConfigFromEnv reads POSTGRES_USER, POSTGRES_PASSWORD, POSTGRES_HOST,
// POSTGRES_PORT and POSTGRES_DB plus the optional DB_MAX_OPEN_CONNS,
// DB_MIN_CONNS, DB_CONN_MAX_LIFETIME and DB_CONN_MAX_IDLE_TIME on top of
// DefaultPoolConfig. The idle minimum never exceeds the open maximum.
func GetPoolConfigFromEnv() PoolConfig {
	cfg := DefaultPoolConfig()
	cfg.User = os.Getenv("POSTGRES_USER")
	cfg.Password = os.Getenv("POSTGRES_PASSWORD")
	cfg.Host = os.Getenv("POSTGRES_HOST")
	cfg.DBName = os.Getenv("POSTGRES_DB")
	if port := os.Getenv("POSTGRES_PORT"); port != "" {
		cfg.Port = port
	}

	cfg.MaxOpenConns = envInt32("DB_MAX_OPEN_CONNS", cfg.MaxOpenConns, 1)
	cfg.MinConns = min(envInt32("DB_MIN_CONNS", cfg.MinConns, 0), cfg.MaxOpenConns)
	cfg.ConnMaxLifetime = envDuration("DB_CONN_MAX_LIFETIME", cfg.ConnMaxLifetime)
	cfg.ConnMaxIdleTime = envDuration("DB_CONN_MAX_IDLE_TIME", cfg.ConnMaxIdleTime)
	return cfg
}
