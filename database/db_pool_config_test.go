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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetPoolConfigFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("POSTGRES_HOST", "db.internal")
		t.Setenv("POSTGRES_PORT", "")
		t.Setenv("DB_MAX_OPEN_CONNS", "")
		t.Setenv("DB_MIN_CONNS", "")
		t.Setenv("DB_CONN_MAX_LIFETIME", "")
		t.Setenv("DB_CONN_MAX_IDLE_TIME", "")

		cfg := GetPoolConfigFromEnv()
		assert.Equal(t, "db.internal", cfg.Host)
		assert.Equal(t, "5432", cfg.Port)
		assert.Equal(t, int32(25), cfg.MaxOpenConns)
		assert.Equal(t, int32(2), cfg.MinConns)
		assert.Equal(t, 4*time.Hour, cfg.ConnMaxLifetime)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("POSTGRES_PORT", "6543")
		t.Setenv("DB_MAX_OPEN_CONNS", "40")
		t.Setenv("DB_MIN_CONNS", "5")
		t.Setenv("DB_CONN_MAX_LIFETIME", "1h")
		t.Setenv("DB_CONN_MAX_IDLE_TIME", "30s")

		cfg := GetPoolConfigFromEnv()
		assert.Equal(t, "6543", cfg.Port)
		assert.Equal(t, int32(40), cfg.MaxOpenConns)
		assert.Equal(t, int32(5), cfg.MinConns)
		assert.Equal(t, time.Hour, cfg.ConnMaxLifetime)
		assert.Equal(t, 30*time.Second, cfg.ConnMaxIdleTime)
	})

	t.Run("invalid values fall back", func(t *testing.T) {
		t.Setenv("DB_MAX_OPEN_CONNS", "0")
		t.Setenv("DB_MIN_CONNS", "many")
		t.Setenv("DB_CONN_MAX_LIFETIME", "-1h")
		t.Setenv("DB_CONN_MAX_IDLE_TIME", "soon")

		cfg := GetPoolConfigFromEnv()
		assert.Equal(t, DefaultPoolConfig().MaxOpenConns, cfg.MaxOpenConns)
		assert.Equal(t, DefaultPoolConfig().MinConns, cfg.MinConns)
		assert.Equal(t, DefaultPoolConfig().ConnMaxLifetime, cfg.ConnMaxLifetime)
		assert.Equal(t, DefaultPoolConfig().ConnMaxIdleTime, cfg.ConnMaxIdleTime)
	})

	t.Run("minimum is capped by the maximum", func(t *testing.T) {
		t.Setenv("DB_MAX_OPEN_CONNS", "3")
		t.Setenv("DB_MIN_CONNS", "10")

		cfg := GetPoolConfigFromEnv()
		assert.Equal(t, int32(3), cfg.MinConns)
	})
}
