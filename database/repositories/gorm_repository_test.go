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

package repositories

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/l3montree-dev/scrmguard/shared"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTranslateError(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, translateError(nil))
	})

	t.Run("record not found", func(t *testing.T) {
		err := translateError(fmt.Errorf("lookup: %w", gorm.ErrRecordNotFound))
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("unique_violation", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "23505", Detail: "Key (cve_id)=(CVE-2024-0001) already exists."}
		err := translateError(fmt.Errorf("%w", pgErr))
		assert.ErrorIs(t, err, shared.ErrAlreadyExists)
		assert.Contains(t, err.Error(), "CVE-2024-0001")
	})

	t.Run("foreign_key_violation", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "23503"}
		assert.ErrorIs(t, translateError(pgErr), shared.ErrNotFound)
	})

	t.Run("bad connection", func(t *testing.T) {
		err := translateError(fmt.Errorf("query: %w", driver.ErrBadConn))
		assert.ErrorIs(t, err, shared.ErrBackingStoreUnavailable)
	})

	t.Run("already translated errors are kept", func(t *testing.T) {
		in := shared.InvalidInput("cvss out of range")
		assert.Equal(t, in, translateError(in))
	})

	t.Run("other error", func(t *testing.T) {
		in := errors.New("some other error")
		out := translateError(in)
		assert.Equal(t, in, out)
		assert.NotErrorIs(t, out, shared.ErrNotFound)
		assert.NotErrorIs(t, out, shared.ErrBackingStoreUnavailable)
	})
}
