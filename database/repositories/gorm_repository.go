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
	"context"
	"database/sql/driver"
	"errors"
	"net"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/l3montree-dev/scrmguard/shared"
	"github.com/l3montree-dev/scrmguard/utils"
	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormRepository[ID comparable, T utils.Tabler] struct {
	db *gorm.DB
}

func newGormRepository[ID comparable, T utils.Tabler](db *gorm.DB) *GormRepository[ID, T] {
	return &GormRepository[ID, T]{
		db: db,
	}
}

func (g *GormRepository[ID, T]) Save(ctx context.Context, tx *gorm.DB, t *T) error {
	return translateError(g.GetDB(ctx, tx).Save(t).Error)
}

func (g *GormRepository[ID, T]) Upsert(ctx context.Context, tx *gorm.DB, t []*T, conflictingColumns []clause.Column, updateOnly []string) error {
	if len(t) == 0 {
		return nil
	}
	onConflict := clause.OnConflict{Columns: conflictingColumns}
	if len(updateOnly) > 0 {
		onConflict.DoUpdates = clause.AssignmentColumns(updateOnly)
	} else {
		onConflict.UpdateAll = true
	}
	return translateError(g.GetDB(ctx, tx).Clauses(onConflict).Create(t).Error)
}

func (g *GormRepository[ID, T]) Transaction(ctx context.Context, f func(tx *gorm.DB) error) error {
	return translateError(g.db.WithContext(ctx).Transaction(f))
}

func (g *GormRepository[ID, T]) GetDB(ctx context.Context, tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx.WithContext(ctx)
	}

	return g.db.WithContext(ctx)
}

func (g *GormRepository[ID, T]) Create(ctx context.Context, tx *gorm.DB, t *T) error {
	return translateError(g.GetDB(ctx, tx).Create(t).Error)
}

func (g *GormRepository[ID, T]) Read(ctx context.Context, id ID) (T, error) {
	var t T
	err := g.db.WithContext(ctx).First(&t, "id = ?", id).Error

	return t, translateError(err)
}

func (g *GormRepository[ID, T]) List(ctx context.Context, ids []ID) ([]T, error) {
	if len(ids) == 0 {
		return []T{}, nil
	}
	var ts []T

	err := g.db.WithContext(ctx).Find(&ts, "id IN ?", ids).Error
	if err != nil {
		return ts, translateError(err)
	}
	return ts, nil
}

// translateError maps driver errors onto the shared sentinel errors so
// callers can branch with errors.Is regardless of the driver in use.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, shared.ErrNotFound) || errors.Is(err, shared.ErrAlreadyExists) ||
		errors.Is(err, shared.ErrBackingStoreUnavailable) || errors.Is(err, shared.ErrInvalidInput) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pkgerrors.Wrap(shared.ErrNotFound, "record not found")
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique violation
			return pkgerrors.Wrap(shared.ErrAlreadyExists, pgErr.Detail)
		case "23503": // FK violation
			return pkgerrors.Wrap(shared.ErrNotFound, pgErr.Detail)
		case "57P01", "57P02", "57P03": // admin shutdown, crash shutdown, cannot connect now
			return pkgerrors.Wrap(shared.ErrBackingStoreUnavailable, pgErr.Message)
		}
		return err
	}

	if isConnectionError(err) {
		return pkgerrors.Wrap(shared.ErrBackingStoreUnavailable, err.Error())
	}
	return err
}

func isConnectionError(err error) bool {
	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
