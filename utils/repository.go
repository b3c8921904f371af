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

package utils

import "context"

type Tabler interface {
	TableName() string
}

type ModelWriter[ID any, T Tabler, Tx any] interface {
	Create(ctx context.Context, tx Tx, t *T) error
	Save(ctx context.Context, tx Tx, t *T) error
}

type ModelReader[ID any, T Tabler] interface {
	Read(ctx context.Context, id ID) (T, error)
	List(ctx context.Context, ids []ID) ([]T, error)
}

type Transactioner[Tx any] interface {
	Transaction(ctx context.Context, fn func(tx Tx) error) error
	GetDB(ctx context.Context, tx Tx) Tx
}

type Repository[ID any, T Tabler, Tx any] interface {
	ModelWriter[ID, T, Tx]
	ModelReader[ID, T]
	Transactioner[Tx]
}
