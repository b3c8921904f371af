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

package models

import (
	"time"

	"github.com/google/uuid"
)

type Model struct {
	ID        uuid.UUID `gorm:"primarykey;type:uuid;default:gen_random_uuid()" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (a Model) GetID() uuid.UUID {
	return a.ID
}

// Project is read-only for this service. It only exists to reject unknown project identifiers.
type Project struct {
	ID        string    `json:"id" gorm:"column:id;primaryKey;type:text"`
	Name      string    `json:"name" gorm:"column:name;type:text"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`
}

func (Project) TableName() string {
	return "projects"
}
