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
	"github.com/l3montree-dev/scrmguard/dtos"
	"gorm.io/datatypes"
)

type AuditEvent struct {
	ID             uuid.UUID           `json:"id" gorm:"primarykey;type:uuid;default:gen_random_uuid()"`
	ProjectID      string              `json:"projectId" gorm:"column:project_id;type:text;index"`
	EventType      dtos.AuditEventType `json:"eventType" gorm:"column:event_type;type:text;not null"`
	Actor          string              `json:"actor" gorm:"column:actor;type:text;not null"`
	Action         string              `json:"action" gorm:"column:action;type:text;not null"`
	Details        datatypes.JSONMap   `json:"details" gorm:"column:details;type:jsonb"`
	Classification string              `json:"classification" gorm:"column:classification;type:text"`
	CreatedAt      time.Time           `json:"createdAt" gorm:"column:created_at"`
}

func (AuditEvent) TableName() string {
	return "audit_events"
}
