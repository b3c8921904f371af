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

	"github.com/google/uuid"
	"github.com/l3montree-dev/scrmguard/database/models"
	"github.com/l3montree-dev/scrmguard/dtos"
	"gorm.io/gorm"
)

type auditEventRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.AuditEvent]
}

func NewAuditEventRepository(db *gorm.DB) *auditEventRepository {
	return &auditEventRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.AuditEvent](db),
	}
}

func (r *auditEventRepository) FindByProject(ctx context.Context, projectID string, eventType *dtos.AuditEventType) ([]models.AuditEvent, error) {
	var events []models.AuditEvent
	q := r.db.WithContext(ctx).Where("project_id = ?", projectID)
	if eventType != nil {
		q = q.Where("event_type = ?", *eventType)
	}
	err := q.Order("created_at ASC").Find(&events).Error
	return events, translateError(err)
}
