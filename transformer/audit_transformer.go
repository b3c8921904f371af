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

package transformer

import (
	"github.com/l3montree-dev/scrmguard/database/models"
	"github.com/l3montree-dev/scrmguard/dtos"
)

func AuditEventModelToDTO(event models.AuditEvent) dtos.AuditEventDTO {
	details := map[string]any(event.Details)
	if details == nil {
		details = map[string]any{}
	}
	return dtos.AuditEventDTO{
		ID:             event.ID,
		ProjectID:      event.ProjectID,
		EventType:      event.EventType,
		Actor:          event.Actor,
		Action:         event.Action,
		Details:        details,
		Classification: event.Classification,
		CreatedAt:      event.CreatedAt,
	}
}
