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

type cveTriageRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.CveTriage]
}

func NewCveTriageRepository(db *gorm.DB) *cveTriageRepository {
	return &cveTriageRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.CveTriage](db),
	}
}

// openDecisions are the decisions that keep a record inside SLA tracking.
var openDecisions = []dtos.TriageDecision{dtos.TriageDecisionDefer, dtos.TriageDecisionMitigate}

// FindOpenByProject returns all records without a decision or with a decision
// that keeps the record open. Sorting is left to the caller.
func (r *cveTriageRepository) FindOpenByProject(ctx context.Context, projectID string) ([]models.CveTriage, error) {
	var records []models.CveTriage
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Where("triage_decision IS NULL OR triage_decision IN ?", openDecisions).
		Find(&records).Error
	return records, translateError(err)
}
