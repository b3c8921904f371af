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
	"gorm.io/gorm"
)

type scrmAssessmentRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.ScrmAssessment]
}

func NewScrmAssessmentRepository(db *gorm.DB) *scrmAssessmentRepository {
	return &scrmAssessmentRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.ScrmAssessment](db),
	}
}

// FindByVendor returns the snapshots of a vendor, newest first.
func (r *scrmAssessmentRepository) FindByVendor(ctx context.Context, projectID, vendorID string) ([]models.ScrmAssessment, error) {
	var assessments []models.ScrmAssessment
	err := r.db.WithContext(ctx).
		Where("project_id = ? AND vendor_id = ?", projectID, vendorID).
		Order("assessed_at DESC").
		Find(&assessments).Error
	return assessments, translateError(err)
}
