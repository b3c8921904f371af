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
	"gorm.io/gorm/clause"
)

type dependencyEdgeRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.DependencyEdge]
}

func NewDependencyEdgeRepository(db *gorm.DB) *dependencyEdgeRepository {
	return &dependencyEdgeRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.DependencyEdge](db),
	}
}

var edgeConflictColumns = []clause.Column{
	{Name: "project_id"},
	{Name: "source_type"},
	{Name: "source_id"},
	{Name: "target_type"},
	{Name: "target_id"},
}

func (r *dependencyEdgeRepository) FindByProject(ctx context.Context, projectID string) ([]models.DependencyEdge, error) {
	var edges []models.DependencyEdge
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("source_type, source_id, target_type, target_id").
		Find(&edges).Error
	return edges, translateError(err)
}

// Fingerprint summarizes the edge set of a project. Any insert, update or
// delete changes either the count or the newest updated_at.
func (r *dependencyEdgeRepository) Fingerprint(ctx context.Context, projectID string) (models.EdgeFingerprint, error) {
	var fp models.EdgeFingerprint
	err := r.db.WithContext(ctx).
		Model(&models.DependencyEdge{}).
		Select("count(*) AS edge_count, max(updated_at) AS last_updated").
		Where("project_id = ?", projectID).
		Scan(&fp).Error
	return fp, translateError(err)
}

func (r *dependencyEdgeRepository) Upsert(ctx context.Context, tx *gorm.DB, edges []*models.DependencyEdge) error {
	return r.GormRepository.Upsert(ctx, tx, edges, edgeConflictColumns, []string{"criticality", "agreement_id", "updated_at"})
}
