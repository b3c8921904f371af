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

	"github.com/l3montree-dev/scrmguard/database/models"
	"gorm.io/gorm"
)

type projectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *projectRepository {
	return &projectRepository{
		db: db,
	}
}

func (r *projectRepository) Read(ctx context.Context, projectID string) (models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).First(&project, "id = ?", projectID).Error
	return project, translateError(err)
}

func (r *projectRepository) Exists(ctx context.Context, projectID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Project{}).Where("id = ?", projectID).Count(&count).Error
	if err != nil {
		return false, translateError(err)
	}
	return count > 0, nil
}
