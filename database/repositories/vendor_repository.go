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
	"time"

	"github.com/l3montree-dev/scrmguard/database/models"
	"github.com/l3montree-dev/scrmguard/dtos"
	"gorm.io/gorm"
)

type vendorRepository struct {
	db *gorm.DB
}

func NewVendorRepository(db *gorm.DB) *vendorRepository {
	return &vendorRepository{
		db: db,
	}
}

func (r *vendorRepository) Read(ctx context.Context, projectID, vendorID string) (models.Vendor, error) {
	var vendor models.Vendor
	err := r.db.WithContext(ctx).First(&vendor, "project_id = ? AND id = ?", projectID, vendorID).Error
	return vendor, translateError(err)
}

func (r *vendorRepository) FindByProject(ctx context.Context, projectID string) ([]models.Vendor, error) {
	var vendors []models.Vendor
	err := r.db.WithContext(ctx).Where("project_id = ?", projectID).Order("id ASC").Find(&vendors).Error
	return vendors, translateError(err)
}

func (r *vendorRepository) FindByIntegrityStatus(ctx context.Context, projectID string, status string) ([]models.Vendor, error) {
	var vendors []models.Vendor
	err := r.db.WithContext(ctx).
		Where("project_id = ? AND lower(trim(integrity_status)) = ?", projectID, status).
		Order("vendor_name ASC").
		Find(&vendors).Error
	return vendors, translateError(err)
}

func (r *vendorRepository) UpdateRiskTier(ctx context.Context, tx *gorm.DB, projectID, vendorID string, tier dtos.RiskTier, assessedAt time.Time) error {
	db := r.db
	if tx != nil {
		db = tx
	}
	res := db.WithContext(ctx).
		Model(&models.Vendor{}).
		Where("project_id = ? AND id = ?", projectID, vendorID).
		Updates(map[string]any{
			"cached_risk_tier": string(tier),
			"last_assessed":    assessedAt,
		})
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound)
	}
	return nil
}
