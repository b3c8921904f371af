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

	"github.com/google/uuid"
	"github.com/l3montree-dev/scrmguard/database/models"
	"github.com/l3montree-dev/scrmguard/dtos"
	"gorm.io/gorm"
)

type agreementRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.IsaAgreement]
}

func NewAgreementRepository(db *gorm.DB) *agreementRepository {
	return &agreementRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.IsaAgreement](db),
	}
}

var unmanagedStatuses = []dtos.AgreementStatus{dtos.AgreementStatusTerminated, dtos.AgreementStatusExpired}

func (r *agreementRepository) FindByProject(ctx context.Context, projectID string, status *dtos.AgreementStatus) ([]models.IsaAgreement, error) {
	var agreements []models.IsaAgreement
	q := r.db.WithContext(ctx).Where("project_id = ?", projectID)
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	err := q.Order("expiry_date ASC, created_at ASC").Find(&agreements).Error
	return agreements, translateError(err)
}

func (r *agreementRepository) FindManagedByProject(ctx context.Context, projectID string) ([]models.IsaAgreement, error) {
	var agreements []models.IsaAgreement
	err := r.db.WithContext(ctx).
		Where("project_id = ? AND status NOT IN ?", projectID, unmanagedStatuses).
		Order("expiry_date ASC").
		Find(&agreements).Error
	return agreements, translateError(err)
}

func (r *agreementRepository) FindNotTerminatedByProject(ctx context.Context, projectID string) ([]models.IsaAgreement, error) {
	var agreements []models.IsaAgreement
	err := r.db.WithContext(ctx).
		Where("project_id = ? AND status <> ?", projectID, dtos.AgreementStatusTerminated).
		Order("expiry_date ASC").
		Find(&agreements).Error
	return agreements, translateError(err)
}

func (r *agreementRepository) FindExpiringBefore(ctx context.Context, projectID string, cutoff time.Time) ([]models.IsaAgreement, error) {
	var agreements []models.IsaAgreement
	err := r.db.WithContext(ctx).
		Where("project_id = ? AND status NOT IN ?", projectID, unmanagedStatuses).
		Where("expiry_date <= ?", cutoff).
		Order("expiry_date ASC").
		Find(&agreements).Error
	return agreements, translateError(err)
}

func (r *agreementRepository) FindReviewDueBefore(ctx context.Context, projectID string, cutoff time.Time) ([]models.IsaAgreement, error) {
	var agreements []models.IsaAgreement
	err := r.db.WithContext(ctx).
		Where("project_id = ? AND status NOT IN ?", projectID, unmanagedStatuses).
		Where("next_review_date <= ?", cutoff).
		Order("next_review_date ASC").
		Find(&agreements).Error
	return agreements, translateError(err)
}

func (r *agreementRepository) UpdateStatus(ctx context.Context, tx *gorm.DB, agreementID uuid.UUID, status dtos.AgreementStatus) error {
	res := r.GetDB(ctx, tx).Model(&models.IsaAgreement{}).Where("id = ?", agreementID).Update("status", status)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound)
	}
	return nil
}
