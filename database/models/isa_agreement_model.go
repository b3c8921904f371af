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

	"github.com/l3montree-dev/scrmguard/dtos"
	"gorm.io/datatypes"
)

type IsaAgreement struct {
	Model
	ProjectID         string                      `json:"projectId" gorm:"column:project_id;type:text;not null;index"`
	AgreementType     dtos.AgreementType          `json:"agreementType" gorm:"column:agreement_type;type:text;not null;default:'isa'"`
	PartnerSystem     string                      `json:"partnerSystem" gorm:"column:partner_system;type:text;not null"`
	PartnerOrg        string                      `json:"partnerOrg" gorm:"column:partner_org;type:text"`
	Status            dtos.AgreementStatus        `json:"status" gorm:"column:status;type:text;not null"`
	SignedDate        time.Time                   `json:"signedDate" gorm:"column:signed_date;type:date"`
	ExpiryDate        time.Time                   `json:"expiryDate" gorm:"column:expiry_date;type:date"`
	DataTypesShared   datatypes.JSONSlice[string] `json:"dataTypesShared" gorm:"column:data_types_shared;type:jsonb"`
	ReviewCadenceDays int                         `json:"reviewCadenceDays" gorm:"column:review_cadence_days;not null;default:365"`
	NextReviewDate    time.Time                   `json:"nextReviewDate" gorm:"column:next_review_date;type:date"`
	Classification    string                      `json:"classification" gorm:"column:classification;type:text"`
	Notes             *string                     `json:"notes" gorm:"column:notes;type:text"`
	RevocationReason  *string                     `json:"revocationReason" gorm:"column:revocation_reason;type:text"`
}

func (IsaAgreement) TableName() string {
	return "isa_agreements"
}
