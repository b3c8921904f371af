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

// ScrmAssessment is an append-only snapshot. A reassessment writes a new row.
type ScrmAssessment struct {
	ID             uuid.UUID                                `json:"id" gorm:"primarykey;type:uuid;default:gen_random_uuid()"`
	ProjectID      string                                   `json:"projectId" gorm:"column:project_id;type:text;not null;index:idx_scrm_assessment_vendor"`
	VendorID       string                                   `json:"vendorId" gorm:"column:vendor_id;type:text;not null;index:idx_scrm_assessment_vendor"`
	AssessmentType string                                   `json:"assessmentType" gorm:"column:assessment_type;type:text;not null"`
	RiskCategory   dtos.RiskTier                            `json:"riskCategory" gorm:"column:risk_category;type:text;not null"`
	RiskScore      float64                                  `json:"riskScore" gorm:"column:risk_score;not null"`
	Likelihood     int                                      `json:"likelihood" gorm:"column:likelihood"`
	Impact         int                                      `json:"impact" gorm:"column:impact"`
	Mitigations    datatypes.JSONSlice[string]              `json:"mitigations" gorm:"column:mitigations;type:jsonb"`
	ResidualRisk   string                                   `json:"residualRisk" gorm:"column:residual_risk;type:text"`
	Controls       datatypes.JSONSlice[string]              `json:"controls" gorm:"column:controls;type:jsonb"`
	Dimensions     datatypes.JSONSlice[dtos.DimensionScore] `json:"dimensions" gorm:"column:dimensions;type:jsonb"`
	AssessedBy     string                                   `json:"assessedBy" gorm:"column:assessed_by;type:text"`
	AssessedAt     time.Time                                `json:"assessedAt" gorm:"column:assessed_at;not null"`
}

func (ScrmAssessment) TableName() string {
	return "scrm_assessments"
}
