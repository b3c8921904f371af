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

// ScrmAssessmentModelToDTO restores the breakdown of a stored snapshot.
// Recommendations are persisted in the mitigations column.
func ScrmAssessmentModelToDTO(assessment models.ScrmAssessment, vendorName string) dtos.VendorAssessmentDTO {
	return dtos.VendorAssessmentDTO{
		AssessmentID:    assessment.ID,
		ProjectID:       assessment.ProjectID,
		VendorID:        assessment.VendorID,
		VendorName:      vendorName,
		Dimensions:      nonNil(assessment.Dimensions),
		OverallScore:    assessment.RiskScore,
		RiskTier:        assessment.RiskCategory,
		Controls:        nonNil(assessment.Controls),
		Recommendations: nonNil(assessment.Mitigations),
		AssessedBy:      assessment.AssessedBy,
		AssessedAt:      assessment.AssessedAt,
	}
}

func VendorToProhibitedDTO(vendor models.Vendor, guidance []string) dtos.ProhibitedVendorDTO {
	return dtos.ProhibitedVendorDTO{
		VendorID:        vendor.ID,
		VendorName:      vendor.VendorName,
		CountryOfOrigin: vendor.CountryOfOrigin,
		CachedRiskTier:  vendor.CachedRiskTier,
		Guidance:        guidance,
	}
}
