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

func AgreementModelsToDTOs(agreements []models.IsaAgreement) []dtos.AgreementDTO {
	result := make([]dtos.AgreementDTO, len(agreements))
	for i, agreement := range agreements {
		result[i] = AgreementModelToDTO(agreement)
	}
	return result
}

func AgreementModelToDTO(agreement models.IsaAgreement) dtos.AgreementDTO {
	return dtos.AgreementDTO{
		ID:                agreement.ID,
		ProjectID:         agreement.ProjectID,
		AgreementType:     agreement.AgreementType,
		PartnerSystem:     agreement.PartnerSystem,
		PartnerOrg:        agreement.PartnerOrg,
		Status:            agreement.Status,
		SignedDate:        dtos.NewDate(agreement.SignedDate),
		ExpiryDate:        dtos.NewDate(agreement.ExpiryDate),
		DataTypesShared:   nonNil(agreement.DataTypesShared),
		ReviewCadenceDays: agreement.ReviewCadenceDays,
		NextReviewDate:    dtos.NewDate(agreement.NextReviewDate),
		Classification:    agreement.Classification,
		Notes:             agreement.Notes,
		RevocationReason:  agreement.RevocationReason,
		CreatedAt:         agreement.CreatedAt,
		UpdatedAt:         agreement.UpdatedAt,
	}
}
