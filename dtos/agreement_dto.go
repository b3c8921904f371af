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

package dtos

import (
	"time"

	"github.com/google/uuid"
)

type AgreementType string

const (
	AgreementTypeISA AgreementType = "isa"
	AgreementTypeMOU AgreementType = "mou"
	AgreementTypeMOA AgreementType = "moa"
	AgreementTypeSLA AgreementType = "sla"
	AgreementTypeILA AgreementType = "ila"
)

func (t AgreementType) IsValid() bool {
	switch t {
	case AgreementTypeISA, AgreementTypeMOU, AgreementTypeMOA, AgreementTypeSLA, AgreementTypeILA:
		return true
	}
	return false
}

type AgreementStatus string

const (
	AgreementStatusDraft      AgreementStatus = "draft"
	AgreementStatusReview     AgreementStatus = "review"
	AgreementStatusSigned     AgreementStatus = "signed"
	AgreementStatusActive     AgreementStatus = "active"
	AgreementStatusExpiring   AgreementStatus = "expiring"
	AgreementStatusExpired    AgreementStatus = "expired"
	AgreementStatusTerminated AgreementStatus = "terminated"
)

func (s AgreementStatus) IsValid() bool {
	switch s {
	case AgreementStatusDraft, AgreementStatusReview, AgreementStatusSigned, AgreementStatusActive,
		AgreementStatusExpiring, AgreementStatusExpired, AgreementStatusTerminated:
		return true
	}
	return false
}

// IsManaged reports whether expiry and review scans should still consider the agreement.
func (s AgreementStatus) IsManaged() bool {
	return s != AgreementStatusTerminated && s != AgreementStatusExpired
}

type Urgency string

const (
	UrgencyCritical Urgency = "critical"
	UrgencyHigh     Urgency = "high"
	UrgencyMedium   Urgency = "medium"
	UrgencyLow      Urgency = "low"
)

type AgreementCreateRequest struct {
	PartnerSystem     string        `json:"partnerSystem" validate:"required"`
	PartnerOrg        string        `json:"partnerOrg"`
	AgreementType     AgreementType `json:"agreementType"`
	DataTypes         []string      `json:"dataTypes"`
	SignedDate        Date          `json:"signedDate"`
	ExpiryDate        Date          `json:"expiryDate"`
	ReviewCadenceDays int           `json:"reviewCadenceDays" validate:"gte=0"`
	Classification    string        `json:"classification"`
}

type AgreementRenewRequest struct {
	NewExpiry Date    `json:"newExpiry"`
	Notes     *string `json:"notes,omitempty"`
}

type AgreementRevokeRequest struct {
	Reason string `json:"reason" validate:"required"`
}

type AgreementDTO struct {
	ID                uuid.UUID       `json:"id"`
	ProjectID         string          `json:"projectId"`
	AgreementType     AgreementType   `json:"agreementType"`
	PartnerSystem     string          `json:"partnerSystem"`
	PartnerOrg        string          `json:"partnerOrg"`
	Status            AgreementStatus `json:"status"`
	SignedDate        Date            `json:"signedDate"`
	ExpiryDate        Date            `json:"expiryDate"`
	DataTypesShared   []string        `json:"dataTypesShared"`
	ReviewCadenceDays int             `json:"reviewCadenceDays"`
	NextReviewDate    Date            `json:"nextReviewDate"`
	Classification    string          `json:"classification"`
	Notes             *string         `json:"notes,omitempty"`
	RevocationReason  *string         `json:"revocationReason,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

type ExpiringAgreementDTO struct {
	AgreementDTO
	DaysUntilExpiry int     `json:"daysUntilExpiry"`
	Urgency         Urgency `json:"urgency"`
}

type ReviewDueAgreementDTO struct {
	AgreementDTO
	DaysOverdue int `json:"daysOverdue"`
}

type AgreementStatusChange struct {
	AgreementID uuid.UUID       `json:"agreementId"`
	From        AgreementStatus `json:"from"`
	To          AgreementStatus `json:"to"`
}

type ReconcileResult struct {
	ProjectID string                  `json:"projectId"`
	Checked   int                     `json:"checked"`
	Changed   []AgreementStatusChange `json:"changed"`
}
