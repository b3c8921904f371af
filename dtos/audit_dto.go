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

type AuditEventType string

const (
	AuditEventCveTriaged            AuditEventType = "cve_triaged"
	AuditEventCveDecisionUpdated    AuditEventType = "cve_decision_updated"
	AuditEventCveImpactPropagated   AuditEventType = "cve_impact_propagated"
	AuditEventAgreementCreated      AuditEventType = "isa_created"
	AuditEventAgreementRenewed      AuditEventType = "isa_renewed"
	AuditEventAgreementRevoked      AuditEventType = "isa_revoked"
	AuditEventAgreementReconciled   AuditEventType = "isa_status_reconciled"
	AuditEventVendorAssessed        AuditEventType = "scrm_vendor_assessed"
	AuditEventProhibitedEscalation  AuditEventType = "scrm_prohibited_escalation"
	AuditEventDependencyEdgesLoaded AuditEventType = "dependency_edges_ingested"
)

func (t AuditEventType) IsValid() bool {
	switch t {
	case AuditEventCveTriaged, AuditEventCveDecisionUpdated, AuditEventCveImpactPropagated,
		AuditEventAgreementCreated, AuditEventAgreementRenewed, AuditEventAgreementRevoked, AuditEventAgreementReconciled,
		AuditEventVendorAssessed, AuditEventProhibitedEscalation, AuditEventDependencyEdgesLoaded:
		return true
	}
	return false
}

type AuditEventDTO struct {
	ID             uuid.UUID      `json:"id"`
	ProjectID      string         `json:"projectId"`
	EventType      AuditEventType `json:"eventType"`
	Actor          string         `json:"actor"`
	Action         string         `json:"action"`
	Details        map[string]any `json:"details"`
	Classification string         `json:"classification"`
	CreatedAt      time.Time      `json:"createdAt"`
}
