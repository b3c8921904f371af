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

package statemachine

import (
	"time"

	"github.com/l3montree-dev/scrmguard/database/models"
	"github.com/l3montree-dev/scrmguard/dtos"
)

type TriageState string

const (
	TriageStateOpen         TriageState = "open"
	TriageStateClosed       TriageState = "closed"
	TriageStateRiskAccepted TriageState = "risk_accepted"
)

// StateOf maps a decision onto the SLA tracking state. A missing decision is open.
func StateOf(decision *dtos.TriageDecision) TriageState {
	if decision == nil {
		return TriageStateOpen
	}
	switch *decision {
	case dtos.TriageDecisionRemediate, dtos.TriageDecisionFalsePositive, dtos.TriageDecisionNotApplicable:
		return TriageStateClosed
	case dtos.TriageDecisionAcceptRisk:
		return TriageStateRiskAccepted
	default:
		// defer, mitigate
		return TriageStateOpen
	}
}

func IsOpen(record models.CveTriage) bool {
	return StateOf(record.TriageDecision) == TriageStateOpen
}

// Apply records a decision on the record. Closing stamps remediated_at unless
// it is already set, any other state clears it.
func Apply(record *models.CveTriage, decision dtos.TriageDecision, rationale *string, at time.Time) {
	record.TriageDecision = &decision
	if rationale != nil {
		record.TriageRationale = rationale
	}

	switch StateOf(&decision) {
	case TriageStateClosed:
		if record.RemediatedAt == nil {
			record.RemediatedAt = &at
		}
	default:
		record.RemediatedAt = nil
	}
}
