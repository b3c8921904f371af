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

type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// slaHours maps a severity to its fixed remediation window.
var slaHours = map[Severity]int{
	SeverityCritical: 24,
	SeverityHigh:     72,
	SeverityMedium:   168,
	SeverityLow:      720,
}

func (s Severity) IsValid() bool {
	_, ok := slaHours[s]
	return ok
}

// SLAHours returns 0 for unknown severities.
func (s Severity) SLAHours() int {
	return slaHours[s]
}

func (s Severity) SLA() time.Duration {
	return time.Duration(slaHours[s]) * time.Hour
}

// Rank orders severities for the remediation backlog. Higher is more urgent.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 4
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	}
	return 0
}

type Exploitability string

const (
	ExploitabilityActive      Exploitability = "active"
	ExploitabilityPoC         Exploitability = "poc"
	ExploitabilityTheoretical Exploitability = "theoretical"
	ExploitabilityNoneKnown   Exploitability = "none_known"
)

func (e Exploitability) IsValid() bool {
	switch e {
	case ExploitabilityActive, ExploitabilityPoC, ExploitabilityTheoretical, ExploitabilityNoneKnown:
		return true
	}
	return false
}

// TriageDecision is stored as NULL until the first decision is made.
type TriageDecision string

const (
	TriageDecisionRemediate     TriageDecision = "remediate"
	TriageDecisionMitigate      TriageDecision = "mitigate"
	TriageDecisionAcceptRisk    TriageDecision = "accept_risk"
	TriageDecisionDefer         TriageDecision = "defer"
	TriageDecisionFalsePositive TriageDecision = "false_positive"
	TriageDecisionNotApplicable TriageDecision = "not_applicable"
)

func (d TriageDecision) IsValid() bool {
	switch d {
	case TriageDecisionRemediate, TriageDecisionMitigate, TriageDecisionAcceptRisk,
		TriageDecisionDefer, TriageDecisionFalsePositive, TriageDecisionNotApplicable:
		return true
	}
	return false
}

type TriageRequest struct {
	CveID          string         `json:"cveId" validate:"required"`
	Component      string         `json:"component" validate:"required"`
	CVSS           *float64       `json:"cvss" validate:"required"`
	Severity       Severity       `json:"severity" validate:"required"`
	Description    string         `json:"description"`
	Version        *string        `json:"version,omitempty"`
	Exploitability Exploitability `json:"exploitability,omitempty"`
	// CVSSVector is optional. When set it has to be a parseable CVSS 3.x or 4.0 vector.
	CVSSVector *string `json:"cvssVector,omitempty"`
}

type TriageResult struct {
	TriageID    uuid.UUID `json:"triageId"`
	CveID       string    `json:"cveId"`
	Component   string    `json:"component"`
	Severity    Severity  `json:"severity"`
	SLAHours    int       `json:"slaHours"`
	SLADeadline time.Time `json:"slaDeadline"`
	BlastRadius int       `json:"blastRadius"`
	Upstream    []string  `json:"upstream"`
	Downstream  []string  `json:"downstream"`
}

type TriageDecisionRequest struct {
	Decision  TriageDecision `json:"decision" validate:"required"`
	Rationale *string        `json:"rationale,omitempty"`
	Assignee  *string        `json:"assignee,omitempty"`
}

type CveTriageDTO struct {
	ID               uuid.UUID       `json:"id"`
	ProjectID        string          `json:"projectId"`
	CveID            string          `json:"cveId"`
	PackageName      string          `json:"packageName"`
	PackageVersion   *string         `json:"packageVersion,omitempty"`
	Description      string          `json:"description"`
	Severity         Severity        `json:"severity"`
	CVSSScore        float64         `json:"cvssScore"`
	CVSSVector       *string         `json:"cvssVector,omitempty"`
	Exploitability   Exploitability  `json:"exploitability"`
	TriageDecision   *TriageDecision `json:"triageDecision"`
	TriageRationale  *string         `json:"triageRationale,omitempty"`
	State            string          `json:"state"`
	UpstreamImpact   []string        `json:"upstreamImpact"`
	DownstreamImpact []string        `json:"downstreamImpact"`
	SLADeadline      *time.Time      `json:"slaDeadline"`
	TriagedBy        string          `json:"triagedBy"`
	TriagedAt        time.Time       `json:"triagedAt"`
	RemediatedAt     *time.Time      `json:"remediatedAt"`
}

type SLAItem struct {
	TriageID       uuid.UUID `json:"triageId"`
	CveID          string    `json:"cveId"`
	Component      string    `json:"component"`
	Severity       Severity  `json:"severity"`
	SLADeadline    time.Time `json:"slaDeadline"`
	HoursOverdue   float64   `json:"hoursOverdue,omitempty"`
	HoursRemaining float64   `json:"hoursRemaining,omitempty"`
}

type SLAReport struct {
	ProjectID       string    `json:"projectId"`
	CheckedAt       time.Time `json:"checkedAt"`
	TotalOpen       int       `json:"totalOpen"`
	Compliant       []SLAItem `json:"compliant"`
	Overdue         []SLAItem `json:"overdue"`
	OverdueCritical int       `json:"overdueCritical"`
	ComplianceRate  float64   `json:"complianceRate"`
}

type IsaImpact struct {
	AgreementID   uuid.UUID       `json:"agreementId"`
	AgreementType AgreementType   `json:"agreementType"`
	PartnerSystem string          `json:"partnerSystem"`
	PartnerOrg    string          `json:"partnerOrg"`
	Status        AgreementStatus `json:"status"`
	LinkedNodes   []string        `json:"linkedNodes"`
}

type ImpactReport struct {
	TriageID        uuid.UUID   `json:"triageId"`
	CveID           string      `json:"cveId"`
	Component       string      `json:"component"`
	Severity        Severity    `json:"severity"`
	BlastRadius     int         `json:"blastRadius"`
	Downstream      []string    `json:"downstream"`
	IsaImpacts      []IsaImpact `json:"isaImpacts"`
	Recommendations []string    `json:"recommendations"`
}
