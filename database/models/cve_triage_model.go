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

type CveTriage struct {
	ID               uuid.UUID                   `json:"id" gorm:"primarykey;type:uuid;default:gen_random_uuid()"`
	ProjectID        string                      `json:"projectId" gorm:"column:project_id;type:text;not null;uniqueIndex:idx_cve_triage_project_cve_package"`
	CveID            string                      `json:"cveId" gorm:"column:cve_id;type:text;not null;uniqueIndex:idx_cve_triage_project_cve_package"`
	PackageName      string                      `json:"packageName" gorm:"column:package_name;type:text;not null;uniqueIndex:idx_cve_triage_project_cve_package"`
	PackageVersion   *string                     `json:"packageVersion" gorm:"column:package_version;type:text"`
	Description      string                      `json:"description" gorm:"column:description;type:text"`
	Severity         dtos.Severity               `json:"severity" gorm:"column:severity;type:text;not null"`
	CVSSScore        float64                     `json:"cvssScore" gorm:"column:cvss_score;not null"`
	CVSSVector       *string                     `json:"cvssVector" gorm:"column:cvss_vector;type:text"`
	Exploitability   dtos.Exploitability         `json:"exploitability" gorm:"column:exploitability;type:text;not null;default:'none_known'"`
	TriageDecision   *dtos.TriageDecision        `json:"triageDecision" gorm:"column:triage_decision;type:text;default:null"`
	TriageRationale  *string                     `json:"triageRationale" gorm:"column:triage_rationale;type:text"`
	UpstreamImpact   datatypes.JSONSlice[string] `json:"upstreamImpact" gorm:"column:upstream_impact;type:jsonb"`
	DownstreamImpact datatypes.JSONSlice[string] `json:"downstreamImpact" gorm:"column:downstream_impact;type:jsonb"`
	SLADeadline      *time.Time                  `json:"slaDeadline" gorm:"column:sla_deadline"`
	TriagedBy        string                      `json:"triagedBy" gorm:"column:triaged_by;type:text"`
	TriagedAt        time.Time                   `json:"triagedAt" gorm:"column:triaged_at;not null"`
	RemediatedAt     *time.Time                  `json:"remediatedAt" gorm:"column:remediated_at"`
}

func (CveTriage) TableName() string {
	return "cve_triage"
}

// Decision returns the empty decision while the record has not been decided on.
func (c CveTriage) Decision() dtos.TriageDecision {
	if c.TriageDecision == nil {
		return ""
	}
	return *c.TriageDecision
}

// Deadline falls back to triaged_at plus the severity window for records
// written without a deadline.
func (c CveTriage) Deadline() time.Time {
	if c.SLADeadline != nil {
		return *c.SLADeadline
	}
	return c.TriagedAt.Add(c.Severity.SLA())
}
