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
	"github.com/l3montree-dev/scrmguard/statemachine"
)

func CveTriageModelsToDTOs(records []models.CveTriage) []dtos.CveTriageDTO {
	result := make([]dtos.CveTriageDTO, len(records))
	for i, record := range records {
		result[i] = CveTriageModelToDTO(record)
	}
	return result
}

func CveTriageModelToDTO(record models.CveTriage) dtos.CveTriageDTO {
	deadline := record.Deadline()
	return dtos.CveTriageDTO{
		ID:               record.ID,
		ProjectID:        record.ProjectID,
		CveID:            record.CveID,
		PackageName:      record.PackageName,
		PackageVersion:   record.PackageVersion,
		Description:      record.Description,
		Severity:         record.Severity,
		CVSSScore:        record.CVSSScore,
		CVSSVector:       record.CVSSVector,
		Exploitability:   record.Exploitability,
		TriageDecision:   record.TriageDecision,
		TriageRationale:  record.TriageRationale,
		State:            string(statemachine.StateOf(record.TriageDecision)),
		UpstreamImpact:   nonNil(record.UpstreamImpact),
		DownstreamImpact: nonNil(record.DownstreamImpact),
		SLADeadline:      &deadline,
		TriagedBy:        record.TriagedBy,
		TriagedAt:        record.TriagedAt,
		RemediatedAt:     record.RemediatedAt,
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
