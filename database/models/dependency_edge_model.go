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
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/scrmguard/dtos"
)

type DependencyEdge struct {
	Model
	ProjectID   string           `json:"projectId" gorm:"column:project_id;type:text;not null;uniqueIndex:idx_dependency_edge"`
	SourceType  dtos.NodeType    `json:"sourceType" gorm:"column:source_type;type:text;not null;uniqueIndex:idx_dependency_edge"`
	SourceID    string           `json:"sourceId" gorm:"column:source_id;type:text;not null;uniqueIndex:idx_dependency_edge"`
	TargetType  dtos.NodeType    `json:"targetType" gorm:"column:target_type;type:text;not null;uniqueIndex:idx_dependency_edge"`
	TargetID    string           `json:"targetId" gorm:"column:target_id;type:text;not null;uniqueIndex:idx_dependency_edge"`
	Criticality dtos.Criticality `json:"criticality" gorm:"column:criticality;type:text;not null;default:'medium'"`
	// AgreementID links the edge to the interconnection agreement governing it.
	AgreementID *uuid.UUID `json:"agreementId" gorm:"column:agreement_id;type:uuid;default:null"`
}

func (DependencyEdge) TableName() string {
	return "dependency_edges"
}

// EdgeFingerprint summarises the edge table of a project. Any insert, update or
// delete changes at least one of the two values.
type EdgeFingerprint struct {
	Count       int64      `gorm:"column:edge_count"`
	LastUpdated *time.Time `gorm:"column:last_updated"`
}

func (f EdgeFingerprint) Equal(other EdgeFingerprint) bool {
	if f.Count != other.Count {
		return false
	}
	if f.LastUpdated == nil || other.LastUpdated == nil {
		return f.LastUpdated == nil && other.LastUpdated == nil
	}
	return f.LastUpdated.Equal(*other.LastUpdated)
}

func (f EdgeFingerprint) String() string {
	if f.LastUpdated == nil {
		return fmt.Sprintf("%d", f.Count)
	}
	return fmt.Sprintf("%d@%d", f.Count, f.LastUpdated.UnixNano())
}
