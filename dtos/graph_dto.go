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

import "github.com/google/uuid"

type NodeType string

const (
	NodeTypeComponent NodeType = "component"
	NodeTypePackage   NodeType = "package"
	NodeTypeVendor    NodeType = "vendor"
	NodeTypeSystem    NodeType = "system"
	NodeTypeProject   NodeType = "project"
)

// NodeTypes is ordered by bare-name resolution precedence.
var NodeTypes = []NodeType{NodeTypeComponent, NodeTypePackage, NodeTypeVendor, NodeTypeSystem, NodeTypeProject}

func (t NodeType) IsValid() bool {
	switch t {
	case NodeTypeComponent, NodeTypePackage, NodeTypeVendor, NodeTypeSystem, NodeTypeProject:
		return true
	}
	return false
}

type Direction string

const (
	// DirectionUpstream follows what a node depends on.
	DirectionUpstream Direction = "upstream"
	// DirectionDownstream follows what depends on a node.
	DirectionDownstream Direction = "downstream"
)

func (d Direction) IsValid() bool {
	return d == DirectionUpstream || d == DirectionDownstream
}

type Criticality string

const (
	CriticalityCritical Criticality = "critical"
	CriticalityHigh     Criticality = "high"
	CriticalityMedium   Criticality = "medium"
	CriticalityLow      Criticality = "low"
)

func (c Criticality) IsValid() bool {
	switch c {
	case CriticalityCritical, CriticalityHigh, CriticalityMedium, CriticalityLow:
		return true
	}
	return false
}

type EdgeInput struct {
	Source      string      `json:"source" validate:"required"`
	Target      string      `json:"target" validate:"required"`
	Criticality Criticality `json:"criticality,omitempty"`
	AgreementID *uuid.UUID  `json:"agreementId,omitempty"`
}

type EdgeIngestRequest struct {
	Edges []EdgeInput `json:"edges" validate:"required,min=1,dive"`
}

type EdgeIngestResult struct {
	ProjectID string   `json:"projectId"`
	Ingested  int      `json:"ingested"`
	Nodes     []string `json:"nodes"`
}

type BlastRadiusDTO struct {
	ProjectID string    `json:"projectId"`
	Start     string    `json:"start"`
	Resolved  bool      `json:"resolved"`
	Direction Direction `json:"direction"`
	Nodes     []string  `json:"nodes"`
	Count     int       `json:"count"`
}
