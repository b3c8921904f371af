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

package services

import (
	"context"
	"fmt"
	"slices"
	"strings"

	cdx "github.com/CycloneDX/cyclonedx-go"
	"github.com/google/uuid"
	"github.com/l3montree-dev/scrmguard/database/models"
	"github.com/l3montree-dev/scrmguard/dtos"
	"github.com/l3montree-dev/scrmguard/graph"
	"github.com/l3montree-dev/scrmguard/normalize"
	"github.com/l3montree-dev/scrmguard/shared"
	"github.com/pkg/errors"
)

type dependencyEdgeService struct {
	projectRepository        shared.ProjectRepository
	dependencyEdgeRepository shared.DependencyEdgeRepository
	agreementRepository      shared.AgreementRepository
	graphLoader              shared.GraphLoader
	auditService             shared.AuditService
}

func NewDependencyEdgeService(
	projectRepository shared.ProjectRepository,
	dependencyEdgeRepository shared.DependencyEdgeRepository,
	agreementRepository shared.AgreementRepository,
	graphLoader shared.GraphLoader,
	auditService shared.AuditService,
) *dependencyEdgeService {
	return &dependencyEdgeService{
		projectRepository:        projectRepository,
		dependencyEdgeRepository: dependencyEdgeRepository,
		agreementRepository:      agreementRepository,
		graphLoader:              graphLoader,
		auditService:             auditService,
	}
}

type edgeIdentity struct {
	source graph.NodeKey
	target graph.NodeKey
}

// canonicalEdges parses every reference into its canonical key. Duplicate
// edges within one request collapse into the last occurrence.
func canonicalEdges(projectID string, inputs []dtos.EdgeInput) ([]*models.DependencyEdge, error) {
	positions := map[edgeIdentity]int{}
	edges := make([]*models.DependencyEdge, 0, len(inputs))
	for i, input := range inputs {
		source, _, err := graph.ParseNodeRef(input.Source)
		if err != nil {
			return nil, shared.InvalidInput("edge %d: %s", i, err)
		}
		target, _, err := graph.ParseNodeRef(input.Target)
		if err != nil {
			return nil, shared.InvalidInput("edge %d: %s", i, err)
		}
		if source == target {
			return nil, shared.InvalidInput("edge %d: %s cannot depend on itself", i, source)
		}
		criticality := input.Criticality
		if criticality == "" {
			criticality = dtos.CriticalityMedium
		}
		if !criticality.IsValid() {
			return nil, shared.InvalidInput("edge %d: unknown criticality %q", i, input.Criticality)
		}

		edge := &models.DependencyEdge{
			ProjectID:   projectID,
			SourceType:  source.Type,
			SourceID:    source.ID,
			TargetType:  target.Type,
			TargetID:    target.ID,
			Criticality: criticality,
			AgreementID: input.AgreementID,
		}
		identity := edgeIdentity{source: source, target: target}
		if pos, ok := positions[identity]; ok {
			edges[pos] = edge
			continue
		}
		positions[identity] = len(edges)
		edges = append(edges, edge)
	}
	return edges, nil
}

func (s *dependencyEdgeService) verifyAgreements(ctx context.Context, projectID string, edges []*models.DependencyEdge) error {
	verified := map[uuid.UUID]bool{}
	for _, edge := range edges {
		if edge.AgreementID == nil || verified[*edge.AgreementID] {
			continue
		}
		agreement, err := s.agreementRepository.Read(ctx, *edge.AgreementID)
		if err != nil {
			return errors.Wrapf(err, "could not read agreement %s", *edge.AgreementID)
		}
		if agreement.ProjectID != projectID {
			return shared.NotFound("agreement %s not found in project %s", *edge.AgreementID, projectID)
		}
		verified[*edge.AgreementID] = true
	}
	return nil
}

func (s *dependencyEdgeService) Ingest(ctx context.Context, projectID string, req dtos.EdgeIngestRequest) (dtos.EdgeIngestResult, error) {
	if err := shared.ValidateStruct(req); err != nil {
		return dtos.EdgeIngestResult{}, err
	}
	edges, err := canonicalEdges(projectID, req.Edges)
	if err != nil {
		return dtos.EdgeIngestResult{}, err
	}
	if err := ensureProject(ctx, s.projectRepository, projectID); err != nil {
		return dtos.EdgeIngestResult{}, err
	}
	if err := s.verifyAgreements(ctx, projectID, edges); err != nil {
		return dtos.EdgeIngestResult{}, err
	}

	if err := s.dependencyEdgeRepository.Upsert(ctx, nil, edges); err != nil {
		return dtos.EdgeIngestResult{}, errors.Wrap(err, "could not store dependency edges")
	}
	s.graphLoader.Invalidate(projectID)

	nodes := []string{}
	for _, edge := range edges {
		for _, key := range []graph.NodeKey{graph.Key(edge.SourceType, edge.SourceID), graph.Key(edge.TargetType, edge.TargetID)} {
			if !slices.Contains(nodes, key.String()) {
				nodes = append(nodes, key.String())
			}
		}
	}
	slices.Sort(nodes)

	s.auditService.Log(ctx, projectID, dtos.AuditEventDependencyEdgesLoaded, fmt.Sprintf("ingested %d dependency edges", len(edges)), map[string]any{
		"edges": len(edges),
		"nodes": len(nodes),
	})

	return dtos.EdgeIngestResult{
		ProjectID: projectID,
		Ingested:  len(edges),
		Nodes:     nodes,
	}, nil
}

// IngestBOM loads the dependency and supplier relations of a CycloneDX bom.
// Edges get the default criticality and no agreement.
func (s *dependencyEdgeService) IngestBOM(ctx context.Context, projectID string, bom *cdx.BOM) (dtos.EdgeIngestResult, error) {
	edges := normalize.BOMEdges(bom)
	if len(edges) == 0 {
		return dtos.EdgeIngestResult{}, shared.InvalidInput("bom contains neither dependency nor supplier relations")
	}
	return s.Ingest(ctx, projectID, dtos.EdgeIngestRequest{Edges: edges})
}

func (s *dependencyEdgeService) BlastRadius(ctx context.Context, projectID, component string, direction dtos.Direction) (dtos.BlastRadiusDTO, error) {
	component = strings.TrimSpace(component)
	if component == "" {
		return dtos.BlastRadiusDTO{}, shared.InvalidInput("component is required")
	}
	if direction == "" {
		direction = dtos.DirectionDownstream
	}
	if !direction.IsValid() {
		return dtos.BlastRadiusDTO{}, shared.InvalidInput("unknown direction %q", direction)
	}
	if err := ensureProject(ctx, s.projectRepository, projectID); err != nil {
		return dtos.BlastRadiusDTO{}, err
	}

	g, err := s.graphLoader.Load(ctx, projectID)
	if err != nil {
		return dtos.BlastRadiusDTO{}, errors.Wrap(err, "could not load dependency graph")
	}

	result := dtos.BlastRadiusDTO{
		ProjectID: projectID,
		Start:     component,
		Direction: direction,
		Nodes:     []string{},
	}
	start, ok := g.Resolve(component)
	if !ok {
		return result, nil
	}
	result.Start = start.String()
	result.Resolved = true
	result.Nodes = graph.Strings(g.BlastRadius(start, direction))
	result.Count = len(result.Nodes)
	return result, nil
}
