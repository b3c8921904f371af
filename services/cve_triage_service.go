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
	"log/slog"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/scrmguard/database/models"
	"github.com/l3montree-dev/scrmguard/dtos"
	"github.com/l3montree-dev/scrmguard/graph"
	"github.com/l3montree-dev/scrmguard/monitoring"
	"github.com/l3montree-dev/scrmguard/normalize"
	"github.com/l3montree-dev/scrmguard/shared"
	"github.com/l3montree-dev/scrmguard/statemachine"
	"github.com/l3montree-dev/scrmguard/transformer"
	"github.com/l3montree-dev/scrmguard/utils"
	"github.com/pkg/errors"
)

const emergencyBlastRadius = 10

type cveTriageService struct {
	projectRepository   shared.ProjectRepository
	cveTriageRepository shared.CveTriageRepository
	agreementRepository shared.AgreementRepository
	graphLoader         shared.GraphLoader
	auditService        shared.AuditService

	clock func() time.Time
}

func NewCveTriageService(
	projectRepository shared.ProjectRepository,
	cveTriageRepository shared.CveTriageRepository,
	agreementRepository shared.AgreementRepository,
	graphLoader shared.GraphLoader,
	auditService shared.AuditService,
) *cveTriageService {
	return &cveTriageService{
		projectRepository:   projectRepository,
		cveTriageRepository: cveTriageRepository,
		agreementRepository: agreementRepository,
		graphLoader:         graphLoader,
		auditService:        auditService,
		clock:               time.Now,
	}
}

func validateTriageRequest(req *dtos.TriageRequest) error {
	req.CveID = strings.TrimSpace(req.CveID)
	req.Component = strings.TrimSpace(req.Component)
	if err := shared.ValidateStruct(req); err != nil {
		return err
	}
	if cvss := *req.CVSS; math.IsNaN(cvss) || cvss < 0 || cvss > 10 {
		return shared.InvalidInput("cvss must be between 0 and 10, got %v", cvss)
	}
	if !req.Severity.IsValid() {
		return shared.InvalidInput("unknown severity %q", req.Severity)
	}
	if req.Exploitability == "" {
		req.Exploitability = dtos.ExploitabilityNoneKnown
	}
	if !req.Exploitability.IsValid() {
		return shared.InvalidInput("unknown exploitability %q", req.Exploitability)
	}
	if req.CVSSVector != nil && strings.TrimSpace(*req.CVSSVector) != "" {
		if _, err := normalize.CVSSBaseScore(*req.CVSSVector); err != nil {
			return shared.InvalidInput("invalid cvss vector: %s", err)
		}
	}
	return nil
}

// ensureProject rejects identifiers of projects which do not exist.
func ensureProject(ctx context.Context, projectRepository shared.ProjectRepository, projectID string) error {
	ok, err := projectRepository.Exists(ctx, projectID)
	if err != nil {
		return errors.Wrap(err, "could not look up project")
	}
	if !ok {
		return shared.NotFound("project %s not found", projectID)
	}
	return nil
}

// impact resolves the component in the project graph and returns both
// traversals. An unknown component has no impact.
func (s *cveTriageService) impact(ctx context.Context, projectID, component string) (upstream []graph.NodeKey, downstream []graph.NodeKey, err error) {
	g, err := s.graphLoader.Load(ctx, projectID)
	if err != nil {
		return nil, nil, errors.Wrap(err, "could not load dependency graph")
	}
	start, ok := g.Resolve(component)
	if !ok {
		slog.Debug("component not part of the dependency graph", "projectID", projectID, "component", component)
		return []graph.NodeKey{}, []graph.NodeKey{}, nil
	}
	return g.BlastRadius(start, dtos.DirectionUpstream), g.BlastRadius(start, dtos.DirectionDownstream), nil
}

func (s *cveTriageService) Triage(ctx context.Context, projectID string, req dtos.TriageRequest) (dtos.TriageResult, error) {
	if err := validateTriageRequest(&req); err != nil {
		return dtos.TriageResult{}, err
	}
	if err := ensureProject(ctx, s.projectRepository, projectID); err != nil {
		return dtos.TriageResult{}, err
	}

	upstream, downstream, err := s.impact(ctx, projectID, req.Component)
	if err != nil {
		return dtos.TriageResult{}, err
	}

	triagedAt := s.clock().UTC()
	deadline := triagedAt.Add(req.Severity.SLA())

	record := models.CveTriage{
		ProjectID:        projectID,
		CveID:            req.CveID,
		PackageName:      req.Component,
		Description:      req.Description,
		Severity:         req.Severity,
		CVSSScore:        *req.CVSS,
		Exploitability:   req.Exploitability,
		UpstreamImpact:   graph.Strings(upstream),
		DownstreamImpact: graph.Strings(downstream),
		SLADeadline:      &deadline,
		TriagedBy:        shared.ActorFromContext(ctx),
		TriagedAt:        triagedAt,
	}
	if req.Version != nil {
		record.PackageVersion = utils.EmptyThenNil(normalize.NormalizeVersion(*req.Version))
	}
	if req.CVSSVector != nil {
		record.CVSSVector = utils.EmptyThenNil(strings.TrimSpace(*req.CVSSVector))
	}

	if err := s.cveTriageRepository.Create(ctx, nil, &record); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return dtos.TriageResult{}, errors.Wrapf(shared.ErrAlreadyExists, "%s is already triaged for %s", req.CveID, req.Component)
		}
		return dtos.TriageResult{}, errors.Wrap(err, "could not save triage record")
	}

	monitoring.CveTriagedTotal.WithLabelValues(string(req.Severity)).Inc()
	monitoring.BlastRadiusSize.Observe(float64(len(downstream)))

	s.auditService.Log(ctx, projectID, dtos.AuditEventCveTriaged, fmt.Sprintf("triaged %s on %s", req.CveID, req.Component), map[string]any{
		"triageId":       record.ID.String(),
		"cveId":          req.CveID,
		"component":      req.Component,
		"severity":       string(req.Severity),
		"cvss":           *req.CVSS,
		"slaDeadline":    deadline.Format(time.RFC3339),
		"blastRadius":    len(downstream),
		"exploitability": string(req.Exploitability),
	})

	return dtos.TriageResult{
		TriageID:    record.ID,
		CveID:       record.CveID,
		Component:   record.PackageName,
		Severity:    record.Severity,
		SLAHours:    record.Severity.SLAHours(),
		SLADeadline: deadline,
		BlastRadius: len(downstream),
		Upstream:    record.UpstreamImpact,
		Downstream:  record.DownstreamImpact,
	}, nil
}

func (s *cveTriageService) Update(ctx context.Context, triageID uuid.UUID, req dtos.TriageDecisionRequest) (dtos.CveTriageDTO, error) {
	if !req.Decision.IsValid() {
		return dtos.CveTriageDTO{}, shared.InvalidInput("unknown triage decision %q", req.Decision)
	}

	record, err := s.cveTriageRepository.Read(ctx, triageID)
	if err != nil {
		return dtos.CveTriageDTO{}, errors.Wrapf(err, "could not read triage record %s", triageID)
	}

	previous := record.Decision()
	statemachine.Apply(&record, req.Decision, req.Rationale, s.clock().UTC())

	if err := s.cveTriageRepository.Save(ctx, nil, &record); err != nil {
		return dtos.CveTriageDTO{}, errors.Wrap(err, "could not save triage decision")
	}

	monitoring.CveDecisionsTotal.WithLabelValues(string(req.Decision)).Inc()

	details := map[string]any{
		"triageId":  record.ID.String(),
		"cveId":     record.CveID,
		"component": record.PackageName,
		"decision":  string(req.Decision),
		"previous":  string(previous),
		"state":     string(statemachine.StateOf(record.TriageDecision)),
	}
	if req.Rationale != nil {
		details["rationale"] = *req.Rationale
	}
	if req.Assignee != nil {
		details["assignee"] = *req.Assignee
	}
	s.auditService.Log(ctx, record.ProjectID, dtos.AuditEventCveDecisionUpdated, fmt.Sprintf("set decision %s on %s", req.Decision, record.CveID), details)

	return transformer.CveTriageModelToDTO(record), nil
}

func (s *cveTriageService) Get(ctx context.Context, triageID uuid.UUID) (dtos.CveTriageDTO, error) {
	record, err := s.cveTriageRepository.Read(ctx, triageID)
	if err != nil {
		return dtos.CveTriageDTO{}, errors.Wrapf(err, "could not read triage record %s", triageID)
	}
	return transformer.CveTriageModelToDTO(record), nil
}

// Pending lists open records, most severe first and by cvss within a severity.
func (s *cveTriageService) Pending(ctx context.Context, projectID string) ([]dtos.CveTriageDTO, error) {
	if err := ensureProject(ctx, s.projectRepository, projectID); err != nil {
		return nil, err
	}
	records, err := s.cveTriageRepository.FindOpenByProject(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "could not fetch open triage records")
	}
	records = utils.Filter(records, statemachine.IsOpen)

	slices.SortStableFunc(records, func(a, b models.CveTriage) int {
		if a.Severity.Rank() != b.Severity.Rank() {
			return b.Severity.Rank() - a.Severity.Rank()
		}
		if a.CVSSScore != b.CVSSScore {
			if a.CVSSScore > b.CVSSScore {
				return -1
			}
			return 1
		}
		return a.TriagedAt.Compare(b.TriagedAt)
	})
	return transformer.CveTriageModelsToDTOs(records), nil
}

func round(value float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(value*pow) / pow
}

func (s *cveTriageService) CheckSLA(ctx context.Context, projectID string) (dtos.SLAReport, error) {
	if err := ensureProject(ctx, s.projectRepository, projectID); err != nil {
		return dtos.SLAReport{}, err
	}
	records, err := s.cveTriageRepository.FindOpenByProject(ctx, projectID)
	if err != nil {
		return dtos.SLAReport{}, errors.Wrap(err, "could not fetch open triage records")
	}
	records = utils.Filter(records, statemachine.IsOpen)

	now := s.clock().UTC()
	report := dtos.SLAReport{
		ProjectID: projectID,
		CheckedAt: now,
		TotalOpen: len(records),
		Compliant: []dtos.SLAItem{},
		Overdue:   []dtos.SLAItem{},
	}

	for _, record := range records {
		deadline := record.Deadline()
		item := dtos.SLAItem{
			TriageID:    record.ID,
			CveID:       record.CveID,
			Component:   record.PackageName,
			Severity:    record.Severity,
			SLADeadline: deadline,
		}
		if now.After(deadline) {
			item.HoursOverdue = round(now.Sub(deadline).Hours(), 2)
			report.Overdue = append(report.Overdue, item)
			if record.Severity == dtos.SeverityCritical {
				report.OverdueCritical++
			}
			continue
		}
		item.HoursRemaining = round(deadline.Sub(now).Hours(), 2)
		report.Compliant = append(report.Compliant, item)
	}

	slices.SortStableFunc(report.Overdue, func(a, b dtos.SLAItem) int {
		return a.SLADeadline.Compare(b.SLADeadline)
	})
	slices.SortStableFunc(report.Compliant, func(a, b dtos.SLAItem) int {
		return a.SLADeadline.Compare(b.SLADeadline)
	})

	report.ComplianceRate = 100
	if report.TotalOpen > 0 {
		report.ComplianceRate = round(float64(len(report.Compliant))/float64(report.TotalOpen)*100, 1)
	}

	monitoring.SLAOverdueRecords.WithLabelValues(projectID).Set(float64(len(report.Overdue)))
	if report.OverdueCritical > 0 {
		slog.Warn("critical vulnerabilities past their SLA", "projectID", projectID, "count", report.OverdueCritical)
	}
	return report, nil
}

func (s *cveTriageService) PropagateImpact(ctx context.Context, projectID string, triageID uuid.UUID) (dtos.ImpactReport, error) {
	record, err := s.cveTriageRepository.Read(ctx, triageID)
	if err != nil {
		return dtos.ImpactReport{}, errors.Wrapf(err, "could not read triage record %s", triageID)
	}
	if record.ProjectID != projectID {
		return dtos.ImpactReport{}, shared.NotFound("triage record %s not found in project %s", triageID, projectID)
	}

	g, err := s.graphLoader.Load(ctx, projectID)
	if err != nil {
		return dtos.ImpactReport{}, errors.Wrap(err, "could not load dependency graph")
	}
	downstream := []graph.NodeKey{}
	affected := map[graph.NodeKey]bool{}
	if start, ok := g.Resolve(record.PackageName); ok {
		downstream = g.BlastRadius(start, dtos.DirectionDownstream)
		affected[start] = true
		for _, k := range downstream {
			affected[k] = true
		}
	}

	agreements, err := s.agreementRepository.FindNotTerminatedByProject(ctx, projectID)
	if err != nil {
		return dtos.ImpactReport{}, errors.Wrap(err, "could not fetch agreements")
	}
	impacts := agreementImpacts(g, agreements, affected, downstream)

	report := dtos.ImpactReport{
		TriageID:        record.ID,
		CveID:           record.CveID,
		Component:       record.PackageName,
		Severity:        record.Severity,
		BlastRadius:     len(downstream),
		Downstream:      graph.Strings(downstream),
		IsaImpacts:      impacts,
		Recommendations: impactRecommendations(record.Severity, len(impacts), len(downstream)),
	}

	s.auditService.Log(ctx, projectID, dtos.AuditEventCveImpactPropagated, fmt.Sprintf("propagated impact of %s on %s", record.CveID, record.PackageName), map[string]any{
		"triageId":    record.ID.String(),
		"cveId":       record.CveID,
		"blastRadius": report.BlastRadius,
		"isaImpacts":  len(impacts),
	})
	return report, nil
}

// agreementImpacts reports every agreement with a governed edge touching an
// affected node or whose partner system is itself downstream. Each agreement
// appears once, in the order given.
func agreementImpacts(g *graph.Graph, agreements []models.IsaAgreement, affected map[graph.NodeKey]bool, downstream []graph.NodeKey) []dtos.IsaImpact {
	linked := map[uuid.UUID][]string{}
	for e := range g.AgreementEdges() {
		for _, node := range []graph.NodeKey{e.Source, e.Target} {
			if affected[node] && !slices.Contains(linked[*e.AgreementID], node.String()) {
				linked[*e.AgreementID] = append(linked[*e.AgreementID], node.String())
			}
		}
	}

	impacts := []dtos.IsaImpact{}
	for _, agreement := range agreements {
		if agreement.Status == dtos.AgreementStatusTerminated {
			continue
		}
		nodes := linked[agreement.ID]
		for _, k := range downstream {
			if k.ID == agreement.PartnerSystem || k.String() == agreement.PartnerSystem {
				if !slices.Contains(nodes, k.String()) {
					nodes = append(nodes, k.String())
				}
			}
		}
		if len(nodes) == 0 {
			continue
		}
		slices.Sort(nodes)
		impacts = append(impacts, dtos.IsaImpact{
			AgreementID:   agreement.ID,
			AgreementType: agreement.AgreementType,
			PartnerSystem: agreement.PartnerSystem,
			PartnerOrg:    agreement.PartnerOrg,
			Status:        agreement.Status,
			LinkedNodes:   nodes,
		})
	}
	return impacts
}

func impactRecommendations(severity dtos.Severity, isaImpacts int, blastRadius int) []string {
	recommendations := []string{}
	if severity == dtos.SeverityCritical {
		recommendations = append(recommendations, "Notify all downstream system owners within 4 hours")
	}
	if isaImpacts > 0 {
		recommendations = append(recommendations, fmt.Sprintf("Notify the partners of %d interconnection agreement(s) per agreement terms and track acknowledgement", isaImpacts))
	}
	if blastRadius > emergencyBlastRadius {
		recommendations = append(recommendations, fmt.Sprintf("Open an emergency change request, %d downstream nodes are affected", blastRadius))
	}
	if len(recommendations) == 0 {
		recommendations = append(recommendations, fmt.Sprintf("Remediate within the standard %d hour SLA for %s severity", severity.SLAHours(), severity))
	}
	return recommendations
}
