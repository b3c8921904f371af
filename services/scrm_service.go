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
	"slices"
	"strings"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/hashicorp/go-multierror"
	"github.com/l3montree-dev/scrmguard/database/models"
	"github.com/l3montree-dev/scrmguard/dtos"
	"github.com/l3montree-dev/scrmguard/graph"
	"github.com/l3montree-dev/scrmguard/monitoring"
	"github.com/l3montree-dev/scrmguard/shared"
	"github.com/l3montree-dev/scrmguard/transformer"
	"github.com/l3montree-dev/scrmguard/utils"
	"github.com/pkg/errors"
)

const assessmentTypeAutomated = "automated"

type scrmService struct {
	projectRepository        shared.ProjectRepository
	vendorRepository         shared.VendorRepository
	scrmAssessmentRepository shared.ScrmAssessmentRepository
	graphLoader              shared.GraphLoader
	auditService             shared.AuditService

	clock func() time.Time
}

func NewScrmService(
	projectRepository shared.ProjectRepository,
	vendorRepository shared.VendorRepository,
	scrmAssessmentRepository shared.ScrmAssessmentRepository,
	graphLoader shared.GraphLoader,
	auditService shared.AuditService,
) *scrmService {
	return &scrmService{
		projectRepository:        projectRepository,
		vendorRepository:         vendorRepository,
		scrmAssessmentRepository: scrmAssessmentRepository,
		graphLoader:              graphLoader,
		auditService:             auditService,
		clock:                    time.Now,
	}
}

// suppliedComponents counts the distinct component and package nodes adjacent to the vendor.
func suppliedComponents(g *graph.Graph, vendorID string) int {
	return len(utils.Filter(g.Neighbors(graph.Key(dtos.NodeTypeVendor, vendorID)), func(k graph.NodeKey) bool {
		return k.Type == dtos.NodeTypeComponent || k.Type == dtos.NodeTypePackage
	}))
}

func (s *scrmService) assess(ctx context.Context, g *graph.Graph, vendor models.Vendor) (dtos.VendorAssessmentDTO, error) {
	components := suppliedComponents(g, vendor.ID)
	score, err := scoreVendor(vendor.CountryOfOrigin, vendor.IntegrityStatus, components)
	if err != nil {
		return dtos.VendorAssessmentDTO{}, errors.Wrapf(err, "could not score vendor %s", vendor.ID)
	}

	assessment := models.ScrmAssessment{
		ProjectID:      vendor.ProjectID,
		VendorID:       vendor.ID,
		AssessmentType: assessmentTypeAutomated,
		RiskCategory:   score.tier,
		RiskScore:      score.overall,
		Likelihood:     score.likelihood,
		Impact:         score.impact,
		Mitigations:    score.recommendations,
		ResidualRisk:   string(score.tier),
		Controls:       score.controls,
		Dimensions:     score.dimensions,
		AssessedBy:     shared.ActorFromContext(ctx),
		AssessedAt:     s.clock().UTC(),
	}

	err = s.scrmAssessmentRepository.Transaction(ctx, func(tx shared.DB) error {
		if err := s.scrmAssessmentRepository.Create(ctx, tx, &assessment); err != nil {
			return err
		}
		return s.vendorRepository.UpdateRiskTier(ctx, tx, vendor.ProjectID, vendor.ID, score.tier, assessment.AssessedAt)
	})
	if err != nil {
		return dtos.VendorAssessmentDTO{}, errors.Wrapf(err, "could not persist assessment of vendor %s", vendor.ID)
	}

	monitoring.VendorAssessmentsTotal.WithLabelValues(string(score.tier)).Inc()
	s.auditService.Log(ctx, vendor.ProjectID, dtos.AuditEventVendorAssessed, fmt.Sprintf("assessed %s as %s risk", vendor.VendorName, score.tier), map[string]any{
		"assessmentId": assessment.ID.String(),
		"vendorId":     vendor.ID,
		"overallScore": score.overall,
		"riskTier":     string(score.tier),
		"components":   components,
	})

	return transformer.ScrmAssessmentModelToDTO(assessment, vendor.VendorName), nil
}

func (s *scrmService) AssessVendor(ctx context.Context, projectID, vendorID string) (dtos.VendorAssessmentDTO, error) {
	if err := ensureProject(ctx, s.projectRepository, projectID); err != nil {
		return dtos.VendorAssessmentDTO{}, err
	}
	vendor, err := s.vendorRepository.Read(ctx, projectID, vendorID)
	if err != nil {
		return dtos.VendorAssessmentDTO{}, errors.Wrapf(err, "could not read vendor %s", vendorID)
	}
	g, err := s.graphLoader.Load(ctx, projectID)
	if err != nil {
		return dtos.VendorAssessmentDTO{}, errors.Wrap(err, "could not load dependency graph")
	}
	return s.assess(ctx, g, vendor)
}

// worstFirst orders by tier, then by ascending score. The vendor id keeps the order stable.
func worstFirst(a, b dtos.VendorAssessmentDTO) int {
	if a.RiskTier.Rank() != b.RiskTier.Rank() {
		return b.RiskTier.Rank() - a.RiskTier.Rank()
	}
	if a.OverallScore != b.OverallScore {
		if a.OverallScore < b.OverallScore {
			return -1
		}
		return 1
	}
	return strings.Compare(a.VendorID, b.VendorID)
}

// AssessProject assesses every vendor of the project. A failing vendor is
// reported and skipped. topN == 0 returns every assessment as top risk.
func (s *scrmService) AssessProject(ctx context.Context, projectID string, topN int) (dtos.ProjectAssessmentDTO, error) {
	if topN < 0 {
		return dtos.ProjectAssessmentDTO{}, shared.InvalidInput("top must not be negative")
	}
	if err := ensureProject(ctx, s.projectRepository, projectID); err != nil {
		return dtos.ProjectAssessmentDTO{}, err
	}
	vendors, err := s.vendorRepository.FindByProject(ctx, projectID)
	if err != nil {
		return dtos.ProjectAssessmentDTO{}, errors.Wrap(err, "could not fetch vendors")
	}
	g, err := s.graphLoader.Load(ctx, projectID)
	if err != nil {
		return dtos.ProjectAssessmentDTO{}, errors.Wrap(err, "could not load dependency graph")
	}

	result := dtos.ProjectAssessmentDTO{
		ProjectID:     projectID,
		Failures:      []dtos.AssessmentFailure{},
		TierHistogram: map[dtos.RiskTier]int{},
	}
	for _, tier := range dtos.RiskTiers {
		result.TierHistogram[tier] = 0
	}

	var errs *multierror.Error
	assessments := make([]dtos.VendorAssessmentDTO, 0, len(vendors))
	controls := mapset.NewSet[string]()
	for _, vendor := range vendors {
		assessment, err := s.assess(ctx, g, vendor)
		if err != nil {
			errs = multierror.Append(errs, err)
			monitoring.VendorAssessmentFailures.Inc()
			result.Failures = append(result.Failures, dtos.AssessmentFailure{VendorID: vendor.ID, Error: err.Error()})
			continue
		}
		assessments = append(assessments, assessment)
		result.TierHistogram[assessment.RiskTier]++
		controls.Append(assessment.Controls...)
	}
	if err := errs.ErrorOrNil(); err != nil {
		slog.Warn("some vendors could not be assessed", "projectID", projectID, "failed", errs.Len(), "err", err)
	}

	slices.SortFunc(assessments, worstFirst)
	if topN > 0 && len(assessments) > topN {
		assessments = assessments[:topN]
	}

	result.VendorsAssessed = len(vendors) - len(result.Failures)
	result.TopRisks = assessments
	result.ControlsCoverage = controls.ToSlice()
	slices.Sort(result.ControlsCoverage)
	return result, nil
}

func (s *scrmService) ProhibitedVendors(ctx context.Context, projectID string) ([]dtos.ProhibitedVendorDTO, error) {
	if err := ensureProject(ctx, s.projectRepository, projectID); err != nil {
		return nil, err
	}
	vendors, err := s.vendorRepository.FindByIntegrityStatus(ctx, projectID, string(dtos.IntegrityStatusProhibited))
	if err != nil {
		return nil, errors.Wrap(err, "could not fetch prohibited vendors")
	}

	result := make([]dtos.ProhibitedVendorDTO, 0, len(vendors))
	for _, vendor := range vendors {
		result = append(result, transformer.VendorToProhibitedDTO(vendor, prohibitedVendorGuidance(vendor.VendorName)))
	}

	if len(result) > 0 {
		s.auditService.Log(ctx, projectID, dtos.AuditEventProhibitedEscalation, fmt.Sprintf("%d prohibited vendors in use", len(result)), map[string]any{
			"vendorIds": utils.Map(vendors, func(v models.Vendor) string { return v.ID }),
		})
	}
	return result, nil
}

func (s *scrmService) History(ctx context.Context, projectID, vendorID string) ([]dtos.VendorAssessmentDTO, error) {
	vendor, err := s.vendorRepository.Read(ctx, projectID, vendorID)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read vendor %s", vendorID)
	}
	assessments, err := s.scrmAssessmentRepository.FindByVendor(ctx, projectID, vendorID)
	if err != nil {
		return nil, errors.Wrap(err, "could not fetch assessments")
	}
	return utils.Map(assessments, func(a models.ScrmAssessment) dtos.VendorAssessmentDTO {
		return transformer.ScrmAssessmentModelToDTO(a, vendor.VendorName)
	}), nil
}
