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

package shared

import (
	"context"
	"time"

	cdx "github.com/CycloneDX/cyclonedx-go"
	"github.com/google/uuid"
	"github.com/l3montree-dev/scrmguard/database/models"
	"github.com/l3montree-dev/scrmguard/dtos"
	"github.com/l3montree-dev/scrmguard/graph"
	"github.com/l3montree-dev/scrmguard/utils"
)

type ProjectRepository interface {
	Read(ctx context.Context, projectID string) (models.Project, error)
	Exists(ctx context.Context, projectID string) (bool, error)
}

type DependencyEdgeRepository interface {
	FindByProject(ctx context.Context, projectID string) ([]models.DependencyEdge, error)
	Fingerprint(ctx context.Context, projectID string) (models.EdgeFingerprint, error)
	Upsert(ctx context.Context, tx DB, edges []*models.DependencyEdge) error
	Transaction(ctx context.Context, fn func(tx DB) error) error
}

type CveTriageRepository interface {
	utils.Repository[uuid.UUID, models.CveTriage, DB]
	FindOpenByProject(ctx context.Context, projectID string) ([]models.CveTriage, error)
}

type AgreementRepository interface {
	utils.Repository[uuid.UUID, models.IsaAgreement, DB]
	FindByProject(ctx context.Context, projectID string, status *dtos.AgreementStatus) ([]models.IsaAgreement, error)
	// FindManagedByProject returns every agreement which is neither terminated nor expired.
	FindManagedByProject(ctx context.Context, projectID string) ([]models.IsaAgreement, error)
	FindNotTerminatedByProject(ctx context.Context, projectID string) ([]models.IsaAgreement, error)
	FindExpiringBefore(ctx context.Context, projectID string, cutoff time.Time) ([]models.IsaAgreement, error)
	FindReviewDueBefore(ctx context.Context, projectID string, cutoff time.Time) ([]models.IsaAgreement, error)
	UpdateStatus(ctx context.Context, tx DB, agreementID uuid.UUID, status dtos.AgreementStatus) error
}

type VendorRepository interface {
	Read(ctx context.Context, projectID, vendorID string) (models.Vendor, error)
	FindByProject(ctx context.Context, projectID string) ([]models.Vendor, error)
	FindByIntegrityStatus(ctx context.Context, projectID string, status string) ([]models.Vendor, error)
	UpdateRiskTier(ctx context.Context, tx DB, projectID, vendorID string, tier dtos.RiskTier, assessedAt time.Time) error
}

type ScrmAssessmentRepository interface {
	Create(ctx context.Context, tx DB, assessment *models.ScrmAssessment) error
	FindByVendor(ctx context.Context, projectID, vendorID string) ([]models.ScrmAssessment, error)
	Transaction(ctx context.Context, fn func(tx DB) error) error
}

type AuditEventRepository interface {
	Create(ctx context.Context, tx DB, event *models.AuditEvent) error
	FindByProject(ctx context.Context, projectID string, eventType *dtos.AuditEventType) ([]models.AuditEvent, error)
}

type GraphLoader interface {
	Load(ctx context.Context, projectID string) (*graph.Graph, error)
	Invalidate(projectID string)
}

// AuditService never fails the calling operation. Write errors are logged and counted.
type AuditService interface {
	Log(ctx context.Context, projectID string, eventType dtos.AuditEventType, action string, details map[string]any)
	Trail(ctx context.Context, projectID string, eventType *dtos.AuditEventType) ([]dtos.AuditEventDTO, error)
}

type CveTriageService interface {
	Triage(ctx context.Context, projectID string, req dtos.TriageRequest) (dtos.TriageResult, error)
	Update(ctx context.Context, triageID uuid.UUID, req dtos.TriageDecisionRequest) (dtos.CveTriageDTO, error)
	Get(ctx context.Context, triageID uuid.UUID) (dtos.CveTriageDTO, error)
	Pending(ctx context.Context, projectID string) ([]dtos.CveTriageDTO, error)
	CheckSLA(ctx context.Context, projectID string) (dtos.SLAReport, error)
	PropagateImpact(ctx context.Context, projectID string, triageID uuid.UUID) (dtos.ImpactReport, error)
}

type AgreementService interface {
	Create(ctx context.Context, projectID string, req dtos.AgreementCreateRequest) (dtos.AgreementDTO, error)
	Get(ctx context.Context, agreementID uuid.UUID) (dtos.AgreementDTO, error)
	List(ctx context.Context, projectID string, status *dtos.AgreementStatus) ([]dtos.AgreementDTO, error)
	Expiring(ctx context.Context, projectID string, daysAhead int) ([]dtos.ExpiringAgreementDTO, error)
	ReviewDue(ctx context.Context, projectID string) ([]dtos.ReviewDueAgreementDTO, error)
	Renew(ctx context.Context, agreementID uuid.UUID, req dtos.AgreementRenewRequest) (dtos.AgreementDTO, error)
	Revoke(ctx context.Context, agreementID uuid.UUID, req dtos.AgreementRevokeRequest) (dtos.AgreementDTO, error)
	Reconcile(ctx context.Context, projectID string) (dtos.ReconcileResult, error)
}

type ScrmService interface {
	AssessVendor(ctx context.Context, projectID, vendorID string) (dtos.VendorAssessmentDTO, error)
	AssessProject(ctx context.Context, projectID string, topN int) (dtos.ProjectAssessmentDTO, error)
	ProhibitedVendors(ctx context.Context, projectID string) ([]dtos.ProhibitedVendorDTO, error)
	History(ctx context.Context, projectID, vendorID string) ([]dtos.VendorAssessmentDTO, error)
}

type DependencyEdgeService interface {
	Ingest(ctx context.Context, projectID string, req dtos.EdgeIngestRequest) (dtos.EdgeIngestResult, error)
	IngestBOM(ctx context.Context, projectID string, bom *cdx.BOM) (dtos.EdgeIngestResult, error)
	BlastRadius(ctx context.Context, projectID, component string, direction dtos.Direction) (dtos.BlastRadiusDTO, error)
}
