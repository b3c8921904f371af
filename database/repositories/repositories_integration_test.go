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

package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/scrmguard/database/models"
	"github.com/l3montree-dev/scrmguard/dtos"
	"github.com/l3montree-dev/scrmguard/shared"
	"github.com/l3montree-dev/scrmguard/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedProject(t *testing.T, db *gorm.DB, id string) {
	t.Helper()
	require.NoError(t, db.Create(&models.Project{ID: id, Name: id}).Error)
}

func TestRepositoriesIntegration(t *testing.T) {
	db := tests.InitDatabaseContainer(t)
	ctx := context.Background()
	seedProject(t, db, "proj-1")

	t.Run("project existence", func(t *testing.T) {
		repo := NewProjectRepository(db)
		ok, err := repo.Exists(ctx, "proj-1")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = repo.Exists(ctx, "missing")
		require.NoError(t, err)
		assert.False(t, ok)

		_, err = repo.Read(ctx, "missing")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("edge upsert changes the fingerprint", func(t *testing.T) {
		repo := NewDependencyEdgeRepository(db)

		empty, err := repo.Fingerprint(ctx, "proj-1")
		require.NoError(t, err)
		assert.Equal(t, int64(0), empty.Count)
		assert.Nil(t, empty.LastUpdated)

		edges := []*models.DependencyEdge{
			{ProjectID: "proj-1", SourceType: dtos.NodeTypeSystem, SourceID: "portal", TargetType: dtos.NodeTypeComponent, TargetID: "openssl", Criticality: dtos.CriticalityHigh},
			{ProjectID: "proj-1", SourceType: dtos.NodeTypeVendor, SourceID: "acme", TargetType: dtos.NodeTypeComponent, TargetID: "openssl", Criticality: dtos.CriticalityMedium},
		}
		require.NoError(t, repo.Upsert(ctx, nil, edges))

		first, err := repo.Fingerprint(ctx, "proj-1")
		require.NoError(t, err)
		assert.Equal(t, int64(2), first.Count)
		assert.False(t, first.Equal(empty))

		// re-ingesting the same edge updates in place
		again := []*models.DependencyEdge{
			{ProjectID: "proj-1", SourceType: dtos.NodeTypeSystem, SourceID: "portal", TargetType: dtos.NodeTypeComponent, TargetID: "openssl", Criticality: dtos.CriticalityCritical},
		}
		require.NoError(t, repo.Upsert(ctx, nil, again))

		second, err := repo.Fingerprint(ctx, "proj-1")
		require.NoError(t, err)
		assert.Equal(t, int64(2), second.Count)
		assert.False(t, second.Equal(first))

		stored, err := repo.FindByProject(ctx, "proj-1")
		require.NoError(t, err)
		require.Len(t, stored, 2)
		for _, e := range stored {
			if e.SourceID == "portal" {
				assert.Equal(t, dtos.CriticalityCritical, e.Criticality)
			}
		}
	})

	t.Run("duplicate triage is rejected", func(t *testing.T) {
		repo := NewCveTriageRepository(db)
		now := time.Now().UTC()
		record := models.CveTriage{
			ProjectID:      "proj-1",
			CveID:          "CVE-2024-0001",
			PackageName:    "openssl",
			Severity:       dtos.SeverityCritical,
			CVSSScore:      9.8,
			Exploitability: dtos.ExploitabilityNoneKnown,
			TriagedBy:      "tester",
			TriagedAt:      now,
		}
		require.NoError(t, repo.Create(ctx, nil, &record))

		duplicate := record
		duplicate.ID = uuid.Nil
		err := repo.Create(ctx, nil, &duplicate)
		assert.ErrorIs(t, err, shared.ErrAlreadyExists)

		open, err := repo.FindOpenByProject(ctx, "proj-1")
		require.NoError(t, err)
		assert.Len(t, open, 1)

		decision := dtos.TriageDecisionRemediate
		record.TriageDecision = &decision
		record.RemediatedAt = &now
		require.NoError(t, repo.Save(ctx, nil, &record))

		open, err = repo.FindOpenByProject(ctx, "proj-1")
		require.NoError(t, err)
		assert.Empty(t, open)
	})

	t.Run("agreement queries skip terminated and expired", func(t *testing.T) {
		repo := NewAgreementRepository(db)
		today := dtos.TruncateToDay(time.Now())
		mk := func(partner string, status dtos.AgreementStatus, expiryInDays int) models.IsaAgreement {
			return models.IsaAgreement{
				ProjectID:         "proj-1",
				AgreementType:     dtos.AgreementTypeISA,
				PartnerSystem:     partner,
				Status:            status,
				SignedDate:        today.AddDate(-1, 0, 0),
				ExpiryDate:        today.AddDate(0, 0, expiryInDays),
				ReviewCadenceDays: 365,
				NextReviewDate:    today,
			}
		}
		active := mk("hr-system", dtos.AgreementStatusExpiring, 20)
		terminated := mk("legacy", dtos.AgreementStatusTerminated, 10)
		expired := mk("old", dtos.AgreementStatusExpired, -5)
		for _, a := range []*models.IsaAgreement{&active, &terminated, &expired} {
			require.NoError(t, repo.Create(ctx, nil, a))
		}

		expiring, err := repo.FindExpiringBefore(ctx, "proj-1", today.AddDate(0, 0, 90))
		require.NoError(t, err)
		require.Len(t, expiring, 1)
		assert.Equal(t, active.ID, expiring[0].ID)

		due, err := repo.FindReviewDueBefore(ctx, "proj-1", today)
		require.NoError(t, err)
		require.Len(t, due, 1)

		notTerminated, err := repo.FindNotTerminatedByProject(ctx, "proj-1")
		require.NoError(t, err)
		assert.Len(t, notTerminated, 2)

		require.NoError(t, repo.UpdateStatus(ctx, nil, active.ID, dtos.AgreementStatusActive))
		reloaded, err := repo.Read(ctx, active.ID)
		require.NoError(t, err)
		assert.Equal(t, dtos.AgreementStatusActive, reloaded.Status)
	})

	t.Run("assessment snapshot and vendor tier in one transaction", func(t *testing.T) {
		require.NoError(t, db.Create(&models.Vendor{ID: "acme", ProjectID: "proj-1", VendorName: "Acme", CountryOfOrigin: "US", IntegrityStatus: "compliant"}).Error)
		vendors := NewVendorRepository(db)
		assessments := NewScrmAssessmentRepository(db)
		now := time.Now().UTC()

		err := assessments.Transaction(ctx, func(tx *gorm.DB) error {
			if err := assessments.Create(ctx, tx, &models.ScrmAssessment{
				ProjectID:      "proj-1",
				VendorID:       "acme",
				AssessmentType: "vendor",
				RiskCategory:   dtos.RiskTierModerate,
				RiskScore:      7.1,
				Likelihood:     1,
				Impact:         1,
				AssessedBy:     "tester",
				AssessedAt:     now,
			}); err != nil {
				return err
			}
			return vendors.UpdateRiskTier(ctx, tx, "proj-1", "acme", dtos.RiskTierModerate, now)
		})
		require.NoError(t, err)

		vendor, err := vendors.Read(ctx, "proj-1", "acme")
		require.NoError(t, err)
		require.NotNil(t, vendor.CachedRiskTier)
		assert.Equal(t, "moderate", *vendor.CachedRiskTier)

		history, err := assessments.FindByVendor(ctx, "proj-1", "acme")
		require.NoError(t, err)
		assert.Len(t, history, 1)

		// unknown vendor rolls the snapshot back
		err = assessments.Transaction(ctx, func(tx *gorm.DB) error {
			if err := assessments.Create(ctx, tx, &models.ScrmAssessment{ProjectID: "proj-1", VendorID: "ghost", AssessmentType: "vendor", RiskCategory: dtos.RiskTierLow, AssessedAt: now}); err != nil {
				return err
			}
			return vendors.UpdateRiskTier(ctx, tx, "proj-1", "ghost", dtos.RiskTierLow, now)
		})
		assert.ErrorIs(t, err, shared.ErrNotFound)
		history, err = assessments.FindByVendor(ctx, "proj-1", "ghost")
		require.NoError(t, err)
		assert.Empty(t, history)
	})

	t.Run("audit events are appended", func(t *testing.T) {
		repo := NewAuditEventRepository(db)
		require.NoError(t, repo.Create(ctx, nil, &models.AuditEvent{
			ProjectID:      "proj-1",
			EventType:      dtos.AuditEventCveTriaged,
			Actor:          "tester",
			Action:         "triaged CVE-2024-0001",
			Details:        map[string]any{"severity": "critical"},
			Classification: "CUI",
		}))
		events, err := repo.FindByProject(ctx, "proj-1", nil)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, "critical", events[0].Details["severity"])
	})
}
