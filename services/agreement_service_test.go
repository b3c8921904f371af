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
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/scrmguard/database/models"
	"github.com/l3montree-dev/scrmguard/dtos"
	"github.com/l3montree-dev/scrmguard/mocks"
	"github.com/l3montree-dev/scrmguard/shared"
	"github.com/l3montree-dev/scrmguard/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var today = dtos.TruncateToDay(fixedNow)

func day(offset int) time.Time {
	return today.AddDate(0, 0, offset)
}

type agreementFixture struct {
	projects   *mocks.ProjectRepository
	agreements *mocks.AgreementRepository
	audit      *mocks.AuditService
	service    *agreementService
}

func newAgreementFixture(t *testing.T) agreementFixture {
	f := agreementFixture{
		projects:   mocks.NewProjectRepository(t),
		agreements: mocks.NewAgreementRepository(t),
		audit:      mocks.NewAuditService(t),
	}
	f.service = NewAgreementService(f.projects, f.agreements, f.audit)
	f.service.clock = fixedClock
	return f
}

func TestDeriveStatus(t *testing.T) {
	cases := []struct {
		expiry time.Time
		want   dtos.AgreementStatus
	}{
		{day(-1), dtos.AgreementStatusExpired},
		{day(0), dtos.AgreementStatusExpiring},
		{day(30), dtos.AgreementStatusExpiring},
		{day(90), dtos.AgreementStatusExpiring},
		{day(91), dtos.AgreementStatusActive},
		{day(400), dtos.AgreementStatusActive},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, DeriveStatus(c.expiry, today), c.expiry)
		// the time of day does not matter
		assert.Equal(t, c.want, DeriveStatus(c.expiry.Add(23*time.Hour), fixedNow), c.expiry)
	}
}

func TestUrgencyFor(t *testing.T) {
	assert.Equal(t, dtos.UrgencyCritical, urgencyFor(-5))
	assert.Equal(t, dtos.UrgencyCritical, urgencyFor(30))
	assert.Equal(t, dtos.UrgencyHigh, urgencyFor(31))
	assert.Equal(t, dtos.UrgencyHigh, urgencyFor(60))
	assert.Equal(t, dtos.UrgencyMedium, urgencyFor(90))
	assert.Equal(t, dtos.UrgencyLow, urgencyFor(91))
}

func TestCreateAgreement(t *testing.T) {
	ctx := context.Background()

	t.Run("expiring in thirty days", func(t *testing.T) {
		f := newAgreementFixture(t)
		f.projects.On("Exists", ctx, "p1").Return(true, nil)
		var saved models.IsaAgreement
		f.agreements.On("Create", ctx, mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			saved = *args.Get(2).(*models.IsaAgreement)
		}).Return(nil)
		f.audit.On("Log", ctx, "p1", dtos.AuditEventAgreementCreated, mock.Anything, mock.Anything).Return()

		dto, err := f.service.Create(ctx, "p1", dtos.AgreementCreateRequest{
			PartnerSystem: " hr-db ",
			DataTypes:     []string{"PII", "PII", " ", "CUI"},
			SignedDate:    dtos.NewDate(day(-335)),
			ExpiryDate:    dtos.NewDate(day(30)),
		})
		require.NoError(t, err)
		assert.Equal(t, dtos.AgreementStatusExpiring, dto.Status)
		assert.Equal(t, dtos.AgreementTypeISA, dto.AgreementType)
		assert.Equal(t, 365, dto.ReviewCadenceDays)
		assert.Equal(t, day(30), dto.NextReviewDate.Time)
		assert.Equal(t, "hr-db", saved.PartnerSystem)
		assert.Equal(t, []string{"PII", "CUI"}, dto.DataTypesShared)
		assert.Equal(t, defaultClassification, saved.Classification)

		f.agreements.On("FindExpiringBefore", ctx, "p1", day(90)).Return([]models.IsaAgreement{saved}, nil)
		expiring, err := f.service.Expiring(ctx, "p1", 90)
		require.NoError(t, err)
		require.Len(t, expiring, 1)
		assert.Equal(t, 30, expiring[0].DaysUntilExpiry)
		assert.Equal(t, dtos.UrgencyCritical, expiring[0].Urgency)
	})

	t.Run("rejects invalid requests", func(t *testing.T) {
		valid := func() dtos.AgreementCreateRequest {
			return dtos.AgreementCreateRequest{
				PartnerSystem: "hr-db",
				SignedDate:    dtos.NewDate(day(-10)),
				ExpiryDate:    dtos.NewDate(day(100)),
			}
		}
		cases := map[string]func(r *dtos.AgreementCreateRequest){
			"missing partner":    func(r *dtos.AgreementCreateRequest) { r.PartnerSystem = "" },
			"unknown type":       func(r *dtos.AgreementCreateRequest) { r.AgreementType = "nda" },
			"expiry before sign": func(r *dtos.AgreementCreateRequest) { r.ExpiryDate = dtos.NewDate(day(-20)) },
			"expiry equals sign": func(r *dtos.AgreementCreateRequest) { r.ExpiryDate = r.SignedDate },
			"missing dates":      func(r *dtos.AgreementCreateRequest) { r.SignedDate = dtos.Date{} },
			"negative cadence":   func(r *dtos.AgreementCreateRequest) { r.ReviewCadenceDays = -1 },
		}
		for name, mutate := range cases {
			t.Run(name, func(t *testing.T) {
				f := newAgreementFixture(t)
				req := valid()
				mutate(&req)
				_, err := f.service.Create(ctx, "p1", req)
				assert.ErrorIs(t, err, shared.ErrInvalidInput)
			})
		}
	})
}

func TestExpiringHorizonsNest(t *testing.T) {
	ctx := context.Background()
	f := newAgreementFixture(t)
	f.projects.On("Exists", ctx, "p1").Return(true, nil)

	all := []models.IsaAgreement{
		{Model: models.Model{ID: uuid.New()}, ExpiryDate: day(-3), Status: dtos.AgreementStatusExpiring},
		{Model: models.Model{ID: uuid.New()}, ExpiryDate: day(45), Status: dtos.AgreementStatusExpiring},
		{Model: models.Model{ID: uuid.New()}, ExpiryDate: day(120), Status: dtos.AgreementStatusActive},
		{Model: models.Model{ID: uuid.New()}, ExpiryDate: day(170), Status: dtos.AgreementStatusActive},
	}
	before := func(cutoff time.Time) []models.IsaAgreement {
		return utils.Filter(all, func(a models.IsaAgreement) bool { return !a.ExpiryDate.After(cutoff) })
	}
	f.agreements.On("FindExpiringBefore", ctx, "p1", mock.Anything).Return(func(_ context.Context, _ string, cutoff time.Time) ([]models.IsaAgreement, error) {
		return before(cutoff), nil
	})

	short, err := f.service.Expiring(ctx, "p1", 90)
	require.NoError(t, err)
	long, err := f.service.Expiring(ctx, "p1", 180)
	require.NoError(t, err)

	assert.Len(t, short, 2)
	assert.Len(t, long, 4)
	ids := utils.Map(long, func(a dtos.ExpiringAgreementDTO) uuid.UUID { return a.ID })
	for _, a := range short {
		assert.Contains(t, ids, a.ID)
	}
	assert.Equal(t, -3, short[0].DaysUntilExpiry)
	assert.Equal(t, dtos.UrgencyCritical, short[0].Urgency)
	assert.Equal(t, dtos.UrgencyHigh, short[1].Urgency)
	assert.Equal(t, dtos.UrgencyLow, long[3].Urgency)

	_, err = f.service.Expiring(ctx, "p1", -1)
	assert.ErrorIs(t, err, shared.ErrInvalidInput)
}

func TestReviewDue(t *testing.T) {
	ctx := context.Background()
	f := newAgreementFixture(t)
	f.projects.On("Exists", ctx, "p1").Return(true, nil)
	f.agreements.On("FindReviewDueBefore", ctx, "p1", today).Return([]models.IsaAgreement{
		{NextReviewDate: day(-12)},
		{NextReviewDate: day(0)},
	}, nil)

	due, err := f.service.ReviewDue(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, due, 2)
	assert.Equal(t, 12, due[0].DaysOverdue)
	assert.Equal(t, 0, due[1].DaysOverdue)
}

func TestRenewAgreement(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("forces active and restarts the review cycle", func(t *testing.T) {
		f := newAgreementFixture(t)
		f.agreements.On("Read", ctx, id).Return(models.IsaAgreement{
			Model:             models.Model{ID: id},
			ProjectID:         "p1",
			Status:            dtos.AgreementStatusExpired,
			SignedDate:        day(-800),
			ExpiryDate:        day(-5),
			ReviewCadenceDays: 180,
		}, nil)
		f.agreements.On("Save", ctx, mock.Anything, mock.Anything).Return(nil)
		f.audit.On("Log", ctx, "p1", dtos.AuditEventAgreementRenewed, mock.Anything, mock.Anything).Return()

		dto, err := f.service.Renew(ctx, id, dtos.AgreementRenewRequest{NewExpiry: dtos.NewDate(day(30)), Notes: utils.Ptr("renewed early")})
		require.NoError(t, err)
		assert.Equal(t, dtos.AgreementStatusActive, dto.Status)
		assert.Equal(t, day(180), dto.NextReviewDate.Time)
		assert.Equal(t, day(-800), dto.SignedDate.Time)
		assert.Equal(t, "renewed early", *dto.Notes)
	})

	t.Run("terminated agreements cannot be renewed", func(t *testing.T) {
		f := newAgreementFixture(t)
		f.agreements.On("Read", ctx, id).Return(models.IsaAgreement{Status: dtos.AgreementStatusTerminated}, nil)

		_, err := f.service.Renew(ctx, id, dtos.AgreementRenewRequest{NewExpiry: dtos.NewDate(day(30))})
		assert.ErrorIs(t, err, shared.ErrInvalidInput)
		f.agreements.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("new expiry in the past", func(t *testing.T) {
		f := newAgreementFixture(t)
		_, err := f.service.Renew(ctx, id, dtos.AgreementRenewRequest{NewExpiry: dtos.NewDate(day(-1))})
		assert.ErrorIs(t, err, shared.ErrInvalidInput)
	})

	t.Run("unknown agreement", func(t *testing.T) {
		f := newAgreementFixture(t)
		f.agreements.On("Read", ctx, id).Return(models.IsaAgreement{}, shared.ErrNotFound)
		_, err := f.service.Renew(ctx, id, dtos.AgreementRenewRequest{NewExpiry: dtos.NewDate(day(30))})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestRevokeAgreement(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("requires a reason", func(t *testing.T) {
		f := newAgreementFixture(t)
		_, err := f.service.Revoke(ctx, id, dtos.AgreementRevokeRequest{Reason: "   "})
		assert.ErrorIs(t, err, shared.ErrInvalidInput)
	})

	t.Run("terminates unconditionally", func(t *testing.T) {
		f := newAgreementFixture(t)
		f.agreements.On("Read", ctx, id).Return(models.IsaAgreement{Model: models.Model{ID: id}, ProjectID: "p1", Status: dtos.AgreementStatusDraft}, nil)
		f.agreements.On("Save", ctx, mock.Anything, mock.Anything).Return(nil)
		f.audit.On("Log", ctx, "p1", dtos.AuditEventAgreementRevoked, mock.Anything, mock.MatchedBy(func(details map[string]any) bool {
			return details["reason"] == "partner decommissioned"
		})).Return()

		dto, err := f.service.Revoke(ctx, id, dtos.AgreementRevokeRequest{Reason: "partner decommissioned"})
		require.NoError(t, err)
		assert.Equal(t, dtos.AgreementStatusTerminated, dto.Status)
		assert.Equal(t, "partner decommissioned", *dto.RevocationReason)
	})
}

func TestReconcileAgreements(t *testing.T) {
	ctx := context.Background()
	stale := uuid.New()
	current := uuid.New()
	lapsed := uuid.New()

	f := newAgreementFixture(t)
	f.projects.On("Exists", ctx, "p1").Return(true, nil)
	f.agreements.On("FindNotTerminatedByProject", ctx, "p1").Return([]models.IsaAgreement{
		{Model: models.Model{ID: stale}, ExpiryDate: day(20), Status: dtos.AgreementStatusActive},
		{Model: models.Model{ID: current}, ExpiryDate: day(200), Status: dtos.AgreementStatusActive},
		{Model: models.Model{ID: lapsed}, ExpiryDate: day(-1), Status: dtos.AgreementStatusSigned},
	}, nil)
	f.agreements.On("Transaction", ctx, mock.Anything).Return(func(_ context.Context, fn func(*gorm.DB) error) error {
		return fn(nil)
	})
	f.agreements.On("UpdateStatus", ctx, mock.Anything, stale, dtos.AgreementStatusExpiring).Return(nil).Once()
	f.agreements.On("UpdateStatus", ctx, mock.Anything, lapsed, dtos.AgreementStatusExpired).Return(nil).Once()
	f.audit.On("Log", ctx, "p1", dtos.AuditEventAgreementReconciled, mock.Anything, mock.Anything).Return().Twice()

	result, err := f.service.Reconcile(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 3, result.Checked)
	assert.Equal(t, []dtos.AgreementStatusChange{
		{AgreementID: stale, From: dtos.AgreementStatusActive, To: dtos.AgreementStatusExpiring},
		{AgreementID: lapsed, From: dtos.AgreementStatusSigned, To: dtos.AgreementStatusExpired},
	}, result.Changed)
}
