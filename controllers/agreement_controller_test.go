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

package controllers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/scrmguard/dtos"
	"github.com/l3montree-dev/scrmguard/mocks"
	"github.com/l3montree-dev/scrmguard/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAgreementControllerCreate(t *testing.T) {
	service := mocks.NewAgreementService(t)
	signed := dtos.NewDate(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	expiry := dtos.NewDate(time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC))
	service.On("Create", mock.Anything, "p1", mock.MatchedBy(func(req dtos.AgreementCreateRequest) bool {
		return req.PartnerSystem == "hr-db" && req.SignedDate.Equal(signed.Time) && req.ExpiryDate.Equal(expiry.Time)
	})).Return(dtos.AgreementDTO{ProjectID: "p1", PartnerSystem: "hr-db", Status: dtos.AgreementStatusActive, ExpiryDate: expiry}, nil)

	ctx, rec := newContext(t, http.MethodPost, "/", map[string]any{
		"partnerSystem": "hr-db",
		"signedDate":    "2026-01-01",
		"expiryDate":    "2027-01-01",
	}, "projectID", "p1")
	require.NoError(t, NewAgreementController(service).Create(ctx))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2027-01-01", body["expiryDate"])

	t.Run("malformed date", func(t *testing.T) {
		ctx, _ := newContext(t, http.MethodPost, "/", map[string]any{"partnerSystem": "hr-db", "signedDate": "01/01/2026"}, "projectID", "p1")
		assertHTTPError(t, NewAgreementController(mocks.NewAgreementService(t)).Create(ctx), http.StatusBadRequest)
	})
}

func TestAgreementControllerQueries(t *testing.T) {
	t.Run("status filter", func(t *testing.T) {
		service := mocks.NewAgreementService(t)
		status := dtos.AgreementStatusExpiring
		service.On("List", mock.Anything, "p1", &status).Return([]dtos.AgreementDTO{}, nil)

		ctx, rec := newContext(t, http.MethodGet, "/?status=expiring", nil, "projectID", "p1")
		require.NoError(t, NewAgreementController(service).List(ctx))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("no status filter", func(t *testing.T) {
		service := mocks.NewAgreementService(t)
		service.On("List", mock.Anything, "p1", (*dtos.AgreementStatus)(nil)).Return([]dtos.AgreementDTO{}, nil)

		ctx, _ := newContext(t, http.MethodGet, "/", nil, "projectID", "p1")
		require.NoError(t, NewAgreementController(service).List(ctx))
	})

	t.Run("expiring defaults to 90 days", func(t *testing.T) {
		service := mocks.NewAgreementService(t)
		service.On("Expiring", mock.Anything, "p1", 90).Return([]dtos.ExpiringAgreementDTO{}, nil)
		service.On("Expiring", mock.Anything, "p1", 30).Return([]dtos.ExpiringAgreementDTO{}, nil)
		controller := NewAgreementController(service)

		ctx, _ := newContext(t, http.MethodGet, "/", nil, "projectID", "p1")
		require.NoError(t, controller.Expiring(ctx))

		ctx, _ = newContext(t, http.MethodGet, "/?daysAhead=30", nil, "projectID", "p1")
		require.NoError(t, controller.Expiring(ctx))
	})

	t.Run("negative horizon", func(t *testing.T) {
		service := mocks.NewAgreementService(t)
		service.On("Expiring", mock.Anything, "p1", -1).Return(nil, shared.InvalidInput("daysAhead must not be negative"))

		ctx, _ := newContext(t, http.MethodGet, "/?daysAhead=-1", nil, "projectID", "p1")
		assertHTTPError(t, NewAgreementController(service).Expiring(ctx), http.StatusBadRequest)
	})

	t.Run("review due and reconcile", func(t *testing.T) {
		service := mocks.NewAgreementService(t)
		service.On("ReviewDue", mock.Anything, "p1").Return([]dtos.ReviewDueAgreementDTO{}, nil)
		service.On("Reconcile", mock.Anything, "p1").Return(dtos.ReconcileResult{}, shared.ErrBackingStoreUnavailable)
		controller := NewAgreementController(service)

		ctx, _ := newContext(t, http.MethodGet, "/", nil, "projectID", "p1")
		require.NoError(t, controller.ReviewDue(ctx))

		ctx, _ = newContext(t, http.MethodPost, "/", nil, "projectID", "p1")
		assertHTTPError(t, controller.Reconcile(ctx), http.StatusServiceUnavailable)
	})
}

func TestAgreementControllerLifecycle(t *testing.T) {
	agreementID := uuid.New()

	t.Run("renew", func(t *testing.T) {
		service := mocks.NewAgreementService(t)
		service.On("Get", mock.Anything, agreementID).Return(dtos.AgreementDTO{ID: agreementID, ProjectID: "p1"}, nil)
		service.On("Renew", mock.Anything, agreementID, mock.Anything).Return(dtos.AgreementDTO{ID: agreementID, ProjectID: "p1", Status: dtos.AgreementStatusActive}, nil)

		ctx, rec := newContext(t, http.MethodPost, "/", map[string]any{"newExpiry": "2028-01-01"}, "projectID", "p1", "agreementID", agreementID.String())
		require.NoError(t, NewAgreementController(service).Renew(ctx))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("revoke without a reason", func(t *testing.T) {
		service := mocks.NewAgreementService(t)
		service.On("Get", mock.Anything, agreementID).Return(dtos.AgreementDTO{ID: agreementID, ProjectID: "p1"}, nil)
		service.On("Revoke", mock.Anything, agreementID, dtos.AgreementRevokeRequest{}).Return(dtos.AgreementDTO{}, shared.InvalidInput("reason is required"))

		ctx, _ := newContext(t, http.MethodPost, "/", map[string]any{}, "projectID", "p1", "agreementID", agreementID.String())
		assertHTTPError(t, NewAgreementController(service).Revoke(ctx), http.StatusBadRequest)
	})

	t.Run("agreement of another project", func(t *testing.T) {
		service := mocks.NewAgreementService(t)
		service.On("Get", mock.Anything, agreementID).Return(dtos.AgreementDTO{ID: agreementID, ProjectID: "p2"}, nil)

		ctx, _ := newContext(t, http.MethodPost, "/", map[string]any{"reason": "breach"}, "projectID", "p1", "agreementID", agreementID.String())
		assertHTTPError(t, NewAgreementController(service).Revoke(ctx), http.StatusNotFound)
	})

	t.Run("unknown agreement", func(t *testing.T) {
		service := mocks.NewAgreementService(t)
		service.On("Get", mock.Anything, agreementID).Return(dtos.AgreementDTO{}, shared.NotFound("agreement"))

		ctx, _ := newContext(t, http.MethodGet, "/", nil, "projectID", "p1", "agreementID", agreementID.String())
		assertHTTPError(t, NewAgreementController(service).Read(ctx), http.StatusNotFound)
	})
}
