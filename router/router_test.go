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

package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/l3montree-dev/scrmguard/controllers"
	"github.com/l3montree-dev/scrmguard/dtos"
	"github.com/l3montree-dev/scrmguard/middlewares"
	"github.com/l3montree-dev/scrmguard/mocks"
	"github.com/l3montree-dev/scrmguard/shared"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	echo       *echo.Echo
	triage     *mocks.CveTriageService
	agreements *mocks.AgreementService
}

func newTestServer(t *testing.T) testServer {
	s := testServer{
		echo:       middlewares.Server(),
		triage:     mocks.NewCveTriageService(t),
		agreements: mocks.NewAgreementService(t),
	}
	apiV1 := NewAPIV1Router(s.echo, nil, nil)
	NewProjectRouter(
		apiV1,
		controllers.NewCveTriageController(s.triage),
		controllers.NewAgreementController(s.agreements),
		controllers.NewScrmController(mocks.NewScrmService(t)),
		controllers.NewDependencyEdgeController(mocks.NewDependencyEdgeService(t)),
		controllers.NewAuditController(mocks.NewAuditService(t)),
	)
	return s
}

func (s testServer) do(method, target string, header map[string]string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["error"]
}

func TestProjectRoutes(t *testing.T) {
	t.Run("passes the actor header to the services", func(t *testing.T) {
		s := newTestServer(t)
		s.triage.On("Pending", mock.MatchedBy(func(ctx context.Context) bool {
			return shared.ActorFromContext(ctx) == "alice"
		}), "p1").Return([]dtos.CveTriageDTO{}, nil)

		rec := s.do(http.MethodGet, "/api/v1/projects/p1/cves/pending/", map[string]string{middlewares.ActorHeader: "alice"}, "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("accepts paths without a trailing slash", func(t *testing.T) {
		s := newTestServer(t)
		s.agreements.On("ReviewDue", mock.MatchedBy(func(ctx context.Context) bool {
			return shared.ActorFromContext(ctx) == shared.DefaultActor
		}), "p1").Return([]dtos.ReviewDueAgreementDTO{}, nil)

		rec := s.do(http.MethodGet, "/api/v1/projects/p1/agreements/review-due", nil, "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("renders service errors as one line json", func(t *testing.T) {
		s := newTestServer(t)
		s.agreements.On("Reconcile", mock.Anything, "missing").Return(dtos.ReconcileResult{}, shared.NotFound("project missing not found"))

		rec := s.do(http.MethodPost, "/api/v1/projects/missing/agreements/reconcile/", nil, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, errorBody(t, rec), "project missing not found")
	})

	t.Run("static segments win over ids", func(t *testing.T) {
		s := newTestServer(t)
		s.triage.On("CheckSLA", mock.Anything, "p1").Return(dtos.SLAReport{ProjectID: "p1"}, nil)

		rec := s.do(http.MethodGet, "/api/v1/projects/p1/cves/sla/", nil, "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown route", func(t *testing.T) {
		s := newTestServer(t)
		rec := s.do(http.MethodGet, "/api/v1/unknown/", nil, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.NotEmpty(t, errorBody(t, rec))
	})

	t.Run("recovers from panicking handlers", func(t *testing.T) {
		s := newTestServer(t)
		s.triage.On("Pending", mock.Anything, "p1").Run(func(mock.Arguments) {
			panic("boom")
		}).Return(nil, nil)

		rec := s.do(http.MethodGet, "/api/v1/projects/p1/cves/pending/", nil, "")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, http.StatusText(http.StatusInternalServerError), errorBody(t, rec))
	})
}
