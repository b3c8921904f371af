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

	cdx "github.com/CycloneDX/cyclonedx-go"
	"github.com/google/uuid"
	"github.com/l3montree-dev/scrmguard/database/models"
	"github.com/l3montree-dev/scrmguard/dtos"
	"github.com/l3montree-dev/scrmguard/graph"
	"github.com/l3montree-dev/scrmguard/mocks"
	"github.com/l3montree-dev/scrmguard/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type edgeFixture struct {
	projects   *mocks.ProjectRepository
	edges      *mocks.DependencyEdgeRepository
	agreements *mocks.AgreementRepository
	loader     *mocks.GraphLoader
	audit      *mocks.AuditService
	service    *dependencyEdgeService
}

func newEdgeFixture(t *testing.T) edgeFixture {
	f := edgeFixture{
		projects:   mocks.NewProjectRepository(t),
		edges:      mocks.NewDependencyEdgeRepository(t),
		agreements: mocks.NewAgreementRepository(t),
		loader:     mocks.NewGraphLoader(t),
		audit:      mocks.NewAuditService(t),
	}
	f.service = NewDependencyEdgeService(f.projects, f.edges, f.agreements, f.loader, f.audit)
	return f
}

func TestIngestEdges(t *testing.T) {
	ctx := context.Background()
	agreementID := uuid.New()

	t.Run("canonicalizes references and invalidates the graph", func(t *testing.T) {
		f := newEdgeFixture(t)
		f.projects.On("Exists", ctx, "p1").Return(true, nil)
		f.agreements.On("Read", ctx, agreementID).Return(models.IsaAgreement{Model: models.Model{ID: agreementID}, ProjectID: "p1"}, nil).Once()
		var stored []*models.DependencyEdge
		f.edges.On("Upsert", ctx, mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			stored = args.Get(2).([]*models.DependencyEdge)
		}).Return(nil)
		f.loader.On("Invalidate", "p1").Return().Once()
		f.audit.On("Log", ctx, "p1", dtos.AuditEventDependencyEdgesLoaded, mock.Anything, mock.Anything).Return()

		result, err := f.service.Ingest(ctx, "p1", dtos.EdgeIngestRequest{Edges: []dtos.EdgeInput{
			{Source: "portal", Target: "pkg:npm/lodash@4.17.21"},
			{Source: "portal", Target: "system:hr-db", Criticality: dtos.CriticalityHigh, AgreementID: &agreementID},
			{Source: "component:portal", Target: "package:pkg:npm/lodash@4.17.20", Criticality: dtos.CriticalityLow},
			{Source: "pkg:npm/lodash", Target: "vendor:openjs", AgreementID: &agreementID},
		}})
		require.NoError(t, err)

		// the first and third edge are the same once canonicalized
		require.Len(t, stored, 3)
		assert.Equal(t, 3, result.Ingested)
		assert.Equal(t, dtos.NodeTypeComponent, stored[0].SourceType)
		assert.Equal(t, dtos.NodeTypePackage, stored[0].TargetType)
		assert.Equal(t, "pkg:npm/lodash", stored[0].TargetID)
		assert.Equal(t, dtos.CriticalityLow, stored[0].Criticality)
		assert.Equal(t, dtos.CriticalityMedium, stored[2].Criticality)
		assert.Equal(t, []string{"component:portal", "package:pkg:npm/lodash", "system:hr-db", "vendor:openjs"}, result.Nodes)
	})

	t.Run("rejects malformed edges before touching the store", func(t *testing.T) {
		cases := map[string]dtos.EdgeInput{
			"self loop":           {Source: "portal", Target: "component:portal"},
			"unknown criticality": {Source: "a", Target: "b", Criticality: "urgent"},
			"empty typed id":      {Source: "vendor:", Target: "b"},
			"missing target":      {Source: "a"},
		}
		for name, edge := range cases {
			t.Run(name, func(t *testing.T) {
				f := newEdgeFixture(t)
				_, err := f.service.Ingest(ctx, "p1", dtos.EdgeIngestRequest{Edges: []dtos.EdgeInput{edge}})
				assert.ErrorIs(t, err, shared.ErrInvalidInput)
			})
		}

		f := newEdgeFixture(t)
		_, err := f.service.Ingest(ctx, "p1", dtos.EdgeIngestRequest{})
		assert.ErrorIs(t, err, shared.ErrInvalidInput)
	})

	t.Run("agreement of another project", func(t *testing.T) {
		f := newEdgeFixture(t)
		f.projects.On("Exists", ctx, "p1").Return(true, nil)
		f.agreements.On("Read", ctx, agreementID).Return(models.IsaAgreement{ProjectID: "p2"}, nil)

		_, err := f.service.Ingest(ctx, "p1", dtos.EdgeIngestRequest{Edges: []dtos.EdgeInput{{Source: "a", Target: "b", AgreementID: &agreementID}}})
		assert.ErrorIs(t, err, shared.ErrNotFound)
		f.edges.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestIngestBOM(t *testing.T) {
	ctx := context.Background()

	t.Run("dependency and supplier relations land in the graph", func(t *testing.T) {
		f := newEdgeFixture(t)
		f.projects.On("Exists", ctx, "p1").Return(true, nil)
		var stored []*models.DependencyEdge
		f.edges.On("Upsert", ctx, mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			stored = args.Get(2).([]*models.DependencyEdge)
		}).Return(nil)
		f.loader.On("Invalidate", "p1").Return().Once()
		f.audit.On("Log", ctx, "p1", dtos.AuditEventDependencyEdgesLoaded, mock.Anything, mock.Anything).Return()

		result, err := f.service.IngestBOM(ctx, "p1", &cdx.BOM{
			Metadata: &cdx.Metadata{Component: &cdx.Component{BOMRef: "portal", Name: "portal"}},
			Components: &[]cdx.Component{
				{BOMRef: "lodash", Name: "lodash", PackageURL: "pkg:npm/lodash@4.17.21", Supplier: &cdx.OrganizationalEntity{Name: "OpenJS Foundation"}},
				{BOMRef: "express", Name: "express", PackageURL: "pkg:npm/express@4.18.0"},
			},
			Dependencies: &[]cdx.Dependency{
				{Ref: "portal", Dependencies: &[]string{"express", "lodash"}},
				{Ref: "express", Dependencies: &[]string{"lodash"}},
			},
		})
		require.NoError(t, err)

		assert.Equal(t, 4, result.Ingested)
		assert.Equal(t, []string{
			"component:portal",
			"package:pkg:npm/express",
			"package:pkg:npm/lodash",
			"vendor:openjs-foundation",
		}, result.Nodes)
		require.Len(t, stored, 4)
		for _, edge := range stored {
			assert.Equal(t, dtos.CriticalityMedium, edge.Criticality)
			assert.Nil(t, edge.AgreementID)
		}
		assert.Equal(t, dtos.NodeTypeVendor, stored[3].TargetType)
		assert.Equal(t, "openjs-foundation", stored[3].TargetID)
	})

	t.Run("bom without relations", func(t *testing.T) {
		f := newEdgeFixture(t)
		_, err := f.service.IngestBOM(ctx, "p1", &cdx.BOM{Components: &[]cdx.Component{{BOMRef: "a", Name: "a"}}})
		assert.ErrorIs(t, err, shared.ErrInvalidInput)
		f.edges.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestBlastRadiusQuery(t *testing.T) {
	ctx := context.Background()
	g := graph.Build([]models.DependencyEdge{
		dependsOn("svc-a", "openssl"),
		dependsOn("portal", "svc-a"),
	})

	t.Run("downstream by default", func(t *testing.T) {
		f := newEdgeFixture(t)
		f.projects.On("Exists", ctx, "p1").Return(true, nil)
		f.loader.On("Load", ctx, "p1").Return(g, nil)

		result, err := f.service.BlastRadius(ctx, "p1", "openssl", "")
		require.NoError(t, err)
		assert.True(t, result.Resolved)
		assert.Equal(t, "component:openssl", result.Start)
		assert.Equal(t, dtos.DirectionDownstream, result.Direction)
		assert.Equal(t, []string{"component:svc-a", "component:portal"}, result.Nodes)
		assert.Equal(t, 2, result.Count)
	})

	t.Run("upstream", func(t *testing.T) {
		f := newEdgeFixture(t)
		f.projects.On("Exists", ctx, "p1").Return(true, nil)
		f.loader.On("Load", ctx, "p1").Return(g, nil)

		result, err := f.service.BlastRadius(ctx, "p1", "portal", dtos.DirectionUpstream)
		require.NoError(t, err)
		assert.Equal(t, []string{"component:svc-a", "component:openssl"}, result.Nodes)
	})

	t.Run("unknown component", func(t *testing.T) {
		f := newEdgeFixture(t)
		f.projects.On("Exists", ctx, "p1").Return(true, nil)
		f.loader.On("Load", ctx, "p1").Return(g, nil)

		result, err := f.service.BlastRadius(ctx, "p1", "left-pad", dtos.DirectionDownstream)
		require.NoError(t, err)
		assert.False(t, result.Resolved)
		assert.Equal(t, []string{}, result.Nodes)
	})

	t.Run("invalid direction", func(t *testing.T) {
		f := newEdgeFixture(t)
		_, err := f.service.BlastRadius(ctx, "p1", "openssl", "sideways")
		assert.ErrorIs(t, err, shared.ErrInvalidInput)
	})
}
