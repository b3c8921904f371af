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

	"github.com/l3montree-dev/scrmguard/database/models"
	"github.com/l3montree-dev/scrmguard/dtos"
	"github.com/l3montree-dev/scrmguard/mocks"
	"github.com/l3montree-dev/scrmguard/monitoring"
	"github.com/l3montree-dev/scrmguard/shared"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuditLog(t *testing.T) {
	t.Run("records the actor from the context and the default classification", func(t *testing.T) {
		events := mocks.NewAuditEventRepository(t)
		var written *models.AuditEvent
		events.On("Create", mock.Anything, mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			written = args.Get(2).(*models.AuditEvent)
		}).Return(nil)

		ctx := shared.WithActor(context.Background(), "alice")
		NewAuditService(mocks.NewProjectRepository(t), events).Log(ctx, "p1", dtos.AuditEventAgreementRevoked, "revoked", nil)

		require.NotNil(t, written)
		assert.Equal(t, "alice", written.Actor)
		assert.Equal(t, "CUI", written.Classification)
		assert.Equal(t, dtos.AuditEventAgreementRevoked, written.EventType)
		assert.NotNil(t, written.Details)
	})

	t.Run("falls back to the system actor", func(t *testing.T) {
		t.Setenv("AUDIT_CLASSIFICATION", "SECRET")
		events := mocks.NewAuditEventRepository(t)
		events.On("Create", mock.Anything, mock.Anything, mock.MatchedBy(func(e *models.AuditEvent) bool {
			return e.Actor == shared.DefaultActor && e.Classification == "SECRET"
		})).Return(nil)

		NewAuditService(mocks.NewProjectRepository(t), events).Log(context.Background(), "p1", dtos.AuditEventCveTriaged, "triaged", map[string]any{"cve": "CVE-2024-1"})
	})

	t.Run("swallows write failures", func(t *testing.T) {
		events := mocks.NewAuditEventRepository(t)
		events.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(shared.ErrBackingStoreUnavailable)

		counter := monitoring.AuditWriteFailures.WithLabelValues(string(dtos.AuditEventVendorAssessed))
		before := testutil.ToFloat64(counter)

		assert.NotPanics(t, func() {
			NewAuditService(mocks.NewProjectRepository(t), events).Log(context.Background(), "p1", dtos.AuditEventVendorAssessed, "assessed", nil)
		})
		assert.Equal(t, before+1, testutil.ToFloat64(counter))
	})
}

func TestAuditTrail(t *testing.T) {
	ctx := context.Background()

	t.Run("maps events of the project", func(t *testing.T) {
		projects := mocks.NewProjectRepository(t)
		events := mocks.NewAuditEventRepository(t)
		projects.On("Exists", ctx, "p1").Return(true, nil)
		eventType := dtos.AuditEventCveTriaged
		events.On("FindByProject", ctx, "p1", &eventType).Return([]models.AuditEvent{
			{ProjectID: "p1", EventType: eventType, Actor: "alice", Action: "triaged CVE-2024-1"},
		}, nil)

		trail, err := NewAuditService(projects, events).Trail(ctx, "p1", &eventType)
		require.NoError(t, err)
		require.Len(t, trail, 1)
		assert.Equal(t, "alice", trail[0].Actor)
		assert.Equal(t, map[string]any{}, trail[0].Details)
	})

	t.Run("unknown event type", func(t *testing.T) {
		eventType := dtos.AuditEventType("deleted")
		_, err := NewAuditService(mocks.NewProjectRepository(t), mocks.NewAuditEventRepository(t)).Trail(ctx, "p1", &eventType)
		assert.ErrorIs(t, err, shared.ErrInvalidInput)
	})

	t.Run("store failure", func(t *testing.T) {
		projects := mocks.NewProjectRepository(t)
		events := mocks.NewAuditEventRepository(t)
		projects.On("Exists", ctx, "p1").Return(true, nil)
		events.On("FindByProject", ctx, "p1", (*dtos.AuditEventType)(nil)).Return(nil, shared.ErrBackingStoreUnavailable)

		_, err := NewAuditService(projects, events).Trail(ctx, "p1", nil)
		assert.ErrorIs(t, err, shared.ErrBackingStoreUnavailable)
	})
}
