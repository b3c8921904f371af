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
	"log/slog"
	"os"

	"github.com/l3montree-dev/scrmguard/database/models"
	"github.com/l3montree-dev/scrmguard/dtos"
	"github.com/l3montree-dev/scrmguard/monitoring"
	"github.com/l3montree-dev/scrmguard/shared"
	"github.com/l3montree-dev/scrmguard/transformer"
	"github.com/l3montree-dev/scrmguard/utils"
	"github.com/pkg/errors"
)

const defaultClassification = "CUI"

type auditService struct {
	projectRepository    shared.ProjectRepository
	auditEventRepository shared.AuditEventRepository
	classification       string
}

func NewAuditService(projectRepository shared.ProjectRepository, auditEventRepository shared.AuditEventRepository) *auditService {
	classification := os.Getenv("AUDIT_CLASSIFICATION")
	if classification == "" {
		classification = defaultClassification
	}
	return &auditService{
		projectRepository:    projectRepository,
		auditEventRepository: auditEventRepository,
		classification:       classification,
	}
}

func (s *auditService) Log(ctx context.Context, projectID string, eventType dtos.AuditEventType, action string, details map[string]any) {
	if details == nil {
		details = map[string]any{}
	}
	event := models.AuditEvent{
		ProjectID:      projectID,
		EventType:      eventType,
		Actor:          shared.ActorFromContext(ctx),
		Action:         action,
		Details:        details,
		Classification: s.classification,
	}
	if err := s.auditEventRepository.Create(ctx, nil, &event); err != nil {
		monitoring.AuditWriteFailures.WithLabelValues(string(eventType)).Inc()
		slog.Warn("could not write audit event", "projectID", projectID, "eventType", eventType, "err", err)
	}
}

// Trail returns the audit events of a project in append order.
func (s *auditService) Trail(ctx context.Context, projectID string, eventType *dtos.AuditEventType) ([]dtos.AuditEventDTO, error) {
	if eventType != nil && !eventType.IsValid() {
		return nil, shared.InvalidInput("unknown audit event type %q", *eventType)
	}
	if err := ensureProject(ctx, s.projectRepository, projectID); err != nil {
		return nil, err
	}
	events, err := s.auditEventRepository.FindByProject(ctx, projectID, eventType)
	if err != nil {
		return nil, errors.Wrap(err, "could not load audit events")
	}
	return utils.Map(events, transformer.AuditEventModelToDTO), nil
}
