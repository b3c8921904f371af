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
	"net/http"

	"github.com/l3montree-dev/scrmguard/dtos"
	"github.com/l3montree-dev/scrmguard/shared"
)

type AuditController struct {
	auditService shared.AuditService
}

func NewAuditController(auditService shared.AuditService) *AuditController {
	return &AuditController{
		auditService: auditService,
	}
}

// @Summary Audit trail of the project
// @Param projectID path string true "Project id"
// @Param eventType query string false "Filter by event type"
// @Success 200 {array} dtos.AuditEventDTO
// @Router /projects/{projectID}/audit [get]
func (c *AuditController) Trail(ctx shared.Context) error {
	var eventType *dtos.AuditEventType
	if raw := ctx.QueryParam("eventType"); raw != "" {
		t := dtos.AuditEventType(raw)
		eventType = &t
	}

	trail, err := c.auditService.Trail(ctx.Request().Context(), projectID(ctx), eventType)
	if err != nil {
		return toHTTPError(err)
	}
	return ctx.JSON(http.StatusOK, trail)
}
