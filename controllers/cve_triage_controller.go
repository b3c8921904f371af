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

type CveTriageController struct {
	cveTriageService shared.CveTriageService
}

func NewCveTriageController(cveTriageService shared.CveTriageService) *CveTriageController {
	return &CveTriageController{
		cveTriageService: cveTriageService,
	}
}

// @Summary Triage a CVE against a component of the project
// @Param projectID path string true "Project id"
// @Param body body dtos.TriageRequest true "Request body"
// @Success 201 {object} dtos.TriageResult
// @Router /projects/{projectID}/cves [post]
func (c *CveTriageController) Triage(ctx shared.Context) error {
	var req dtos.TriageRequest
	if err := bind(ctx, &req); err != nil {
		return err
	}

	result, err := c.cveTriageService.Triage(ctx.Request().Context(), projectID(ctx), req)
	if err != nil {
		return toHTTPError(err)
	}
	return ctx.JSON(http.StatusCreated, result)
}

// @Summary List open triage records, most urgent first
// @Param projectID path string true "Project id"
// @Success 200 {array} dtos.CveTriageDTO
// @Router /projects/{projectID}/cves/pending [get]
func (c *CveTriageController) Pending(ctx shared.Context) error {
	pending, err := c.cveTriageService.Pending(ctx.Request().Context(), projectID(ctx))
	if err != nil {
		return toHTTPError(err)
	}
	return ctx.JSON(http.StatusOK, pending)
}

// @Summary SLA compliance report
// @Param projectID path string true "Project id"
// @Success 200 {object} dtos.SLAReport
// @Router /projects/{projectID}/cves/sla [get]
func (c *CveTriageController) CheckSLA(ctx shared.Context) error {
	report, err := c.cveTriageService.CheckSLA(ctx.Request().Context(), projectID(ctx))
	if err != nil {
		return toHTTPError(err)
	}
	return ctx.JSON(http.StatusOK, report)
}

func (c *CveTriageController) read(ctx shared.Context) (dtos.CveTriageDTO, error) {
	triageID, err := uuidParam(ctx, "triageID")
	if err != nil {
		return dtos.CveTriageDTO{}, err
	}
	record, err := c.cveTriageService.Get(ctx.Request().Context(), triageID)
	if err != nil {
		return dtos.CveTriageDTO{}, toHTTPError(err)
	}
	if record.ProjectID != projectID(ctx) {
		return dtos.CveTriageDTO{}, notInProject("triage record", triageID)
	}
	return record, nil
}

// @Summary Read a triage record
// @Param projectID path string true "Project id"
// @Param triageID path string true "Triage id"
// @Success 200 {object} dtos.CveTriageDTO
// @Router /projects/{projectID}/cves/{triageID} [get]
func (c *CveTriageController) Read(ctx shared.Context) error {
	record, err := c.read(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, record)
}

// @Summary Record a triage decision
// @Param projectID path string true "Project id"
// @Param triageID path string true "Triage id"
// @Param body body dtos.TriageDecisionRequest true "Request body"
// @Success 200 {object} dtos.CveTriageDTO
// @Router /projects/{projectID}/cves/{triageID} [patch]
func (c *CveTriageController) Update(ctx shared.Context) error {
	record, err := c.read(ctx)
	if err != nil {
		return err
	}

	var req dtos.TriageDecisionRequest
	if err := bind(ctx, &req); err != nil {
		return err
	}

	updated, err := c.cveTriageService.Update(ctx.Request().Context(), record.ID, req)
	if err != nil {
		return toHTTPError(err)
	}
	return ctx.JSON(http.StatusOK, updated)
}

// @Summary Propagate the impact of a triaged CVE to interconnection agreements
// @Param projectID path string true "Project id"
// @Param triageID path string true "Triage id"
// @Success 200 {object} dtos.ImpactReport
// @Router /projects/{projectID}/cves/{triageID}/propagate [post]
func (c *CveTriageController) PropagateImpact(ctx shared.Context) error {
	triageID, err := uuidParam(ctx, "triageID")
	if err != nil {
		return err
	}
	report, err := c.cveTriageService.PropagateImpact(ctx.Request().Context(), projectID(ctx), triageID)
	if err != nil {
		return toHTTPError(err)
	}
	return ctx.JSON(http.StatusOK, report)
}
