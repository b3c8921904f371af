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

	"github.com/l3montree-dev/scrmguard/shared"
)

type ScrmController struct {
	scrmService shared.ScrmService
}

func NewScrmController(scrmService shared.ScrmService) *ScrmController {
	return &ScrmController{
		scrmService: scrmService,
	}
}

func vendorID(ctx shared.Context) string {
	return shared.SanitizeParam(ctx.Param("vendorID"))
}

// @Summary Assess a single vendor
// @Param projectID path string true "Project id"
// @Param vendorID path string true "Vendor id"
// @Success 200 {object} dtos.VendorAssessmentDTO
// @Router /projects/{projectID}/vendors/{vendorID}/assess [post]
func (c *ScrmController) AssessVendor(ctx shared.Context) error {
	assessment, err := c.scrmService.AssessVendor(ctx.Request().Context(), projectID(ctx), vendorID(ctx))
	if err != nil {
		return toHTTPError(err)
	}
	return ctx.JSON(http.StatusOK, assessment)
}

// @Summary Assess every vendor of the project
// @Param projectID path string true "Project id"
// @Param top query int false "Number of highest risk vendors to return, 0 returns all"
// @Success 200 {object} dtos.ProjectAssessmentDTO
// @Router /projects/{projectID}/vendors/assess [post]
func (c *ScrmController) AssessProject(ctx shared.Context) error {
	top, err := intQuery(ctx, "top", 0)
	if err != nil {
		return err
	}

	assessment, err := c.scrmService.AssessProject(ctx.Request().Context(), projectID(ctx), top)
	if err != nil {
		return toHTTPError(err)
	}
	return ctx.JSON(http.StatusOK, assessment)
}

// @Summary Vendors under acquisition prohibition
// @Param projectID path string true "Project id"
// @Success 200 {array} dtos.ProhibitedVendorDTO
// @Router /projects/{projectID}/vendors/prohibited [get]
func (c *ScrmController) ProhibitedVendors(ctx shared.Context) error {
	vendors, err := c.scrmService.ProhibitedVendors(ctx.Request().Context(), projectID(ctx))
	if err != nil {
		return toHTTPError(err)
	}
	return ctx.JSON(http.StatusOK, vendors)
}

// @Summary Previous assessments of a vendor, newest first
// @Param projectID path string true "Project id"
// @Param vendorID path string true "Vendor id"
// @Success 200 {array} dtos.VendorAssessmentDTO
// @Router /projects/{projectID}/vendors/{vendorID}/assessments [get]
func (c *ScrmController) History(ctx shared.Context) error {
	history, err := c.scrmService.History(ctx.Request().Context(), projectID(ctx), vendorID(ctx))
	if err != nil {
		return toHTTPError(err)
	}
	return ctx.JSON(http.StatusOK, history)
}
