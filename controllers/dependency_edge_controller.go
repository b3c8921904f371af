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

	cdx "github.com/CycloneDX/cyclonedx-go"
	"github.com/l3montree-dev/scrmguard/dtos"
	"github.com/l3montree-dev/scrmguard/shared"
	"github.com/labstack/echo/v4"
)

type DependencyEdgeController struct {
	dependencyEdgeService shared.DependencyEdgeService
}

func NewDependencyEdgeController(dependencyEdgeService shared.DependencyEdgeService) *DependencyEdgeController {
	return &DependencyEdgeController{
		dependencyEdgeService: dependencyEdgeService,
	}
}

// @Summary Load dependency edges into the project graph
// @Param projectID path string true "Project id"
// @Param body body dtos.EdgeIngestRequest true "Request body"
// @Success 200 {object} dtos.EdgeIngestResult
// @Router /projects/{projectID}/edges [post]
func (c *DependencyEdgeController) Ingest(ctx shared.Context) error {
	var req dtos.EdgeIngestRequest
	if err := bind(ctx, &req); err != nil {
		return err
	}

	result, err := c.dependencyEdgeService.Ingest(ctx.Request().Context(), projectID(ctx), req)
	if err != nil {
		return toHTTPError(err)
	}
	return ctx.JSON(http.StatusOK, result)
}

// @Summary Load the dependency and supplier relations of a CycloneDX SBOM
// @Param projectID path string true "Project id"
// @Param body body object true "CycloneDX JSON document"
// @Success 200 {object} dtos.EdgeIngestResult
// @Router /projects/{projectID}/edges/sbom [post]
func (c *DependencyEdgeController) IngestBOM(ctx shared.Context) error {
	var bom cdx.BOM
	if err := cdx.NewBOMDecoder(ctx.Request().Body, cdx.BOMFileFormatJSON).Decode(&bom); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "could not decode body as CycloneDX BOM").WithInternal(err)
	}

	result, err := c.dependencyEdgeService.IngestBOM(ctx.Request().Context(), projectID(ctx), &bom)
	if err != nil {
		return toHTTPError(err)
	}
	return ctx.JSON(http.StatusOK, result)
}

// @Summary Transitive dependencies or dependents of a component
// @Param projectID path string true "Project id"
// @Param component query string true "Component reference"
// @Param direction query string false "upstream or downstream, defaults to downstream"
// @Success 200 {object} dtos.BlastRadiusDTO
// @Router /projects/{projectID}/graph/blast-radius [get]
func (c *DependencyEdgeController) BlastRadius(ctx shared.Context) error {
	result, err := c.dependencyEdgeService.BlastRadius(
		ctx.Request().Context(),
		projectID(ctx),
		ctx.QueryParam("component"),
		dtos.Direction(ctx.QueryParam("direction")),
	)
	if err != nil {
		return toHTTPError(err)
	}
	return ctx.JSON(http.StatusOK, result)
}
