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
	"github.com/l3montree-dev/scrmguard/controllers"
	"github.com/labstack/echo/v4"
)

type ProjectRouter struct {
	*echo.Group
}

func NewProjectRouter(
	apiV1Router APIV1Router,
	cveTriageController *controllers.CveTriageController,
	agreementController *controllers.AgreementController,
	scrmController *controllers.ScrmController,
	dependencyEdgeController *controllers.DependencyEdgeController,
	auditController *controllers.AuditController,
) ProjectRouter {
	/**
	Project scoped router
	All routes below this line are scoped to a specific project.
	*/
	projectRouter := apiV1Router.Group.Group("/projects/:projectID")

	projectRouter.POST("/cves/", cveTriageController.Triage)
	projectRouter.GET("/cves/pending/", cveTriageController.Pending)
	projectRouter.GET("/cves/sla/", cveTriageController.CheckSLA)
	projectRouter.GET("/cves/:triageID/", cveTriageController.Read)
	projectRouter.PATCH("/cves/:triageID/", cveTriageController.Update)
	projectRouter.POST("/cves/:triageID/propagate/", cveTriageController.PropagateImpact)

	projectRouter.POST("/agreements/", agreementController.Create)
	projectRouter.GET("/agreements/", agreementController.List)
	projectRouter.GET("/agreements/expiring/", agreementController.Expiring)
	projectRouter.GET("/agreements/review-due/", agreementController.ReviewDue)
	projectRouter.POST("/agreements/reconcile/", agreementController.Reconcile)
	projectRouter.GET("/agreements/:agreementID/", agreementController.Read)
	projectRouter.POST("/agreements/:agreementID/renew/", agreementController.Renew)
	projectRouter.POST("/agreements/:agreementID/revoke/", agreementController.Revoke)

	projectRouter.POST("/vendors/assess/", scrmController.AssessProject)
	projectRouter.GET("/vendors/prohibited/", scrmController.ProhibitedVendors)
	projectRouter.POST("/vendors/:vendorID/assess/", scrmController.AssessVendor)
	projectRouter.GET("/vendors/:vendorID/assessments/", scrmController.History)

	projectRouter.POST("/edges/", dependencyEdgeController.Ingest)
	projectRouter.POST("/edges/sbom/", dependencyEdgeController.IngestBOM)
	projectRouter.GET("/graph/blast-radius/", dependencyEdgeController.BlastRadius)

	projectRouter.GET("/audit/", auditController.Trail)

	return ProjectRouter{Group: projectRouter}
}
