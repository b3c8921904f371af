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

const defaultExpiringHorizonDays = 90

type AgreementController struct {
	agreementService shared.AgreementService
}

func NewAgreementController(agreementService shared.AgreementService) *AgreementController {
	return &AgreementController{
		agreementService: agreementService,
	}
}

// @Summary Register an interconnection agreement
// @Param projectID path string true "Project id"
// @Param body body dtos.AgreementCreateRequest true "Request body"
// @Success 201 {object} dtos.AgreementDTO
// @Router /projects/{projectID}/agreements [post]
func (c *AgreementController) Create(ctx shared.Context) error {
	var req dtos.AgreementCreateRequest
	if err := bind(ctx, &req); err != nil {
		return err
	}

	agreement, err := c.agreementService.Create(ctx.Request().Context(), projectID(ctx), req)
	if err != nil {
		return toHTTPError(err)
	}
	return ctx.JSON(http.StatusCreated, agreement)
}

// @Summary List agreements
// @Param projectID path string true "Project id"
// @Param status query string false "Filter by status"
// @Success 200 {array} dtos.AgreementDTO
// @Router /projects/{projectID}/agreements [get]
func (c *AgreementController) List(ctx shared.Context) error {
	var status *dtos.AgreementStatus
	if raw := ctx.QueryParam("status"); raw != "" {
		s := dtos.AgreementStatus(raw)
		status = &s
	}

	agreements, err := c.agreementService.List(ctx.Request().Context(), projectID(ctx), status)
	if err != nil {
		return toHTTPError(err)
	}
	return ctx.JSON(http.StatusOK, agreements)
}

// @Summary Agreements expiring within the horizon
// @Param projectID path string true "Project id"
// @Param daysAhead query int false "Horizon in days, defaults to 90"
// @Success 200 {array} dtos.ExpiringAgreementDTO
// @Router /projects/{projectID}/agreements/expiring [get]
func (c *AgreementController) Expiring(ctx shared.Context) error {
	daysAhead, err := intQuery(ctx, "daysAhead", defaultExpiringHorizonDays)
	if err != nil {
		return err
	}

	agreements, err := c.agreementService.Expiring(ctx.Request().Context(), projectID(ctx), daysAhead)
	if err != nil {
		return toHTTPError(err)
	}
	return ctx.JSON(http.StatusOK, agreements)
}

// @Summary Agreements whose periodic review is due
// @Param projectID path string true "Project id"
// @Success 200 {array} dtos.ReviewDueAgreementDTO
// @Router /projects/{projectID}/agreements/review-due [get]
func (c *AgreementController) ReviewDue(ctx shared.Context) error {
	agreements, err := c.agreementService.ReviewDue(ctx.Request().Context(), projectID(ctx))
	if err != nil {
		return toHTTPError(err)
	}
	return ctx.JSON(http.StatusOK, agreements)
}

// @Summary Re-derive the status of every agreement from its expiry date
// @Param projectID path string true "Project id"
// @Success 200 {object} dtos.ReconcileResult
// @Router /projects/{projectID}/agreements/reconcile [post]
func (c *AgreementController) Reconcile(ctx shared.Context) error {
	result, err := c.agreementService.Reconcile(ctx.Request().Context(), projectID(ctx))
	if err != nil {
		return toHTTPError(err)
	}
	return ctx.JSON(http.StatusOK, result)
}

func (c *AgreementController) read(ctx shared.Context) (dtos.AgreementDTO, error) {
	agreementID, err := uuidParam(ctx, "agreementID")
	if err != nil {
		return dtos.AgreementDTO{}, err
	}
	agreement, err := c.agreementService.Get(ctx.Request().Context(), agreementID)
	if err != nil {
		return dtos.AgreementDTO{}, toHTTPError(err)
	}
	if agreement.ProjectID != projectID(ctx) {
		return dtos.AgreementDTO{}, notInProject("agreement", agreementID)
	}
	return agreement, nil
}

// @Summary Read an agreement
// @Param projectID path string true "Project id"
// @Param agreementID path string true "Agreement id"
// @Success 200 {object} dtos.AgreementDTO
// @Router /projects/{projectID}/agreements/{agreementID} [get]
func (c *AgreementController) Read(ctx shared.Context) error {
	agreement, err := c.read(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, agreement)
}

// @Summary Renew an agreement
// @Param projectID path string true "Project id"
// @Param agreementID path string true "Agreement id"
// @Param body body dtos.AgreementRenewRequest true "Request body"
// @Success 200 {object} dtos.AgreementDTO
// @Router /projects/{projectID}/agreements/{agreementID}/renew [post]
func (c *AgreementController) Renew(ctx shared.Context) error {
	agreement, err := c.read(ctx)
	if err != nil {
		return err
	}

	var req dtos.AgreementRenewRequest
	if err := bind(ctx, &req); err != nil {
		return err
	}

	renewed, err := c.agreementService.Renew(ctx.Request().Context(), agreement.ID, req)
	if err != nil {
		return toHTTPError(err)
	}
	return ctx.JSON(http.StatusOK, renewed)
}

// @Summary Terminate an agreement
// @Param projectID path string true "Project id"
// @Param agreementID path string true "Agreement id"
// @Param body body dtos.AgreementRevokeRequest true "Request body"
// @Success 200 {object} dtos.AgreementDTO
// @Router /projects/{projectID}/agreements/{agreementID}/revoke [post]
func (c *AgreementController) Revoke(ctx shared.Context) error {
	agreement, err := c.read(ctx)
	if err != nil {
		return err
	}

	var req dtos.AgreementRevokeRequest
	if err := bind(ctx, &req); err != nil {
		return err
	}

	revoked, err := c.agreementService.Revoke(ctx.Request().Context(), agreement.ID, req)
	if err != nil {
		return toHTTPError(err)
	}
	return ctx.JSON(http.StatusOK, revoked)
}
