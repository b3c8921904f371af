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
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/l3montree-dev/scrmguard/shared"
	"github.com/labstack/echo/v4"
)

// toHTTPError maps the sentinel errors of the services onto status codes.
// Anything unexpected becomes a 500 without leaking the cause to the client.
func toHTTPError(err error) error {
	switch {
	case errors.Is(err, shared.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error()).WithInternal(err)
	case errors.Is(err, shared.ErrInvalidInput):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).WithInternal(err)
	case errors.Is(err, shared.ErrAlreadyExists):
		return echo.NewHTTPError(http.StatusConflict, err.Error()).WithInternal(err)
	case errors.Is(err, shared.ErrBackingStoreUnavailable):
		return echo.NewHTTPError(http.StatusServiceUnavailable, "backing store unavailable").WithInternal(err)
	}
	return echo.NewHTTPError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)).WithInternal(err)
}

func bind(ctx shared.Context, req any) error {
	if err := ctx.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unable to process request").WithInternal(err)
	}
	return nil
}

func projectID(ctx shared.Context) string {
	return shared.SanitizeParam(ctx.Param("projectID"))
}

func uuidParam(ctx shared.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name).WithInternal(err)
	}
	return id, nil
}

// intQuery reads an optional integer query parameter.
func intQuery(ctx shared.Context, name string, fallback int) (int, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "query parameter "+name+" must be an integer").WithInternal(err)
	}
	return value, nil
}

// notInProject hides records of other projects behind a 404.
func notInProject(kind string, id uuid.UUID) error {
	return echo.NewHTTPError(http.StatusNotFound, kind+" "+id.String()+" not found")
}
