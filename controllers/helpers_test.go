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
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/l3montree-dev/scrmguard/shared"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newContext builds an echo context for a single handler call. params are
// name/value pairs for the path parameters.
func newContext(t *testing.T, method, target string, body any, params ...string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	ctx := echo.New().NewContext(req, rec)

	names := []string{}
	values := []string{}
	for i := 0; i+1 < len(params); i += 2 {
		names = append(names, params[i])
		values = append(values, params[i+1])
	}
	ctx.SetParamNames(names...)
	ctx.SetParamValues(values...)
	return ctx, rec
}

func assertHTTPError(t *testing.T, err error, code int) {
	t.Helper()
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, code, he.Code)
}

func TestToHTTPError(t *testing.T) {
	cases := map[error]int{
		shared.NotFound("project p1 not found"):                     http.StatusNotFound,
		shared.InvalidInput("cvss out of range"):                    http.StatusBadRequest,
		errors.Wrap(shared.ErrAlreadyExists, "triage record"):       http.StatusConflict,
		errors.Wrap(shared.ErrBackingStoreUnavailable, "pool"):      http.StatusServiceUnavailable,
		errors.New("something nobody expected"):                     http.StatusInternalServerError,
		errors.Wrap(shared.NotFound("vendor v1"), "could not read"): http.StatusNotFound,
	}
	for err, code := range cases {
		assertHTTPError(t, toHTTPError(err), code)
	}

	t.Run("does not leak unexpected causes", func(t *testing.T) {
		var he *echo.HTTPError
		require.ErrorAs(t, toHTTPError(errors.New("pq: password authentication failed")), &he)
		assert.Equal(t, http.StatusText(http.StatusInternalServerError), he.Message)
	})
}

func TestIntQuery(t *testing.T) {
	ctx, _ := newContext(t, http.MethodGet, "/?daysAhead=30", nil)
	value, err := intQuery(ctx, "daysAhead", 90)
	require.NoError(t, err)
	assert.Equal(t, 30, value)

	value, err = intQuery(ctx, "top", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, value)

	ctx, _ = newContext(t, http.MethodGet, "/?daysAhead=soon", nil)
	_, err = intQuery(ctx, "daysAhead", 90)
	assertHTTPError(t, err, http.StatusBadRequest)
}
