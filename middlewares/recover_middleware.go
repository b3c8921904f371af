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

package middlewares

import (
	"fmt"
	"net/http"

	"github.com/l3montree-dev/scrmguard/monitoring"
	"github.com/labstack/echo/v4"
)

// recovermiddleware turns a panicking handler into a 500 and reports the
// panic to the error tracking.
func recovermiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) (returnErr error) {
			defer func() {
				if r := recover(); r != nil {
					if r == http.ErrAbortHandler {
						panic(r)
					}
					monitoring.RecoverAndAlert(fmt.Sprintf("panic in %s %s", ctx.Request().Method, ctx.Path()), r)
					returnErr = echo.NewHTTPError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
				}
			}()
			return next(ctx)
		}
	}
}
