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
	"strings"

	"github.com/l3montree-dev/scrmguard/shared"
	"github.com/labstack/echo/v4"
)

// ActorHeader names the acting user. Authentication happens in front of the service.
const ActorHeader = "X-Actor"

func actor() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if name := strings.TrimSpace(ctx.Request().Header.Get(ActorHeader)); name != "" {
				req := ctx.Request()
				ctx.SetRequest(req.WithContext(shared.WithActor(req.Context(), name)))
			}
			return next(ctx)
		}
	}
}
