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
	"errors"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
)

const serviceName = "scrmguard"

func allowedOrigins() []string {
	origins := os.Getenv("CORS_ALLOWED_ORIGINS")
	if origins == "" {
		return []string{"http://localhost:3000"}
	}
	return strings.Split(origins, ",")
}

func registerMiddlewares(e *echo.Echo) {
	e.Pre(middleware.AddTrailingSlash())
	e.Use(middleware.CORSWithConfig(
		middleware.CORSConfig{
			AllowOrigins: allowedOrigins(),
			AllowHeaders: middleware.DefaultCORSConfig.AllowHeaders,
			AllowMethods: middleware.DefaultCORSConfig.AllowMethods,
		},
	))

	e.Use(otelecho.Middleware(serviceName))

	e.Use(logger())

	e.Use(recovermiddleware())

	e.Use(actor())

	e.HTTPErrorHandler = errorHandler
}

// errorHandler renders every error as {"error": "<one line>"}.
func errorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if !errors.As(err, &he) {
		he = echo.NewHTTPError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)).WithInternal(err)
	}

	// do the logging straight inside the error handler
	// this keeps controller methods clean
	if he.Code >= http.StatusInternalServerError {
		slog.Error(err.Error(), "method", ctx.Request().Method, "path", ctx.Request().URL)
	} else {
		slog.Warn(err.Error(), "method", ctx.Request().Method, "path", ctx.Request().URL, "status", he.Code)
	}

	message := echo.Map{"error": http.StatusText(he.Code)}
	switch m := he.Message.(type) {
	case string:
		message = echo.Map{"error": m}
	case error:
		message = echo.Map{"error": m.Error()}
	}

	if ctx.Request().Method == http.MethodHead {
		if err := ctx.NoContent(he.Code); err != nil {
			slog.Error("could not send error response", "error", err)
		}
		return
	}
	if err := ctx.JSON(he.Code, message); err != nil {
		slog.Error("could not send error response", "error", err)
	}
}

func Server() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	registerMiddlewares(e)
	return e
}
