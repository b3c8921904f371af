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
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/l3montree-dev/scrmguard/config"
	"github.com/l3montree-dev/scrmguard/database"
	"github.com/l3montree-dev/scrmguard/shared"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type APIV1Router struct {
	*echo.Group
}

func NewAPIV1Router(e *echo.Echo, db shared.DB, pool *pgxpool.Pool) APIV1Router {
	metrics := echo.WrapHandler(promhttp.Handler())
	e.GET("/metrics/", metrics)

	apiV1Router := e.Group("/api/v1")
	apiV1Router.GET("/metrics/", metrics)

	apiV1Router.GET("/health/", func(ctx echo.Context) error {
		if err := database.Ping(ctx.Request().Context(), db); err != nil {
			return ctx.JSON(http.StatusServiceUnavailable, map[string]string{
				"status": "unhealthy",
				"error":  "database ping failed",
			})
		}
		return ctx.JSON(http.StatusOK, map[string]string{
			"status": "healthy",
		})
	})

	apiV1Router.GET("/info/", func(ctx echo.Context) error {
		resp := InfoResponse{
			Build: BuildInfo{
				Version:   config.Version,
				Commit:    config.Commit,
				Branch:    config.Branch,
				BuildDate: config.BuildDate,
			},
			Runtime: RuntimeInfo{
				GoVersion:     runtime.Version(),
				NumGoroutines: runtime.NumGoroutine(),
			},
			Process: ProcessInfo{
				PID:           os.Getpid(),
				UptimeSeconds: int(time.Since(config.StartedAt).Seconds()),
			},
			Database: databaseInfo(ctx, db, pool),
		}
		if host, _ := os.Hostname(); host != "" {
			resp.Process.Hostname = host
		}
		return ctx.JSON(http.StatusOK, resp)
	})

	return APIV1Router{Group: apiV1Router}
}

func databaseInfo(ctx echo.Context, db shared.DB, pool *pgxpool.Pool) DatabaseInfo {
	info := DatabaseInfo{Status: "healthy"}
	if err := database.Ping(ctx.Request().Context(), db); err != nil {
		errMsg := "database ping failed"
		info.Status = "unhealthy"
		info.Error = &errMsg
		return info
	}

	if pool != nil {
		stats := pool.Stat()
		info.Pool = &PoolInfo{
			DBName:        pool.Config().ConnConfig.Database,
			TotalConns:    int(stats.TotalConns()),
			IdleConns:     int(stats.IdleConns()),
			AcquiredConns: int(stats.AcquiredConns()),
			MaxConns:      int(stats.MaxConns()),
		}
	}

	if version, dirty, err := database.GetMigrationVersionWithDB(db); err == nil {
		info.MigrationVersion = &version
		info.MigrationDirty = &dirty
	} else {
		errStr := err.Error()
		info.MigrationError = &errStr
	}
	return info
}
