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

package commands

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/l3montree-dev/scrmguard/config"
	"github.com/l3montree-dev/scrmguard/controllers"
	"github.com/l3montree-dev/scrmguard/database"
	"github.com/l3montree-dev/scrmguard/database/repositories"
	"github.com/l3montree-dev/scrmguard/middlewares"
	"github.com/l3montree-dev/scrmguard/router"
	"github.com/l3montree-dev/scrmguard/services"
	"github.com/labstack/echo/v4"
	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

func newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := cmd.Flags().GetString("addr")
			if err != nil {
				return err
			}

			if os.Getenv("ERROR_TRACKING_DSN") != "" {
				initSentry()
				defer func() {
					if err := recover(); err != nil {
						sentry.CurrentHub().Recover(err)
						sentry.Flush(time.Second * 5)
					}
				}()
			}

			db, pool, err := database.NewConnection(cmd.Context(), database.GetPoolConfigFromEnv())
			if err != nil {
				return pkgerrors.Wrap(err, "could not connect to database")
			}
			defer pool.Close()

			if os.Getenv("DISABLE_AUTOMIGRATE") != "true" {
				slog.Info("running database migrations...")
				if err := database.RunMigrationsWithDB(db); err != nil {
					return err
				}
			} else {
				slog.Info("automatic migrations disabled via DISABLE_AUTOMIGRATE=true")
			}

			app := fx.New(
				fx.WithLogger(func() fxevent.Logger {
					return &fxevent.SlogLogger{Logger: slog.Default().With("component", "fx")}
				}),
				fx.Supply(db, pool),
				fx.Provide(middlewares.Server),
				repositories.Module,
				services.Module,
				controllers.Module,
				router.Module,

				// routers register their routes on construction
				fx.Invoke(func(router.ProjectRouter) {}),
				fx.Invoke(func(lc fx.Lifecycle, e *echo.Echo) {
					lc.Append(fx.Hook{
						OnStart: func(context.Context) error {
							go func() {
								slog.Info("starting server", "addr", addr, "version", config.Version)
								if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
									slog.Error("server stopped", "err", err)
								}
							}()
							return nil
						},
						OnStop: func(ctx context.Context) error {
							return e.Shutdown(ctx)
						},
					})
				}),
			)
			if err := app.Err(); err != nil {
				return err
			}
			app.Run()
			return nil
		},
	}

	cmd.Flags().String("addr", ":8080", "Address the HTTP API listens on")
	return cmd
}

func initSentry() {
	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = "dev"
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:         os.Getenv("ERROR_TRACKING_DSN"),
		Environment: environment,
		Release:     config.Version,

		Debug:            environment == "dev",
		AttachStacktrace: true,
		SendDefaultPII:   false,
	})
	if err != nil {
		slog.Error("failed to init error tracking", "err", err)
	}
}
