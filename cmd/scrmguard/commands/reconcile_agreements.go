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
	"encoding/json"
	"strings"

	"github.com/l3montree-dev/scrmguard/database"
	"github.com/l3montree-dev/scrmguard/database/repositories"
	"github.com/l3montree-dev/scrmguard/services"
	"github.com/l3montree-dev/scrmguard/shared"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newReconcileAgreementsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reconcile-agreements",
		Short: "Re-derive the status of every agreement of a project from its expiry date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := cmd.Flags().GetString("project")
			if err != nil {
				return err
			}
			projectID = strings.TrimSpace(projectID)
			if projectID == "" {
				return errors.New("--project is required")
			}
			actor, err := cmd.Flags().GetString("actor")
			if err != nil {
				return err
			}

			db, pool, err := database.NewConnection(cmd.Context(), database.GetPoolConfigFromEnv())
			if err != nil {
				return errors.Wrap(err, "could not connect to database")
			}
			defer pool.Close()

			projectRepository := repositories.NewProjectRepository(db)
			agreementService := services.NewAgreementService(
				projectRepository,
				repositories.NewAgreementRepository(db),
				services.NewAuditService(projectRepository, repositories.NewAuditEventRepository(db)),
			)

			ctx := shared.WithActor(cmd.Context(), actor)
			result, err := agreementService.Reconcile(ctx, projectID)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}

	cmd.Flags().StringP("project", "p", "", "Project whose agreements are reconciled")
	cmd.Flags().String("actor", shared.DefaultActor, "Actor recorded in the audit trail")
	return cmd
}
