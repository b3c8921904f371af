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
	"fmt"

	"github.com/l3montree-dev/scrmguard/database"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the embedded database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, pool, err := database.NewConnection(cmd.Context(), database.GetPoolConfigFromEnv())
			if err != nil {
				return errors.Wrap(err, "could not connect to database")
			}
			defer pool.Close()

			if err := database.RunMigrationsWithDB(db); err != nil {
				return err
			}

			version, dirty, err := database.GetMigrationVersionWithDB(db)
			if err != nil {
				return errors.Wrap(err, "could not read migration version")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "schema version %d (dirty: %t)\n", version, dirty)
			return nil
		},
	}
}
