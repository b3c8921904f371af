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
	"runtime"

	"github.com/l3montree-dev/scrmguard/config"
	"github.com/spf13/cobra"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "scrmguard\n")
			fmt.Fprintf(out, "Version:    %s\n", config.Version)
			fmt.Fprintf(out, "Commit:     %s\n", config.Commit)
			fmt.Fprintf(out, "Branch:     %s\n", config.Branch)
			fmt.Fprintf(out, "Built:      %s\n", config.BuildDate)
			fmt.Fprintf(out, "Go:         %s\n", runtime.Version())
		},
	}
}
