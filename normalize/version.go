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

package normalize

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

// NormalizeVersion brings semver-like versions into canonical form, e.g.
// "v1.14" becomes "1.14.0". Anything that does not look like semver is
// returned trimmed but otherwise untouched.
func NormalizeVersion(originalVersion string) string {
	version := strings.TrimSpace(originalVersion)
	if version == "" {
		return ""
	}

	v, err := semver.NewVersion(version)
	if err != nil {
		return version
	}
	return v.String()
}
