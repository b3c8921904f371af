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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeVersion(t *testing.T) {
	t.Run("empty string", func(t *testing.T) {
		assert.Equal(t, "", NormalizeVersion(""))
		assert.Equal(t, "", NormalizeVersion("   "))
	})

	t.Run("v prefix should be removed", func(t *testing.T) {
		assert.Equal(t, "1.14.14", NormalizeVersion("v1.14.14"))
	})

	t.Run("incomplete semver is completed", func(t *testing.T) {
		tests := []struct {
			input    string
			expected string
		}{
			{"1.14", "1.14.0"},
			{"2", "2.0.0"},
			{"3.0.0-beta1", "3.0.0-beta1"},
			{" 1.2.3 ", "1.2.3"},
		}
		for _, tt := range tests {
			assert.Equal(t, tt.expected, NormalizeVersion(tt.input), tt.input)
		}
	})

	t.Run("non semver versions are kept", func(t *testing.T) {
		assert.Equal(t, "latest", NormalizeVersion("latest"))
		assert.Equal(t, "1.1.1w-fips", NormalizeVersion("1.1.1w-fips"))
	})
}

func TestCVSSBaseScore(t *testing.T) {
	t.Run("cvss 3.1", func(t *testing.T) {
		score, err := CVSSBaseScore("CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H")
		require.NoError(t, err)
		assert.Equal(t, 9.8, score)
	})

	t.Run("cvss 3.0", func(t *testing.T) {
		score, err := CVSSBaseScore("CVSS:3.0/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H")
		require.NoError(t, err)
		assert.Equal(t, 9.8, score)
	})

	t.Run("cvss 4.0", func(t *testing.T) {
		score, err := CVSSBaseScore("CVSS:4.0/AV:N/AC:L/AT:N/PR:N/UI:N/VC:H/VI:H/VA:H/SC:N/SI:N/SA:N")
		require.NoError(t, err)
		assert.Equal(t, 9.3, score)
	})

	t.Run("invalid vectors", func(t *testing.T) {
		for _, v := range []string{"", "AV:N/AC:L", "CVSS:3.1/AV:X", "CVSS:2.0/AV:N"} {
			_, err := CVSSBaseScore(v)
			assert.Error(t, err, v)
		}
	})
}
