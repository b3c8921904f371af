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

package statemachine

import (
	"testing"
	"time"

	"github.com/l3montree-dev/scrmguard/database/models"
	"github.com/l3montree-dev/scrmguard/dtos"
	"github.com/l3montree-dev/scrmguard/utils"
	"github.com/stretchr/testify/assert"
)

func TestStateOf(t *testing.T) {
	cases := map[dtos.TriageDecision]TriageState{
		dtos.TriageDecisionRemediate:     TriageStateClosed,
		dtos.TriageDecisionFalsePositive: TriageStateClosed,
		dtos.TriageDecisionNotApplicable: TriageStateClosed,
		dtos.TriageDecisionAcceptRisk:    TriageStateRiskAccepted,
		dtos.TriageDecisionDefer:         TriageStateOpen,
		dtos.TriageDecisionMitigate:      TriageStateOpen,
	}
	for decision, expected := range cases {
		assert.Equal(t, expected, StateOf(utils.Ptr(decision)), decision)
	}
	assert.Equal(t, TriageStateOpen, StateOf(nil))
}

func TestApply(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("closing decision stamps remediated_at", func(t *testing.T) {
		record := models.CveTriage{}
		Apply(&record, dtos.TriageDecisionFalsePositive, utils.Ptr("not reachable"), now)

		assert.Equal(t, dtos.TriageDecisionFalsePositive, record.Decision())
		assert.Equal(t, "not reachable", *record.TriageRationale)
		assert.Equal(t, now, *record.RemediatedAt)
		assert.False(t, IsOpen(record))
	})

	t.Run("closing twice keeps the first timestamp", func(t *testing.T) {
		record := models.CveTriage{}
		Apply(&record, dtos.TriageDecisionRemediate, nil, now)
		Apply(&record, dtos.TriageDecisionNotApplicable, nil, now.Add(time.Hour))
		assert.Equal(t, now, *record.RemediatedAt)
	})

	t.Run("reopening clears remediated_at", func(t *testing.T) {
		record := models.CveTriage{}
		Apply(&record, dtos.TriageDecisionRemediate, nil, now)
		Apply(&record, dtos.TriageDecisionDefer, utils.Ptr("patch regressed"), now.Add(time.Hour))

		assert.Nil(t, record.RemediatedAt)
		assert.True(t, IsOpen(record))
	})

	t.Run("accept risk leaves tracking without remediation", func(t *testing.T) {
		record := models.CveTriage{}
		Apply(&record, dtos.TriageDecisionAcceptRisk, utils.Ptr("compensating control"), now)

		assert.Nil(t, record.RemediatedAt)
		assert.False(t, IsOpen(record))
		assert.Equal(t, TriageStateRiskAccepted, StateOf(record.TriageDecision))
	})

	t.Run("missing rationale keeps the previous one", func(t *testing.T) {
		record := models.CveTriage{TriageRationale: utils.Ptr("initial")}
		Apply(&record, dtos.TriageDecisionMitigate, nil, now)
		assert.Equal(t, "initial", *record.TriageRationale)
	})
}
