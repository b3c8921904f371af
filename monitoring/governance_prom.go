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

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var AuditWriteFailures = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "scrmguard_audit_write_failures_total",
	Help: "Audit events which could not be persisted, by event type",
}, []string{"event_type"})

var VendorAssessmentsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "scrmguard_vendor_assessments_total",
	Help: "Vendor assessments computed, by resulting risk tier",
}, []string{"tier"})

var VendorAssessmentFailures = promauto.NewCounter(prometheus.CounterOpts{
	Name: "scrmguard_vendor_assessment_failures_total",
	Help: "Vendors skipped during a project assessment because their assessment failed",
})

var AgreementStatusChanges = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "scrmguard_agreement_status_changes_total",
	Help: "Agreement status transitions persisted by reconciliation",
}, []string{"to"})
