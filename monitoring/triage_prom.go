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

var CveTriagedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "scrmguard_cve_triaged_total",
	Help: "Number of CVEs triaged, by severity",
}, []string{"severity"})

var CveDecisionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "scrmguard_cve_decisions_total",
	Help: "Number of triage decisions recorded, by decision",
}, []string{"decision"})

var SLAOverdueRecords = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Name: "scrmguard_sla_overdue_records",
	Help: "Open triage records past their SLA deadline at the last check, by project",
}, []string{"project"})

var BlastRadiusSize = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "scrmguard_blast_radius_nodes",
	Help:    "Number of downstream nodes reached when triaging a CVE",
	Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100, 250},
})
