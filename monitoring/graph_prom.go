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

var GraphCacheHits = promauto.NewCounter(prometheus.CounterOpts{
	Name: "scrmguard_graph_cache_hits_total",
	Help: "Dependency graph loads served from the cache",
})

var GraphCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
	Name: "scrmguard_graph_cache_misses_total",
	Help: "Dependency graph loads which rebuilt the graph from the store",
})

var GraphBuildDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "scrmguard_graph_build_duration_seconds",
	Help:    "Time spent loading edges and building a project graph",
	Buckets: prometheus.DefBuckets,
})
