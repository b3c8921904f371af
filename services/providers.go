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

package services

import (
	"os"
	"strconv"

	"github.com/l3montree-dev/scrmguard/graph"
	"github.com/l3montree-dev/scrmguard/shared"
	"go.uber.org/fx"
)

// NewGraphLoader sizes the graph cache from GRAPH_CACHE_SIZE.
func NewGraphLoader(dependencyEdgeRepository shared.DependencyEdgeRepository) *graph.Loader {
	size := graph.DefaultCacheSize
	if v, err := strconv.Atoi(os.Getenv("GRAPH_CACHE_SIZE")); err == nil && v > 0 {
		size = v
	}
	return graph.NewLoaderWithSize(dependencyEdgeRepository, size)
}

// Module provides all service-layer constructors
var Module = fx.Options(
	fx.Provide(fx.Annotate(NewGraphLoader, fx.As(new(shared.GraphLoader)))),
	fx.Provide(fx.Annotate(NewAuditService, fx.As(new(shared.AuditService)))),
	fx.Provide(fx.Annotate(NewCveTriageService, fx.As(new(shared.CveTriageService)))),
	fx.Provide(fx.Annotate(NewAgreementService, fx.As(new(shared.AgreementService)))),
	fx.Provide(fx.Annotate(NewScrmService, fx.As(new(shared.ScrmService)))),
	fx.Provide(fx.Annotate(NewDependencyEdgeService, fx.As(new(shared.DependencyEdgeService)))),
)
