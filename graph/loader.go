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

package graph

import (
	"context"
	"log/slog"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/l3montree-dev/scrmguard/database/models"
	"github.com/l3montree-dev/scrmguard/monitoring"
	"golang.org/x/sync/singleflight"
)

const DefaultCacheSize = 256

type EdgeStore interface {
	FindByProject(ctx context.Context, projectID string) ([]models.DependencyEdge, error)
	Fingerprint(ctx context.Context, projectID string) (models.EdgeFingerprint, error)
}

type cachedGraph struct {
	graph       *Graph
	fingerprint models.EdgeFingerprint
}

// Loader hands out project graphs. A cached graph is only reused while the
// edge fingerprint in the store is unchanged, so writes from other processes
// are picked up on the next Load.
type Loader struct {
	store EdgeStore
	cache *lru.Cache[string, cachedGraph]
	group singleflight.Group
}

func NewLoader(store EdgeStore) *Loader {
	return NewLoaderWithSize(store, DefaultCacheSize)
}

func NewLoaderWithSize(store EdgeStore, size int) *Loader {
	if size <= 0 {
		size = DefaultCacheSize
	}
	// only fails for a non positive size
	cache, _ := lru.New[string, cachedGraph](size)
	return &Loader{
		store: store,
		cache: cache,
	}
}

func (l *Loader) Load(ctx context.Context, projectID string) (*Graph, error) {
	fingerprint, err := l.store.Fingerprint(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if cached, ok := l.cache.Get(projectID); ok && cached.fingerprint.Equal(fingerprint) {
		monitoring.GraphCacheHits.Inc()
		return cached.graph, nil
	}
	monitoring.GraphCacheMisses.Inc()

	v, err, _ := l.group.Do(projectID+"@"+fingerprint.String(), func() (any, error) {
		start := time.Now()
		edges, err := l.store.FindByProject(ctx, projectID)
		if err != nil {
			return nil, err
		}
		g := Build(edges)
		l.cache.Add(projectID, cachedGraph{graph: g, fingerprint: fingerprint})
		monitoring.GraphBuildDuration.Observe(time.Since(start).Seconds())
		slog.Debug("built dependency graph", "projectID", projectID, "edges", len(edges), "nodes", g.NodeCount())
		return g, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Graph), nil
}

func (l *Loader) Invalidate(projectID string) {
	l.cache.Remove(projectID)
}
