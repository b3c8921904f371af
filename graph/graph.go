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
	"iter"
	"slices"

	"github.com/google/uuid"
	"github.com/l3montree-dev/scrmguard/database/models"
	"github.com/l3montree-dev/scrmguard/dtos"
)

type Edge struct {
	Source      NodeKey
	Target      NodeKey
	Criticality dtos.Criticality
	AgreementID *uuid.UUID
}

// Graph is an immutable adjacency view over the dependency edges of one
// project. An edge source -> target reads "source depends on target".
// It is safe for concurrent readers once built.
type Graph struct {
	forward  map[NodeKey][]NodeKey // source -> targets
	backward map[NodeKey][]NodeKey // target -> sources
	edges    []Edge

	// bare name -> key, first type in dtos.NodeTypes wins
	names map[string]NodeKey
}

func Build(dependencyEdges []models.DependencyEdge) *Graph {
	g := &Graph{
		forward:  make(map[NodeKey][]NodeKey),
		backward: make(map[NodeKey][]NodeKey),
		edges:    make([]Edge, 0, len(dependencyEdges)),
		names:    make(map[string]NodeKey),
	}

	seen := make(map[[2]NodeKey]struct{}, len(dependencyEdges))
	for _, e := range dependencyEdges {
		edge := Edge{
			Source:      Key(e.SourceType, e.SourceID),
			Target:      Key(e.TargetType, e.TargetID),
			Criticality: e.Criticality,
			AgreementID: e.AgreementID,
		}
		g.edges = append(g.edges, edge)

		pair := [2]NodeKey{edge.Source, edge.Target}
		if _, ok := seen[pair]; ok {
			continue
		}
		seen[pair] = struct{}{}

		g.forward[edge.Source] = append(g.forward[edge.Source], edge.Target)
		g.backward[edge.Target] = append(g.backward[edge.Target], edge.Source)
		g.index(edge.Source)
		g.index(edge.Target)
	}
	return g
}

func precedence(t dtos.NodeType) int {
	return slices.Index(dtos.NodeTypes, t)
}

func (g *Graph) index(key NodeKey) {
	existing, ok := g.names[key.ID]
	if !ok || precedence(key.Type) < precedence(existing.Type) {
		g.names[key.ID] = key
	}
}

func (g *Graph) Has(key NodeKey) bool {
	if _, ok := g.forward[key]; ok {
		return true
	}
	_, ok := g.backward[key]
	return ok
}

// Resolve maps a reference onto an existing node. Typed references and package
// urls must match exactly, bare names go through the name index.
func (g *Graph) Resolve(ref string) (NodeKey, bool) {
	key, explicit, err := ParseNodeRef(ref)
	if err != nil {
		return NodeKey{}, false
	}
	if explicit {
		return key, g.Has(key)
	}
	key, ok := g.names[key.ID]
	return key, ok
}

// BlastRadius walks the graph breadth first from start. Upstream follows
// dependencies, downstream follows dependents. Every reachable node is
// returned once in discovery order, start itself is never part of the result.
func (g *Graph) BlastRadius(start NodeKey, direction dtos.Direction) []NodeKey {
	adjacency := g.forward
	if direction == dtos.DirectionDownstream {
		adjacency = g.backward
	}

	visited := map[NodeKey]bool{start: true}
	queue := []NodeKey{start}
	result := []NodeKey{}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		for _, next := range adjacency[curr] {
			if visited[next] {
				continue
			}
			visited[next] = true
			result = append(result, next)
			queue = append(queue, next)
		}
	}
	return result
}

// Neighbors returns the direct dependencies followed by the direct dependents
// of key, without duplicates.
func (g *Graph) Neighbors(key NodeKey) []NodeKey {
	result := make([]NodeKey, 0, len(g.forward[key])+len(g.backward[key]))
	seen := make(map[NodeKey]bool)
	for _, n := range slices.Concat(g.forward[key], g.backward[key]) {
		if seen[n] || n == key {
			continue
		}
		seen[n] = true
		result = append(result, n)
	}
	return result
}

func (g *Graph) Edges() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for _, e := range g.edges {
			if !yield(e) {
				return
			}
		}
	}
}

// AgreementEdges yields only edges governed by an interconnection agreement.
func (g *Graph) AgreementEdges() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for e := range g.Edges() {
			if e.AgreementID == nil {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

func (g *Graph) NodeCount() int {
	nodes := make(map[NodeKey]struct{}, len(g.forward)+len(g.backward))
	for k := range g.forward {
		nodes[k] = struct{}{}
	}
	for k := range g.backward {
		nodes[k] = struct{}{}
	}
	return len(nodes)
}

func Strings(keys []NodeKey) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = k.String()
	}
	return out
}
