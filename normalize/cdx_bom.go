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
	"maps"
	"slices"
	"strings"

	cdx "github.com/CycloneDX/cyclonedx-go"
	"github.com/gosimple/slug"
	"github.com/l3montree-dev/scrmguard/dtos"
	"github.com/l3montree-dev/scrmguard/graph"
)

// SupplierVendorID derives the vendor node id of a CycloneDX supplier, e.g.
// "OpenJS Foundation" becomes "openjs-foundation". Vendors registered under
// that id pick up the supplied components in their dependency score.
func SupplierVendorID(supplierName string) string {
	return slug.Make(strings.TrimSpace(supplierName))
}

func collectComponents(components *[]cdx.Component, into map[string]cdx.Component) {
	if components == nil {
		return
	}
	for _, component := range *components {
		if component.BOMRef != "" {
			into[component.BOMRef] = component
		}
		collectComponents(component.Components, into)
	}
}

// componentRef prefers the package url. Components without one, usually the
// application the bom describes, become component nodes.
func componentRef(component cdx.Component) string {
	switch {
	case strings.HasPrefix(component.PackageURL, "pkg:"):
		return component.PackageURL
	case strings.HasPrefix(component.BOMRef, "pkg:"):
		return component.BOMRef
	case component.Name != "":
		return string(dtos.NodeTypeComponent) + ":" + component.Name
	}
	return string(dtos.NodeTypeComponent) + ":" + component.BOMRef
}

func sameNode(a, b string) bool {
	keyA, _, errA := graph.ParseNodeRef(a)
	keyB, _, errB := graph.ParseNodeRef(b)
	return errA == nil && errB == nil && keyA == keyB
}

// BOMEdges turns a CycloneDX bom into dependency edges. Every entry of the
// dependencies section yields one edge per child, and every component with a
// named supplier yields an edge to the supplier's vendor node. Edges that
// collapse onto a single node, e.g. two versions of one package, are dropped.
func BOMEdges(bom *cdx.BOM) []dtos.EdgeInput {
	if bom == nil {
		return nil
	}
	components := map[string]cdx.Component{}
	if bom.Metadata != nil && bom.Metadata.Component != nil {
		root := *bom.Metadata.Component
		if root.BOMRef != "" {
			components[root.BOMRef] = root
		}
		collectComponents(root.Components, components)
	}
	collectComponents(bom.Components, components)

	nodeRef := func(bomRef string) string {
		if component, ok := components[bomRef]; ok {
			return componentRef(component)
		}
		if strings.HasPrefix(bomRef, "pkg:") {
			return bomRef
		}
		return string(dtos.NodeTypeComponent) + ":" + bomRef
	}

	edges := []dtos.EdgeInput{}
	if bom.Dependencies != nil {
		for _, dependency := range *bom.Dependencies {
			if dependency.Dependencies == nil {
				continue
			}
			source := nodeRef(dependency.Ref)
			for _, child := range *dependency.Dependencies {
				target := nodeRef(child)
				if sameNode(source, target) {
					continue
				}
				edges = append(edges, dtos.EdgeInput{Source: source, Target: target})
			}
		}
	}

	for _, bomRef := range slices.Sorted(maps.Keys(components)) {
		component := components[bomRef]
		if component.Supplier == nil {
			continue
		}
		vendorID := SupplierVendorID(component.Supplier.Name)
		if vendorID == "" {
			continue
		}
		edges = append(edges, dtos.EdgeInput{
			Source: componentRef(component),
			Target: string(dtos.NodeTypeVendor) + ":" + vendorID,
		})
	}
	return edges
}
