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
	"fmt"
	"strings"

	"github.com/l3montree-dev/scrmguard/dtos"
	"github.com/package-url/packageurl-go"
)

// NodeKey is the canonical identity of a node. Two references denote the same
// node exactly when their keys are equal.
type NodeKey struct {
	Type dtos.NodeType
	ID   string
}

func (k NodeKey) String() string {
	return string(k.Type) + ":" + k.ID
}

func Key(nodeType dtos.NodeType, id string) NodeKey {
	return NodeKey{Type: nodeType, ID: id}
}

// ParseNodeRef canonicalizes a reference. Accepted forms:
//
//	pkg:npm/lodash@4.17.21   package url, stored as a package node without version
//	vendor:acme              explicit type prefix
//	openssl                  bare name
//
// explicit is false for bare names. Those map to a component key here and are
// resolved against existing nodes by Graph.Resolve.
func ParseNodeRef(ref string) (key NodeKey, explicit bool, err error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return NodeKey{}, false, fmt.Errorf("empty node reference")
	}

	if strings.HasPrefix(ref, "pkg:") {
		purl, err := packageurl.FromString(ref)
		if err != nil {
			return NodeKey{}, false, fmt.Errorf("invalid package url %q: %w", ref, err)
		}
		return Key(dtos.NodeTypePackage, versionlessPURL(purl)), true, nil
	}

	if prefix, id, ok := strings.Cut(ref, ":"); ok {
		nodeType := dtos.NodeType(strings.ToLower(prefix))
		if nodeType.IsValid() {
			id = strings.TrimSpace(id)
			if id == "" {
				return NodeKey{}, false, fmt.Errorf("empty id in node reference %q", ref)
			}
			if nodeType == dtos.NodeTypePackage && strings.HasPrefix(id, "pkg:") {
				return ParseNodeRef(id)
			}
			return Key(nodeType, id), true, nil
		}
	}

	return Key(dtos.NodeTypeComponent, ref), false, nil
}

func versionlessPURL(p packageurl.PackageURL) string {
	return packageurl.NewPackageURL(p.Type, p.Namespace, p.Name, "", nil, "").ToString()
}
