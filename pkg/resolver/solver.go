/*
Copyright The Apk Tools Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package resolver

import (
	"github.com/pkg/errors"

	"github.com/arashsc/apk-tools/pkg/pkginfo"
)

// closureSolver is the default Solver: a breadth-first walk over the
// dependency closure, picking the highest known version for every name it
// visits. It performs no constraint satisfaction; version selection
// heuristics belong to a real dependency engine plugged in via
// Resolver.Solver.
type closureSolver struct {
	index   Index
	compare CompareFunc
}

// NewClosureSolver returns the default dependency-closure solver over the
// given index.
func NewClosureSolver(index Index) Solver {
	return &closureSolver{index: index, compare: pkginfo.CompareVersions}
}

// InstallPlan walks the dependency closure of name breadth-first. The
// returned plan lists the requested package first, then its dependencies
// in discovery order; each name appears at most once.
func (s *closureSolver) InstallPlan(name string) ([]*pkginfo.Package, error) {
	var plan []*pkginfo.Package
	visited := map[string]bool{name: true}
	queue := []string{name}

	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]

		n, ok := s.index.Lookup(next)
		if !ok || len(n.Packages()) == 0 {
			return nil, errors.Errorf("no package found for %q", next)
		}

		var best *pkginfo.Package
		for _, p := range n.Packages() {
			if best == nil || s.compare(p.Version, best.Version) > 0 {
				best = p
			}
		}
		plan = append(plan, best)

		for _, dep := range best.Dependencies {
			if visited[dep] {
				continue
			}
			visited[dep] = true
			queue = append(queue, dep)
		}
	}

	return plan, nil
}
