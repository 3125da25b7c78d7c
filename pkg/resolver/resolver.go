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

// Package resolver turns requested package names into ordered lists of
// concrete package artifacts to fetch.
package resolver

import (
	"github.com/pkg/errors"

	"github.com/arashsc/apk-tools/pkg/pkginfo"
)

// ErrNotFound indicates a requested name has no known package.
var ErrNotFound = errors.New("no package found for given name")

// ErrUnsatisfiable indicates the dependency engine could not build a
// valid install plan for a requested name.
var ErrUnsatisfiable = errors.New("unsatisfiable dependency")

// Index is the resolver's view of the in-memory package index.
type Index interface {
	// Lookup returns the name handle for a package name.
	Lookup(name string) (Name, bool)
}

// Name is an opaque handle for all known packages sharing one name.
type Name interface {
	Packages() []*pkginfo.Package
}

// Solver is the external dependency-resolution engine. InstallPlan
// computes the full, ordered set of packages that must be present for the
// named package to be installable. Plan order is the solver's emission
// order and is preserved downstream.
type Solver interface {
	InstallPlan(name string) ([]*pkginfo.Package, error)
}

// CompareFunc is a three-way comparison over version strings.
type CompareFunc func(a, b string) int

// Resolver computes the artifact plan for a requested name. It owns no
// persistent state; all lookups go through the injected collaborators.
type Resolver struct {
	// Index is the package index consulted in non-recursive mode.
	Index Index
	// Solver computes install plans in recursive mode. When nil, a
	// dependency-closure solver over Index is used.
	Solver Solver
	// Compare orders version strings. When nil, pkginfo.CompareVersions
	// is used.
	Compare CompareFunc
}

// New constructs a Resolver over the given index with the default solver
// and version order.
func New(index Index) *Resolver {
	return &Resolver{Index: index}
}

// PlanFor returns the ordered list of packages to fetch for one requested
// name. Non-recursive mode yields the single strictly-greatest version
// known for the name; recursive mode yields the solver's full install
// plan in emission order.
func (r *Resolver) PlanFor(name string, recursive bool) ([]*pkginfo.Package, error) {
	if recursive {
		solver := r.Solver
		if solver == nil {
			solver = &closureSolver{index: r.Index, compare: r.compare()}
		}
		plan, err := solver.InstallPlan(name)
		if err != nil {
			return nil, errors.Wrapf(ErrUnsatisfiable, "unable to install %q: %v", name, err)
		}
		return plan, nil
	}

	best, err := r.highest(name)
	if err != nil {
		return nil, err
	}
	return []*pkginfo.Package{best}, nil
}

// highest selects the strictly greatest version known for a name.
func (r *Resolver) highest(name string) (*pkginfo.Package, error) {
	n, ok := r.Index.Lookup(name)
	if !ok || len(n.Packages()) == 0 {
		return nil, errors.Wrapf(ErrNotFound, "%q", name)
	}

	compare := r.compare()
	var best *pkginfo.Package
	for _, p := range n.Packages() {
		if best == nil || compare(p.Version, best.Version) > 0 {
			best = p
		}
	}
	return best, nil
}

func (r *Resolver) compare() CompareFunc {
	if r.Compare != nil {
		return r.Compare
	}
	return pkginfo.CompareVersions
}
