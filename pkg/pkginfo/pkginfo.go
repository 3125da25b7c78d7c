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

// Package pkginfo holds the package metadata produced by resolution and
// consumed by the fetch machinery.
package pkginfo

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// MaxRepos is the fixed upper bound on configured repositories. It matches
// the width of the Package.Repos bitmask.
const MaxRepos = 32

// Extension is the artifact file extension.
const Extension = ".apk"

// Package describes a single concrete package artifact. Instances are
// produced by the resolver and treated as immutable afterwards.
type Package struct {
	// Name is the package name as requested by the user.
	Name string `json:"name"`
	// Version is the concrete version string.
	Version string `json:"version"`
	// Size is the expected artifact size in bytes.
	Size int64 `json:"size"`
	// Repos is a bitmask of repository indexes that carry this package.
	Repos uint32 `json:"repos"`
	// Dependencies are the names of packages this package depends on.
	Dependencies []string `json:"dependencies,omitempty"`
}

// Filename returns the canonical artifact file name, "<name>-<version>.apk".
// Tooling that scans fetch output relies on this exact form.
func (p *Package) Filename() string {
	return fmt.Sprintf("%s-%s%s", p.Name, p.Version, Extension)
}

// String implements fmt.Stringer as "name-version".
func (p *Package) String() string {
	return fmt.Sprintf("%s-%s", p.Name, p.Version)
}

// FirstRepo returns the lowest repository index set in the Repos mask, or
// -1 when no repository carries the package. When several repositories
// hold the same artifact the lowest-indexed one wins; the order among
// identical versions is otherwise unspecified.
func (p *Package) FirstRepo() int {
	for i := 0; i < MaxRepos; i++ {
		if p.Repos&(1<<uint(i)) != 0 {
			return i
		}
	}
	return -1
}

// InRepo reports whether the repository at index i carries the package.
func (p *Package) InRepo(i int) bool {
	if i < 0 || i >= MaxRepos {
		return false
	}
	return p.Repos&(1<<uint(i)) != 0
}

// CompareVersions is a three-way comparison over version strings. Versions
// that parse as semver are ordered by semver precedence; anything else
// falls back to a lexical comparison so the order stays total.
func CompareVersions(a, b string) int {
	va, erra := semver.NewVersion(a)
	vb, errb := semver.NewVersion(b)
	if erra == nil && errb == nil {
		return va.Compare(vb)
	}
	return strings.Compare(a, b)
}
