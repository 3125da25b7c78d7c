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

package repo

import (
	"os"

	"github.com/pkg/errors"

	"github.com/arashsc/apk-tools/pkg/pkginfo"
)

// Name is the set of all known concrete packages sharing one name.
type Name struct {
	name string
	pkgs []*pkginfo.Package
}

// Packages returns the known packages for this name, in index-load order.
func (n *Name) Packages() []*pkginfo.Package {
	return n.pkgs
}

// Database is the read-only, in-memory view of every configured
// repository and its cached index. The position of an entry in Repos is
// the repository index packages refer to in their Repos bitmask.
type Database struct {
	Repos []*Entry
	names map[string]*Name
}

// OpenDatabase loads the repository table from repoConfig and every
// cached repository index under cachePath.
//
// A repository whose index has not been cached yet fails the open; the
// caller is expected to suggest `apk update`.
func OpenDatabase(repoConfig, cachePath string) (*Database, error) {
	f, err := LoadFile(repoConfig)
	if err != nil {
		return nil, err
	}
	if len(f.Repositories) > pkginfo.MaxRepos {
		return nil, errors.Errorf("too many repositories configured (max %d)", pkginfo.MaxRepos)
	}

	db := &Database{
		Repos: f.Repositories,
		names: map[string]*Name{},
	}

	for i, entry := range f.Repositories {
		idx, err := LoadIndexFile(CacheIndexFile(cachePath, entry.Name))
		if err != nil {
			if os.IsNotExist(errors.Cause(err)) {
				return nil, errors.Errorf("no cached index for repository %q (try 'apk update')", entry.Name)
			}
			return nil, err
		}
		db.merge(i, idx)
	}

	return db, nil
}

// merge folds one repository's index into the package table. A version
// already known from a lower-indexed repository only gains a repository
// bit; the lower index keeps winning on source selection.
func (db *Database) merge(repoIndex int, idx *IndexFile) {
	for name, entries := range idx.Packages {
		n := db.names[name]
		if n == nil {
			n = &Name{name: name}
			db.names[name] = n
		}
	entries:
		for _, e := range entries {
			for _, p := range n.pkgs {
				if p.Version == e.Version {
					p.Repos |= 1 << uint(repoIndex)
					continue entries
				}
			}
			n.pkgs = append(n.pkgs, &pkginfo.Package{
				Name:         name,
				Version:      e.Version,
				Size:         e.Size,
				Repos:        1 << uint(repoIndex),
				Dependencies: e.Dependencies,
			})
		}
	}
}

// Lookup returns the name handle for a package name.
func (db *Database) Lookup(name string) (*Name, bool) {
	n, ok := db.names[name]
	return n, ok
}

// RepositoryURL returns the base locator of the repository at the given
// index, or "" when the index is out of range.
func (db *Database) RepositoryURL(i int) string {
	if i < 0 || i >= len(db.Repos) {
		return ""
	}
	return db.Repos[i].URL
}
