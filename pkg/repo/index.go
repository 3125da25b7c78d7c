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
	"bytes"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"

	"github.com/arashsc/apk-tools/internal/fileutil"
	"github.com/arashsc/apk-tools/pkg/getter"
)

// IndexName is the file name under which a repository publishes its
// package index.
const IndexName = "index.yaml"

// PackageEntry describes one package version published by a repository.
type PackageEntry struct {
	Version      string   `json:"version"`
	Size         int64    `json:"size"`
	Dependencies []string `json:"dependencies,omitempty"`
}

// IndexFile is the package index of a single repository.
type IndexFile struct {
	APIVersion string    `json:"apiVersion"`
	Generated  time.Time `json:"generated"`
	// Packages maps a package name to its published versions.
	Packages map[string][]*PackageEntry `json:"packages"`
}

// NewIndexFile generates an empty index file.
func NewIndexFile() *IndexFile {
	return &IndexFile{
		APIVersion: APIVersionV1,
		Generated:  time.Now(),
		Packages:   map[string][]*PackageEntry{},
	}
}

// Add inserts an entry for the named package.
func (i *IndexFile) Add(name string, e *PackageEntry) {
	i.Packages[name] = append(i.Packages[name], e)
}

// Has returns true if the index holds at least one version of the name.
func (i *IndexFile) Has(name string) bool {
	return len(i.Packages[name]) > 0
}

// LoadIndexFile takes a file at the given path and returns an IndexFile
// object.
func LoadIndexFile(path string) (*IndexFile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	i := &IndexFile{}
	if err := yaml.Unmarshal(b, i); err != nil {
		return nil, err
	}
	if i.Packages == nil {
		i.Packages = map[string][]*PackageEntry{}
	}
	return i, nil
}

// WriteFile writes an index file to the given path, atomically.
func (i *IndexFile) WriteFile(path string, perm os.FileMode) error {
	data, err := yaml.Marshal(i)
	if err != nil {
		return err
	}
	return fileutil.AtomicWriteFile(path, bytes.NewReader(data), perm)
}

// Repository represents a package repository we can talk to.
type Repository struct {
	Config  *Entry
	getters getter.Providers
}

// NewRepository wires a configured repository entry to the transport
// providers.
func NewRepository(cfg *Entry, providers getter.Providers) (*Repository, error) {
	if cfg.URL == "" {
		return nil, errors.Errorf("no URL found for repository %s", cfg.Name)
	}
	return &Repository{Config: cfg, getters: providers}, nil
}

// IndexURL returns the locator of the repository's published index.
func (r *Repository) IndexURL() string {
	return r.Config.URL + "/" + IndexName
}

// DownloadIndexFile fetches the index from the repository and caches it
// under cachePath. It returns the path of the cached file.
func (r *Repository) DownloadIndexFile(cachePath string) (string, error) {
	href := r.IndexURL()
	g, err := r.getters.ForHref(href)
	if err != nil {
		return "", err
	}

	stream, err := g.Get(href,
		getter.WithBasicAuth(r.Config.Username, r.Config.Password),
	)
	if err != nil {
		return "", errors.Wrapf(err, "failed to fetch %s", href)
	}
	defer stream.Close()

	if err := os.MkdirAll(cachePath, 0755); err != nil {
		return "", err
	}

	dest := CacheIndexFile(cachePath, r.Config.Name)
	if err := fileutil.AtomicWriteFile(dest, stream, 0644); err != nil {
		return "", err
	}
	return dest, nil
}

// CacheIndexFile returns the path of the cached index for the named
// repository.
func CacheIndexFile(cachePath, name string) string {
	return filepath.Join(cachePath, name+"-index.yaml")
}
