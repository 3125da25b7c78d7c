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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestDatabase lays down a repositories.yaml plus cached indexes and
// returns the two paths OpenDatabase wants.
func writeTestDatabase(t *testing.T, indexes map[string]*IndexFile, order []string) (string, string) {
	t.Helper()
	cfgDir := t.TempDir()
	cacheDir := t.TempDir()

	f := NewFile()
	for _, name := range order {
		f.Add(&Entry{Name: name, URL: "https://mirror.example.com/" + name})
		require.NoError(t, indexes[name].WriteFile(CacheIndexFile(cacheDir, name), 0644))
	}
	cfg := filepath.Join(cfgDir, "repositories.yaml")
	require.NoError(t, f.WriteFile(cfg, 0644))
	return cfg, cacheDir
}

func TestOpenDatabase(t *testing.T) {
	main := NewIndexFile()
	main.Add("busybox", &PackageEntry{Version: "1.36.1", Size: 100})
	community := NewIndexFile()
	community.Add("tmux", &PackageEntry{Version: "3.4", Size: 200, Dependencies: []string{"busybox"}})

	cfg, cache := writeTestDatabase(t, map[string]*IndexFile{
		"main": main, "community": community,
	}, []string{"main", "community"})

	db, err := OpenDatabase(cfg, cache)
	require.NoError(t, err)
	require.Len(t, db.Repos, 2)

	n, ok := db.Lookup("busybox")
	require.True(t, ok)
	require.Len(t, n.Packages(), 1)
	assert.Equal(t, 0, n.Packages()[0].FirstRepo())

	n, ok = db.Lookup("tmux")
	require.True(t, ok)
	assert.Equal(t, 1, n.Packages()[0].FirstRepo())
	assert.Equal(t, []string{"busybox"}, n.Packages()[0].Dependencies)

	_, ok = db.Lookup("nothere")
	assert.False(t, ok)
}

func TestOpenDatabaseLowestIndexWins(t *testing.T) {
	// The same name+version published by two repositories merges into
	// one package whose source is the lower-indexed repository.
	main := NewIndexFile()
	main.Add("busybox", &PackageEntry{Version: "1.36.1", Size: 100})
	mirror := NewIndexFile()
	mirror.Add("busybox", &PackageEntry{Version: "1.36.1", Size: 100})

	cfg, cache := writeTestDatabase(t, map[string]*IndexFile{
		"main": main, "mirror": mirror,
	}, []string{"main", "mirror"})

	db, err := OpenDatabase(cfg, cache)
	require.NoError(t, err)

	n, ok := db.Lookup("busybox")
	require.True(t, ok)
	require.Len(t, n.Packages(), 1)
	p := n.Packages()[0]
	assert.Equal(t, 0, p.FirstRepo())
	assert.True(t, p.InRepo(1))
}

func TestOpenDatabaseMissingIndex(t *testing.T) {
	cfgDir := t.TempDir()
	f := NewFile()
	f.Add(&Entry{Name: "main", URL: "https://mirror.example.com/main"})
	cfg := filepath.Join(cfgDir, "repositories.yaml")
	require.NoError(t, f.WriteFile(cfg, 0644))

	_, err := OpenDatabase(cfg, t.TempDir())
	assert.ErrorContains(t, err, "try 'apk update'")
}

func TestRepositoryURL(t *testing.T) {
	db := &Database{Repos: []*Entry{{Name: "main", URL: "https://m/main"}}}
	assert.Equal(t, "https://m/main", db.RepositoryURL(0))
	assert.Equal(t, "", db.RepositoryURL(1))
	assert.Equal(t, "", db.RepositoryURL(-1))
}
