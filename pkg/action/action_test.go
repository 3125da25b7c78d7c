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

package action

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arashsc/apk-tools/pkg/cli"
	"github.com/arashsc/apk-tools/pkg/repo"
)

// writePackageRepo lays out a directory that serves as a package
// repository: an index.yaml plus the artifact files it describes.
func writePackageRepo(t *testing.T, packages map[string]string) string {
	t.Helper()
	dir := t.TempDir()

	idx := repo.NewIndexFile()
	for name, content := range packages {
		// Artifact names follow the name-version.apk convention.
		idx.Add(name, &repo.PackageEntry{Version: "1.0", Size: int64(len(content))})
		path := filepath.Join(dir, name+"-1.0.apk")
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	require.NoError(t, idx.WriteFile(filepath.Join(dir, repo.IndexName), 0644))
	return dir
}

func testSettings(t *testing.T) *cli.EnvSettings {
	t.Helper()
	base := t.TempDir()
	return &cli.EnvSettings{
		RepositoryConfig: filepath.Join(base, "repositories.yaml"),
		RepositoryCache:  filepath.Join(base, "repository"),
	}
}

func TestRepoAdd(t *testing.T) {
	repoDir := writePackageRepo(t, map[string]string{"busybox": "0123456789"})
	settings := testSettings(t)

	o := &RepoAddOptions{
		Name:      "main",
		URL:       repoDir,
		RepoFile:  settings.RepositoryConfig,
		RepoCache: settings.RepositoryCache,
	}

	out := &bytes.Buffer{}
	require.NoError(t, o.Run(out))
	assert.Contains(t, out.String(), `"main" has been added to your repositories`)
	assert.FileExists(t, repo.CacheIndexFile(settings.RepositoryCache, "main"))

	f, err := repo.LoadFile(settings.RepositoryConfig)
	require.NoError(t, err)
	assert.True(t, f.Has("main"))
}

func TestRepoAddIdempotent(t *testing.T) {
	repoDir := writePackageRepo(t, map[string]string{"busybox": "0123456789"})
	settings := testSettings(t)

	o := &RepoAddOptions{
		Name:      "main",
		URL:       repoDir,
		RepoFile:  settings.RepositoryConfig,
		RepoCache: settings.RepositoryCache,
	}
	require.NoError(t, o.Run(&bytes.Buffer{}))

	// Same configuration again: no error, explicit skip notice.
	out := &bytes.Buffer{}
	require.NoError(t, o.Run(out))
	assert.Contains(t, out.String(), "already exists with the same configuration, skipping")

	// Different configuration without --force-update: refused.
	conflicting := &RepoAddOptions{
		Name:      "main",
		URL:       writePackageRepo(t, nil),
		RepoFile:  settings.RepositoryConfig,
		RepoCache: settings.RepositoryCache,
	}
	err := conflicting.Run(&bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	conflicting.ForceUpdate = true
	require.NoError(t, conflicting.Run(&bytes.Buffer{}))
}

func TestRepoAddRejectsSlash(t *testing.T) {
	settings := testSettings(t)
	o := &RepoAddOptions{
		Name:      "bad/name",
		URL:       t.TempDir(),
		RepoFile:  settings.RepositoryConfig,
		RepoCache: settings.RepositoryCache,
	}
	err := o.Run(&bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "contains '/'")
}

func TestRepoAddUnreachable(t *testing.T) {
	settings := testSettings(t)
	o := &RepoAddOptions{
		Name:      "main",
		URL:       filepath.Join(t.TempDir(), "nothere"),
		RepoFile:  settings.RepositoryConfig,
		RepoCache: settings.RepositoryCache,
	}
	err := o.Run(&bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a valid package repository or cannot be reached")
}

func TestRepoRemove(t *testing.T) {
	repoDir := writePackageRepo(t, map[string]string{"busybox": "0123456789"})
	settings := testSettings(t)

	add := &RepoAddOptions{
		Name:      "main",
		URL:       repoDir,
		RepoFile:  settings.RepositoryConfig,
		RepoCache: settings.RepositoryCache,
	}
	require.NoError(t, add.Run(&bytes.Buffer{}))
	cached := repo.CacheIndexFile(settings.RepositoryCache, "main")
	require.FileExists(t, cached)

	rm := &RepoRemoveOptions{
		Names:     []string{"main"},
		RepoFile:  settings.RepositoryConfig,
		RepoCache: settings.RepositoryCache,
	}
	out := &bytes.Buffer{}
	require.NoError(t, rm.Run(out))
	assert.Contains(t, out.String(), `"main" has been removed from your repositories`)
	assert.NoFileExists(t, cached)

	f, err := repo.LoadFile(settings.RepositoryConfig)
	require.NoError(t, err)
	assert.False(t, f.Has("main"))
}

func TestUpdate(t *testing.T) {
	repoDir := writePackageRepo(t, map[string]string{"busybox": "0123456789"})
	settings := testSettings(t)

	add := &RepoAddOptions{
		Name:      "main",
		URL:       repoDir,
		RepoFile:  settings.RepositoryConfig,
		RepoCache: settings.RepositoryCache,
	}
	require.NoError(t, add.Run(&bytes.Buffer{}))

	u := &Update{RepoFile: settings.RepositoryConfig, RepoCache: settings.RepositoryCache}
	out := &bytes.Buffer{}
	require.NoError(t, u.Run(out))
	assert.Contains(t, out.String(), `Successfully got an update from the "main" repository`)
	assert.Contains(t, out.String(), "Update Complete.")
}

func TestUpdateNoRepositories(t *testing.T) {
	settings := testSettings(t)
	require.NoError(t, repo.NewFile().WriteFile(settings.RepositoryConfig, 0644))

	u := &Update{RepoFile: settings.RepositoryConfig, RepoCache: settings.RepositoryCache}
	err := u.Run(&bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no repositories found")
}

func TestFetchRun(t *testing.T) {
	repoDir := writePackageRepo(t, map[string]string{"busybox": "0123456789"})
	settings := testSettings(t)

	add := &RepoAddOptions{
		Name:      "main",
		URL:       repoDir,
		RepoFile:  settings.RepositoryConfig,
		RepoCache: settings.RepositoryCache,
	}
	require.NoError(t, add.Run(&bytes.Buffer{}))

	destDir := t.TempDir()
	out := &bytes.Buffer{}
	a := NewFetch()
	a.DestDir = destDir
	a.Settings = settings
	a.Out = out

	require.NoError(t, a.Run([]string{"busybox"}))
	assert.FileExists(t, filepath.Join(destDir, "busybox-1.0.apk"))
	assert.Contains(t, out.String(), "Downloading busybox-1.0")
}

func TestFetchStdoutIncompatibleFlags(t *testing.T) {
	a := NewFetch()
	a.Stdout = true
	a.Recursive = true
	err := a.Run([]string{"busybox"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "incompatible")

	a = NewFetch()
	a.Stdout = true
	a.DestDir = "somewhere"
	err = a.Run([]string{"busybox"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "incompatible")
}
