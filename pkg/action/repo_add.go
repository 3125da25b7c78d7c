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
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"

	"github.com/arashsc/apk-tools/pkg/getter"
	"github.com/arashsc/apk-tools/pkg/pkginfo"
	"github.com/arashsc/apk-tools/pkg/repo"
)

// RepoAddOptions configures 'apk repo add'.
type RepoAddOptions struct {
	Name        string
	URL         string
	Username    string
	Password    string
	ForceUpdate bool

	RepoFile  string
	RepoCache string
}

// Run adds the repository to the repositories file and primes its index
// cache. Adding an identical entry twice is a no-op.
func (o *RepoAddOptions) Run(out io.Writer) error {
	// Ensure the file directory exists as it is required for file locking.
	err := os.MkdirAll(filepath.Dir(o.RepoFile), os.ModePerm)
	if err != nil && !os.IsExist(err) {
		return err
	}

	// Acquire a file lock for process synchronization.
	repoFileExt := filepath.Ext(o.RepoFile)
	var lockPath string
	if len(repoFileExt) > 0 && len(repoFileExt) < len(o.RepoFile) {
		lockPath = strings.TrimSuffix(o.RepoFile, repoFileExt) + ".lock"
	} else {
		lockPath = o.RepoFile + ".lock"
	}
	fileLock := flock.New(lockPath)
	lockCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	locked, err := fileLock.TryLockContext(lockCtx, time.Second)
	if err == nil && locked {
		defer fileLock.Unlock()
	}
	if err != nil {
		return err
	}

	b, err := os.ReadFile(o.RepoFile)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	var f repo.File
	if err := yaml.Unmarshal(b, &f); err != nil {
		return err
	}

	if strings.Contains(o.Name, "/") {
		return errors.Errorf("repository name (%s) contains '/', please specify a different name without '/'", o.Name)
	}

	c := repo.Entry{
		Name:     o.Name,
		URL:      o.URL,
		Username: o.Username,
		Password: o.Password,
	}

	// If the repo exists do one of two things:
	// 1. If the configuration for the name is the same continue without error.
	// 2. When the config is different require --force-update.
	if !o.ForceUpdate && f.Has(o.Name) {
		if existing := f.Get(o.Name); c != *existing {
			return errors.Errorf("repository name (%s) already exists, please specify a different name", o.Name)
		}

		// The add is idempotent so do nothing.
		fmt.Fprintf(out, "%q already exists with the same configuration, skipping\n", o.Name)
		return nil
	}

	if !f.Has(o.Name) && len(f.Repositories) >= pkginfo.MaxRepos {
		return errors.Errorf("too many repositories configured (max %d)", pkginfo.MaxRepos)
	}

	r, err := repo.NewRepository(&c, getter.All())
	if err != nil {
		return err
	}
	if _, err := r.DownloadIndexFile(o.RepoCache); err != nil {
		return errors.Wrapf(err, "looks like %q is not a valid package repository or cannot be reached", o.URL)
	}

	f.Update(&c)

	if err := f.WriteFile(o.RepoFile, 0644); err != nil {
		return err
	}
	fmt.Fprintf(out, "%q has been added to your repositories\n", o.Name)
	return nil
}
