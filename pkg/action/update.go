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
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/arashsc/apk-tools/pkg/getter"
	"github.com/arashsc/apk-tools/pkg/repo"
)

// Update is the action for refreshing every configured repository's
// cached package index.
//
// It provides the implementation of 'apk update'.
type Update struct {
	RepoFile  string
	RepoCache string
}

// Run downloads each configured repository's index into the cache. The
// first repository that cannot be reached aborts the update, matching the
// fetch semantics of first-failure-stops-the-batch.
func (u *Update) Run(out io.Writer) error {
	f, err := repo.LoadFile(u.RepoFile)
	if err != nil {
		return err
	}
	if len(f.Repositories) == 0 {
		return errors.New("no repositories found. You must add one before updating")
	}

	for _, entry := range f.Repositories {
		r, err := repo.NewRepository(entry, getter.All())
		if err != nil {
			return err
		}
		if _, err := r.DownloadIndexFile(u.RepoCache); err != nil {
			return errors.Wrapf(err, "unable to get an update from the %q repository (%s)", entry.Name, entry.URL)
		}
		fmt.Fprintf(out, "Successfully got an update from the %q repository\n", entry.Name)
	}

	fmt.Fprintln(out, "Update Complete.")
	return nil
}
