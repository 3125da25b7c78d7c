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
	"os"

	"github.com/pkg/errors"

	"github.com/arashsc/apk-tools/pkg/repo"
)

// RepoRemoveOptions configures 'apk repo remove'.
type RepoRemoveOptions struct {
	Names []string

	RepoFile  string
	RepoCache string
}

// Run removes the named repositories from the repositories file and drops
// their cached indexes.
func (o *RepoRemoveOptions) Run(out io.Writer) error {
	f, err := repo.LoadFile(o.RepoFile)
	if err != nil {
		return err
	}

	for _, name := range o.Names {
		if !f.Remove(name) {
			return errors.Errorf("no repo named %q found", name)
		}
		if err := f.WriteFile(o.RepoFile, 0644); err != nil {
			return err
		}

		idx := repo.CacheIndexFile(o.RepoCache, name)
		if err := os.Remove(idx); err != nil && !os.IsNotExist(err) {
			return err
		}

		fmt.Fprintf(out, "%q has been removed from your repositories\n", name)
	}

	return nil
}
