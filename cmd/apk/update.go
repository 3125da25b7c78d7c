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

package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/arashsc/apk-tools/cmd/apk/require"
	"github.com/arashsc/apk-tools/pkg/action"
)

const updateDesc = `
Update gets the latest package index from each configured repository and
stores it in the local cache. Fetching a package consults these cached
indexes, so run update before fetch when repositories have changed.
`

func newUpdateCmd(out io.Writer) *cobra.Command {
	u := &action.Update{}

	return &cobra.Command{
		Use:   "update",
		Short: "update the cached repository indexes",
		Long:  updateDesc,
		Args:  require.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			u.RepoFile = settings.RepositoryConfig
			u.RepoCache = settings.RepositoryCache

			return u.Run(out)
		},
	}
}
