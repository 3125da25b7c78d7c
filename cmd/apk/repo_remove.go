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

func newRepoRemoveCmd(out io.Writer) *cobra.Command {
	o := &action.RepoRemoveOptions{}

	return &cobra.Command{
		Use:     "remove NAME...",
		Aliases: []string{"rm"},
		Short:   "remove one or more package repositories",
		Args:    require.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			o.Names = args
			o.RepoFile = settings.RepositoryConfig
			o.RepoCache = settings.RepositoryCache

			return o.Run(out)
		},
	}
}
