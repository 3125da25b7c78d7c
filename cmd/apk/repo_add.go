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

func newRepoAddCmd(out io.Writer) *cobra.Command {
	o := &action.RepoAddOptions{}

	cmd := &cobra.Command{
		Use:   "add NAME URL",
		Short: "add a package repository",
		Args:  require.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			o.Name = args[0]
			o.URL = args[1]
			o.RepoFile = settings.RepositoryConfig
			o.RepoCache = settings.RepositoryCache

			return o.Run(out)
		},
	}

	f := cmd.Flags()
	f.StringVar(&o.Username, "username", "", "repository username")
	f.StringVar(&o.Password, "password", "", "repository password")
	f.BoolVar(&o.ForceUpdate, "force-update", false, "replace (overwrite) the repo if it already exists")

	return cmd
}
