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
)

const repoDesc = `
This command consists of multiple subcommands to interact with package repositories.

It can be used to add, remove and list the repositories packages are
fetched from. The order in which repositories are configured matters:
when several repositories carry the same artifact, the one listed first
wins.
`

func newRepoCmd(out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repo add|remove|list [ARGS]",
		Short: "add, list, or remove package repositories",
		Long:  repoDesc,
		Args:  require.NoArgs,
	}

	cmd.AddCommand(
		newRepoAddCmd(out),
		newRepoListCmd(out),
		newRepoRemoveCmd(out),
	)

	return cmd
}
