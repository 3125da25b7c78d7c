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
	"fmt"
	"io"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/arashsc/apk-tools/cmd/apk/require"
	"github.com/arashsc/apk-tools/pkg/repo"
)

func newRepoListCmd(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list package repositories",
		Args:  require.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			f, err := repo.LoadFile(settings.RepositoryConfig)
			if err != nil {
				return err
			}

			table := uitable.New()
			table.AddRow("NAME", "URL")
			for _, re := range f.Repositories {
				table.AddRow(re.Name, re.URL)
			}
			fmt.Fprintln(out, table)
			return nil
		},
	}
}
