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
	"os"

	"github.com/spf13/cobra"

	"github.com/arashsc/apk-tools/cmd/apk/require"
	"github.com/arashsc/apk-tools/pkg/action"
)

const fetchDesc = `
Download packages from the configured repositories to a local directory,
from which a local mirror repository can be created.

By default the single highest version of each PACKAGE is fetched. With
--recursive the full dependency closure is fetched instead. Artifacts
already present in the output directory with the expected size are not
downloaded again, so re-running after a failure only transfers what is
missing.

With --stdout the artifact bytes are dumped to standard output and no
files are created.
`

func newFetchCmd(out io.Writer) *cobra.Command {
	client := action.NewFetch()

	cmd := &cobra.Command{
		Use:   "fetch PACKAGE...",
		Short: "download packages from repositories to a local directory",
		Long:  fetchDesc,
		Args:  require.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			client.Settings = settings
			client.Out = out
			client.StdoutSink = os.Stdout
			if client.Stdout {
				// Keep notices off the artifact stream.
				client.Out = os.Stderr
			}
			return client.Run(args)
		},
	}

	client.AddFlags(cmd.Flags())

	return cmd
}
