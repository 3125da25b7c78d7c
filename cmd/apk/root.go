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

var globalUsage = `The package fetch tool.

Common actions for apk:

- apk repo add:  configure a package repository
- apk update:    refresh the cached repository indexes
- apk fetch:     download packages to a local directory

Environment variables:

| Name                  | Description                                       |
|-----------------------|---------------------------------------------------|
| $APK_CACHE_HOME       | set an alternative location for storing cached files. |
| $APK_CONFIG_HOME      | set an alternative location for storing configuration. |
| $APK_DEBUG            | indicate whether or not apk is running in Debug mode |
| $APK_REPOSITORY_CACHE | set the path to the repository cache directory |
| $APK_REPOSITORY_CONFIG | set the path to the repositories file |
`

func newRootCmd(out io.Writer, args []string) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "apk",
		Short:        "download and manage packages from repositories",
		Long:         globalUsage,
		SilenceUsage: true,
		Args:         require.NoArgs,
	}
	flags := cmd.PersistentFlags()

	settings.AddFlags(flags)

	// We can safely ignore any errors that flags.Parse encounters since
	// those errors will be caught later during the call to cmd.Execute.
	// This call is required to gather configuration information prior to
	// execution.
	flags.ParseErrorsWhitelist.UnknownFlags = true
	flags.Parse(args)

	cmd.AddCommand(
		newFetchCmd(out),
		newRepoCmd(out),
		newUpdateCmd(out),
		newVersionCmd(out),
	)

	return cmd
}
