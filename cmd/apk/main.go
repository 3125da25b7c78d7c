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

package main // import "github.com/arashsc/apk-tools/cmd/apk"

import (
	"log/slog"
	"os"

	"github.com/arashsc/apk-tools/internal/logging"
	"github.com/arashsc/apk-tools/pkg/cli"
)

var settings = cli.New()

func main() {
	// Debug is checked at log time, so the handler can be installed
	// before the persistent flags are parsed.
	slog.SetDefault(logging.NewLogger(func() bool { return settings.Debug }))

	cmd := newRootCmd(os.Stdout, os.Args[1:])
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
