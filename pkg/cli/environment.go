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

/*Package cli describes the operating environment for the apk CLI.

The environment encapsulates the service dependencies the commands have,
so that alternate implementations (mocks, etc.) can be easily generated.
*/
package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/arashsc/apk-tools/pkg/apkpath"
)

// EnvSettings describes all of the environment settings.
type EnvSettings struct {
	// Debug indicates whether or not the CLI is running in Debug mode.
	Debug bool
	// Simulate disables all transfer side effects; resolution still runs.
	Simulate bool
	// RepositoryConfig is the path to the repositories file.
	RepositoryConfig string
	// RepositoryCache is the path to the repository cache directory.
	RepositoryCache string
}

func New() *EnvSettings {
	env := &EnvSettings{
		RepositoryConfig: envOr("APK_REPOSITORY_CONFIG", apkpath.ConfigPath("repositories.yaml")),
		RepositoryCache:  envOr("APK_REPOSITORY_CACHE", apkpath.CachePath("repository")),
	}
	env.Debug, _ = strconv.ParseBool(os.Getenv("APK_DEBUG"))
	return env
}

// AddFlags binds flags to the given flagset.
func (s *EnvSettings) AddFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&s.Debug, "debug", s.Debug, "enable verbose output")
	fs.BoolVar(&s.Simulate, "simulate", s.Simulate, "simulate the requested operation without making any changes")
	fs.StringVar(&s.RepositoryConfig, "repository-config", s.RepositoryConfig, "path to the file containing repository names and URLs")
	fs.StringVar(&s.RepositoryCache, "repository-cache", s.RepositoryCache, "path to the directory containing cached repository indexes")
}

// EnvVars returns the environment this tool exposes to subprocesses.
func (s *EnvSettings) EnvVars() map[string]string {
	return map[string]string{
		"APK_BIN":               os.Args[0],
		"APK_CACHE_HOME":        apkpath.CachePath(""),
		"APK_CONFIG_HOME":       apkpath.ConfigPath(""),
		"APK_DEBUG":             fmt.Sprint(s.Debug),
		"APK_REPOSITORY_CACHE":  s.RepositoryCache,
		"APK_REPOSITORY_CONFIG": s.RepositoryConfig,
	}
}

func envOr(name, def string) string {
	if v, ok := os.LookupEnv(name); ok {
		return v
	}
	return def
}
