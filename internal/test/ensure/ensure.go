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

// Package ensure provides scratch environments for unit tests.
package ensure

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arashsc/apk-tools/pkg/apkpath"
	"github.com/arashsc/apk-tools/pkg/apkpath/xdg"
)

// Env points the apk configuration and cache homes at scratch
// directories for the duration of the test.
func Env(t *testing.T) {
	t.Helper()
	t.Setenv(xdg.ConfigHomeEnvVar, t.TempDir())
	t.Setenv(xdg.CacheHomeEnvVar, t.TempDir())
	t.Setenv(apkpath.ConfigHomeEnvVar, "")
	t.Setenv(apkpath.CacheHomeEnvVar, "")
}

// WriteFile creates a file with the given content in dir and returns its
// path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}
