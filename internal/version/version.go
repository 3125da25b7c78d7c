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

// Package version holds the build-time version metadata.
package version

import "fmt"

// version is overridable at build time with
// -ldflags "-X github.com/arashsc/apk-tools/internal/version.version=...".
var version = "v0.1.0"

// GetVersion returns the semver string of the version.
func GetVersion() string {
	return version
}

// GetUserAgent returns a user agent for user agent header.
func GetUserAgent() string {
	return fmt.Sprintf("apk-tools/%s", version)
}
