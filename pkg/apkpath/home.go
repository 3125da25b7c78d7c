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

// Package apkpath builds paths to apk-tools' configuration and cache
// directories following the XDG base directory specification.
package apkpath

const lp = lazypath("apk")

// ConfigPath returns the path where apk-tools stores configuration.
func ConfigPath(elem ...string) string {
	return lp.configPath(elem...)
}

// CachePath returns the path where apk-tools stores cached objects.
func CachePath(elem ...string) string {
	return lp.cachePath(elem...)
}
