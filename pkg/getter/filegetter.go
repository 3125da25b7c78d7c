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

package getter

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// FileGetter serves locators that point at the local filesystem, either
// bare paths or file:// URLs. It is what makes local mirror repositories
// work without a web server in front of them.
type FileGetter struct {
	opts options
}

// NewFileGetter constructs a local file Getter.
func NewFileGetter(opts ...Option) (Getter, error) {
	var g FileGetter

	for _, opt := range opts {
		opt(&g.opts)
	}

	return &g, nil
}

// Get opens the local file behind the locator.
func (g *FileGetter) Get(href string, _ ...Option) (io.ReadCloser, error) {
	path, ok := LocalPath(href)
	if !ok {
		return nil, errors.Errorf("not a local locator: %s", href)
	}
	return os.Open(path)
}
