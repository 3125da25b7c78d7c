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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvider(t *testing.T) {
	p := Provider{
		Schemes: []string{"one", "three"},
	}

	if !p.Provides("three") {
		t.Error("Expected provider to provide three")
	}
	if p.Provides("two") {
		t.Error("Expected provider not to provide two")
	}
}

func TestProviders(t *testing.T) {
	ps := All()

	for _, scheme := range []string{"http", "https", "file", ""} {
		g, err := ps.ByScheme(scheme)
		require.NoError(t, err, "scheme %q", scheme)
		assert.NotNil(t, g)
	}

	_, err := ps.ByScheme("ftp")
	assert.Error(t, err)
}

func TestForHref(t *testing.T) {
	ps := All()

	g, err := ps.ForHref("https://example.com/x-1.0.apk")
	require.NoError(t, err)
	assert.IsType(t, &HTTPGetter{}, g)

	g, err = ps.ForHref("/srv/mirror/x-1.0.apk")
	require.NoError(t, err)
	assert.IsType(t, &FileGetter{}, g)
}

func TestLocalPath(t *testing.T) {
	tests := []struct {
		href  string
		want  string
		local bool
	}{
		{"/srv/mirror/a-1.0.apk", "/srv/mirror/a-1.0.apk", true},
		{"file:///srv/mirror/a-1.0.apk", "/srv/mirror/a-1.0.apk", true},
		{"relative/path.apk", "relative/path.apk", true},
		{"https://example.com/a-1.0.apk", "", false},
		{"http://example.com/a-1.0.apk", "", false},
	}
	for _, tt := range tests {
		got, local := LocalPath(tt.href)
		assert.Equal(t, tt.local, local, "href %q", tt.href)
		assert.Equal(t, tt.want, got, "href %q", tt.href)
	}
}
