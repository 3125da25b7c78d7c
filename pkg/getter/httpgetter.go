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
	"crypto/tls"
	"io"
	"net/http"
	"sync"

	"github.com/pkg/errors"

	"github.com/arashsc/apk-tools/internal/version"
)

// HTTPGetter is the default HTTP(/S) backend handler.
type HTTPGetter struct {
	opts      options
	transport *http.Transport
	once      sync.Once
}

// NewHTTPGetter constructs a valid http/https client as a Getter.
func NewHTTPGetter(opts ...Option) (Getter, error) {
	var client HTTPGetter

	for _, opt := range opts {
		opt(&client.opts)
	}

	return &client, nil
}

// Get opens a stream over an HTTP(S) URL. A non-200 response is an error.
func (g *HTTPGetter) Get(href string, opts ...Option) (io.ReadCloser, error) {
	// Create a local copy of options to avoid data races when Get is
	// called concurrently.
	o := g.opts
	for _, opt := range opts {
		opt(&o)
	}
	return g.get(href, o)
}

func (g *HTTPGetter) get(href string, opts options) (io.ReadCloser, error) {
	req, err := http.NewRequest(http.MethodGet, href, nil)
	if err != nil {
		return nil, err
	}

	// Set a tool specific user agent so that a repo server and metrics
	// can separate apk calls from other clients.
	req.Header.Set("User-Agent", version.GetUserAgent())
	if opts.userAgent != "" {
		req.Header.Set("User-Agent", opts.userAgent)
	}

	if opts.username != "" && opts.password != "" {
		req.SetBasicAuth(opts.username, opts.password)
	}

	resp, err := g.httpClient(opts).Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, errors.Errorf("failed to fetch %s : %s", href, resp.Status)
	}

	return resp.Body, nil
}

func (g *HTTPGetter) httpClient(opts options) *http.Client {
	// Use a shared transport so connections are reused across calls.
	g.once.Do(func() {
		g.transport = &http.Transport{
			DisableCompression: true,
			Proxy:              http.ProxyFromEnvironment,
			TLSClientConfig:    &tls.Config{},
		}
	})

	return &http.Client{
		Transport: g.transport,
		Timeout:   opts.timeout,
	}
}
