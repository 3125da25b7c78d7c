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

// Package getter provides the transport layer used to read package
// artifacts and repository indexes. A Getter opens a byte stream over a
// locator; the scheme of the locator selects which Getter handles it.
package getter

import (
	"fmt"
	"io"
	"net/url"
	"slices"
	"strings"
	"time"
)

// options are generic parameters to be provided to the getter during
// instantiation. Getters may or may not ignore these parameters as they
// are passed in.
type options struct {
	userAgent string
	username  string
	password  string
	timeout   time.Duration
}

// Option allows specifying various settings configurable by the user for
// overriding the defaults used when performing Get operations.
type Option func(*options)

// WithBasicAuth sets the request's Authorization header to use the
// provided credentials.
func WithBasicAuth(username, password string) Option {
	return func(opts *options) {
		opts.username = username
		opts.password = password
	}
}

// WithUserAgent sets the request's User-Agent header to use the provided
// agent name.
func WithUserAgent(userAgent string) Option {
	return func(opts *options) {
		opts.userAgent = userAgent
	}
}

// WithTimeout sets the timeout for requests.
func WithTimeout(timeout time.Duration) Option {
	return func(opts *options) {
		opts.timeout = timeout
	}
}

// Getter is an interface to support GET to the specified locator.
type Getter interface {
	// Get opens a readable stream over the locator. The caller owns the
	// returned stream and must close it exactly once.
	Get(href string, options ...Option) (io.ReadCloser, error)
}

// Constructor is the function for every getter which creates a specific
// instance according to the configuration.
type Constructor func(options ...Option) (Getter, error)

// Provider represents any getter and the schemes that it supports.
//
// For example, an HTTP provider may provide one getter that handles both
// 'http' and 'https' schemes.
type Provider struct {
	Schemes []string
	New     Constructor
}

// Provides returns true if the given scheme is supported by this Provider.
func (p Provider) Provides(scheme string) bool {
	return slices.Contains(p.Schemes, scheme)
}

// Providers is a collection of Provider objects.
type Providers []Provider

// ByScheme returns a Getter that handles the given scheme.
//
// If no provider handles this scheme, this will return an error.
func (p Providers) ByScheme(scheme string) (Getter, error) {
	for _, pp := range p {
		if pp.Provides(scheme) {
			return pp.New()
		}
	}
	return nil, fmt.Errorf("scheme %q not supported", scheme)
}

// ForHref returns a Getter that handles the given locator.
func (p Providers) ForHref(href string) (Getter, error) {
	u, err := url.Parse(href)
	if err != nil {
		return nil, fmt.Errorf("invalid locator %q: %s", href, err)
	}
	return p.ByScheme(u.Scheme)
}

// DefaultHTTPTimeout is the request timeout in seconds applied by the
// default HTTP provider. It references curl's default connection timeout.
const DefaultHTTPTimeout = 120

var defaultOptions = []Option{WithTimeout(time.Second * DefaultHTTPTimeout)}

// All returns the built-in providers: HTTP(S) and local files.
func All(extraOpts ...Option) Providers {
	return Providers{
		Provider{
			Schemes: []string{"http", "https"},
			New: func(options ...Option) (Getter, error) {
				options = append(options, defaultOptions...)
				options = append(options, extraOpts...)
				return NewHTTPGetter(options...)
			},
		},
		Provider{
			Schemes: []string{"", "file"},
			New: func(options ...Option) (Getter, error) {
				options = append(options, extraOpts...)
				return NewFileGetter(options...)
			},
		},
	}
}

// LocalPath reports the filesystem path of a locator that refers to a
// local file, and whether it does. Locators without a scheme and file://
// URLs are local; everything else is not.
func LocalPath(href string) (string, bool) {
	if strings.HasPrefix(href, "file://") {
		return strings.TrimPrefix(href, "file://"), true
	}
	u, err := url.Parse(href)
	if err != nil || u.Scheme != "" {
		return "", false
	}
	return href, true
}
