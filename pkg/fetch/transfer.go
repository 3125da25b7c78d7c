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

package fetch

import (
	"io"
	"net/url"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/arashsc/apk-tools/pkg/getter"
	"github.com/arashsc/apk-tools/pkg/repo"
)

// Outcome reports how a single artifact was handled.
type Outcome int

const (
	// OutcomeSkipped means the destination already satisfied the request.
	OutcomeSkipped Outcome = iota
	// OutcomeTransferred means bytes were streamed to the destination.
	OutcomeTransferred
	// OutcomeLinked means a hard link replaced the byte copy.
	OutcomeLinked
	// OutcomeFailed means the artifact could not be fetched.
	OutcomeFailed
)

// String implements fmt.Stringer.
func (o Outcome) String() string {
	switch o {
	case OutcomeSkipped:
		return "skipped"
	case OutcomeTransferred:
		return "transferred"
	case OutcomeLinked:
		return "linked"
	case OutcomeFailed:
		return "failed"
	}
	return "unknown"
}

// shouldSkip reports whether an existing destination file already
// satisfies the request. The size equality is the sole idempotence
// signal; no content hash is available at this layer. Any stat failure
// means no skip.
func shouldSkip(dest string, size int64) bool {
	fi, err := os.Lstat(dest)
	return err == nil && fi.Size() == size
}

// transfer moves bytes from the source locator to dest. With dest == ""
// the stream goes to the stdout writer instead and no file is created.
//
// When link is set and the source is a local file, a hard link is
// attempted first; any linking failure silently falls through to the
// streaming copy.
func (f *Fetcher) transfer(source, dest string, size int64, entry *repo.Entry) (Outcome, error) {
	if dest != "" && f.Link {
		if path, ok := getter.LocalPath(source); ok && linkLocal(path, dest) {
			return OutcomeLinked, nil
		}
	}

	var sink io.Writer
	var file *os.File
	if dest == "" {
		sink = f.Stdout
	} else {
		var err error
		file, err = os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return OutcomeFailed, errors.Wrapf(ErrDestinationWrite, "%s: %v", dest, err)
		}
		sink = file
	}

	stream, err := f.open(source, entry)
	if err != nil {
		f.discard(file, dest)
		return OutcomeFailed, errors.Wrapf(ErrSourceUnreachable, "unable to download '%s': %v", source, err)
	}

	written, copyErr := io.Copy(sink, io.LimitReader(stream, size))
	stream.Close()
	if file != nil {
		if err := file.Close(); err != nil && copyErr == nil {
			copyErr = err
		}
	}

	if copyErr != nil {
		f.discard(nil, dest)
		return OutcomeFailed, errors.Wrapf(ErrDestinationWrite, "%s: %v", dest, copyErr)
	}
	if written != size {
		f.discard(nil, dest)
		return OutcomeFailed, errors.Wrapf(ErrSizeMismatch, "'%s': got %d bytes, want %d", source, written, size)
	}

	return OutcomeTransferred, nil
}

// open resolves a getter for the source locator and opens the stream,
// passing the repository's credentials along.
func (f *Fetcher) open(source string, entry *repo.Entry) (io.ReadCloser, error) {
	g, err := f.getterFor(source)
	if err != nil {
		return nil, err
	}
	var opts []getter.Option
	if entry != nil && entry.Username != "" {
		opts = append(opts, getter.WithBasicAuth(entry.Username, entry.Password))
	}
	return g.Get(source, opts...)
}

// getterFor resolves the getter for a locator, one per scheme per run,
// so the HTTP transport and its connection pool are shared across
// artifacts instead of rebuilt on every transfer.
func (f *Fetcher) getterFor(href string) (getter.Getter, error) {
	u, err := url.Parse(href)
	if err != nil {
		return nil, errors.Errorf("invalid locator %q: %s", href, err)
	}
	if g, ok := f.getterCache[u.Scheme]; ok {
		return g, nil
	}
	g, err := f.Getters.ByScheme(u.Scheme)
	if err != nil {
		return nil, err
	}
	if f.getterCache == nil {
		f.getterCache = map[string]getter.Getter{}
	}
	f.getterCache[u.Scheme] = g
	return g, nil
}

// discard removes a destination file created during this run. It is a
// no-op in stdout mode.
func (f *Fetcher) discard(file *os.File, dest string) {
	if file != nil {
		file.Close()
	}
	if dest != "" {
		os.Remove(dest)
	}
}

// linkLocal hard-links dest to the real file behind source, following one
// level of symbolic indirection. It reports whether the link was created.
func linkLocal(source, dest string) bool {
	target := source
	if real, err := os.Readlink(source); err == nil {
		if !filepath.IsAbs(real) {
			real = filepath.Join(filepath.Dir(source), real)
		}
		target = real
	}
	return os.Link(target, dest) == nil
}
