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

// Package fetch downloads package artifacts from their repositories into
// a local destination. It coordinates resolution, skip detection, an
// opportunistic hard-link fast path, and streaming transfer with size
// verification, while keeping re-runs idempotent.
package fetch

import (
	"fmt"
	"io"
	"log/slog"

	securejoin "github.com/cyphar/filepath-securejoin"
	"github.com/pkg/errors"

	"github.com/arashsc/apk-tools/pkg/getter"
	"github.com/arashsc/apk-tools/pkg/pkginfo"
	"github.com/arashsc/apk-tools/pkg/repo"
	"github.com/arashsc/apk-tools/pkg/resolver"
)

// Fetcher downloads the artifacts for a set of requested package names.
//
// Processing is strictly sequential: each artifact fully completes or
// fails before the next one is considered, and the first failure aborts
// the whole run. Artifacts already fetched stay on disk; a re-run skips
// them by size.
type Fetcher struct {
	// Out is the location to write progress notices.
	Out io.Writer
	// Getters provide the transport for source locators.
	Getters getter.Providers
	// Resolver turns requested names into artifact plans.
	Resolver *resolver.Resolver
	// Repos is the repository table; a package's repository index points
	// into this slice.
	Repos []*repo.Entry
	// DestDir is where artifacts are written. Empty means ".".
	DestDir string
	// Stdout, when non-nil, dumps artifact bytes to this writer instead
	// of creating files. Skip detection is disabled in this mode.
	Stdout io.Writer
	// Link enables the hard-link fast path for local sources.
	Link bool
	// Recursive fetches the full dependency closure of each name.
	Recursive bool
	// Simulate performs resolution and reports what would happen, but
	// executes no transfer side effects.
	Simulate bool

	// getterCache holds one resolved getter per scheme for the run.
	getterCache map[string]getter.Getter
}

// Run fetches every requested name in the order given. The first
// resolution or transfer failure terminates the run; names after the
// failing one are not processed.
func (f *Fetcher) Run(names []string) error {
	var skipped, fetched int

	for _, name := range names {
		plan, err := f.Resolver.PlanFor(name, f.Recursive)
		if err != nil {
			return err
		}

		for _, p := range plan {
			outcome, err := f.fetchPackage(p)
			if err != nil {
				return err
			}
			if outcome == OutcomeSkipped {
				skipped++
			} else {
				fetched++
			}
		}
	}

	slog.Debug("fetch complete", "fetched", fetched, "skipped", skipped)
	return nil
}

// fetchPackage runs one artifact through skip detection, repository
// selection and transfer.
func (f *Fetcher) fetchPackage(p *pkginfo.Package) (Outcome, error) {
	var dest string
	if f.Stdout == nil {
		// Names and versions come from downloaded indexes; the artifact
		// must land inside the output directory whatever they contain.
		var err error
		dest, err = securejoin.SecureJoin(f.destDir(), p.Filename())
		if err != nil {
			return OutcomeFailed, errors.Wrapf(ErrDestinationWrite, "%s: %v", p.Filename(), err)
		}
		if shouldSkip(dest, p.Size) {
			slog.Debug("destination up to date", "package", p.String())
			return OutcomeSkipped, nil
		}
	}

	fmt.Fprintf(f.out(), "Downloading %s\n", p)

	i := p.FirstRepo()
	if i < 0 || i >= len(f.Repos) {
		return OutcomeFailed, errors.Wrapf(ErrRepositoryNotFound, "%s", p)
	}
	entry := f.Repos[i]

	if f.Simulate {
		return OutcomeSkipped, nil
	}

	source := entry.URL + "/" + p.Filename()
	slog.Debug("transferring", "source", source, "dest", dest, "size", p.Size)

	return f.transfer(source, dest, p.Size, entry)
}

func (f *Fetcher) destDir() string {
	if f.DestDir == "" {
		return "."
	}
	return f.DestDir
}

func (f *Fetcher) out() io.Writer {
	if f.Out == nil {
		return io.Discard
	}
	return f.Out
}
