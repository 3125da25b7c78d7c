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

// Package action holds the business logic behind each apk command. The
// cobra layer in cmd/apk stays a thin wrapper around these types.
package action

import (
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/arashsc/apk-tools/pkg/cli"
	"github.com/arashsc/apk-tools/pkg/fetch"
	"github.com/arashsc/apk-tools/pkg/getter"
	"github.com/arashsc/apk-tools/pkg/repo"
	"github.com/arashsc/apk-tools/pkg/resolver"
)

// Fetch is the action for downloading packages to a local directory.
//
// It provides the implementation of 'apk fetch'.
type Fetch struct {
	Recursive bool
	Stdout    bool
	Link      bool
	DestDir   string

	Settings *cli.EnvSettings

	// Out receives progress notices.
	Out io.Writer
	// StdoutSink receives artifact bytes in stdout mode. Typically
	// os.Stdout; injectable for tests.
	StdoutSink io.Writer
}

// NewFetch creates a new Fetch object with the given configuration.
func NewFetch() *Fetch {
	return &Fetch{}
}

// AddFlags binds the fetch flags to the given flagset.
func (a *Fetch) AddFlags(f *pflag.FlagSet) {
	f.BoolVarP(&a.Recursive, "recursive", "R", false, "fetch the PACKAGE and all its dependencies")
	f.BoolVarP(&a.Stdout, "stdout", "s", false, "dump the .apk to stdout (incompatible with -o and -R)")
	f.BoolVarP(&a.Link, "link", "L", false, "create hard links if possible")
	f.StringVarP(&a.DestDir, "output", "o", "", "directory to place the PACKAGEs to")
}

// Run executes 'apk fetch' for the requested names, in order.
func (a *Fetch) Run(names []string) error {
	if a.Stdout && (a.Recursive || a.DestDir != "") {
		return errors.New("--stdout is incompatible with --recursive and --output")
	}

	db, err := repo.OpenDatabase(a.Settings.RepositoryConfig, a.Settings.RepositoryCache)
	if err != nil {
		return err
	}

	f := &fetch.Fetcher{
		Out:       a.Out,
		Getters:   getter.All(),
		Resolver:  resolver.New(databaseIndex{db}),
		Repos:     db.Repos,
		DestDir:   a.DestDir,
		Link:      a.Link,
		Recursive: a.Recursive,
		Simulate:  a.Settings.Simulate,
	}
	if a.Stdout {
		f.Stdout = a.StdoutSink
	}

	return f.Run(names)
}

// databaseIndex adapts repo.Database to the resolver's Index interface.
type databaseIndex struct {
	db *repo.Database
}

func (i databaseIndex) Lookup(name string) (resolver.Name, bool) {
	n, ok := i.db.Lookup(name)
	if !ok {
		return nil, false
	}
	return n, true
}
