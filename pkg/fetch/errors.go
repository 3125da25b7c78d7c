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

import "github.com/pkg/errors"

var (
	// ErrRepositoryNotFound indicates a resolved package claims no valid
	// source repository.
	ErrRepositoryNotFound = errors.New("not present in any repository")

	// ErrSourceUnreachable indicates the source stream could not be
	// opened.
	ErrSourceUnreachable = errors.New("unable to open source")

	// ErrSizeMismatch indicates the transferred byte count did not equal
	// the expected artifact size.
	ErrSizeMismatch = errors.New("size mismatch")

	// ErrDestinationWrite indicates the local destination file could not
	// be created or written.
	ErrDestinationWrite = errors.New("unable to write destination")
)
