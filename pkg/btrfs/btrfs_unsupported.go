//go:build !linux

/*
   Copyright 2020 Docker Compose CLI authors

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

package btrfs

import (
	"context"

	"github.com/pkg/errors"

	"github.com/docker/btrfs-list/pkg/api"
)

// FS is an open handle on a btrfs filesystem
type FS struct{}

// Open is only implemented on linux
func Open(path string) (*FS, error) {
	return nil, errors.Wrapf(api.ErrNotImplemented, "btrfs is not available to open %s", path)
}

// Close releases the filesystem handle
func (fs *FS) Close() error {
	return nil
}

// SearchRootRefs is only implemented on linux
func (fs *FS) SearchRootRefs(context.Context, uint64) ([]api.RootRef, error) {
	return nil, api.ErrNotImplemented
}

// LookupDirPath is only implemented on linux
func (fs *FS) LookupDirPath(context.Context, uint64, uint64) (string, error) {
	return "", api.ErrNotImplemented
}

// SubvolID is only implemented on linux
func SubvolID(string) (uint64, error) {
	return 0, api.ErrNotImplemented
}
