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

package local

import (
	"context"
	"io"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/docker/btrfs-list/pkg/api"
	"github.com/docker/btrfs-list/pkg/btrfs"
	"github.com/docker/btrfs-list/pkg/subvol"
)

type filesystem interface {
	api.RootRefSource
	api.DirPathResolver
	io.Closer
}

// NewService creates a local implementation of the api.Service API, talking
// to btrfs filesystems mounted on this host
func NewService(opts ...subvol.Option) api.Service {
	return &localService{
		open:       openFilesystem,
		subvolID:   btrfs.SubvolID,
		mountPoint: btrfs.FindMountPoint,
		listerOpts: opts,
	}
}

type localService struct {
	open       func(path string) (filesystem, error)
	subvolID   func(path string) (uint64, error)
	mountPoint func(path string) (string, error)
	listerOpts []subvol.Option
}

func openFilesystem(path string) (filesystem, error) {
	fs, err := btrfs.Open(path)
	if err != nil {
		return nil, err
	}
	return fs, nil
}

func (s *localService) List(ctx context.Context, options api.ListOptions) ([]api.Subvolume, error) {
	path, err := filepath.Abs(defaultPath(options.Path))
	if err != nil {
		return nil, err
	}
	if mount, err := s.mountPoint(path); err != nil {
		logrus.Debugf("%v", err)
	} else {
		logrus.Debugf("listing subvolumes of the filesystem mounted at %s", mount)
	}

	fs, err := s.open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = fs.Close()
	}()

	return subvol.NewLister(fs, fs, s.listerOpts...).List(ctx, options)
}

func (s *localService) ID(ctx context.Context, path string) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return s.subvolID(defaultPath(path))
}

func defaultPath(path string) string {
	if path == "" {
		return "."
	}
	return path
}
