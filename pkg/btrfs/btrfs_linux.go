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
	"os"
	"unsafe"

	"github.com/containerd/errdefs"
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"

	"github.com/docker/btrfs-list/pkg/api"
)

// FS is an open handle on a btrfs filesystem
type FS struct {
	dir *os.File
}

var (
	_ api.RootRefSource   = (*FS)(nil)
	_ api.DirPathResolver = (*FS)(nil)
)

// Open opens the btrfs filesystem containing path
func Open(path string) (*FS, error) {
	dir, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	return &FS{dir: dir}, nil
}

// Close releases the filesystem handle
func (fs *FS) Close() error {
	return fs.dir.Close()
}

// SearchRootRefs returns one page of root back references of the tree of
// roots, starting at minRootID. An empty page means there is nothing left.
func (fs *FS) SearchRootRefs(ctx context.Context, minRootID uint64) ([]api.RootRef, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	args := rootRefsQuery(minRootID)
	if err := ioctl(fs.dir.Fd(), iocTreeSearch, uintptr(unsafe.Pointer(args))); err != nil {
		return nil, errors.Wrapf(err, "failed to search tree of roots from %d", minRootID)
	}
	return decodeRootRefs(args.Buf[:], args.Key.NrItems)
}

// LookupDirPath returns the path of directory dirID inside the subvolume
// refTree, with a trailing slash, or an empty string when dirID is the root
// directory of refTree.
func (fs *FS) LookupDirPath(ctx context.Context, refTree, dirID uint64) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	args := inoLookupArgs{
		TreeID:   refTree,
		ObjectID: dirID,
	}
	if err := ioctl(fs.dir.Fd(), iocInoLookup, uintptr(unsafe.Pointer(&args))); err != nil {
		if errors.Is(err, unix.ENOENT) {
			return "", errors.Wrapf(errdefs.ErrNotFound, "directory %d of root %d", dirID, refTree)
		}
		return "", errors.Wrapf(err, "failed to lookup directory %d of root %d", dirID, refTree)
	}
	return cString(args.Name[:]), nil
}

// SubvolID returns the id of the subvolume containing path
func SubvolID(path string) (uint64, error) {
	fp, err := os.Open(path)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to open %s", path)
	}
	defer fp.Close()

	return subvolID(fp.Fd())
}

func subvolID(fd uintptr) (uint64, error) {
	args := inoLookupArgs{
		ObjectID: firstFreeObjectID,
	}
	if err := ioctl(fd, iocInoLookup, uintptr(unsafe.Pointer(&args))); err != nil {
		return 0, errors.Wrap(err, "failed to lookup subvolume id")
	}
	return args.TreeID, nil
}
