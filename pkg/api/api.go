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

package api

import (
	"context"
)

// RootRef is a single subvolume reference as reported by the filesystem: the
// subvolume RootID is linked as Name in directory DirID of subvolume RefTree.
type RootRef struct {
	RootID  uint64
	RefTree uint64
	DirID   uint64
	Name    string
}

// RootRefSource enumerates subvolume references one page at a time.
type RootRefSource interface {
	// SearchRootRefs returns the references whose root id is greater or equal
	// to minRootID, in ascending key order. An empty page means there is no
	// more data.
	SearchRootRefs(ctx context.Context, minRootID uint64) ([]RootRef, error)
}

// DirPathResolver resolves the path of a directory inside a subvolume.
type DirPathResolver interface {
	// LookupDirPath returns the path of dirID as seen from the root of
	// subvolume refTree. The path carries a trailing separator, and is empty
	// when dirID is the root directory of refTree.
	LookupDirPath(ctx context.Context, refTree, dirID uint64) (string, error)
}

// Subvolume describes a btrfs subvolume and where it lives in the namespace
type Subvolume struct {
	ID         uint64 // subvolume id
	ParentID   uint64 // aka ref_tree
	TopLevelID uint64 // subvolume the path is relative to
	DirID      uint64
	Name       string
	Path       string // full path from the top level subvolume
}

// ListOptions group options of the List API
type ListOptions struct {
	// Path is any path on the filesystem to list
	Path string
	// Parallelism limits concurrent path lookups, values below 2 run them sequentially
	Parallelism int
}

// Service inspects the subvolumes of a mounted filesystem
type Service interface {
	// List returns the subvolumes in descending (id, parent id) order
	List(ctx context.Context, options ListOptions) ([]Subvolume, error)
	// ID returns the id of the subvolume containing path
	ID(ctx context.Context, path string) (uint64, error)
}
