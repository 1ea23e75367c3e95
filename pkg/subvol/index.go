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

// Package subvol indexes the subvolume references of a filesystem and
// resolves each one to a path from the top level subvolume.
package subvol

import (
	"github.com/google/btree"
	"github.com/pkg/errors"

	"github.com/docker/btrfs-list/pkg/api"
)

const indexDegree = 32

// Index holds one Record per (root id, ref tree) pair, ordered by root id
// first and ref tree second.
//
// Records are inserted by a single goroutine while enumerating. Once built,
// the index is only read, and records only get their path set.
type Index struct {
	tree *btree.BTreeG[*Record]
}

// NewIndex returns an empty index
func NewIndex() *Index {
	return &Index{tree: btree.NewG(indexDegree, lessRecord)}
}

// Insert adds a reference to the index. Inserting a key twice means the
// enumeration revisited an entry and fails with api.ErrAlreadyExists.
func (idx *Index) Insert(rootID, refTree, dirID uint64, name string) (*Record, error) {
	rec := &Record{
		RootID:  rootID,
		RefTree: refTree,
		DirID:   dirID,
		Name:    name,
	}
	if idx.tree.Has(rec) {
		return nil, errors.Wrapf(api.ErrAlreadyExists, "failed to insert tree %d referenced from %d", rootID, refTree)
	}
	idx.tree.ReplaceOrInsert(rec)
	return rec, nil
}

// FindFirst returns the record of rootID with the smallest ref tree.
func (idx *Index) FindFirst(rootID uint64) (*Record, bool) {
	var found *Record
	idx.tree.AscendGreaterOrEqual(&Record{RootID: rootID}, func(rec *Record) bool {
		if rec.RootID == rootID {
			found = rec
		}
		return false
	})
	return found, found != nil
}

// Ascend calls fn for each record in key order until fn returns false
func (idx *Index) Ascend(fn func(rec *Record) bool) {
	idx.tree.Ascend(fn)
}

// Descend calls fn for each record in reverse key order until fn returns false
func (idx *Index) Descend(fn func(rec *Record) bool) {
	idx.tree.Descend(fn)
}

// Len returns the number of indexed records
func (idx *Index) Len() int {
	return idx.tree.Len()
}

// Records returns all records in key order
func (idx *Index) Records() []*Record {
	records := make([]*Record, 0, idx.Len())
	idx.Ascend(func(rec *Record) bool {
		records = append(records, rec)
		return true
	})
	return records
}
