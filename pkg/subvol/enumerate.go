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

package subvol

import (
	"context"
	"math"

	"github.com/docker/btrfs-list/pkg/api"
)

// Enumerate pages through all the references of the source and inserts them
// into the index. Each page starts right after the highest root id of the
// previous one.
//
// Any failure aborts the pass: the index is then incomplete and must be
// discarded.
func Enumerate(ctx context.Context, source api.RootRefSource, idx *Index) error {
	var minRootID uint64
	for {
		refs, err := source.SearchRootRefs(ctx, minRootID)
		if err != nil {
			return api.WrapPhaseError(api.ErrEnumeration, err)
		}
		// the source returns an empty page once there is nothing left
		if len(refs) == 0 {
			return nil
		}
		for _, ref := range refs {
			if _, err := idx.Insert(ref.RootID, ref.RefTree, ref.DirID, ref.Name); err != nil {
				return api.WrapPhaseError(api.ErrIndexing, err)
			}
		}

		next, ok := nextLowerBound(refs[len(refs)-1].RootID)
		if !ok {
			return nil
		}
		minRootID = next
	}
}

// nextLowerBound steps one root past last, so the next page does not repeat
// it. It returns false when last is the highest possible id.
func nextLowerBound(last uint64) (uint64, bool) {
	if last == math.MaxUint64 {
		return 0, false
	}
	return last + 1, true
}
