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
	"slices"
	"strings"

	"github.com/pkg/errors"

	"github.com/docker/btrfs-list/pkg/api"
)

// Resolve builds the full path of rec by walking up the references through
// the index, and returns it along with the id of the subvolume the path is
// relative to.
//
// The walk stops at a subvolume referencing itself, or at a ref tree that is
// not in the index. The local path of rec and of every record crossed on the
// way up must have been resolved.
func Resolve(idx *Index, rec *Record) (uint64, string, error) {
	local, ok := rec.Path()
	if !ok {
		return 0, "", errors.Wrapf(api.ErrUnresolved, "subvolume %d", rec.RootID)
	}

	// fragments are collected bottom up and joined once at the end
	fragments := []string{local}
	current := rec
	for hops := 0; ; hops++ {
		next := current.RefTree
		// if the ref tree refers to ourselves, we're at the top
		if next == current.RootID {
			return next, joinFragments(fragments), nil
		}

		// if the ref tree wasn't enumerated, we're at the top
		parent, ok := idx.FindFirst(next)
		if !ok || parent.isTopLevel() {
			return next, joinFragments(fragments), nil
		}

		if hops >= idx.Len() {
			return 0, "", errors.Wrapf(api.ErrReferenceCycle, "subvolume %d", rec.RootID)
		}
		local, ok := parent.Path()
		if !ok {
			return 0, "", errors.Wrapf(api.ErrUnresolved, "subvolume %d: parent subvolume %d", rec.RootID, parent.RootID)
		}
		fragments = append(fragments, local)
		current = parent
	}
}

func joinFragments(fragments []string) string {
	slices.Reverse(fragments)
	return strings.Join(fragments, "/")
}
