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

// Record is a subvolume reference discovered during enumeration. Its local
// path is filled in by Enrich and stays unset if the lookup failed.
type Record struct {
	RootID  uint64 // this root's id
	RefTree uint64 // the id of the root that references this one
	DirID   uint64 // the dir id we're in from RefTree
	Name    string // the name of this root in the directory it lives in

	path     string
	resolved bool
}

// Path returns the path from RefTree's root to this subvolume, including its
// name, and whether it has been resolved yet.
func (r *Record) Path() (string, bool) {
	return r.path, r.resolved
}

func (r *Record) setPath(p string) {
	r.path = p
	r.resolved = true
}

func (r *Record) isTopLevel() bool {
	return r.RefTree == r.RootID
}

func lessRecord(a, b *Record) bool {
	if a.RootID != b.RootID {
		return a.RootID < b.RootID
	}
	return a.RefTree < b.RefTree
}
