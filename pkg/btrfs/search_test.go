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
	"encoding/binary"
	"testing"
	"unsafe"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/docker/btrfs-list/pkg/api"
)

type item struct {
	objectID uint64
	offset   uint64
	typ      uint32
	data     []byte
}

func rootRef(dirID uint64, name string) []byte {
	b := make([]byte, rootRefSize+len(name))
	binary.LittleEndian.PutUint64(b[0:], dirID)
	binary.LittleEndian.PutUint64(b[8:], 42)
	binary.LittleEndian.PutUint16(b[16:], uint16(len(name)))
	copy(b[rootRefSize:], name)
	return b
}

func searchBuffer(items ...item) []byte {
	var buf []byte
	for _, it := range items {
		sh := make([]byte, searchHeaderSize)
		binary.NativeEndian.PutUint64(sh[0:], 7)
		binary.NativeEndian.PutUint64(sh[8:], it.objectID)
		binary.NativeEndian.PutUint64(sh[16:], it.offset)
		binary.NativeEndian.PutUint32(sh[24:], it.typ)
		binary.NativeEndian.PutUint32(sh[28:], uint32(len(it.data)))
		buf = append(buf, sh...)
		buf = append(buf, it.data...)
	}
	return buf
}

func TestIoctlArgsLayout(t *testing.T) {
	assert.Equal(t, unsafe.Sizeof(searchKey{}), uintptr(searchKeySize))
	assert.Equal(t, unsafe.Sizeof(searchArgs{}), uintptr(4096))
	assert.Equal(t, unsafe.Sizeof(inoLookupArgs{}), uintptr(4096))
}

func TestRootRefsQuery(t *testing.T) {
	args := rootRefsQuery(300)
	assert.Equal(t, args.Key.TreeID, uint64(rootTreeObjectID))
	assert.Equal(t, args.Key.MinObjectID, uint64(300))
	assert.Equal(t, args.Key.MinOffset, uint64(0))
	assert.Equal(t, args.Key.MaxObjectID, ^uint64(0))
	assert.Equal(t, args.Key.MinType, uint32(rootBackrefKey))
	assert.Equal(t, args.Key.MaxType, uint32(rootBackrefKey))
	assert.Equal(t, args.Key.NrItems, uint32(searchNrItems))
}

func TestDecodeRootRefs(t *testing.T) {
	buf := searchBuffer(
		item{objectID: 256, offset: 5, typ: rootBackrefKey, data: rootRef(256, "vol")},
		item{objectID: 256, offset: 5, typ: 132, data: make([]byte, 10)},
		item{objectID: 257, offset: 256, typ: rootBackrefKey, data: rootRef(258, "snap")},
	)
	var args searchArgs
	copy(args.Buf[:], buf)

	refs, err := decodeRootRefs(args.Buf[:], 3)
	assert.NilError(t, err)
	assert.DeepEqual(t, refs, []api.RootRef{
		{RootID: 256, RefTree: 5, DirID: 256, Name: "vol"},
		{RootID: 257, RefTree: 256, DirID: 258, Name: "snap"},
	})
}

func TestDecodeRootRefsEmpty(t *testing.T) {
	refs, err := decodeRootRefs(make([]byte, searchBufSize), 0)
	assert.NilError(t, err)
	assert.Check(t, is.Len(refs, 0))
}

func TestDecodeRootRefsCorrupt(t *testing.T) {
	testCases := []struct {
		name string
		buf  []byte
		n    uint32
	}{
		{
			name: "truncated header",
			buf:  searchBuffer(item{objectID: 256, offset: 5, typ: rootBackrefKey, data: rootRef(256, "vol")})[:20],
			n:    1,
		},
		{
			name: "item overflows buffer",
			buf:  searchBuffer(item{objectID: 256, offset: 5, typ: rootBackrefKey, data: rootRef(256, "vol")})[:searchHeaderSize+4],
			n:    1,
		},
		{
			name: "more items than written",
			buf:  searchBuffer(item{objectID: 256, offset: 5, typ: rootBackrefKey, data: rootRef(256, "vol")}),
			n:    2,
		},
		{
			name: "root ref too short",
			buf:  searchBuffer(item{objectID: 256, offset: 5, typ: rootBackrefKey, data: make([]byte, 10)}),
			n:    1,
		},
		{
			name: "name overflows root ref",
			buf:  searchBuffer(item{objectID: 256, offset: 5, typ: rootBackrefKey, data: rootRef(256, "vol")[:rootRefSize+1]}),
			n:    1,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := decodeRootRefs(tc.buf, tc.n)
			assert.Check(t, api.IsErrParsingFailed(err))
		})
	}
}

func TestCString(t *testing.T) {
	var name [inoLookupPathMax]byte
	assert.Equal(t, cString(name[:]), "")

	copy(name[:], "snapshots/daily/")
	assert.Equal(t, cString(name[:]), "snapshots/daily/")

	assert.Equal(t, cString([]byte("no terminator")), "no terminator")
}
