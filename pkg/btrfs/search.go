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

// Package btrfs talks to a mounted btrfs filesystem through its ioctl
// interface. It provides the subvolume reference source and directory path
// resolver used to list subvolumes.
package btrfs

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/docker/btrfs-list/pkg/api"
)

const (
	iocTreeSearch = 0xd0009411 // _IOWR(0x94, 17, struct btrfs_ioctl_search_args)
	iocInoLookup  = 0xd0009412 // _IOWR(0x94, 18, struct btrfs_ioctl_ino_lookup_args)

	rootTreeObjectID  = 1
	firstFreeObjectID = 256
	rootBackrefKey    = 144
	searchNrItems     = 4096
	searchKeySize     = 104
	searchBufSize     = 4096 - searchKeySize
	searchHeaderSize  = 32
	rootRefSize       = 18
	inoLookupPathMax  = 4080
)

// searchKey mirrors struct btrfs_ioctl_search_key
type searchKey struct {
	TreeID      uint64
	MinObjectID uint64
	MaxObjectID uint64
	MinOffset   uint64
	MaxOffset   uint64
	MinTransID  uint64
	MaxTransID  uint64
	MinType     uint32
	MaxType     uint32
	NrItems     uint32
	_           uint32
	_           [4]uint64
}

// searchArgs mirrors struct btrfs_ioctl_search_args
type searchArgs struct {
	Key searchKey
	Buf [searchBufSize]byte
}

// inoLookupArgs mirrors struct btrfs_ioctl_ino_lookup_args
type inoLookupArgs struct {
	TreeID   uint64
	ObjectID uint64
	Name     [inoLookupPathMax]byte
}

// rootRefsQuery returns the search arguments selecting every root back
// reference of the tree of roots with a root id of at least minRootID.
func rootRefsQuery(minRootID uint64) *searchArgs {
	args := &searchArgs{}
	args.Key = searchKey{
		TreeID:      rootTreeObjectID,
		MinObjectID: minRootID,
		MaxObjectID: ^uint64(0),
		MinOffset:   0,
		MaxOffset:   ^uint64(0),
		MinTransID:  0,
		MaxTransID:  ^uint64(0),
		MinType:     rootBackrefKey,
		MaxType:     rootBackrefKey,
		NrItems:     searchNrItems,
	}
	return args
}

type searchHeader struct {
	TransID  uint64
	ObjectID uint64
	Offset   uint64
	Type     uint32
	Len      uint32
}

// search headers are filled by the kernel in host byte order
func decodeSearchHeader(b []byte) searchHeader {
	return searchHeader{
		TransID:  binary.NativeEndian.Uint64(b[0:]),
		ObjectID: binary.NativeEndian.Uint64(b[8:]),
		Offset:   binary.NativeEndian.Uint64(b[16:]),
		Type:     binary.NativeEndian.Uint32(b[24:]),
		Len:      binary.NativeEndian.Uint32(b[28:]),
	}
}

// decodeRootRefs decodes the nrItems items the kernel wrote to buf. Items
// that are not root back references are skipped.
func decodeRootRefs(buf []byte, nrItems uint32) ([]api.RootRef, error) {
	refs := make([]api.RootRef, 0, nrItems)
	off := 0
	for i := uint32(0); i < nrItems; i++ {
		if len(buf)-off < searchHeaderSize {
			return nil, errors.Wrapf(api.ErrParsingFailed, "search header %d is truncated", i)
		}
		sh := decodeSearchHeader(buf[off:])
		off += searchHeaderSize
		if uint64(len(buf)-off) < uint64(sh.Len) {
			return nil, errors.Wrapf(api.ErrParsingFailed, "item %d of root %d overflows the search buffer", i, sh.ObjectID)
		}
		item := buf[off : off+int(sh.Len)]
		off += int(sh.Len)

		if sh.Type != rootBackrefKey {
			continue
		}
		ref, err := decodeRootRef(item)
		if err != nil {
			return nil, errors.Wrapf(err, "root %d referenced from %d", sh.ObjectID, sh.Offset)
		}
		ref.RootID = sh.ObjectID
		ref.RefTree = sh.Offset
		refs = append(refs, ref)
	}
	return refs, nil
}

// decodeRootRef decodes a struct btrfs_root_ref followed by its name. On disk
// items are little endian.
func decodeRootRef(item []byte) (api.RootRef, error) {
	if len(item) < rootRefSize {
		return api.RootRef{}, errors.Wrapf(api.ErrParsingFailed, "root ref of %d bytes is too short", len(item))
	}
	nameLen := int(binary.LittleEndian.Uint16(item[16:]))
	if len(item)-rootRefSize < nameLen {
		return api.RootRef{}, errors.Wrapf(api.ErrParsingFailed, "name of %d bytes overflows root ref", nameLen)
	}
	return api.RootRef{
		DirID: binary.LittleEndian.Uint64(item[0:]),
		Name:  string(item[rootRefSize : rootRefSize+nameLen]),
	}, nil
}

// cString returns the content of b up to the first NUL byte
func cString(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
