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
	"testing"

	"github.com/pkg/errors"
	"go.uber.org/mock/gomock"
	"gotest.tools/v3/assert"

	"github.com/docker/btrfs-list/pkg/api"
	"github.com/docker/btrfs-list/pkg/mocks"
	"github.com/docker/btrfs-list/pkg/multierror"
)

func TestEnrichAtRootOfRefTree(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	resolver := mocks.NewMockDirPathResolver(ctrl)
	resolver.EXPECT().LookupDirPath(gomock.Any(), uint64(5), uint64(256)).Return("", nil)

	rec := &Record{RootID: 7, RefTree: 5, DirID: 256, Name: "sub"}
	assert.NilError(t, Enrich(ctx, resolver, rec))

	path, ok := rec.Path()
	assert.Assert(t, ok)
	assert.Equal(t, path, "sub")
}

func TestEnrichInSubdirectory(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	resolver := mocks.NewMockDirPathResolver(ctrl)
	resolver.EXPECT().LookupDirPath(gomock.Any(), uint64(5), uint64(260)).Return("var/lib/", nil)

	rec := &Record{RootID: 7, RefTree: 5, DirID: 260, Name: "docker"}
	assert.NilError(t, Enrich(ctx, resolver, rec))

	path, ok := rec.Path()
	assert.Assert(t, ok)
	assert.Equal(t, path, "var/lib/docker")
}

func TestEnrichIsIdempotent(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	resolver := mocks.NewMockDirPathResolver(ctrl)
	resolver.EXPECT().LookupDirPath(gomock.Any(), uint64(5), uint64(256)).Return("dir/", nil).Times(1)

	rec := &Record{RootID: 7, RefTree: 5, DirID: 256, Name: "sub"}
	assert.NilError(t, Enrich(ctx, resolver, rec))
	assert.NilError(t, Enrich(ctx, resolver, rec))

	path, _ := rec.Path()
	assert.Equal(t, path, "dir/sub")
}

func TestEnrichFailureLeavesRecordUnresolved(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	resolver := mocks.NewMockDirPathResolver(ctrl)
	resolver.EXPECT().LookupDirPath(gomock.Any(), uint64(5), uint64(256)).Return("", errors.Wrap(api.ErrNotFound, "directory 256"))

	rec := &Record{RootID: 7, RefTree: 5, DirID: 256, Name: "sub"}
	err := Enrich(ctx, resolver, rec)
	assert.Assert(t, api.IsNotFoundError(err))
	assert.ErrorContains(t, err, "failed to lookup path of subvolume 7 in root 5")

	_, ok := rec.Path()
	assert.Assert(t, !ok)
}

func TestEnrichAllReportsFailuresInKeyOrder(t *testing.T) {
	for _, parallelism := range []int{0, 1, 4} {
		ctx := context.Background()
		ctrl := gomock.NewController(t)
		resolver := mocks.NewMockDirPathResolver(ctrl)

		idx := NewIndex()
		for rootID := uint64(256); rootID < 264; rootID++ {
			_, err := idx.Insert(rootID, 5, rootID+1000, "vol")
			assert.NilError(t, err)
		}
		resolver.EXPECT().LookupDirPath(gomock.Any(), uint64(5), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uint64, dirID uint64) (string, error) {
				if dirID == 1258 || dirID == 1261 {
					return "", errors.Errorf("no directory %d", dirID)
				}
				return "", nil
			}).Times(8)

		err := EnrichAll(ctx, idx, resolver, parallelism)
		var errs *multierror.Error
		assert.Assert(t, errors.As(err, &errs))
		assert.Equal(t, errs.Len(), 2)
		assert.ErrorContains(t, errs.WrappedErrors()[0], "subvolume 258")
		assert.ErrorContains(t, errs.WrappedErrors()[1], "subvolume 261")

		for _, rec := range idx.Records() {
			_, ok := rec.Path()
			assert.Equal(t, ok, rec.RootID != 258 && rec.RootID != 261, "subvolume %d", rec.RootID)
		}
	}
}

func TestEnrichAllVisitsAscendingWhenSequential(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	resolver := mocks.NewMockDirPathResolver(ctrl)

	idx := NewIndex()
	for _, rootID := range []uint64{258, 256, 257} {
		_, err := idx.Insert(rootID, 5, rootID, "vol")
		assert.NilError(t, err)
	}
	gomock.InOrder(
		resolver.EXPECT().LookupDirPath(gomock.Any(), uint64(5), uint64(256)).Return("", nil),
		resolver.EXPECT().LookupDirPath(gomock.Any(), uint64(5), uint64(257)).Return("", nil),
		resolver.EXPECT().LookupDirPath(gomock.Any(), uint64(5), uint64(258)).Return("", nil),
	)
	assert.NilError(t, EnrichAll(ctx, idx, resolver, 1))
}
