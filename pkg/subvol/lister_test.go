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
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"go.uber.org/mock/gomock"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/docker/btrfs-list/pkg/api"
	"github.com/docker/btrfs-list/pkg/mocks"
	"github.com/docker/btrfs-list/pkg/multierror"
)

func debugLogs(t *testing.T) *logtest.Hook {
	hook := logtest.NewGlobal()
	level := logrus.GetLevel()
	logrus.SetLevel(logrus.DebugLevel)
	t.Cleanup(func() {
		logrus.SetLevel(level)
		logrus.StandardLogger().ReplaceHooks(make(logrus.LevelHooks))
	})
	return hook
}

func TestListerList(t *testing.T) {
	hook := debugLogs(t)
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	source := mocks.NewMockRootRefSource(ctrl)
	resolver := mocks.NewMockDirPathResolver(ctrl)
	clock := clockwork.NewFakeClock()

	gomock.InOrder(
		source.EXPECT().SearchRootRefs(gomock.Any(), uint64(0)).
			DoAndReturn(func(context.Context, uint64) ([]api.RootRef, error) {
				clock.Advance(2 * time.Minute)
				return []api.RootRef{
					{RootID: 256, RefTree: 5, DirID: 256, Name: "vol"},
					{RootID: 257, RefTree: 256, DirID: 258, Name: "snap"},
					{RootID: 259, RefTree: 5, DirID: 256, Name: "gone"},
				}, nil
			}),
		source.EXPECT().SearchRootRefs(gomock.Any(), uint64(260)).Return(nil, nil),
	)
	resolver.EXPECT().LookupDirPath(gomock.Any(), uint64(5), uint64(256)).Return("", nil)
	resolver.EXPECT().LookupDirPath(gomock.Any(), uint64(256), uint64(258)).Return("snapshots/", nil)
	resolver.EXPECT().LookupDirPath(gomock.Any(), uint64(5), uint64(256)).Return("", errors.Wrap(api.ErrNotFound, "no such directory"))

	lister := NewLister(source, resolver, WithClock(clock))
	subvolumes, err := lister.List(ctx, api.ListOptions{})

	var failures *multierror.Error
	assert.Assert(t, errors.As(err, &failures))
	assert.Equal(t, failures.Len(), 1)
	assert.Assert(t, api.IsNotFoundError(err))
	assert.ErrorContains(t, err, "subvolume 259")

	expected := []api.Subvolume{
		{ID: 257, ParentID: 256, TopLevelID: 5, DirID: 258, Name: "snap", Path: "vol/snapshots/snap"},
		{ID: 256, ParentID: 5, TopLevelID: 5, DirID: 256, Name: "vol", Path: "vol"},
	}
	if diff := cmp.Diff(expected, subvolumes); diff != "" {
		t.Errorf("unexpected subvolumes (-want +got):\n%s", diff)
	}

	var messages []string
	for _, entry := range hook.AllEntries() {
		messages = append(messages, entry.Message)
	}
	assert.Assert(t, is.Contains(messages, "enumerate: done in 2 minutes"))
	assert.Assert(t, is.Contains(messages, "indexed 3 subvolume references"))
}

func TestListerEnumerationFailure(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	source := mocks.NewMockRootRefSource(ctrl)
	resolver := mocks.NewMockDirPathResolver(ctrl)

	source.EXPECT().SearchRootRefs(gomock.Any(), uint64(0)).Return(nil, errors.New("inappropriate ioctl for device"))

	subvolumes, err := NewLister(source, resolver).List(ctx, api.ListOptions{Parallelism: 4})
	assert.Assert(t, api.IsEnumerationError(err))
	assert.Assert(t, subvolumes == nil)
}

func TestListerParallelMatchesSequential(t *testing.T) {
	refs := []api.RootRef{
		{RootID: 256, RefTree: 5, DirID: 256, Name: "a"},
		{RootID: 257, RefTree: 256, DirID: 256, Name: "b"},
		{RootID: 258, RefTree: 257, DirID: 300, Name: "c"},
		{RootID: 259, RefTree: 5, DirID: 301, Name: "d"},
		{RootID: 260, RefTree: 259, DirID: 256, Name: "e"},
	}
	lookup := func(_ context.Context, _ uint64, dirID uint64) (string, error) {
		if dirID == 256 {
			return "", nil
		}
		return "dir/", nil
	}

	list := func(parallelism int) []api.Subvolume {
		ctrl := gomock.NewController(t)
		source := mocks.NewMockRootRefSource(ctrl)
		resolver := mocks.NewMockDirPathResolver(ctrl)
		source.EXPECT().SearchRootRefs(gomock.Any(), uint64(0)).Return(refs, nil)
		source.EXPECT().SearchRootRefs(gomock.Any(), uint64(261)).Return(nil, nil)
		resolver.EXPECT().LookupDirPath(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(lookup).Times(len(refs))

		subvolumes, err := NewLister(source, resolver).List(context.Background(), api.ListOptions{Parallelism: parallelism})
		assert.NilError(t, err)
		return subvolumes
	}

	sequential := list(1)
	assert.Equal(t, len(sequential), len(refs))
	assert.Equal(t, sequential[0].Path, "dir/d/e")
	assert.Equal(t, sequential[2].Path, "a/b/dir/c")
	assert.DeepEqual(t, list(3), sequential)
}
