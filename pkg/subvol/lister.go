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
	"time"

	"github.com/docker/go-units"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/docker/btrfs-list/internal/tracing"
	"github.com/docker/btrfs-list/pkg/api"
	"github.com/docker/btrfs-list/pkg/multierror"
)

// Lister lists subvolumes out of an enumeration source and a directory path
// resolver.
type Lister struct {
	source   api.RootRefSource
	resolver api.DirPathResolver
	clock    clockwork.Clock
}

// Option customizes a Lister
type Option func(*Lister)

// WithClock sets the clock used to time each phase of a listing
func WithClock(clock clockwork.Clock) Option {
	return func(l *Lister) {
		l.clock = clock
	}
}

// NewLister returns a Lister reading references from source and resolving
// their directories with resolver
func NewLister(source api.RootRefSource, resolver api.DirPathResolver, opts ...Option) *Lister {
	l := &Lister{
		source:   source,
		resolver: resolver,
		clock:    clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// List enumerates all subvolume references, resolves their local paths then
// their full paths, and returns them in descending (id, parent id) order.
//
// Enumeration and indexing failures abort the listing and no subvolume is
// returned. Subvolumes whose path cannot be resolved are left out, and the
// reasons are returned as a *multierror.Error alongside the others.
func (l *Lister) List(ctx context.Context, options api.ListOptions) ([]api.Subvolume, error) {
	idx := NewIndex()

	err := l.timed("enumerate", func() error {
		return tracing.SpanWrapFunc(ctx, "enumerate", func(ctx context.Context) error {
			return Enumerate(ctx, l.source, idx)
		})
	})
	if err != nil {
		return nil, err
	}
	logrus.Debugf("indexed %d subvolume references", idx.Len())

	var failures *multierror.Error
	_ = l.timed("enrich", func() error {
		return tracing.SpanWrapFunc(ctx, "enrich", func(ctx context.Context) error {
			if err := EnrichAll(ctx, idx, l.resolver, options.Parallelism); err != nil {
				failures = multierror.Append(failures, err)
				return err
			}
			return nil
		}, attribute.Int("parallelism", options.Parallelism))
	})

	var subvolumes []api.Subvolume
	_ = l.timed("resolve", func() error {
		return tracing.SpanWrapFunc(ctx, "resolve", func(ctx context.Context) error {
			subvolumes, failures = resolveAll(idx, failures)
			return nil
		})
	})

	return subvolumes, failures.ErrorOrNil()
}

// resolveAll resolves the full path of every record in reverse key order.
// Records left unresolved by enrichment are skipped silently, as their
// failure has already been reported.
func resolveAll(idx *Index, failures *multierror.Error) ([]api.Subvolume, *multierror.Error) {
	subvolumes := make([]api.Subvolume, 0, idx.Len())
	idx.Descend(func(rec *Record) bool {
		if _, ok := rec.Path(); !ok {
			return true
		}
		top, path, err := Resolve(idx, rec)
		if err != nil {
			logrus.Warnf("ERROR: %v", err)
			failures = multierror.Append(failures, err)
			return true
		}
		subvolumes = append(subvolumes, api.Subvolume{
			ID:         rec.RootID,
			ParentID:   rec.RefTree,
			TopLevelID: top,
			DirID:      rec.DirID,
			Name:       rec.Name,
			Path:       path,
		})
		return true
	})
	return subvolumes, failures
}

func (l *Lister) timed(phase string, fn func() error) error {
	start := l.clock.Now()
	err := fn()
	elapsed := l.clock.Since(start)
	logrus.Debugf("%s: done in %s", phase, humanDuration(elapsed))
	return err
}

func humanDuration(d time.Duration) string {
	if d < time.Second {
		return d.String()
	}
	return units.HumanDuration(d)
}
