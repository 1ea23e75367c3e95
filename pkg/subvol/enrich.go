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

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/docker/btrfs-list/pkg/api"
	"github.com/docker/btrfs-list/pkg/multierror"
)

// Enrich asks the resolver for the directory rec lives in within its ref
// tree, and records the local path of rec. It does nothing when the path is
// already known. On failure the record is left unresolved.
func Enrich(ctx context.Context, resolver api.DirPathResolver, rec *Record) error {
	if rec.resolved {
		return nil
	}
	dir, err := resolver.LookupDirPath(ctx, rec.RefTree, rec.DirID)
	if err != nil {
		return errors.Wrapf(err, "failed to lookup path of subvolume %d in root %d", rec.RootID, rec.RefTree)
	}
	if dir == "" {
		// we're at the root of ref tree
		rec.setPath(rec.Name)
		return nil
	}
	// the resolver already puts a / at the end of dir
	rec.setPath(dir + rec.Name)
	return nil
}

// EnrichAll runs Enrich over every record of the index in key order. Up to
// parallelism lookups run at once. A failed lookup does not stop the others;
// all failures are returned together, in key order.
func EnrichAll(ctx context.Context, idx *Index, resolver api.DirPathResolver, parallelism int) error {
	records := idx.Records()
	errs := make([]error, len(records))

	if parallelism < 2 {
		for i, rec := range records {
			errs[i] = Enrich(ctx, resolver, rec)
		}
	} else {
		var eg errgroup.Group
		eg.SetLimit(parallelism)
		for i, rec := range records {
			i, rec := i, rec
			eg.Go(func() error {
				errs[i] = Enrich(ctx, resolver, rec)
				return nil
			})
		}
		_ = eg.Wait()
	}

	var result *multierror.Error
	for _, err := range errs {
		if err == nil {
			continue
		}
		logrus.Warnf("ERROR: %v", err)
		result = multierror.Append(result, err)
	}
	return result.ErrorOrNil()
}
