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

package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/docker/btrfs-list/pkg/api"
)

// PrintSubvolumes prints subvolumes in the given format, keeping their order
func PrintSubvolumes(out io.Writer, format string, subvolumes []api.Subvolume) error {
	if subvolumes == nil {
		subvolumes = []api.Subvolume{}
	}
	table := strings.EqualFold(format, TABLE)
	return Print(subvolumes, format, out, func(w io.Writer) {
		for _, s := range subvolumes {
			if table {
				_, _ = fmt.Fprintf(w, "%d\t%d\t%s\n", s.ID, s.TopLevelID, s.Path)
				continue
			}
			_, _ = fmt.Fprintf(w, "ID %d top level %d path %s\n", s.ID, s.TopLevelID, s.Path)
		}
	}, "ID", "TOP LEVEL", "PATH")
}
