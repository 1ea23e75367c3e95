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

package subvolume

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/docker/btrfs-list/cmd/formatter"
	"github.com/docker/btrfs-list/internal"
)

type versionOptions struct {
	format string
	short  bool
}

func versionCommand() *cobra.Command {
	opts := versionOptions{}
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show the btrfs-list version information",
		Args:  cobra.MaximumNArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			runVersion(cmd.OutOrStdout(), opts)
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&opts.format, "format", "f", "", "Format the output. Values: [plain | json]. (Default: plain)")
	flags.BoolVar(&opts.short, "short", false, "Shows only the version number.")

	return cmd
}

func runVersion(out io.Writer, opts versionOptions) {
	if opts.short {
		_, _ = fmt.Fprintln(out, strings.TrimPrefix(internal.Version, "v"))
		return
	}
	if opts.format == formatter.JSON {
		_, _ = fmt.Fprintf(out, "{\"version\":%q}\n", internal.Version)
		return
	}
	_, _ = fmt.Fprintln(out, "btrfs-list version", internal.Version)
}
