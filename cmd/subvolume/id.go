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
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/docker/btrfs-list/pkg/api"
)

func idCommand(backend api.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "id PATH",
		Short: "Print the id of the subvolume holding PATH",
		Args:  cobra.ExactArgs(1),
		RunE: AdaptCmd(func(ctx context.Context, cmd *cobra.Command, args []string) error {
			id, err := backend.ID(ctx, args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		}),
	}
}
