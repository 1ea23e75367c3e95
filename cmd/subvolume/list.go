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
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/docker/btrfs-list/cmd/formatter"
	"github.com/docker/btrfs-list/pkg/api"
)

type listOptions struct {
	Format     string
	Parallel   int
	ConfigFile string
}

func listCommand(backend api.Service) *cobra.Command {
	opts := listOptions{}
	cmd := &cobra.Command{
		Use:   "list [PATH]",
		Short: "List the subvolumes of the filesystem holding PATH",
		Args:  cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd.Flags())
		},
		RunE: AdaptCmd(func(ctx context.Context, cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}
			return runList(ctx, cmd, backend, opts, path)
		}),
	}
	flags := cmd.Flags()
	flags.StringVar(&opts.Format, "format", formatter.PLAIN, "Format the output. Values: [plain | table | json]")
	flags.IntVar(&opts.Parallel, "parallel", 1, "Limit the number of concurrent path lookups")
	flags.StringVar(&opts.ConfigFile, "config", "", fmt.Sprintf("Configuration file (default %q)", DefaultConfigFile))

	return cmd
}

// resolve fills options not set on the command line from the environment,
// then from the configuration file
func (o *listOptions) resolve(flags *pflag.FlagSet) error {
	configFile, required := o.ConfigFile, true
	if !flags.Changed("config") {
		if v, ok := os.LookupEnv(EnvConfig); ok {
			configFile = v
		} else {
			configFile, required = DefaultConfigFile, false
		}
	}
	config, err := LoadConfig(configFile, required)
	if err != nil {
		return err
	}

	if !flags.Changed("format") {
		if v, ok := os.LookupEnv(EnvFormat); ok {
			o.Format = v
		} else if config.Format != "" {
			o.Format = config.Format
		}
	}

	if !flags.Changed("parallel") {
		if v, ok := os.LookupEnv(EnvParallelLimit); ok {
			i, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s must be an integer (found: %q)", EnvParallelLimit, v)
			}
			o.Parallel = i
		} else if config.Parallel != 0 {
			o.Parallel = config.Parallel
		}
	}

	return formatter.ValidateFormat(o.Format)
}

func runList(ctx context.Context, cmd *cobra.Command, backend api.Service, opts listOptions, path string) error {
	logrus.Debugf("listing subvolumes of %s with up to %d concurrent lookups", path, opts.Parallel)
	subvolumes, err := backend.List(ctx, api.ListOptions{
		Path:        path,
		Parallelism: opts.Parallel,
	})
	if err != nil && subvolumes == nil {
		return err
	}
	if printErr := formatter.PrintSubvolumes(cmd.OutOrStdout(), opts.Format, subvolumes); printErr != nil {
		return printErr
	}
	// subvolumes which could not be resolved are reported after the others
	return err
}
