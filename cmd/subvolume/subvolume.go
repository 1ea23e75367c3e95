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
	"os/signal"
	"strings"
	"syscall"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/docker/btrfs-list/pkg/api"
)

const (
	// EnvFormat sets the output format of list, when --format is not set
	EnvFormat = "BTRFS_LIST_FORMAT"
	// EnvParallelLimit sets how many path lookups list runs at once, when --parallel is not set
	EnvParallelLimit = "BTRFS_LIST_PARALLEL_LIMIT"
	// EnvConfig points to the configuration file, when --config is not set
	EnvConfig = "BTRFS_LIST_CONFIG"
)

// CommandName is the name of the binary and its root command
const CommandName = "btrfs-list"

// canceledStatus is the message reported when the user interrupts a command
const canceledStatus = "canceled"

// Command defines a CLI command as a func with args
type Command func(context.Context, []string) error

// CobraCommand defines a cobra command function
type CobraCommand func(context.Context, *cobra.Command, []string) error

// AdaptCmd adapt a CobraCommand func to cobra library
func AdaptCmd(fn CobraCommand) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, os.Interrupt)
		defer stop()

		err := fn(ctx, cmd, args)
		if errors.Is(ctx.Err(), context.Canceled) {
			err = StatusError{
				StatusCode: 130,
				Status:     canceledStatus,
			}
		}
		return err
	}
}

// Adapt a Command func to cobra library
func Adapt(fn Command) func(cmd *cobra.Command, args []string) error {
	return AdaptCmd(func(ctx context.Context, cmd *cobra.Command, args []string) error {
		return fn(ctx, args)
	})
}

// RootCommand returns the btrfs-list command with its child commands
func RootCommand(backend api.Service) *cobra.Command {
	var (
		debug    bool
		logLevel string
	)
	c := &cobra.Command{
		Short:            "List btrfs subvolumes",
		Long:             "List the subvolumes of a btrfs filesystem with their full path.",
		Use:              CommandName,
		TraverseChildren: true,
		Args:             cobra.ArbitraryArgs,
		SilenceErrors:    true,
		SilenceUsage:     true,
		// By default (no Run/RunE in parent c) for typos in subcommands, cobra displays the help of parent c but exit(0) !
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			_ = cmd.Help()
			return StatusError{
				StatusCode: 1,
				Status:     fmt.Sprintf("unknown command: %q", CommandName+" "+args[0]),
			}
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if logLevel != "" {
				level, err := logrus.ParseLevel(logLevel)
				if err != nil {
					return errors.Wrapf(api.ErrParsingFailed, "unable to parse log level %q", logLevel)
				}
				logrus.SetLevel(level)
			}
			if debug {
				logrus.SetLevel(logrus.DebugLevel)
			}
			return nil
		},
	}

	c.AddCommand(
		listCommand(backend),
		idCommand(backend),
		versionCommand(),
	)

	c.Flags().SetInterspersed(false)
	flags := c.PersistentFlags()
	flags.BoolVarP(&debug, "debug", "D", false, "Enable debug output in the logs")
	flags.StringVar(&logLevel, "log-level", "", fmt.Sprintf("Set the logging level (%q)", strings.Join(logLevels(), `"|"`)))

	return c
}

func logLevels() []string {
	levels := make([]string, 0, len(logrus.AllLevels))
	for _, l := range logrus.AllLevels {
		levels = append(levels, l.String())
	}
	return levels
}
