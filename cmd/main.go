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

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/docker/btrfs-list/cmd/cmdtrace"
	commands "github.com/docker/btrfs-list/cmd/subvolume"
	"github.com/docker/btrfs-list/pkg/local"
)

func main() {
	cmd := commands.RootCommand(local.NewService())
	originalPreRunE := cmd.PersistentPreRunE
	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if originalPreRunE != nil {
			if err := originalPreRunE(cmd, args); err != nil {
				return err
			}
		}
		if err := cmdtrace.Setup(cmd, os.Args[1:]); err != nil {
			logrus.Debugf("failed to enable tracing: %v", err)
		}
		return nil
	}
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return commands.StatusError{
			StatusCode: 1,
			Status:     fmt.Sprintf("%s\nSee '%s --help'.", err, c.CommandPath()),
		}
	})

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		exit(err)
	}
}

func exit(err error) {
	var statusErr commands.StatusError
	if errors.As(err, &statusErr) {
		if statusErr.Status != "" {
			_, _ = fmt.Fprintln(os.Stderr, statusErr.Status)
		}
		os.Exit(statusErr.StatusCode)
	}
	_, _ = fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
