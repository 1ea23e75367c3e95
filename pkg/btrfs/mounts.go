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

package btrfs

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/docker/btrfs-list/internal/paths"
	"github.com/docker/btrfs-list/pkg/api"
)

const mountsFile = "/proc/self/mounts"

// mount table fields escape these characters as octal sequences
var mountUnescaper = strings.NewReplacer(`\040`, " ", `\011`, "\t", `\012`, "\n", `\134`, `\`)

// FindMountPoint returns the mount point of the btrfs filesystem holding path
func FindMountPoint(path string) (string, error) {
	fp, err := os.Open(mountsFile)
	if err != nil {
		return "", err
	}
	defer fp.Close()

	return findMountPoint(fp, path)
}

func findMountPoint(r io.Reader, path string) (string, error) {
	const (
		pathIdx = 1
		typeIdx = 2
	)

	var (
		mount   string
		scanner = bufio.NewScanner(r)
	)
	path = filepath.Clean(path)

	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) <= typeIdx || fields[typeIdx] != "btrfs" {
			continue // skip non-btrfs
		}

		target := mountUnescaper.Replace(fields[pathIdx])
		if paths.IsChild(target, path) && len(target) > len(mount) {
			mount = target
		}
	}

	if scanner.Err() != nil {
		return "", scanner.Err()
	}

	if mount == "" {
		return "", errors.Wrapf(api.ErrNotFound, "mount point of %v", path)
	}

	return mount, nil
}
