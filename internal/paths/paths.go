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

package paths

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandUser replaces a leading ~ with the home directory of the current user.
// Paths referring to the home of another user are returned unchanged.
func ExpandUser(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}

// IsChild reports whether file is dir or lives below it
func IsChild(dir string, file string) bool {
	if dir == "" {
		return false
	}

	dir = filepath.Clean(dir)
	current := filepath.Clean(file)
	for {
		if strings.EqualFold(dir, current) {
			if dir == current {
				return true
			}

			// Equal under case-folding only: they are the same when the
			// file system is case-insensitive, which only a stat can tell.
			dirInfo, err := os.Stat(dir)
			if err != nil {
				return false
			}

			currentInfo, err := os.Stat(current)
			if err != nil {
				return false
			}

			return os.SameFile(dirInfo, currentInfo)
		}

		if len(current) <= len(dir) || current == "." {
			return false
		}

		current = filepath.Dir(current)
	}
}
