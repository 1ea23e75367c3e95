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
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/docker/btrfs-list/internal/paths"
	"github.com/docker/btrfs-list/pkg/api"
)

// DefaultConfigFile is read when neither --config nor BTRFS_LIST_CONFIG is set
const DefaultConfigFile = "~/.config/btrfs-list/config.yaml"

// Config holds the defaults read from the configuration file
type Config struct {
	Format   string `yaml:"format,omitempty"`
	Parallel int    `yaml:"parallel,omitempty"`
}

// LoadConfig reads the configuration file at path. A missing file is only an
// error when required is set.
func LoadConfig(path string, required bool) (Config, error) {
	var config Config
	b, err := os.ReadFile(paths.ExpandUser(path))
	if err != nil {
		if os.IsNotExist(err) && !required {
			return config, nil
		}
		return config, errors.Wrapf(err, "failed to read configuration file %s", path)
	}
	if err := yaml.Unmarshal(b, &config); err != nil {
		return config, errors.Wrapf(api.ErrParsingFailed, "configuration file %s: %v", path, err)
	}
	return config, nil
}
