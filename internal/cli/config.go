package cli

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/splitviz/pkg/errors"
	"github.com/matzehuels/splitviz/pkg/plot"
	"github.com/matzehuels/splitviz/pkg/viewer"
)

// configFileName is the file looked up inside configDir.
const configFileName = "config.toml"

// fileConfig is the on-disk configuration. Zero figure fields keep the
// plotting defaults.
//
//	viewer = "none"
//
//	[figure]
//	dpi = 150
//	legend = true
type fileConfig struct {
	Viewer string      `toml:"viewer"`
	Figure plot.Config `toml:"figure"`
}

// configPath returns the default config file location,
// $XDG_CONFIG_HOME/splitviz/config.toml or ~/.config/splitviz/config.toml.
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// loadConfig reads the configuration from path. An empty path selects the
// default location, which may be missing; an explicit path must exist.
func loadConfig(path string) (*fileConfig, error) {
	cfg := &fileConfig{Viewer: viewer.NameWindow}

	explicit := path != ""
	if !explicit {
		p, err := configPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, nil
		}
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config file %s not found", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, errors.New(errors.ErrCodeInvalidConfig, "config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if err := errors.ValidateViewer(cfg.Viewer); err != nil {
		return nil, err
	}
	return cfg, nil
}
