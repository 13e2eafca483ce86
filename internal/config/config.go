// Package config loads changetag settings from an optional YAML file.
package config

import (
	"os"

	"github.com/creasty/defaults"
	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

// DefaultFile is looked up at the repository root.
const DefaultFile = ".changetag.yml"

// Config mirrors the YAML file. Flags given on the command line win over
// these values.
type Config struct {
	Changelog     string   `yaml:"changelog" default:"CHANGELOG.md"`
	VersionFile   string   `yaml:"version_file" default:"VERSION"`
	VersionSource string   `yaml:"version_source" default:"changelog"`
	Classifier    string   `yaml:"classifier" default:"keyword"`
	Identity      string   `yaml:"identity" default:"none"`
	Scan          string   `yaml:"scan" default:"last"`
	Description   string   `yaml:"description" default:"subjects"`
	Window        int      `yaml:"window"` // 0 lets the classifier pick
	BareTag       bool     `yaml:"bare_tag"`
	TagMessage    string   `yaml:"tag_message"`
	CreateMissing bool     `yaml:"create_missing" default:"true"`
	Require       bool     `yaml:"require_changelog"`
	BumpFiles     []string `yaml:"bump_files"`

	Amend    bool   `yaml:"amend"`
	Push     bool   `yaml:"push"`
	Remote   string `yaml:"remote" default:"origin"`
	TokenEnv string `yaml:"token_env" default:"GITHUB_TOKEN"`
	RepoEnv  string `yaml:"repo_env" default:"GITHUB_REPOSITORY"`

	LogLevel int    `yaml:"log_level" default:"4"` // 2 error, 3 warn, 4 info, 5 debug
	LogDir   string `yaml:"log_dir"`
}

// Default returns a Config with every default applied.
func Default() (*Config, error) {
	c := new(Config)
	if err := defaults.Set(c); err != nil {
		return nil, errors.Wrap(err, "set default error")
	}
	return c, nil
}

// Load reads path. A missing file yields the defaults; when required is
// set, a missing file is an error.
func Load(path string, required bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return Default()
		}
		return nil, errors.Wrapf(err, "reading config %q", path)
	}

	// Defaults go in first so explicit false or zero values in the file
	// are kept.
	c, err := Default()
	if err != nil {
		return nil, err
	}
	if err := yaml.UnmarshalStrict(data, c); err != nil {
		return nil, errors.Wrapf(err, "parsing config %q", path)
	}
	return c, nil
}
