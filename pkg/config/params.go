// Copyright 2024 Redpanda Data, Inc.
//
// Use of this software is governed by the Business Source License
// included in the file licenses/BSL.md
//
// As of the Change Date specified in that file, in accordance with
// the Business Source License, use of this software will be governed
// by the Apache License, Version 2.0


package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/afero"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where ringmax looks for its configuration first when no
// --config flag is given.
const DefaultPath = "/etc/ringmax/ringmax.yaml"

// Keys accepted by the -X flag. The same keys, upper-cased with dots
// replaced by underscores and prefixed with RINGMAX_, are read from the
// environment.
const (
	xEthtoolPath    = "ethtool.path"
	xEthtoolTimeout = "ethtool.timeout"
	xSysfsNetDir    = "sysfs.net_dir"
)

const envPrefix = "RINGMAX_"

// Params contains ringmax-wide configuration parameters.
type Params struct {
	// ConfigPath is any flag-specified config path.
	ConfigPath string

	// Verbose tracks the -v flag.
	Verbose bool

	// FlagOverrides are any flag-specified config overrides.
	FlagOverrides []string
}

var xFlags = map[string]string{
	xEthtoolPath:    "path to the ethtool binary",
	xEthtoolTimeout: "duration after which an ethtool invocation is killed, e.g. 10s",
	xSysfsNetDir:    "directory listing the network interfaces",
}

func xKeys() []string {
	keys := make([]string, 0, len(xFlags))
	for k := range xFlags {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ParamsHelp returns the help text for -X, one paragraph per key.
func ParamsHelp() string {
	var sb strings.Builder
	sb.WriteString("The -X flag overrides configuration file values; each key can also be set\n")
	sb.WriteString("through the environment as RINGMAX_<KEY>, upper-cased with dots replaced by\n")
	sb.WriteString("underscores. Flags take precedence over env, env over the file.\n\n")
	for _, k := range xKeys() {
		fmt.Fprintf(&sb, "%s=\n  %s\n\n", k, xFlags[k])
	}
	return sb.String()
}

// ParamsList returns the -X keys, one key= per line.
func ParamsList() string {
	var sb strings.Builder
	for _, k := range xKeys() {
		sb.WriteString(k + "=\n")
	}
	return sb.String()
}

// Load returns the param's config. In order, this
//
//   - Finds the config file, per the --config flag or the default search set.
//   - Decodes the config over the default configuration.
//   - Processes env and flag overrides.
//   - Sets unset default values.
func (p *Params) Load(fs afero.Fs) (*Config, error) {
	c := Default()
	if err := p.readConfig(fs, c); err != nil {
		// A flag-specified file must exist; the default search set may
		// all be absent.
		if p.ConfigPath != "" || !errors.Is(err, afero.ErrFileNotFound) {
			return nil, err
		}
	}
	if err := p.processOverrides(c); err != nil {
		return nil, err
	}
	c.addUnsetDefaults()
	return c, nil
}

func (p *Params) LocateConfig(fs afero.Fs) (string, error) {
	paths := []string{p.ConfigPath}
	if p.ConfigPath == "" {
		paths = []string{filepath.FromSlash(DefaultPath)}
		if configDir, _ := os.UserConfigDir(); configDir != "" {
			paths = append(paths, filepath.Join(configDir, "ringmax", "ringmax.yaml"))
		}
	}

	for _, path := range paths {
		// Ignore error: we only care whether it exists, other
		// stat() errors are not interesting.
		exists, _ := afero.Exists(fs, path)
		if exists {
			return path, nil
		}
	}

	return "", fmt.Errorf("%w: unable to find config in searched paths %v", afero.ErrFileNotFound, paths)
}

func (p *Params) readConfig(fs afero.Fs, c *Config) error {
	path, err := p.LocateConfig(fs)
	if err != nil {
		return err
	}

	file, err := afero.ReadFile(fs, path)
	if err != nil {
		return err
	}

	if err := yaml.Unmarshal(file, c); err != nil {
		return fmt.Errorf("unable to yaml decode %s: %v", path, err)
	}
	c.fileLocation = path
	return nil
}

// Process overrides processes env and flag overrides into a config file (so
// that we result in our priority order: flag, env, file).
func (p *Params) processOverrides(c *Config) error {
	fns := map[string]func(string) error{
		xEthtoolPath: func(v string) error {
			if v == "" {
				return errors.New("empty path")
			}
			c.Ethtool.Path = v
			return nil
		},
		xEthtoolTimeout: func(v string) error {
			d, err := time.ParseDuration(v)
			if err != nil {
				return err
			}
			if d <= 0 {
				return fmt.Errorf("timeout must be positive, got %s", d)
			}
			c.Ethtool.Timeout = d
			return nil
		},
		xSysfsNetDir: func(v string) error {
			if v == "" {
				return errors.New("empty path")
			}
			c.Sysfs.NetDir = v
			return nil
		},
	}

	// The parse function accepts the given overrides (key=value pairs) and
	// processes each. This is run first for env vars then for flags.
	parse := func(isEnv bool, kvs []string) error {
		from := "flag"
		if isEnv {
			from = "env"
		}
		for _, opt := range kvs {
			kv := strings.SplitN(opt, "=", 2)
			if len(kv) != 2 {
				return fmt.Errorf("%s config: %q is not a key=value", from, opt)
			}
			k, v := kv[0], kv[1]

			fn, exists := fns[strings.ToLower(k)]
			if !exists {
				return fmt.Errorf("%s config: unknown key %q", from, k)
			}
			if err := fn(v); err != nil {
				return fmt.Errorf("%s config key %q: %s", from, k, err)
			}
		}
		return nil
	}

	var envOverrides []string
	for k := range fns {
		targetKey := k
		k = strings.ReplaceAll(k, ".", "_")
		k = strings.ToUpper(k)
		if v, exists := os.LookupEnv(envPrefix + k); exists {
			envOverrides = append(envOverrides, targetKey+"="+v)
		}
	}

	if err := parse(true, envOverrides); err != nil {
		return err
	}
	return parse(false, p.FlagOverrides)
}

// Logger builds the process logger: a colored development logger at debug
// level when verbose, a production logger at warn level otherwise. Both
// write to stderr so that stdout stays reserved for progress messages.
func (p *Params) Logger() (*zap.Logger, error) {
	var config zap.Config
	if p.Verbose {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		config = zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	return config.Build()
}
