// Copyright 2024 Redpanda Data, Inc.
//
// Use of this software is governed by the Business Source License
// included in the file licenses/BSL.md
//
// As of the Change Date specified in that file, in accordance with
// the Business Source License, use of this software will be governed
// by the Apache License, Version 2.0


// Package cli contains the ringmax commands.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/ringmax/ringmax/pkg/cli/version"
	"github.com/ringmax/ringmax/pkg/config"
	rmos "github.com/ringmax/ringmax/pkg/os"
	"github.com/ringmax/ringmax/pkg/out"
	"github.com/ringmax/ringmax/pkg/tuners/ethtool"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/term"
)

const (
	exitUsage       = 2
	exitNotEthernet = 5
	exitNotRoot     = 20
)

// host is what the commands need from the machine they run on.
type host struct {
	fs      afero.Fs
	proc    rmos.Proc
	isRoot  func() bool
	ethtool func() (ethtool.EthtoolWrapper, error)
	out     io.Writer
	errOut  io.Writer
}

func newHost(fs afero.Fs) *host {
	return &host{
		fs:      fs,
		proc:    rmos.NewProc(),
		isRoot:  rmos.IsRoot,
		ethtool: ethtool.NewEthtoolWrapper,
		out:     os.Stdout,
		errOut:  os.Stderr,
	}
}

func Execute() {
	fs := afero.NewOsFs()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		color.NoColor = true
	}

	p := new(config.Params)
	runXHelp := func() {
		for _, o := range p.FlagOverrides {
			switch {
			case o == "help":
				fmt.Print(config.ParamsHelp())
			case o == "list":
				fmt.Print(config.ParamsList())
			default:
				return
			}
			os.Exit(0)
		}
	}
	cobra.OnInitialize(func() {
		runXHelp()
		logger, err := p.Logger()
		out.MaybeDie(err, "unable to initialize the logger: %v", err)
		zap.ReplaceGlobals(logger)
	})

	root := newRootCommand(p, newHost(fs))
	if err := root.Execute(); err != nil {
		os.Exit(exitUsage)
	}
}

func newRootCommand(p *config.Params, h *host) *cobra.Command {
	var (
		device      string
		scriptPath  string
		ethtoolPath string
		timeout     time.Duration
	)
	root := &cobra.Command{
		Use:   "ringmax",
		Short: "Set the ring buffers of an Ethernet interface to their maximum",
		Long: `Set the ring buffers of an Ethernet interface to their maximum.

ringmax queries the RX and TX descriptor ring sizes of the device with
'ethtool -g' and raises each of them to the maximum reported by the driver
with 'ethtool -G'. The device must be an Ethernet interface and, unless
--output-script is used, the command must run as root.

Exit status is 0 on success, 5 if the device is not Ethernet, 10 if the ring
sizes could not be retrieved, 20 if not run as root, and otherwise the number
of directions that could not be set.`,
		Version: version.Pretty(),
		Args:    cobra.NoArgs,

		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},

		Run: func(cmd *cobra.Command, _ []string) {
			cfg, err := loadConfig(h.fs, p, cmd.Flags(), ethtoolPath, timeout)
			out.MaybeDieErr(err)
			if code := maximize(cmd.Context(), h, cfg, device, scriptPath); code != 0 {
				os.Exit(code)
			}
		},
	}

	f := root.Flags()
	f.StringVarP(&device, "device", "d", "", "Network interface to tune (e.g. eth0)")
	f.StringVar(&scriptPath, "output-script", "", "Write the ethtool commands to this script instead of running them")
	addEthtoolFlags(f, &ethtoolPath, &timeout)
	root.MarkFlagRequired("device")

	pf := root.PersistentFlags()
	pf.StringVar(&p.ConfigPath, "config", "", fmt.Sprintf("ringmax config file; default search paths are %q and $XDG_CONFIG_HOME/ringmax/ringmax.yaml", config.DefaultPath))
	pf.StringArrayVarP(&p.FlagOverrides, "config-opt", "X", nil, "Override ringmax configuration settings; '-X help' for detail or '-X list' for terser detail")
	pf.BoolVarP(&p.Verbose, "verbose", "v", false, "Enable verbose logging")

	root.RegisterFlagCompletionFunc("config-opt", func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		var opts []string
		for _, line := range strings.Split(config.ParamsList(), "\n") {
			if line == "" || !strings.HasPrefix(line, toComplete) {
				continue
			}
			opts = append(opts, line)
		}
		return opts, cobra.ShellCompDirectiveNoSpace
	})

	root.AddCommand(
		newCheckCommand(p, h),
		newListCommand(p, h),
		version.NewCommand(),
	)
	return root
}

func addEthtoolFlags(f *pflag.FlagSet, ethtoolPath *string, timeout *time.Duration) {
	f.StringVar(ethtoolPath, "ethtool-path", config.DefaultEthtoolPath, "Path to the ethtool binary")
	f.DurationVar(timeout, "timeout", config.DefaultEthtoolTimeout, "Duration after which an ethtool invocation is killed")
}

// loadConfig loads the configuration, letting the command's ethtool flags
// win over the file, env and -X when explicitly set.
func loadConfig(
	fs afero.Fs, p *config.Params, f *pflag.FlagSet, ethtoolPath string, timeout time.Duration,
) (*config.Config, error) {
	cfg, err := p.Load(fs)
	if err != nil {
		return nil, fmt.Errorf("unable to load config: %v", err)
	}
	if f.Changed("ethtool-path") {
		if ethtoolPath == "" {
			return nil, errors.New("--ethtool-path cannot be empty")
		}
		cfg.Ethtool.Path = ethtoolPath
	}
	if f.Changed("timeout") {
		if timeout <= 0 {
			return nil, fmt.Errorf("--timeout must be positive, got %s", timeout)
		}
		cfg.Ethtool.Timeout = timeout
	}
	zap.L().Sugar().Debugf("Using ethtool %q with a %s timeout, interfaces under %q", cfg.Ethtool.Path, cfg.Ethtool.Timeout, cfg.Sysfs.NetDir)
	return cfg, nil
}
