package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/xfer/internal/cliconfig"
	"github.com/bft-labs/xfer/pkg/log"
)

const helpDescription = `
Checksum, inspect and verify save files written by the xfer transfer layer.

Highlights:
  - Byte-for-byte checksums that match the in-process CRC transfer.
  - Header inspection for saves in the configured save directory.
  - A directory watcher that reports checksums as saves settle.
  - A selftest that round-trips a pooled sample world through disk.
`

var longHelp = strings.TrimSpace(helpDescription)

var exampleUsage = strings.TrimSpace(`
  xferctl crc saves/slot1.sav saves/slot2.sav
  xferctl inspect slot1.sav --save-dir ~/.xfer/saves
  xferctl watch ./saves --log-level debug
  xferctl selftest --units 200 --frames 30
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// cli carries the resolved configuration to subcommands.
type cli struct {
	cfg     cliconfig.Config
	cfgPath string
	logger  log.Logger
}

func main() {
	c := &cli{cfg: cliconfig.DefaultConfig(), logger: log.NewNoopLogger()}
	root := newRootCommand(c)
	if err := root.ExecuteContext(context.Background()); err != nil {
		c.logger.Error("xferctl", log.Err(err))
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCommand(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:           "xferctl",
		Short:         "Checksum, inspect and verify xfer save files",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.resolve(cmd)
		},
	}

	// Flags
	pf := root.PersistentFlags()
	pf.StringVar(&c.cfgPath, "config", "", "path to config file (default: $HOME/.xfer/config.toml)")
	pf.StringVar(&c.cfg.SaveDir, "save-dir", c.cfg.SaveDir, "directory holding save files")
	pf.StringVar(&c.cfg.LogLevel, "log-level", c.cfg.LogLevel, "log level (debug, info, warn, error)")
	pf.IntVar(&c.cfg.PoolInitial, "pool-initial", c.cfg.PoolInitial, "instances preallocated per pool")
	pf.IntVar(&c.cfg.PoolOverflow, "pool-overflow", c.cfg.PoolOverflow, "instances added when a pool runs dry")
	pf.StringVar(&c.cfg.WatchPattern, "watch-pattern", c.cfg.WatchPattern, "save file name pattern for watch")
	pf.DurationVar(&c.cfg.WatchDebounce, "watch-debounce", c.cfg.WatchDebounce, "quiet period before a changed save is checksummed")

	root.AddCommand(
		newCRCCommand(c),
		newInspectCommand(c),
		newWatchCommand(c),
		newSelftestCommand(c),
	)
	return root
}

// resolve layers the config file, XFER_* environment and explicit flags,
// in increasing precedence, then builds the logger.
func (c *cli) resolve(cmd *cobra.Command) error {
	cfgFile := c.cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}

	// Build set of changed flags
	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(&c.cfg, fc, changed); err != nil {
			return err
		}
	}

	if err := cliconfig.ApplyEnvConfig(&c.cfg, changed); err != nil {
		return err
	}

	if err := c.cfg.Validate(); err != nil {
		return err
	}

	logger, err := log.NewConsoleAdapter(os.Stderr, c.cfg.LogLevel)
	if err != nil {
		return err
	}
	c.logger = logger
	logger.Debug("configuration", log.Any("config", c.cfg))
	return nil
}
