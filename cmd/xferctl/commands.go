package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bft-labs/xfer/internal/sample"
	"github.com/bft-labs/xfer/internal/watch"
	"github.com/bft-labs/xfer/pkg/log"
	"github.com/bft-labs/xfer/pkg/pool"
	"github.com/bft-labs/xfer/pkg/savegame"
	"github.com/bft-labs/xfer/pkg/transfer"
)

func newCRCCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "crc <file>...",
		Short: "Print the transfer checksum of each file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, path := range args {
				crc, err := checksumFile(path)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%08x  %s\n", crc, path)
			}
			return nil
		},
	}
}

func checksumFile(path string) (uint32, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return transfer.ChecksumReader(path, f)
}

func newInspectCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <name>...",
		Short: "Validate save headers in the save directory and print their checksums",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo := savegame.NewFileRepository(c.cfg.SaveDir, savegame.WithLogger(c.logger))
			out := cmd.OutOrStdout()
			for _, name := range args {
				info, err := repo.Inspect(cmd.Context(), name)
				if err != nil {
					return err
				}
				c.logger.Debug("inspected",
					log.String("name", info.Name),
					log.Int64("size", info.Size),
					log.Checksum("crc", info.CRC))
				fmt.Fprintf(out, "%s\tformat=%d\tsize=%d\tcrc=%08x\n", info.Name, info.Format, info.Size, info.CRC)
			}
			return nil
		},
	}
}

func newWatchCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "watch [dir]",
		Short: "Report checksums of save files as they are written",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := c.cfg.SaveDir
			if len(args) == 1 {
				dir = args[0]
			}
			out := cmd.OutOrStdout()
			w, err := watch.New(watch.Config{
				Dir:      dir,
				Pattern:  c.cfg.WatchPattern,
				Debounce: c.cfg.WatchDebounce,
			}, c.logger, func(r watch.Result) {
				if r.Err != nil {
					c.logger.Warn("checksum failed", log.String("name", r.Name), log.Err(r.Err))
					return
				}
				fmt.Fprintf(out, "%08x  %s\t%d\n", r.CRC, r.Name, r.Size)
			})
			if err != nil {
				return err
			}

			// Setup signal handling for graceful shutdown
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := w.Run(ctx); err != nil {
				return err
			}
			c.logger.Info("received signal, stopping")
			return nil
		},
	}
}

func newSelftestCommand(c *cli) *cobra.Command {
	var (
		units  int
		frames int
		seed   int64
		keep   bool
	)
	cmd := &cobra.Command{
		Use:   "selftest",
		Short: "Round-trip a pooled sample world through a save file and compare checksums",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.selftest(cmd, units, frames, seed, keep)
		},
	}
	cmd.Flags().IntVar(&units, "units", 100, "units to spawn")
	cmd.Flags().IntVar(&frames, "frames", 10, "frames to simulate before saving")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed for unit placement")
	cmd.Flags().BoolVar(&keep, "keep", false, "keep the selftest save file")
	return cmd
}

const selftestSave = "selftest.sav"

func (c *cli) selftest(cmd *cobra.Command, units, frames int, seed int64, keep bool) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	opts := []pool.Option{pool.WithLogger(c.logger)}

	src := sample.NewWorld(c.cfg.PoolInitial, c.cfg.PoolOverflow, opts...)
	defer src.Clear()
	src.Populate(units, seed)
	for i := 0; i < frames; i++ {
		src.Step()
	}
	want, err := savegame.Checksum(src)
	if err != nil {
		return err
	}

	repo := savegame.NewFileRepository(c.cfg.SaveDir, savegame.WithLogger(c.logger))
	if err := repo.Save(ctx, selftestSave, src); err != nil {
		return err
	}
	if !keep {
		defer os.Remove(repo.Path(selftestSave))
	}

	dst := sample.NewWorld(c.cfg.PoolInitial, c.cfg.PoolOverflow, opts...)
	defer dst.Clear()
	if err := repo.Load(ctx, selftestSave, dst); err != nil {
		return err
	}
	got, err := savegame.Checksum(dst)
	if err != nil {
		return err
	}

	reg := pool.NewRegistry()
	if err := src.Register(reg); err != nil {
		return err
	}
	reg.Log(c.logger)
	for _, s := range reg.Stats() {
		fmt.Fprintln(out, s)
	}

	c.logger.Info("selftest round trip",
		log.Int("units", len(dst.Units)),
		log.Uint32("frame", dst.Frame),
		log.Checksum("saved", want),
		log.Checksum("loaded", got))
	fmt.Fprintf(out, "state crc: saved=%08x loaded=%08x\n", want, got)
	if want != got {
		return fmt.Errorf("selftest: checksum mismatch: saved %08x, loaded %08x", want, got)
	}
	fmt.Fprintln(out, "ok")
	return nil
}
