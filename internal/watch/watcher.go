// Package watch monitors a save directory and checksums save files as they
// are written, so replays and peers can be compared against fresh values.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/xfer/pkg/log"
	"github.com/bft-labs/xfer/pkg/transfer"
)

// Result is reported once per settled save file.
type Result struct {
	Name string
	Size int64
	CRC  uint32
	Err  error
}

// Config holds watcher settings.
type Config struct {
	// Dir is the directory to watch.
	Dir string

	// Pattern selects save files by base name (filepath.Match syntax).
	// Default: *.sav
	Pattern string

	// Debounce is how long a file must stay quiet before it is checksummed.
	// Default: 100 milliseconds
	Debounce time.Duration
}

// Watcher reports checksums of save files created or rewritten in a
// directory.
type Watcher struct {
	cfg      Config
	logger   log.Logger
	onResult func(Result)

	mu     sync.Mutex
	timers map[string]*time.Timer
	wg     sync.WaitGroup
}

// New creates a watcher. onResult is called from timer goroutines and must
// be safe for concurrent use.
func New(cfg Config, logger log.Logger, onResult func(Result)) (*Watcher, error) {
	if cfg.Dir == "" {
		return nil, fmt.Errorf("watch: directory is required")
	}
	if cfg.Pattern == "" {
		cfg.Pattern = "*.sav"
	}
	if _, err := filepath.Match(cfg.Pattern, ""); err != nil {
		return nil, fmt.Errorf("watch: pattern %q: %w", cfg.Pattern, err)
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = 100 * time.Millisecond
	}
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Watcher{
		cfg:      cfg,
		logger:   logger,
		onResult: onResult,
		timers:   make(map[string]*time.Timer),
	}, nil
}

// Scan checksums every matching file currently in the directory, in name
// order.
func (w *Watcher) Scan() error {
	entries, err := os.ReadDir(w.cfg.Dir)
	if err != nil {
		return err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && w.matches(e.Name()) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	for _, name := range names {
		w.report(name)
	}
	return nil
}

// Run scans the directory once and then reports changes until ctx is done.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: create watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(w.cfg.Dir); err != nil {
		return fmt.Errorf("watch: add %s: %w", w.cfg.Dir, err)
	}
	if err := w.Scan(); err != nil {
		return fmt.Errorf("watch: scan: %w", err)
	}
	w.logger.Info("watching save directory",
		log.String("dir", w.cfg.Dir),
		log.String("pattern", w.cfg.Pattern))

	defer w.stopTimers()
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			name := filepath.Base(event.Name)
			if !w.matches(name) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.schedule(name)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", log.Err(err))
		}
	}
}

func (w *Watcher) matches(name string) bool {
	ok, _ := filepath.Match(w.cfg.Pattern, name)
	return ok
}

// schedule restarts the quiet period for name.
func (w *Watcher) schedule(name string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if t, ok := w.timers[name]; ok {
		if t.Stop() {
			w.wg.Done()
		}
	}
	w.wg.Add(1)
	var timer *time.Timer
	timer = time.AfterFunc(w.cfg.Debounce, func() {
		defer w.wg.Done()
		w.mu.Lock()
		if w.timers[name] == timer {
			delete(w.timers, name)
		}
		w.mu.Unlock()
		w.report(name)
	})
	w.timers[name] = timer
}

func (w *Watcher) stopTimers() {
	w.mu.Lock()
	for name, t := range w.timers {
		if t.Stop() {
			w.wg.Done()
		}
		delete(w.timers, name)
	}
	w.mu.Unlock()
	w.wg.Wait()
}

func (w *Watcher) report(name string) {
	res := w.checksum(name)
	if res.Err != nil {
		w.logger.Debug("checksum failed", log.String("name", name), log.Err(res.Err))
	} else {
		w.logger.Debug("save checksummed",
			log.String("name", name),
			log.Int64("size", res.Size),
			log.Checksum("crc", res.CRC))
	}
	w.onResult(res)
}

func (w *Watcher) checksum(name string) Result {
	res := Result{Name: name}
	f, err := os.Open(filepath.Join(w.cfg.Dir, name))
	if err != nil {
		res.Err = err
		return res
	}
	defer f.Close()

	if st, err := f.Stat(); err == nil {
		res.Size = st.Size()
	}
	res.CRC, res.Err = transfer.ChecksumReader(name, f)
	return res
}
