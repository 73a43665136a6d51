package savegame

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bft-labs/xfer/pkg/log"
	"github.com/bft-labs/xfer/pkg/transfer"
)

// Option configures a FileRepository.
type Option func(*FileRepository)

// WithLogger sets the logger used to report saves and loads.
func WithLogger(logger log.Logger) Option {
	return func(r *FileRepository) {
		r.logger = logger
	}
}

// FileRepository implements Repository with one file per save.
type FileRepository struct {
	dir    string
	logger log.Logger
}

var _ Repository = (*FileRepository)(nil)

// NewFileRepository creates a FileRepository for the given directory.
func NewFileRepository(dir string, opts ...Option) *FileRepository {
	r := &FileRepository{dir: dir, logger: log.NewNoopLogger()}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = log.NewNoopLogger()
	}
	return r
}

// Save writes a header and every entity to name, atomically.
func (r *FileRepository) Save(ctx context.Context, name string, entities ...transfer.Transferable) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	start := time.Now()

	s := transfer.NewSaveFile(r.dir)
	if err := s.Open(name); err != nil {
		return err
	}
	h := newHeader()
	if err := xferAll(ctx, s, &h, entities); err != nil {
		if aerr := s.Abort(); aerr != nil {
			r.logger.Warn("abort save", log.String("name", name), log.Err(aerr))
		}
		return fmt.Errorf("save %s: %w", name, err)
	}
	if err := s.Close(); err != nil {
		return err
	}

	r.logger.Info("saved",
		log.String("name", name),
		log.Int("entities", len(entities)),
		log.Int64("bytes", s.Written()),
		log.Duration("took", time.Since(start)))
	return nil
}

// Load reads the header of name and fills every entity from it.
func (r *FileRepository) Load(ctx context.Context, name string, entities ...transfer.Transferable) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	start := time.Now()

	l := transfer.NewLoadFile(r.dir)
	if err := l.Open(name); err != nil {
		return err
	}
	var h Header
	err := xferAll(ctx, l, &h, entities)
	if cerr := l.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("load %s: %w", name, err)
	}

	r.logger.Info("loaded",
		log.String("name", name),
		log.Int("entities", len(entities)),
		log.Int64("bytes", l.Consumed()),
		log.Duration("took", time.Since(start)))
	return nil
}

// Info describes a save file on disk.
type Info struct {
	Name   string
	Format uint8
	Size   int64
	CRC    uint32
}

// Inspect validates the header of name and checksums the whole file.
func (r *FileRepository) Inspect(ctx context.Context, name string) (Info, error) {
	if err := ctx.Err(); err != nil {
		return Info{}, err
	}
	l := transfer.NewLoadFile(r.dir)
	if err := l.Open(name); err != nil {
		return Info{}, err
	}
	var h Header
	err := h.Xfer(l)
	if cerr := l.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return Info{}, fmt.Errorf("inspect %s: %w", name, err)
	}

	path := r.Path(name)
	f, err := os.Open(path)
	if err != nil {
		return Info{}, err
	}
	defer f.Close()
	st, err := f.Stat()
	if err != nil {
		return Info{}, err
	}
	crc, err := transfer.ChecksumReader(name, f)
	if err != nil {
		return Info{}, err
	}
	return Info{Name: name, Format: h.Format, Size: st.Size(), CRC: crc}, nil
}

// Path returns the full path of the save called name.
func (r *FileRepository) Path(name string) string {
	return filepath.Join(r.dir, name)
}

// Checksum returns the state checksum of entities, in order. The header is
// not included, so the value only depends on entity state.
func Checksum(entities ...transfer.Transferable) (uint32, error) {
	c := transfer.NewCRC()
	if err := c.Open("state"); err != nil {
		return 0, err
	}
	if err := transfer.Objects(c, entities...); err != nil {
		return 0, err
	}
	if err := c.Close(); err != nil {
		return 0, err
	}
	return c.CRC(), nil
}

func xferAll(ctx context.Context, t transfer.Transfer, h *Header, entities []transfer.Transferable) error {
	if err := h.Xfer(t); err != nil {
		return err
	}
	for i, e := range entities {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := e.Xfer(t); err != nil {
			return fmt.Errorf("entity %d: %w", i, err)
		}
	}
	return nil
}
