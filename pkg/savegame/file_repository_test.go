package savegame

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bft-labs/xfer/pkg/transfer"
)

type counter struct {
	Ticks uint32
	Label string
}

func (c *counter) Xfer(t transfer.Transfer) error {
	if err := transfer.Uint32(t, &c.Ticks); err != nil {
		return err
	}
	return transfer.String(t, &c.Label)
}

type failing struct{}

func (failing) Xfer(t transfer.Transfer) error {
	if err := t.User([]byte{1, 2, 3}); err != nil {
		return err
	}
	return errors.New("entity refused")
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	repo := NewFileRepository(dir)
	ctx := context.Background()

	a := &counter{Ticks: 99, Label: "alpha"}
	b := &counter{Ticks: 7, Label: "beta"}
	if err := repo.Save(ctx, "slot1.sav", a, b); err != nil {
		t.Fatalf("Save: %v", err)
	}

	var gotA, gotB counter
	if err := repo.Load(ctx, "slot1.sav", &gotA, &gotB); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if gotA != *a || gotB != *b {
		t.Fatalf("loaded %+v %+v, want %+v %+v", gotA, gotB, *a, *b)
	}

	want, err := Checksum(a, b)
	if err != nil {
		t.Fatalf("Checksum: %v", err)
	}
	got, err := Checksum(&gotA, &gotB)
	if err != nil {
		t.Fatalf("Checksum: %v", err)
	}
	if got != want {
		t.Fatalf("checksum after load = %08x, want %08x", got, want)
	}
}

func TestSaveFailureKeepsPreviousSave(t *testing.T) {
	dir := t.TempDir()
	repo := NewFileRepository(dir)
	ctx := context.Background()

	if err := repo.Save(ctx, "slot.sav", &counter{Ticks: 1, Label: "good"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	before, err := os.ReadFile(repo.Path("slot.sav"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	if err := repo.Save(ctx, "slot.sav", &counter{Ticks: 2}, failing{}); err == nil {
		t.Fatal("expected save error")
	}

	after, err := os.ReadFile(repo.Path("slot.sav"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(before) != string(after) {
		t.Fatal("failed save replaced the previous file")
	}
	if _, err := os.Stat(repo.Path("slot.sav") + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temp file left behind: %v", err)
	}
}

func TestLoadRejectsForeignFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "junk.sav"), []byte("PNG\x00\x01rest"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	repo := NewFileRepository(dir)
	err := repo.Load(context.Background(), "junk.sav", &counter{})
	if !errors.Is(err, ErrNotSaveFile) {
		t.Fatalf("Load error = %v, want ErrNotSaveFile", err)
	}
}

func TestLoadRejectsNewerFormat(t *testing.T) {
	dir := t.TempDir()
	data := append([]byte(Magic), FormatVersion+1)
	if err := os.WriteFile(filepath.Join(dir, "future.sav"), data, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	repo := NewFileRepository(dir)
	err := repo.Load(context.Background(), "future.sav")
	if !errors.Is(err, transfer.ErrUnsupportedVersion) {
		t.Fatalf("Load error = %v, want ErrUnsupportedVersion", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	repo := NewFileRepository(t.TempDir())
	err := repo.Load(context.Background(), "nope.sav")
	var rerr *transfer.ResourceError
	if !errors.As(err, &rerr) || !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Load error = %v, want ResourceError wrapping ErrNotExist", err)
	}
}

func TestCanceledContext(t *testing.T) {
	repo := NewFileRepository(t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := repo.Save(ctx, "slot.sav", &counter{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("Save error = %v, want context.Canceled", err)
	}
}

func TestInspect(t *testing.T) {
	dir := t.TempDir()
	repo := NewFileRepository(dir)
	ctx := context.Background()
	if err := repo.Save(ctx, "slot.sav", &counter{Ticks: 3, Label: "x"}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	info, err := repo.Inspect(ctx, "slot.sav")
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	raw, err := os.ReadFile(repo.Path("slot.sav"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	c := transfer.NewCRC()
	if err := c.Open("raw"); err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := c.User(raw); err != nil {
		t.Fatalf("user: %v", err)
	}

	if info.Format != FormatVersion || info.Size != int64(len(raw)) || info.CRC != c.CRC() {
		t.Fatalf("Inspect = %+v, want format %d size %d crc %08x", info, FormatVersion, len(raw), c.CRC())
	}
}
