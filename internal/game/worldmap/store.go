package worldmap

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/OCharnyshevich/overworld/internal/game/journal"
	"github.com/OCharnyshevich/overworld/internal/game/world"
)

// Store writes world exports under a directory.
type Store struct {
	dir string
	log *slog.Logger
}

// New creates a Store rooted at dir, creating it as needed.
func New(dir string, log *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create directory %s: %w", dir, err)
	}
	return &Store{dir: dir, log: log}, nil
}

// TileRecord is one line of a tile dump.
type TileRecord struct {
	X int `json:"x"`
	Y int `json:"y"`
	world.Tile
}

// SavePNG encodes img as name.
func (s *Store) SavePNG(name string, img image.Image) (string, error) {
	path := filepath.Join(s.dir, name)
	err := s.atomicWrite(path, func(w io.Writer) error {
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("encode png: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	s.log.Info("saved map", "path", path, "size", img.Bounds().Size())
	return path, nil
}

// SaveTiles writes every in-bounds tile as zstd-compressed JSONL, row by row.
func (s *Store) SaveTiles(name string, w *world.World) (string, error) {
	path := filepath.Join(s.dir, name)
	n := w.Dimensions().WorldSize
	err := s.atomicWrite(path, func(out io.Writer) error {
		enc, err := journal.NewEncoder(out)
		if err != nil {
			return err
		}
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				if err := enc.Encode(TileRecord{X: x, Y: y, Tile: w.GetTile(x, y)}); err != nil {
					_ = enc.Close()
					return err
				}
			}
		}
		return enc.Close()
	})
	if err != nil {
		return "", err
	}
	s.log.Info("saved tiles", "path", path, "tiles", n*n)
	return path, nil
}

// SaveBytes writes raw data as name.
func (s *Store) SaveBytes(name string, data []byte) (string, error) {
	path := filepath.Join(s.dir, name)
	err := s.atomicWrite(path, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
	return path, err
}

// atomicWrite streams into a temp file and renames it over path.
func (s *Store) atomicWrite(path string, fill func(io.Writer) error) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	bw := bufio.NewWriter(f)
	if err := fill(bw); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("flush temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
