package journal

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/zstd"
)

// Encoder writes one JSON value per line into a zstd stream.
type Encoder struct {
	enc *zstd.Encoder
	w   *bufio.Writer
}

// NewEncoder wraps w. Close flushes the stream but does not close w.
func NewEncoder(w io.Writer) (*Encoder, error) {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}
	return &Encoder{enc: enc, w: bufio.NewWriterSize(enc, 128*1024)}, nil
}

// Encode appends v as one line.
func (e *Encoder) Encode(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	if _, err := e.w.Write(b); err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	return e.w.WriteByte('\n')
}

// Flush writes buffered lines through the compressor as a complete block,
// so they are readable before the frame is closed.
func (e *Encoder) Flush() error {
	if err := e.w.Flush(); err != nil {
		return fmt.Errorf("flush records: %w", err)
	}
	if err := e.enc.Flush(); err != nil {
		return fmt.Errorf("flush zstd block: %w", err)
	}
	return nil
}

// Close flushes and finishes the zstd frame.
func (e *Encoder) Close() error {
	if err := e.Flush(); err != nil {
		_ = e.enc.Close()
		return err
	}
	return e.enc.Close()
}

// Decode reads a zstd JSONL stream and calls fn for every line.
func Decode(r io.Reader, fn func(line json.RawMessage) error) error {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return fmt.Errorf("create zstd decoder: %w", err)
	}
	defer dec.Close()

	sc := bufio.NewScanner(dec)
	sc.Buffer(make([]byte, 64*1024), 4*1024*1024)
	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if err := fn(json.RawMessage(line)); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read journal: %w", err)
	}
	return nil
}

// Writer appends records to hourly rotated files named
// <prefix>-YYYY-MM-DD-HH.jsonl.zst under a directory. It is used from the
// game loop only and is not safe for concurrent use.
type Writer struct {
	dir    string
	prefix string
	now    func() time.Time

	curHour string
	f       *os.File
	enc     *Encoder
}

// NewWriter creates a Writer. Files are created lazily on the first Write.
func NewWriter(dir, prefix string) *Writer {
	return &Writer{dir: dir, prefix: prefix, now: time.Now}
}

// Write appends one record and flushes it, rotating files on hour change.
func (w *Writer) Write(v any) error {
	hour := w.now().UTC().Format("2006-01-02-15")
	if hour != w.curHour {
		if err := w.rotate(hour); err != nil {
			return err
		}
	}
	if err := w.enc.Encode(v); err != nil {
		return err
	}
	return w.enc.Flush()
}

// Close finishes the current file.
func (w *Writer) Close() error {
	var err error
	if w.enc != nil {
		err = w.enc.Close()
		w.enc = nil
	}
	if w.f != nil {
		if cerr := w.f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close journal: %w", cerr)
		}
		w.f = nil
	}
	w.curHour = ""
	return err
}

func (w *Writer) rotate(hour string) error {
	if err := w.Close(); err != nil {
		return err
	}
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("create journal dir: %w", err)
	}
	path := w.PathForHour(hour)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	enc, err := NewEncoder(f)
	if err != nil {
		_ = f.Close()
		return err
	}
	w.f, w.enc, w.curHour = f, enc, hour
	return nil
}

// PathForHour returns the file that holds records of the given hour stamp.
func (w *Writer) PathForHour(hour string) string {
	return filepath.Join(w.dir, fmt.Sprintf("%s-%s.jsonl.zst", w.prefix, hour))
}
