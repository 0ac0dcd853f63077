package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	getter "github.com/hashicorp/go-getter"
)

// Fetch downloads a config file from any go-getter source (local path,
// http(s), git, s3, ...) into dir and returns the local path.
func Fetch(ctx context.Context, src, dir string) (string, error) {
	// Relative local paths need an absolute form; getter has no working dir.
	if _, err := os.Stat(src); err == nil {
		abs, err := filepath.Abs(src)
		if err != nil {
			return "", fmt.Errorf("resolve config path: %w", err)
		}
		src = abs
	}

	dst := filepath.Join(dir, "config.yaml")
	if err := getter.GetFile(dst, src, getter.WithContext(ctx)); err != nil {
		return "", fmt.Errorf("fetch config %s: %w", src, err)
	}
	return dst, nil
}

// LoadSource fetches src into a temporary directory and loads it. A plain
// local file is read in place.
func LoadSource(ctx context.Context, src string) (*Config, error) {
	if fi, err := os.Stat(src); err == nil && fi.Mode().IsRegular() {
		return Load(src)
	}

	dir, err := os.MkdirTemp("", "overworld-config-")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	path, err := Fetch(ctx, src, dir)
	if err != nil {
		return nil, err
	}
	return Load(path)
}
