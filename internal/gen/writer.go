package gen

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// EnsureDir creates dir (and any missing parents) if it does not exist.
// Existing contents are left alone; repeated runs overwrite files in place.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	return nil
}

// DirSize calculates the total size in bytes of all files in dir,
// recursively. If dir does not exist, it returns 0.
func DirSize(dir string) (int64, error) {
	var total int64
	err := filepath.WalkDir(dir, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		total += info.Size()
		return nil
	})
	if err != nil && os.IsNotExist(err) {
		return 0, nil
	}
	return total, err
}

// logf writes a progress line to opts.Out when one is configured.
func logf(opts Options, format string, args ...any) {
	if opts.Out == nil {
		return
	}
	fmt.Fprintf(opts.Out, format, args...)
}
