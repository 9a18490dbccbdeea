package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

var errPathEscape = errors.New("storage: path escapes base directory")

// Disk stores blobs under a base directory on the local filesystem.
type Disk struct {
	baseDir string
}

func NewDisk(baseDir string) *Disk {
	return &Disk{baseDir: baseDir}
}

func (d *Disk) resolve(path string) (string, error) {
	full := filepath.Join(d.baseDir, path)
	if !strings.HasPrefix(full, filepath.Clean(d.baseDir)+string(os.PathSeparator)) {
		return "", errPathEscape
	}
	return full, nil
}

func (d *Disk) Save(path string, data []byte) error {
	full, err := d.resolve(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return err
	}
	return os.WriteFile(full, data, 0o644)
}

func (d *Disk) Delete(path string) error {
	full, err := d.resolve(path)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (d *Disk) Exists(path string) bool {
	full, err := d.resolve(path)
	if err != nil {
		return false
	}
	_, err = os.Stat(full)
	return err == nil
}
