// Package assets manages the Android app's model asset directory: backups
// of the bundled detector, the detection config, and asset listings.
package assets

import (
	"os"
	"path/filepath"
)

import "github.com/pkg/errors"

// DefaultDir is where the Android build expects model assets.
const DefaultDir = "app/src/main/assets"

// QRModelFile is the bundled QR detector that person detection replaces.
const QRModelFile = "qr_yolov5_tiny.tflite"

// Dir is one assets directory.
type Dir string

// Ensure creates the directory path.
func (d Dir) Ensure() error {
	return errors.Wrap(os.MkdirAll(string(d), 0755), "create assets dir")
}

// Join returns the path of an asset inside the directory.
func (d Dir) Join(name string) string {
	return filepath.Join(string(d), name)
}

// Backup renames name to name.backup. It returns the backup path when a
// rename happened and "" when there was nothing to back up. An existing
// backup is never overwritten.
func (d Dir) Backup(name string) (string, error) {
	src := d.Join(name)
	if _, err := os.Stat(src); err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", errors.Wrap(err, "stat asset")
	}
	dst := src + ".backup"
	if _, err := os.Stat(dst); err == nil {
		return "", nil
	}
	if err := os.Rename(src, dst); err != nil {
		return "", errors.Wrap(err, "back up asset")
	}
	return dst, nil
}

// Entry is one asset file with its size in megabytes.
type Entry struct {
	Name string
	MB   float64
}

// List returns the regular files in the directory.
func (d Dir) List() ([]Entry, error) {
	ents, err := os.ReadDir(string(d))
	if err != nil {
		return nil, errors.Wrap(err, "read assets dir")
	}
	var out []Entry
	for _, e := range ents {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		out = append(out, Entry{Name: e.Name(), MB: float64(info.Size()) / (1024 * 1024)})
	}
	return out, nil
}
