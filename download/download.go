// Package download fetches model files over HTTP in fixed-size chunks with
// inline progress output and optional checksum verification.
package download

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

import "github.com/pkg/errors"

// File is one download target.
type File struct {
	Name        string // short display name
	Description string
	Size        string // human-readable size hint
	URL         string
	Fallback    string // second source, the first URL again when empty
	Path        string // destination on disk
	SHA256      string // optional hex digest to verify after the download
}

const chunkSize = 8192

// Fetch downloads one file. When the first attempt fails it retries once,
// against the fallback URL if one is set.
func Fetch(f File) error {
	err := fetchURL(f.URL, f)
	if err == nil {
		return nil
	}
	retry := f.Fallback
	if retry == "" {
		retry = f.URL
	}
	fmt.Printf("\nFirst attempt failed (%v), retrying...\n", err)
	return fetchURL(retry, f)
}

func fetchURL(url string, f File) error {
	fmt.Printf("Downloading %s from %s...\n", filepath.Base(f.Path), url)
	resp, err := http.Get(url)
	if err != nil {
		return errors.Wrapf(err, "get %s", url)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("get %s: %s", url, resp.Status)
	}
	if dir := filepath.Dir(f.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrap(err, "create download dir")
		}
	}
	out, err := os.Create(f.Path)
	if err != nil {
		return errors.Wrap(err, "create download file")
	}
	sum := sha256.New()
	total := resp.ContentLength
	var written int64
	buf := make([]byte, chunkSize)
	for {
		n, rerr := resp.Body.Read(buf)
		if n > 0 {
			if _, werr := out.Write(buf[:n]); werr != nil {
				out.Close()
				return errors.Wrap(werr, "write download file")
			}
			sum.Write(buf[:n])
			written += int64(n)
			if total > 0 {
				fmt.Printf("\rProgress: %.1f%% (%d/%d bytes)", 100*float64(written)/float64(total), written, total)
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			out.Close()
			return errors.Wrapf(rerr, "read %s", url)
		}
	}
	out.Close()
	fmt.Println()
	if f.SHA256 != "" {
		if got := hex.EncodeToString(sum.Sum(nil)); got != f.SHA256 {
			return errors.Errorf("checksum mismatch for %s: got %s want %s", f.Path, got, f.SHA256)
		}
	}
	return nil
}

// FetchAll downloads every file best effort and returns how many landed.
func FetchAll(files []File) (succeeded int) {
	for _, f := range files {
		if f.Description != "" {
			fmt.Printf("\n%s\n", f.Description)
		}
		if f.Size != "" {
			fmt.Printf("   Size: %s\n", f.Size)
		}
		if err := Fetch(f); err != nil {
			fmt.Printf("Failed to download %s: %v\n", f.Name, err)
			continue
		}
		fmt.Printf("Downloaded %s successfully!\n", filepath.Base(f.Path))
		succeeded++
	}
	return
}
