package download

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
)

func TestFetch(t *testing.T) {
	body := make([]byte, 3*chunkSize+100)
	for i := range body {
		body[i] = byte(i)
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(body)
	}))
	defer srv.Close()

	digest := sha256.Sum256(body)
	path := filepath.Join(t.TempDir(), "models", "weights.tflite")
	err := Fetch(File{
		Name:   "test model",
		URL:    srv.URL,
		Path:   path,
		SHA256: hex.EncodeToString(digest[:]),
	})
	if err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(body) {
		t.Fatalf("downloaded %d bytes, want %d", len(got), len(body))
	}
}

func TestFetchChecksumMismatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not the model you expected"))
	}))
	defer srv.Close()
	err := Fetch(File{
		URL:    srv.URL,
		Path:   filepath.Join(t.TempDir(), "m.tflite"),
		SHA256: "00000000000000000000000000000000",
	})
	if err == nil {
		t.Fatal("checksum mismatch not reported")
	}
}

func TestFetchFallsBack(t *testing.T) {
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer bad.Close()
	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("fallback payload"))
	}))
	defer good.Close()

	path := filepath.Join(t.TempDir(), "m.tflite")
	err := Fetch(File{URL: bad.URL, Fallback: good.URL, Path: path})
	if err != nil {
		t.Fatal(err)
	}
	got, _ := os.ReadFile(path)
	if string(got) != "fallback payload" {
		t.Errorf("file content %q", got)
	}
}

func TestFetchRetriesSameURL(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, "busy", http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("second time lucky"))
	}))
	defer srv.Close()
	path := filepath.Join(t.TempDir(), "m.tflite")
	if err := Fetch(File{URL: srv.URL, Path: path}); err != nil {
		t.Fatal(err)
	}
	if calls.Load() != 2 {
		t.Errorf("server saw %d calls, want 2", calls.Load())
	}
}

func TestFetchAllContinuesOnError(t *testing.T) {
	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("payload"))
	}))
	defer good.Close()
	dir := t.TempDir()
	n := FetchAll([]File{
		{Name: "broken", URL: "http://127.0.0.1:1", Path: filepath.Join(dir, "a")},
		{Name: "works", Description: "A small test file", Size: "7B", URL: good.URL, Path: filepath.Join(dir, "b")},
	})
	if n != 1 {
		t.Fatalf("FetchAll reported %d successes, want 1", n)
	}
	if _, err := os.Stat(filepath.Join(dir, "b")); err != nil {
		t.Error("successful download missing from disk")
	}
}
