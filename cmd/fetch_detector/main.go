package main

import "flag"
import "fmt"
import "log"

import "github.com/CDupuis7/tML-EC-QR/assets"
import "github.com/CDupuis7/tML-EC-QR/config"
import "github.com/CDupuis7/tML-EC-QR/download"

func main() {
	conf := flag.String("config", "", "toolkit config yaml")
	dir := flag.String("assets", "", "app assets directory (default from config)")
	flag.Parse()

	cfg, err := config.FromFlag(*conf)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *dir == "" {
		*dir = cfg.AssetsDir
	}

	d := assets.Dir(*dir)
	if err := d.Ensure(); err != nil {
		log.Fatalf("prepare assets dir: %v", err)
	}

	backup, err := d.Backup(assets.QRModelFile)
	if err != nil {
		log.Fatalf("back up %s: %v", assets.QRModelFile, err)
	}
	if backup != "" {
		fmt.Printf("Moved the bundled QR detector to %s\n", backup)
	}

	path, err := d.WriteDetectorConfig(assets.DefaultDetectorConfig())
	if err != nil {
		log.Fatalf("write detector config: %v", err)
	}
	fmt.Printf("Created detection config: %s\n", path)

	files := make([]download.File, 0, len(cfg.Downloads))
	for _, dl := range cfg.Downloads {
		files = append(files, download.File{
			Name:        dl.Name,
			Description: dl.Description,
			Size:        dl.Size,
			URL:         dl.URL,
			Fallback:    dl.Fallback,
			Path:        d.Join(dl.Filename),
			SHA256:      dl.SHA256,
		})
	}
	if download.FetchAll(files) == 0 {
		fmt.Println("\nNo model could be downloaded automatically. Fetch one manually:")
		for _, f := range files {
			fmt.Printf("  %s\n    %s\n    save as %s\n", f.Name, f.URL, f.Path)
		}
	}

	entries, err := d.List()
	if err != nil {
		log.Fatalf("list assets: %v", err)
	}
	fmt.Printf("\nAssets in %s:\n", *dir)
	for _, e := range entries {
		fmt.Printf("  %s (%.1f MB)\n", e.Name, e.MB)
	}
}
