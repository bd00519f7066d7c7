package services

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// SyncAssets uploads every file below dir to storage under prefix and
// returns the uploaded keys. Hidden files are skipped.
func SyncAssets(ctx context.Context, storage StorageProvider, dir, prefix string) ([]string, error) {
	var keys []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if strings.HasPrefix(d.Name(), ".") && path != dir {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		key := AssetKey(prefix, rel)

		info, err := d.Info()
		if err != nil {
			return err
		}
		file, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer file.Close()

		if _, err := storage.UploadReader(ctx, file, key, ContentTypeFor(path), info.Size()); err != nil {
			return fmt.Errorf("failed to upload %s: %w", key, err)
		}
		log.Printf("[INFO] Uploaded %s (%d bytes)", key, info.Size())
		keys = append(keys, key)
		return ctx.Err()
	})
	if err != nil {
		return keys, err
	}
	return keys, nil
}
