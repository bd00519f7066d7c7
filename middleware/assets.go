package middleware

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// LandingAssets are the static files referenced by the page shell
var LandingAssets = []string{
	"css/style.css",
	"js/landing.js",
	"images/favicon.png",
}

var (
	assetVersions   = make(map[string]string)
	assetVersionsMu sync.RWMutex
)

// InitAssetVersions computes file hashes for cache busting at startup.
// files are relative to staticDir.
func InitAssetVersions(staticDir string, files ...string) {
	versions := make(map[string]string, len(files))
	for _, file := range files {
		version := computeFileHash(filepath.Join(staticDir, file))
		if version == "" {
			version = "1"
		}
		versions[file] = version
	}

	assetVersionsMu.Lock()
	assetVersions = versions
	assetVersionsMu.Unlock()

	log.Printf("[INFO] Asset versions initialized: %d files", len(versions))
}

// computeFileHash returns the first 8 characters of the MD5 hash of a file
func computeFileHash(path string) string {
	file, err := os.Open(path)
	if err != nil {
		log.Printf("[WARNING] Failed to open file for hashing %s: %v", path, err)
		return ""
	}
	defer file.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		log.Printf("[WARNING] Failed to hash file %s: %v", path, err)
		return ""
	}

	return hex.EncodeToString(hash.Sum(nil))[:8]
}

// AssetVersion returns the version hash of a static file for cache busting.
// The ctx parameter keeps the signature in line with the other component helpers.
func AssetVersion(ctx context.Context, file string) string {
	assetVersionsMu.RLock()
	defer assetVersionsMu.RUnlock()
	if version, ok := assetVersions[file]; ok {
		return version
	}
	return "1"
}

// AssetURL returns /static/<file>?v=<hash>
func AssetURL(ctx context.Context, file string) string {
	return "/static/" + file + "?v=" + AssetVersion(ctx, file)
}
