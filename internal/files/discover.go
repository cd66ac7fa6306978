// Package files finds source clips and prepares the destination tree.
package files

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/recode-flow/internal/logger"
)

// Match reports whether path is a discoverable clip: its file name ends with ext
// and the full path contains identifier. Both checks are literal.
func Match(path, ext, identifier string) bool {
	return strings.HasSuffix(filepath.Base(path), ext) && strings.Contains(path, identifier)
}

// Discover walks root recursively and returns the absolute paths of regular files
// accepted by Match. An invalid root is logged and yields an empty list.
func Discover(ctx context.Context, log logger.Logger, root, ext, identifier string) []string {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		log.Warn(ctx, "%s is not a valid directory: %v", root, err)
		return []string{}
	}

	info, err := os.Stat(absRoot)
	if err != nil || !info.IsDir() {
		log.Warn(ctx, "%s is not a valid directory.", root)
		return []string{}
	}

	matches := []string{}
	_ = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			log.Warn(ctx, "Skipping %s: %v", path, walkErr)
			if d != nil && d.IsDir() && path != absRoot {
				return filepath.SkipDir
			}
			return nil
		}
		if !isRegularFile(path, d) {
			return nil
		}
		if Match(path, ext, identifier) {
			matches = append(matches, path)
		}
		return nil
	})

	log.Debug(ctx, "Discovered %d files under %s", len(matches), absRoot)
	return matches
}

// isRegularFile accepts regular files and symlinks that resolve to one.
// Symlinked directories are listed but not descended into.
func isRegularFile(path string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
