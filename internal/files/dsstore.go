package files

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/nguyentantai21042004/recode-flow/internal/logger"
)

const dsStore = ".DS_Store"

// RemoveDSStore deletes Finder metadata entries named .DS_Store under root,
// whether they are files or directories. Failures are logged and skipped.
func RemoveDSStore(ctx context.Context, log logger.Logger, root string) int {
	var targets []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil
		}
		if d.Name() == dsStore {
			targets = append(targets, path)
			if d.IsDir() {
				return filepath.SkipDir
			}
		}
		return nil
	})
	if err != nil {
		log.Warn(ctx, "Error walking %s: %v", root, err)
	}

	removed := 0
	for _, path := range targets {
		if err := os.RemoveAll(path); err != nil {
			log.Warn(ctx, "Error deleting %s: %v", path, err)
			continue
		}
		log.Info(ctx, "Deleted %s", path)
		removed++
	}
	return removed
}
