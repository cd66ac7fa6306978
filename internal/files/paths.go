package files

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/recode-flow/internal/logger"
)

// MirrorPath maps path from under srcRoot to the same relative location under dstRoot.
// Paths outside srcRoot are returned unchanged.
func MirrorPath(path, srcRoot, dstRoot string) string {
	if !strings.HasPrefix(path, srcRoot) {
		return path
	}
	return dstRoot + path[len(srcRoot):]
}

// ReplaceExt swaps the trailing ext of path for newExt. If path does not end with
// ext, newExt is appended.
func ReplaceExt(path, ext, newExt string) string {
	return strings.TrimSuffix(path, ext) + newExt
}

// EnsureParentDir creates the parent directory of path, with all missing ancestors.
// It returns false if the directory could not be created.
func EnsureParentDir(ctx context.Context, log logger.Logger, path string) bool {
	dir := filepath.Dir(path)
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		return true
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Error(ctx, "Could not create directory %s: %v", dir, err)
		return false
	}

	log.Info(ctx, "Directory %s created.", dir)
	return true
}
