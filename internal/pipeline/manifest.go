package pipeline

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// writeManifest writes the concat demuxer input list, one `file '<path>'` line per member
func writeManifest(path string, members []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create manifest: %w", err)
	}

	w := bufio.NewWriter(f)
	for _, m := range members {
		if _, err := fmt.Fprintf(w, "file '%s'\n", quoteManifestPath(m)); err != nil {
			f.Close()
			return fmt.Errorf("write manifest: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("flush manifest: %w", err)
	}

	return f.Close()
}

// quoteManifestPath escapes apostrophes for a single-quoted concat demuxer entry as '\''
func quoteManifestPath(p string) string {
	return strings.ReplaceAll(p, "'", "'\\''")
}
