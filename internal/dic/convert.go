package dic

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/banshee-data/strainmap/internal/fsutil"
	"github.com/banshee-data/strainmap/internal/monitoring"
)

// CacheName returns filename with its extension replaced by CacheExt.
func CacheName(filename string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename)) + CacheExt
}

// ConvertTextToCache reads the text export filename and writes its table,
// unchanged, to CacheName(filename). It returns the cache file name.
func ConvertTextToCache(fsys fsutil.FileSystem, filename string) (string, error) {
	in, err := fsys.Open(filename)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", filename, err)
	}
	t, err := ReadText(in)
	in.Close()
	if err != nil {
		return "", fmt.Errorf("%s: %w", filename, err)
	}

	out := CacheName(filename)
	w, err := fsys.Create(out)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", out, err)
	}
	if err := WriteCache(w, t); err != nil {
		w.Close()
		return "", fmt.Errorf("%s: %w", out, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", out, err)
	}

	rows, cols := t.Dims()
	monitoring.Opsf("Created file %s.", out)
	monitoring.Diagf("cache %s holds %d rows x %d columns", out, rows, cols)
	return out, nil
}
