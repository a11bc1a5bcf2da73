package transfer

import (
	"path"
	"path/filepath"
	"strings"
)

// Descriptor pairs a local file with the object key it transfers as.
// Key is derived from the local path by KeyForPath and left empty until
// the caller assigns it.
type Descriptor struct {
	LocalPath string
	Key       string
	Size      int64
}

// KeyForPath builds the object key for a local file path.
// With stripDirs set, directory components are dropped and the key is
// prefix plus the base name. Otherwise the key is prefix plus the full
// path with forward slashes. An empty prefix leaves the path untouched.
func KeyForPath(localPath, prefix string, stripDirs bool) string {
	p := filepath.ToSlash(localPath)
	if stripDirs {
		return prefix + path.Base(p)
	}
	return prefix + p
}

// DestinationPath maps an object key to a local path under localDir.
// A leading separator on the key is stripped so the key always joins
// below localDir.
func DestinationPath(localDir, key string) string {
	key = strings.TrimPrefix(key, "/")
	return filepath.Join(localDir, filepath.FromSlash(key))
}
