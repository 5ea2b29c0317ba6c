package shell

import (
	"os"
	"path/filepath"
	"strings"
)

// Resolve locates an executable for name. A name containing a path separator
// is checked directly and never searched; otherwise the search path
// directories are probed in order and the first hit wins.
func (s *Shell) Resolve(name string) (string, bool) {
	if strings.ContainsRune(name, os.PathSeparator) {
		if isExecutable(name) {
			return name, true
		}
		return "", false
	}

	for _, dir := range s.pathDirs {
		candidate := filepath.Join(dir, name)
		if isExecutable(candidate) {
			return candidate, true
		}
	}

	return "", false
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular() && info.Mode()&0111 != 0
}
