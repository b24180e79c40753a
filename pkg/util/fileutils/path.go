package fileutils

import (
	"os"
	"path/filepath"
)

// ResolveFromModuleRoot returns path unchanged when it is absolute or exists from the working
// directory. Otherwise it walks up to the nearest directory holding go.mod and returns path
// joined to it, if that file exists. Package tests run from their own directory, so relative
// defaults like configs/messages.yml need this.
func ResolveFromModuleRoot(path string) string {
	if filepath.IsAbs(path) || exists(path) {
		return path
	}
	dir, err := os.Getwd()
	if err != nil {
		return path
	}
	return resolveFrom(dir, path)
}

func resolveFrom(dir, path string) string {
	for {
		if exists(filepath.Join(dir, "go.mod")) {
			if candidate := filepath.Join(dir, path); exists(candidate) {
				return candidate
			}
			return path
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return path
		}
		dir = parent
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
