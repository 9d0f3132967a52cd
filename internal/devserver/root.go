package devserver

import (
	"fmt"
	"os"
	"path/filepath"
)

// ResolveRoot returns the absolute document root.
//
// Candidates are tried in order:
//   - override, when non-empty
//   - the directory containing entrypoint, when it is absolute and exists
//   - the directory containing the running executable
//
// The entrypoint is normally the server's own source file, so `go run` serves
// the directory the server lives in no matter where it was launched from.
func ResolveRoot(override, entrypoint string) (string, error) {
	var dir string
	switch {
	case override != "":
		dir = override
	case filepath.IsAbs(entrypoint) && isDir(filepath.Dir(entrypoint)):
		dir = filepath.Dir(entrypoint)
	default:
		exe, err := os.Executable()
		if err != nil {
			return "", fmt.Errorf("locating executable: %w", err)
		}
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		dir = filepath.Dir(exe)
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}
	if !isDir(abs) {
		return "", fmt.Errorf("directory does not exist: %s", abs)
	}
	return abs, nil
}

func isDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}
