package charts

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
)

// OpenInBrowser opens the given file in the default web browser.
func OpenInBrowser(filePath string) error {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	name, args, err := browserCommand(runtime.GOOS, absPath)
	if err != nil {
		return err
	}
	return exec.Command(name, args...).Start()
}

func browserCommand(goos, path string) (string, []string, error) {
	switch goos {
	case "darwin":
		return "open", []string{path}, nil
	case "windows":
		return "cmd", []string{"/c", "start", path}, nil
	case "linux", "freebsd", "openbsd":
		return "xdg-open", []string{path}, nil
	}
	return "", nil, fmt.Errorf("unsupported platform: %s", goos)
}
