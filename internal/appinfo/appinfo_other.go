//go:build !darwin

package appinfo

import (
	"os"
	"path/filepath"
	"runtime/debug"
)

// GetApplicationName returns the name of the running binary. There is no
// bundle metadata outside macOS.
func GetApplicationName() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	return filepath.Base(exe)
}

// GetApplicationVersion returns the main module version from build info,
// or "" when unknown.
func GetApplicationVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	v := info.Main.Version
	if v == "(devel)" {
		return ""
	}
	return v
}
