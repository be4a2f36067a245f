//go:build linux

// ABOUTME: Desktop environment detection for Linux notification quirks.
// ABOUTME: Detects Unity, whose notification UI turns actions into modal dialogs.
package desktopenv

import (
	"os"
	"strings"
	"sync"
)

// OverrideEnvVar forces the Unity code path when set to any value.
const OverrideEnvVar = "BRIGHTRAY_USE_UBUNTU_NOTIFIER"

// libraryDir is the directory scanned for libunity. Variable so tests can
// point it elsewhere.
var libraryDir = "/usr/lib"

var (
	unityOnce   sync.Once
	unityResult bool
)

// UnityIsRunning reports whether the session appears to be running under
// Unity. The presence of libunity in the system library directory is used as
// the hint. The scan runs at most once per process; the override environment
// variable short-circuits it entirely.
func UnityIsRunning() bool {
	if os.Getenv(OverrideEnvVar) != "" {
		return true
	}

	unityOnce.Do(func() {
		unityResult = scanForUnity(libraryDir)
	})
	return unityResult
}

// scanForUnity looks for a file named libunity-* directly inside dir.
// A missing or unreadable directory simply yields false.
func scanForUnity(dir string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasPrefix(entry.Name(), "libunity-") {
			return true
		}
	}
	return false
}
