//go:build darwin

package appinfo

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	bundleOnce sync.Once
	bundleInfo map[string]string
)

// GetApplicationName returns the CFBundleName of the running application's
// bundle, or "" when the bundle or key cannot be resolved.
func GetApplicationName() string {
	return bundleValue("CFBundleName")
}

// GetApplicationVersion returns the CFBundleVersion of the running
// application's bundle, or "" when the bundle or key cannot be resolved.
func GetApplicationVersion() string {
	return bundleValue("CFBundleVersion")
}

// bundleValue resolves a key from the bundle's Info.plist. The plist is read
// once per process; a missing bundle yields an empty map, so every lookup
// returns "".
func bundleValue(key string) string {
	bundleOnce.Do(func() {
		bundleInfo = readBundleInfo()
	})
	return bundleInfo[key]
}

func readBundleInfo() map[string]string {
	plistPath, ok := bundleInfoPath()
	if !ok {
		return map[string]string{}
	}

	f, err := os.Open(plistPath)
	if err != nil {
		return map[string]string{}
	}
	defer f.Close()

	values, err := parseInfoPlist(f)
	if err != nil {
		return map[string]string{}
	}
	return values
}

// bundleInfoPath walks up from the executable looking for the enclosing
// .app bundle and returns the path of its Contents/Info.plist.
func bundleInfoPath() (string, bool) {
	exe, err := os.Executable()
	if err != nil {
		return "", false
	}

	dir := filepath.Dir(exe)
	for dir != "/" && dir != "." {
		if strings.HasSuffix(dir, ".app") {
			return filepath.Join(dir, "Contents", "Info.plist"), true
		}
		dir = filepath.Dir(dir)
	}
	return "", false
}
