//go:build !linux

package desktopenv

// OverrideEnvVar forces the Unity code path when set to any value.
// Only meaningful on Linux.
const OverrideEnvVar = "BRIGHTRAY_USE_UBUNTU_NOTIFIER"

// UnityIsRunning always reports false off Linux.
func UnityIsRunning() bool {
	return false
}
