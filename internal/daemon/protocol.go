//go:build linux

// ABOUTME: IPC protocol types for communication between daemon client and server.
// ABOUTME: Uses JSON-over-Unix-socket for simple, reliable inter-process communication.
package daemon

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Common errors
var (
	ErrDaemonNotAvailable = errors.New("daemon not available")
	ErrDaemonNotRunning   = errors.New("daemon not running")
)

// Protocol version for compatibility checking
const ProtocolVersion = "1.0"

// MessageType identifies the type of IPC message
type MessageType string

const (
	MessageTypeNotify MessageType = "notify"
	MessageTypeCancel MessageType = "cancel"
	MessageTypePing   MessageType = "ping"
	MessageTypeStop   MessageType = "stop"
)

// Request is the wrapper for all IPC requests
type Request struct {
	ID      string         `json:"id"` // Correlation id assigned by the client
	Type    MessageType    `json:"type"`
	Notify  *NotifyRequest `json:"notify,omitempty"`
	Cancel  *CancelRequest `json:"cancel,omitempty"`
	Version string         `json:"version"`
}

// Response is the wrapper for all IPC responses
type Response struct {
	ID     string          `json:"id"`
	Type   MessageType     `json:"type"`
	Notify *NotifyResponse `json:"notify,omitempty"`
	Ping   *PingResponse   `json:"ping,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// NotifyRequest contains notification details sent to the daemon
type NotifyRequest struct {
	Title          string `json:"title"`
	Body           string `json:"body"`
	Icon           string `json:"icon,omitempty"`  // Path to an icon image
	TimeoutSeconds int    `json:"timeout"`         // Notification expiry (0 = server default)
	Sound          bool   `json:"sound,omitempty"` // Play the configured notification sound
}

// NotifyResponse contains the result of a notification request
type NotifyResponse struct {
	Success bool   `json:"success"`
	Handle  uint32 `json:"handle"` // Daemon-assigned handle usable with cancel
	Error   string `json:"error,omitempty"`
}

// CancelRequest asks the daemon to close a previously shown notification
type CancelRequest struct {
	Handle uint32 `json:"handle"`
}

// PingResponse contains daemon status information
type PingResponse struct {
	Version string `json:"version"`
	Uptime  int64  `json:"uptime"` // Seconds since daemon started
	Live    int    `json:"live"`   // Currently displayed notifications
}

// GetSocketPath returns the Unix socket path for the daemon.
// Uses XDG_RUNTIME_DIR if available, falls back to /tmp with UID suffix.
func GetSocketPath() string {
	// Prefer XDG_RUNTIME_DIR (usually /run/user/1000)
	if runtimeDir := os.Getenv("XDG_RUNTIME_DIR"); runtimeDir != "" {
		return filepath.Join(runtimeDir, "brightray.sock")
	}

	// Fallback to /tmp with UID for isolation
	return fmt.Sprintf("/tmp/brightray-%d.sock", os.Getuid())
}

// GetPidFilePath returns the path to the daemon's PID file.
func GetPidFilePath() string {
	if runtimeDir := os.Getenv("XDG_RUNTIME_DIR"); runtimeDir != "" {
		return filepath.Join(runtimeDir, "brightray.pid")
	}
	return fmt.Sprintf("/tmp/brightray-%d.pid", os.Getuid())
}
