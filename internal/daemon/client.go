//go:build linux

// ABOUTME: Client library for communicating with the notification daemon.
// ABOUTME: Provides functions to check daemon status, start on-demand, and send notifications.
package daemon

import (
	"encoding/json"
	"fmt"
	"net"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
)

// Client communicates with the daemon via Unix socket
type Client struct {
	socketPath string
}

// NewClient creates a new daemon client
func NewClient() (*Client, error) {
	socketPath := GetSocketPath()

	// Check if socket exists
	if _, err := os.Stat(socketPath); os.IsNotExist(err) {
		return nil, ErrDaemonNotRunning
	}

	return &Client{socketPath: socketPath}, nil
}

// Notify sends a notification request to the daemon
func (c *Client) Notify(req NotifyRequest) (*NotifyResponse, error) {
	resp, err := c.send(Request{
		ID:      uuid.NewString(),
		Type:    MessageTypeNotify,
		Version: ProtocolVersion,
		Notify:  &req,
	})
	if err != nil {
		return nil, err
	}

	if resp.Error != "" {
		return nil, fmt.Errorf("daemon error: %s", resp.Error)
	}

	return resp.Notify, nil
}

// Cancel asks the daemon to close a previously shown notification
func (c *Client) Cancel(handle uint32) error {
	resp, err := c.send(Request{
		ID:      uuid.NewString(),
		Type:    MessageTypeCancel,
		Version: ProtocolVersion,
		Cancel:  &CancelRequest{Handle: handle},
	})
	if err != nil {
		return err
	}

	if resp.Error != "" {
		return fmt.Errorf("daemon error: %s", resp.Error)
	}
	return nil
}

// Ping checks if the daemon is responding and returns status info
func (c *Client) Ping() (*PingResponse, error) {
	resp, err := c.send(Request{
		ID:      uuid.NewString(),
		Type:    MessageTypePing,
		Version: ProtocolVersion,
	})
	if err != nil {
		return nil, err
	}

	if resp.Error != "" {
		return nil, fmt.Errorf("daemon error: %s", resp.Error)
	}

	return resp.Ping, nil
}

// Stop requests the daemon to shut down
func (c *Client) Stop() error {
	_, err := c.send(Request{
		ID:      uuid.NewString(),
		Type:    MessageTypeStop,
		Version: ProtocolVersion,
	})
	return err
}

// send sends a request to the daemon and returns the response
func (c *Client) send(req Request) (*Response, error) {
	conn, err := net.DialTimeout("unix", c.socketPath, 5*time.Second)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to daemon: %w", err)
	}
	defer conn.Close()

	// Set deadlines
	if err := conn.SetDeadline(time.Now().Add(30 * time.Second)); err != nil {
		return nil, fmt.Errorf("failed to set deadline: %w", err)
	}

	// Send request
	encoder := json.NewEncoder(conn)
	if err := encoder.Encode(req); err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	// Read response
	decoder := json.NewDecoder(conn)
	var resp Response
	if err := decoder.Decode(&resp); err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	return &resp, nil
}

// IsDaemonRunning checks if the daemon is running and responsive
func IsDaemonRunning() bool {
	client, err := NewClient()
	if err != nil {
		return false
	}

	_, err = client.Ping()
	return err == nil
}

// StartDaemonOnDemand starts the daemon if it's not already running.
// Returns true if daemon is running (either started now or was already running).
func StartDaemonOnDemand() bool {
	// Check if already running
	if IsDaemonRunning() {
		return true
	}

	// The daemon is this binary in daemon mode
	daemonPath, err := os.Executable()
	if err != nil {
		return false
	}

	// Start daemon in background
	cmd := exec.Command(daemonPath, "daemon")
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setsid: true, // Create new session (detach from terminal)
	}

	// Redirect stdout/stderr to /dev/null
	devNull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if err == nil {
		cmd.Stdout = devNull
		cmd.Stderr = devNull
		defer devNull.Close()
	}

	if err := cmd.Start(); err != nil {
		return false
	}

	// Wait for daemon to be ready (up to 5 seconds)
	for i := 0; i < 50; i++ {
		time.Sleep(100 * time.Millisecond)
		if IsDaemonRunning() {
			return true
		}
	}

	return false
}

// StopDaemon stops the running daemon
func StopDaemon() error {
	client, err := NewClient()
	if err != nil {
		return err
	}
	return client.Stop()
}

// GetDaemonPID returns the PID of the running daemon, or 0 if not running
func GetDaemonPID() int {
	pidPath := GetPidFilePath()
	data, err := os.ReadFile(pidPath)
	if err != nil {
		return 0
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0
	}

	// Check if process exists
	process, err := os.FindProcess(pid)
	if err != nil {
		return 0
	}

	// On Unix, FindProcess always succeeds; check if process exists with signal 0
	if err := process.Signal(syscall.Signal(0)); err != nil {
		return 0
	}

	return pid
}
