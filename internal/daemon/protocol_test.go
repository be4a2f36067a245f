//go:build linux

package daemon

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// --- GetSocketPath tests ---

func TestGetSocketPath_WithXDGRuntimeDir(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", "/run/user/1000")

	result := GetSocketPath()
	expected := filepath.Join("/run/user/1000", "brightray.sock")
	if result != expected {
		t.Errorf("GetSocketPath() = %q, want %q", result, expected)
	}
}

func TestGetSocketPath_WithoutXDGRuntimeDir(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", "")
	os.Unsetenv("XDG_RUNTIME_DIR")

	result := GetSocketPath()
	expected := fmt.Sprintf("/tmp/brightray-%d.sock", os.Getuid())
	if result != expected {
		t.Errorf("GetSocketPath() = %q, want %q", result, expected)
	}
}

func TestGetSocketPath_ContainsUID(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", "")
	os.Unsetenv("XDG_RUNTIME_DIR")

	result := GetSocketPath()
	uid := fmt.Sprintf("%d", os.Getuid())
	if !strings.Contains(result, uid) {
		t.Errorf("GetSocketPath() = %q, should contain UID %s", result, uid)
	}
}

func TestGetSocketAndPidPath_Consistency(t *testing.T) {
	// Socket and PID file should be in the same directory
	t.Setenv("XDG_RUNTIME_DIR", "/run/user/1000")

	socketDir := filepath.Dir(GetSocketPath())
	pidDir := filepath.Dir(GetPidFilePath())
	if socketDir != pidDir {
		t.Errorf("Socket dir %q != PID dir %q", socketDir, pidDir)
	}
}

// --- Protocol types JSON serialization tests ---

func TestRequest_JSONRoundtrip_Notify(t *testing.T) {
	req := Request{
		ID:      "req-1",
		Type:    MessageTypeNotify,
		Version: ProtocolVersion,
		Notify: &NotifyRequest{
			Title:          "Test Title",
			Body:           "Test Body",
			Icon:           "/tmp/icon.png",
			TimeoutSeconds: 30,
			Sound:          true,
		},
	}

	data, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var decoded Request
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if decoded.ID != "req-1" {
		t.Errorf("ID = %q, want %q", decoded.ID, "req-1")
	}
	if decoded.Type != MessageTypeNotify {
		t.Errorf("Type = %q, want %q", decoded.Type, MessageTypeNotify)
	}
	if decoded.Notify == nil {
		t.Fatal("Notify is nil after roundtrip")
	}
	if decoded.Notify.Title != "Test Title" || decoded.Notify.Body != "Test Body" {
		t.Errorf("title/body = %q/%q", decoded.Notify.Title, decoded.Notify.Body)
	}
	if decoded.Notify.TimeoutSeconds != 30 {
		t.Errorf("TimeoutSeconds = %d, want 30", decoded.Notify.TimeoutSeconds)
	}
	if !decoded.Notify.Sound {
		t.Error("Sound lost in roundtrip")
	}
}

func TestRequest_JSONRoundtrip_Cancel(t *testing.T) {
	req := Request{
		ID:      "req-2",
		Type:    MessageTypeCancel,
		Version: ProtocolVersion,
		Cancel:  &CancelRequest{Handle: 7},
	}

	data, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var decoded Request
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if decoded.Cancel == nil {
		t.Fatal("Cancel is nil after roundtrip")
	}
	if decoded.Cancel.Handle != 7 {
		t.Errorf("Handle = %d, want 7", decoded.Cancel.Handle)
	}
}

func TestResponse_JSONOmitEmpty(t *testing.T) {
	// Empty optional fields should not appear in JSON
	resp := Response{
		Type: MessageTypePing,
		Ping: &PingResponse{
			Version: "1.0",
			Uptime:  300,
		},
	}

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	jsonStr := string(data)
	if strings.Contains(jsonStr, "notify") {
		t.Errorf("JSON should not contain 'notify' when nil: %s", jsonStr)
	}
	if strings.Contains(jsonStr, `"error"`) {
		t.Errorf("JSON should not contain 'error' when empty: %s", jsonStr)
	}
}

// --- Constants tests ---

func TestMessageTypes(t *testing.T) {
	// Ensure message types are distinct
	types := []MessageType{MessageTypeNotify, MessageTypeCancel, MessageTypePing, MessageTypeStop}
	seen := make(map[MessageType]bool)

	for _, mt := range types {
		if mt == "" {
			t.Error("MessageType should not be empty")
		}
		if seen[mt] {
			t.Errorf("Duplicate MessageType: %q", mt)
		}
		seen[mt] = true
	}
}

func TestErrorTypes_Distinct(t *testing.T) {
	if ErrDaemonNotAvailable.Error() == ErrDaemonNotRunning.Error() {
		t.Error("ErrDaemonNotAvailable and ErrDaemonNotRunning should have distinct messages")
	}
}
