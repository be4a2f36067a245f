//go:build linux

// ABOUTME: Daemon server that maintains a persistent D-Bus connection for event-delivering notifications.
// ABOUTME: Listens on a Unix socket for IPC requests and forwards native click/close events.
package daemon

import (
	"encoding/json"
	"fmt"
	"net"
	"os"
	"os/exec"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/adityavs/brightray/internal/appinfo"
	"github.com/adityavs/brightray/internal/audio"
	"github.com/adityavs/brightray/internal/config"
	"github.com/adityavs/brightray/internal/logging"
	"github.com/adityavs/brightray/internal/presenter"
)

// Server is the notification daemon server
type Server struct {
	cfg       *config.Config
	pres      presenter.Presenter
	listener  net.Listener
	startTime time.Time

	// Handle bookkeeping: daemon-assigned handle -> cancel for that notification
	nextHandle uint32
	cancels    map[uint32]presenter.CancelFunc
	handleMu   sync.Mutex

	// Sound playback, initialized on first use
	playerInit sync.Once
	player     *audio.Player
	playerErr  error

	// Idle timeout for auto-shutdown
	idleTimeout  time.Duration
	lastActivity time.Time
	activityMu   sync.Mutex

	// Shutdown handling
	done     chan struct{}
	wg       sync.WaitGroup
	stopping bool // done has been closed
	shutdown bool // Shutdown has run
	mu       sync.Mutex
}

// NewServer creates a new daemon server. The presenter is fully initialized
// here; a failure leaves nothing behind.
func NewServer(cfg *config.Config) (*Server, error) {
	appName := cfg.App.Name
	if appName == "" {
		appName = appinfo.GetApplicationName()
	}

	pres, err := presenter.New(appName)
	if err != nil {
		return nil, fmt.Errorf("failed to create presenter: %w", err)
	}

	return &Server{
		cfg:          cfg,
		pres:         pres,
		startTime:    time.Now(),
		cancels:      make(map[uint32]presenter.CancelFunc),
		idleTimeout:  time.Duration(cfg.Daemon.IdleTimeoutSeconds) * time.Second,
		lastActivity: time.Now(),
		done:         make(chan struct{}),
	}, nil
}

// Run starts the daemon server
func (s *Server) Run() error {
	socketPath := GetSocketPath()

	// Remove existing socket
	os.Remove(socketPath)

	// Create listener
	listener, err := net.Listen("unix", socketPath)
	if err != nil {
		return fmt.Errorf("failed to create socket: %w", err)
	}
	s.listener = listener

	// Set socket permissions
	if err := os.Chmod(socketPath, 0600); err != nil {
		listener.Close()
		return fmt.Errorf("failed to set socket permissions: %w", err)
	}

	// Write PID file
	pidPath := GetPidFilePath()
	if err := os.WriteFile(pidPath, []byte(fmt.Sprintf("%d", os.Getpid())), 0600); err != nil {
		logging.Warn("failed to write PID file: %v", err)
	}

	logging.Info("daemon started, listening on %s", socketPath)

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start idle timeout checker if enabled
	if s.idleTimeout > 0 {
		s.wg.Add(1)
		go s.idleChecker()
	}

	// Accept connections
	s.wg.Add(1)
	go s.acceptLoop()

	// Wait for shutdown signal
	select {
	case sig := <-sigChan:
		logging.Info("received signal %v, shutting down", sig)
	case <-s.done:
		logging.Info("shutdown requested")
	}

	return s.Shutdown()
}

// acceptLoop accepts incoming connections
func (s *Server) acceptLoop() {
	defer s.wg.Done()

	for {
		conn, err := s.listener.Accept()
		if err != nil {
			s.mu.Lock()
			shutdown := s.shutdown
			s.mu.Unlock()

			if shutdown {
				return
			}
			logging.Error("accept error: %v", err)
			continue
		}

		s.wg.Add(1)
		go s.handleConnection(conn)
	}
}

// handleConnection handles a single client connection
func (s *Server) handleConnection(conn net.Conn) {
	defer s.wg.Done()
	defer conn.Close()

	s.updateActivity()

	// Set read deadline
	if err := conn.SetReadDeadline(time.Now().Add(30 * time.Second)); err != nil {
		logging.Error("failed to set read deadline: %v", err)
		return
	}

	// Read request
	decoder := json.NewDecoder(conn)
	var req Request
	if err := decoder.Decode(&req); err != nil {
		logging.Error("failed to decode request: %v", err)
		s.sendError(conn, "", "invalid request")
		return
	}

	// Handle request
	var resp Response
	resp.ID = req.ID
	resp.Type = req.Type

	switch req.Type {
	case MessageTypeNotify:
		if req.Notify == nil {
			s.sendError(conn, req.ID, "missing notify payload")
			return
		}
		notifyResp, err := s.handleNotification(req.ID, req.Notify)
		if err != nil {
			resp.Error = err.Error()
		} else {
			resp.Notify = notifyResp
		}

	case MessageTypeCancel:
		if req.Cancel == nil {
			s.sendError(conn, req.ID, "missing cancel payload")
			return
		}
		if err := s.handleCancel(req.Cancel.Handle); err != nil {
			resp.Error = err.Error()
		}

	case MessageTypePing:
		resp.Ping = s.pingResponse()

	case MessageTypeStop:
		logging.Info("stop command received")
		resp.Ping = s.pingResponse()
		// Signal shutdown after sending response
		defer s.requestShutdown()

	default:
		s.sendError(conn, req.ID, "unknown message type")
		return
	}

	// Send response
	encoder := json.NewEncoder(conn)
	if err := encoder.Encode(resp); err != nil {
		logging.Error("failed to encode response: %v", err)
	}
}

// handleNotification processes a notification request
func (s *Server) handleNotification(reqID string, req *NotifyRequest) (*NotifyResponse, error) {
	handle := s.allocHandle()

	delegate := &serverDelegate{server: s, handle: handle, title: req.Title}

	cancel, err := s.pres.Show(presenter.Notification{
		Title:   req.Title,
		Body:    req.Body,
		Icon:    req.Icon,
		Timeout: time.Duration(req.TimeoutSeconds) * time.Second,
	}, delegate)
	if err != nil {
		return nil, fmt.Errorf("failed to show notification: %w", err)
	}

	s.handleMu.Lock()
	s.cancels[handle] = cancel
	s.handleMu.Unlock()

	if req.Sound {
		s.playSoundAsync()
	}

	logging.Info("notification shown: request=%s handle=%d title=%q", reqID, handle, req.Title)

	return &NotifyResponse{
		Success: true,
		Handle:  handle,
	}, nil
}

// handleCancel closes a previously shown notification by handle
func (s *Server) handleCancel(handle uint32) error {
	s.handleMu.Lock()
	cancel, exists := s.cancels[handle]
	s.handleMu.Unlock()

	if !exists {
		return fmt.Errorf("unknown notification handle %d", handle)
	}

	// The delegate's closed callback removes the handle from the map.
	cancel()
	return nil
}

func (s *Server) allocHandle() uint32 {
	s.handleMu.Lock()
	defer s.handleMu.Unlock()
	s.nextHandle++
	return s.nextHandle
}

// release forgets a handle once its notification reached a terminal state
func (s *Server) release(handle uint32) {
	s.handleMu.Lock()
	delete(s.cancels, handle)
	s.handleMu.Unlock()
}

func (s *Server) liveCount() int {
	s.handleMu.Lock()
	defer s.handleMu.Unlock()
	return len(s.cancels)
}

func (s *Server) pingResponse() *PingResponse {
	return &PingResponse{
		Version: ProtocolVersion,
		Uptime:  int64(time.Since(s.startTime).Seconds()),
		Live:    s.liveCount(),
	}
}

// onClicked runs the configured click command, if any
func (s *Server) onClicked() {
	command := s.cfg.Desktop.OnClickCommand
	if command == "" {
		return
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if output, err := exec.Command("sh", "-c", command).CombinedOutput(); err != nil {
			logging.Error("on-click command failed: %v, output: %s", err, output)
		}
	}()
}

// playSoundAsync plays the configured notification sound without blocking
// the request.
func (s *Server) playSoundAsync() {
	if !s.cfg.Desktop.Sound || s.cfg.Desktop.SoundFile == "" {
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		s.playerInit.Do(func() {
			s.player, s.playerErr = audio.NewPlayer(s.cfg.Desktop.AudioDevice, s.cfg.Desktop.Volume)
		})
		if s.playerErr != nil {
			logging.Error("failed to initialize audio player: %v", s.playerErr)
			return
		}

		if err := s.player.Play(s.cfg.Desktop.SoundFile); err != nil {
			logging.Error("failed to play sound %s: %v", s.cfg.Desktop.SoundFile, err)
		}
	}()
}

// updateActivity updates the last activity timestamp
func (s *Server) updateActivity() {
	s.activityMu.Lock()
	s.lastActivity = time.Now()
	s.activityMu.Unlock()
}

// idleChecker monitors for idle timeout
func (s *Server) idleChecker() {
	defer s.wg.Done()

	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.activityMu.Lock()
			idle := time.Since(s.lastActivity)
			s.activityMu.Unlock()

			if idle >= s.idleTimeout {
				logging.Info("idle timeout reached (%v), shutting down", s.idleTimeout)
				s.requestShutdown()
				return
			}

		case <-s.done:
			return
		}
	}
}

// requestShutdown asks the run loop to begin shutting down. Safe to call
// more than once.
func (s *Server) requestShutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.stopping {
		s.stopping = true
		close(s.done)
	}
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown() error {
	s.mu.Lock()
	if s.shutdown {
		s.mu.Unlock()
		return nil
	}
	s.shutdown = true
	if !s.stopping {
		s.stopping = true
		close(s.done)
	}
	s.mu.Unlock()

	// Close listener
	if s.listener != nil {
		s.listener.Close()
	}

	// Wait for goroutines with timeout
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		logging.Warn("shutdown timeout, forcing exit")
	}

	// Release remaining notifications without delegate callbacks
	s.handleMu.Lock()
	s.cancels = make(map[uint32]presenter.CancelFunc)
	s.handleMu.Unlock()
	if err := s.pres.Close(); err != nil {
		logging.Warn("failed to close presenter: %v", err)
	}

	if s.player != nil {
		if err := s.player.Close(); err != nil {
			logging.Warn("failed to close audio player: %v", err)
		}
	}

	// Clean up socket and PID files
	os.Remove(GetSocketPath())
	os.Remove(GetPidFilePath())

	logging.Info("daemon stopped")
	return nil
}

// sendError sends an error response
func (s *Server) sendError(conn net.Conn, reqID, msg string) {
	resp := Response{ID: reqID, Error: msg}
	encoder := json.NewEncoder(conn)
	if err := encoder.Encode(resp); err != nil {
		logging.Error("failed to send error response: %v", err)
	}
}

// serverDelegate forwards presenter lifecycle events into daemon bookkeeping.
type serverDelegate struct {
	server *Server
	handle uint32
	title  string
}

func (d *serverDelegate) NotificationDisplayed() {
	logging.Debug("notification displayed: handle=%d title=%q", d.handle, d.title)
}

func (d *serverDelegate) NotificationClicked() {
	logging.Info("notification clicked: handle=%d title=%q", d.handle, d.title)
	d.server.release(d.handle)
	d.server.onClicked()
}

func (d *serverDelegate) NotificationClosed() {
	logging.Debug("notification closed: handle=%d title=%q", d.handle, d.title)
	d.server.release(d.handle)
}
