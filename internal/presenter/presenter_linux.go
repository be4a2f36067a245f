//go:build linux

package presenter

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/esiqveland/notify"
	"github.com/godbus/dbus/v5"

	"github.com/adityavs/brightray/internal/desktopenv"
	"github.com/adityavs/brightray/internal/logging"
)

// busClient is the slice of esiqveland/notify the presenter uses. It exists
// so tests can substitute a fake notification server.
type busClient interface {
	SendNotification(n notify.Notification) (uint32, error)
	CloseNotification(id uint32) (bool, error)
	Close() error
}

// DBusPresenter shows notifications through org.freedesktop.Notifications
// on the session bus. It owns the set of currently displayed notifications
// and the delegate attached to each.
type DBusPresenter struct {
	appName string
	conn    *dbus.Conn
	client  busClient

	// unityRunning gates the default action; under Unity an action turns
	// the notification into a modal dialog.
	unityRunning func() bool

	mu   sync.Mutex
	live map[uint32]Delegate
}

// New connects to the session bus and subscribes to notification signals.
// No partial state is retained on failure: the returned presenter is either
// fully usable or nil.
func New(appName string) (*DBusPresenter, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to D-Bus session bus: %w", err)
	}

	p := newWithClient(appName, nil)
	p.conn = conn

	client, err := notify.New(conn,
		notify.WithOnAction(p.onActionInvoked),
		notify.WithOnClosed(p.onNotificationClosed),
	)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create notification client: %w", err)
	}
	p.client = client

	return p, nil
}

// newWithClient builds a presenter around an existing bus client.
func newWithClient(appName string, client busClient) *DBusPresenter {
	return &DBusPresenter{
		appName:      appName,
		client:       client,
		unityRunning: desktopenv.UnityIsRunning,
		live:         make(map[uint32]Delegate),
	}
}

// Show displays a notification. On success the delegate is recorded in the
// live set, told it was displayed, and a CancelFunc bound to this exact
// notification is returned. On a native error the delegate never learns the
// notification existed.
func (p *DBusPresenter) Show(n Notification, delegate Delegate) (CancelFunc, error) {
	notification := notify.Notification{
		AppName:       p.appName,
		Summary:       n.Title,
		Body:          n.Body,
		ExpireTimeout: notify.ExpireTimeoutSetByNotificationServer,
	}
	if n.Timeout > 0 {
		notification.ExpireTimeout = n.Timeout
	}

	// NB: under Unity, adding an action causes the notification to display
	// as a modal dialog box, so the default action is suppressed there.
	if !p.unityRunning() {
		notification.Actions = []notify.Action{
			{Key: "default", Label: "View"},
		}
	}

	if strings.TrimSpace(n.Icon) != "" {
		hint, err := loadImageHint(n.Icon)
		if err != nil {
			logging.Warn("could not load notification icon %s: %v", n.Icon, err)
		} else {
			notification.Hints = map[string]dbus.Variant{
				"image-data": hint,
			}
		}
	}

	id, err := p.client.SendNotification(notification)
	if err != nil {
		logBusError("notification show", err)
		return nil, fmt.Errorf("failed to show notification: %w", err)
	}

	p.mu.Lock()
	p.live[id] = delegate
	p.mu.Unlock()

	delegate.NotificationDisplayed()

	return func() { p.Cancel(id) }, nil
}

// Cancel closes a previously shown notification. A native close failure is
// logged and cleanup proceeds regardless: the delegate still observes Closed
// and the handle is released.
func (p *DBusPresenter) Cancel(id uint32) {
	delegate, ok := p.take(id)
	if !ok {
		return
	}

	if _, err := p.client.CloseNotification(id); err != nil {
		logBusError("notification close", err)
	}

	delegate.NotificationClosed()
}

// Live reports the number of currently displayed notifications.
func (p *DBusPresenter) Live() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.live)
}

// Close releases every remaining notification. This is a resource-cleanup
// pass, not a logical close: no delegate callbacks are invoked.
func (p *DBusPresenter) Close() error {
	p.mu.Lock()
	ids := make([]uint32, 0, len(p.live))
	for id := range p.live {
		ids = append(ids, id)
	}
	p.live = make(map[uint32]Delegate)
	p.mu.Unlock()

	for _, id := range ids {
		if _, err := p.client.CloseNotification(id); err != nil {
			logBusError("notification close", err)
		}
	}

	if err := p.client.Close(); err != nil {
		logging.Warn("failed to close notification client: %v", err)
	}

	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// take atomically claims a live notification. Claiming before invoking the
// delegate keeps the callback exactly-once when a cancel races the server's
// own closed signal.
func (p *DBusPresenter) take(id uint32) (Delegate, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delegate, ok := p.live[id]
	if ok {
		delete(p.live, id)
	}
	return delegate, ok
}

// onNotificationClosed handles the server's NotificationClosed signal.
func (p *DBusPresenter) onNotificationClosed(sig *notify.NotificationClosedSignal) {
	if sig == nil || sig.ID == 0 {
		return
	}
	delegate, ok := p.take(sig.ID)
	if !ok {
		return
	}
	delegate.NotificationClosed()
}

// onActionInvoked handles the server's ActionInvoked signal. A click implies
// close, so the notification is released here; the trailing closed signal
// for the same id finds nothing and is ignored.
func (p *DBusPresenter) onActionInvoked(sig *notify.ActionInvokedSignal) {
	if sig == nil || sig.ID == 0 {
		return
	}
	if sig.ActionKey != "default" {
		return
	}
	delegate, ok := p.take(sig.ID)
	if !ok {
		return
	}
	delegate.NotificationClicked()
}

// logBusError logs a native notification error in full. D-Bus errors carry a
// name and a body alongside the message.
func logBusError(op string, err error) {
	var busErr dbus.Error
	if errors.As(err, &busErr) {
		logging.Error("%s failed: name=%s body=%v", op, busErr.Name, busErr.Body)
		return
	}
	logging.Error("%s failed: %v", op, err)
}
