// ABOUTME: Desktop notification presenter with lifecycle callbacks.
// ABOUTME: Linux uses the org.freedesktop.Notifications D-Bus service; other platforms fall back to beeep.
package presenter

import "time"

// Notification is the data for one desktop notification.
type Notification struct {
	Title   string
	Body    string
	Icon    string        // Path to an icon image (optional)
	Timeout time.Duration // 0 = notification server default expiry
}

// Delegate receives lifecycle callbacks for a shown notification. Over a
// handle's lifetime the presenter delivers NotificationDisplayed once on a
// successful show, then exactly one of NotificationClicked or
// NotificationClosed. Handles still live at presenter teardown receive no
// further callbacks.
type Delegate interface {
	NotificationDisplayed()
	NotificationClicked()
	NotificationClosed()
}

// CancelFunc closes the notification it was returned for.
// Call at most once.
type CancelFunc func()

// Presenter shows desktop notifications.
type Presenter interface {
	// Show displays a notification and attaches the delegate to it.
	// On native rejection the delegate receives no callbacks and no
	// CancelFunc is returned.
	Show(n Notification, delegate Delegate) (CancelFunc, error)

	// Close releases every remaining notification without invoking
	// delegate callbacks.
	Close() error
}
