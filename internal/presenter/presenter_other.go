//go:build !linux

package presenter

import (
	"sync"

	"github.com/gen2brain/beeep"
)

// BeeepPresenter is the fallback presenter for platforms without a native
// event-delivering notification service binding. Notifications are
// fire-and-forget: there is no click or close signal, so the delegate only
// ever observes Displayed, plus Closed when the caller cancels.
type BeeepPresenter struct {
	appName string
}

// New returns a beeep-backed presenter.
func New(appName string) (*BeeepPresenter, error) {
	return &BeeepPresenter{appName: appName}, nil
}

// Show sends the notification. On success the delegate is told it was
// displayed and the returned CancelFunc reports Closed exactly once.
func (p *BeeepPresenter) Show(n Notification, delegate Delegate) (CancelFunc, error) {
	beeep.AppName = p.appName
	if err := beeep.Notify(n.Title, n.Body, n.Icon); err != nil {
		return nil, err
	}

	delegate.NotificationDisplayed()

	var once sync.Once
	return func() {
		once.Do(delegate.NotificationClosed)
	}, nil
}

// Close is a no-op: beeep holds no per-notification resources.
func (p *BeeepPresenter) Close() error {
	return nil
}
