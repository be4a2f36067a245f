//go:build linux

// ABOUTME: Linux notification delivery with native click/close events.
// ABOUTME: Uses the background daemon for a persistent D-Bus connection, beeep as fallback.
package main

import (
	"github.com/adityavs/brightray/internal/appinfo"
	"github.com/adityavs/brightray/internal/config"
	"github.com/adityavs/brightray/internal/daemon"
	"github.com/adityavs/brightray/internal/logging"
	"github.com/gen2brain/beeep"
)

// deliver sends a notification on Linux. The daemon path keeps the D-Bus
// connection alive so click and close events are observed; when the daemon
// cannot be reached the notification still goes out via beeep.
func deliver(title, body, icon string, timeoutSeconds int, sound bool, cfg *config.Config) error {
	if err := sendViaDaemon(title, body, icon, timeoutSeconds, sound); err == nil {
		logging.Debug("notification sent via daemon")
		return nil
	} else {
		logging.Debug("daemon not available (%v), falling back to beeep", err)
	}

	beeep.AppName = appName(cfg)
	return beeep.Notify(title, body, icon)
}

func sendViaDaemon(title, body, icon string, timeoutSeconds int, sound bool) error {
	// Start daemon on-demand (no-op if already running)
	if !daemon.StartDaemonOnDemand() {
		return daemon.ErrDaemonNotAvailable
	}

	client, err := daemon.NewClient()
	if err != nil {
		return err
	}

	_, err = client.Notify(daemon.NotifyRequest{
		Title:          title,
		Body:           body,
		Icon:           icon,
		TimeoutSeconds: timeoutSeconds,
		Sound:          sound,
	})
	return err
}

func appName(cfg *config.Config) string {
	if cfg.App.Name != "" {
		return cfg.App.Name
	}
	return appinfo.GetApplicationName()
}
