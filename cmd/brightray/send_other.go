//go:build !linux

// ABOUTME: Notification delivery for platforms without the D-Bus daemon.
// ABOUTME: Fire-and-forget via beeep; no click or close events are observed.
package main

import (
	"github.com/adityavs/brightray/internal/appinfo"
	"github.com/adityavs/brightray/internal/config"
	"github.com/adityavs/brightray/internal/logging"
	"github.com/gen2brain/beeep"
)

func deliver(title, body, icon string, timeoutSeconds int, sound bool, cfg *config.Config) error {
	if sound {
		logging.Debug("sound playback is handled by the daemon, which is Linux-only")
	}
	beeep.AppName = appName(cfg)
	return beeep.Notify(title, body, icon)
}

func appName(cfg *config.Config) string {
	if cfg.App.Name != "" {
		return cfg.App.Name
	}
	return appinfo.GetApplicationName()
}
