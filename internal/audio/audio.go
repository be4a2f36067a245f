// ABOUTME: Audio playback via miniaudio (malgo) for notification sounds.
// ABOUTME: Decodes files to 16-bit PCM and streams them to a playback device.
package audio

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gen2brain/malgo"
)

// Device describes a playback device available on the system.
type Device struct {
	Name      string
	IsDefault bool
}

// ListDevices enumerates the playback devices known to the audio backend.
func ListDevices() ([]Device, error) {
	ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	if err != nil {
		return nil, fmt.Errorf("init audio context: %w", err)
	}
	defer func() {
		_ = ctx.Uninit()
		ctx.Free()
	}()

	infos, err := ctx.Devices(malgo.Playback)
	if err != nil {
		return nil, fmt.Errorf("enumerate playback devices: %w", err)
	}

	devices := make([]Device, 0, len(infos))
	for _, info := range infos {
		devices = append(devices, Device{
			Name:      info.Name(),
			IsDefault: info.IsDefault != 0,
		})
	}
	return devices, nil
}

// Player plays sound files on a fixed device at a fixed volume.
// The zero value is not usable; construct with NewPlayer.
type Player struct {
	ctx        *malgo.AllocatedContext
	deviceName string
	volume     float64

	mu sync.Mutex
}

// NewPlayer creates a player bound to the named playback device.
// An empty deviceName selects the system default. Volume is clamped
// to [0, 1] at playback time.
func NewPlayer(deviceName string, volume float64) (*Player, error) {
	ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	if err != nil {
		return nil, fmt.Errorf("init audio context: %w", err)
	}

	p := &Player{
		ctx:        ctx,
		deviceName: deviceName,
		volume:     volume,
	}

	// Fail fast on a bad device name instead of at first playback.
	if deviceName != "" {
		if _, err := p.findDevice(deviceName); err != nil {
			_ = p.Close()
			return nil, err
		}
	}
	return p, nil
}

func (p *Player) findDevice(name string) (malgo.DeviceInfo, error) {
	infos, err := p.ctx.Devices(malgo.Playback)
	if err != nil {
		return malgo.DeviceInfo{}, fmt.Errorf("enumerate playback devices: %w", err)
	}
	for _, info := range infos {
		if info.Name() == name {
			return info, nil
		}
	}
	return malgo.DeviceInfo{}, fmt.Errorf("audio device %q not found", name)
}

// Play decodes the file at path and plays it to completion.
// Blocks until playback finishes.
func (p *Player) Play(path string) error {
	p.mu.Lock()
	ctx := p.ctx
	p.mu.Unlock()
	if ctx == nil {
		return errors.New("player is closed")
	}

	c, err := decodeFile(path)
	if err != nil {
		return err
	}
	if len(c.samples) == 0 {
		return nil
	}

	applyVolume(c.samples, p.volume)
	pcm := samplesToBytes(c.samples)

	cfg := malgo.DefaultDeviceConfig(malgo.Playback)
	cfg.Playback.Format = malgo.FormatS16
	cfg.Playback.Channels = c.channels
	cfg.SampleRate = c.sampleRate

	if p.deviceName != "" {
		info, err := p.findDevice(p.deviceName)
		if err != nil {
			return err
		}
		id := info.ID
		cfg.Playback.DeviceID = id.Pointer()
	}

	done := make(chan struct{})
	var (
		offset   int
		doneOnce sync.Once
	)
	callbacks := malgo.DeviceCallbacks{
		Data: func(out, _ []byte, _ uint32) {
			n := copy(out, pcm[offset:])
			offset += n
			if offset >= len(pcm) {
				doneOnce.Do(func() { close(done) })
			}
		},
	}

	device, err := malgo.InitDevice(ctx.Context, cfg, callbacks)
	if err != nil {
		return fmt.Errorf("init playback device: %w", err)
	}
	defer device.Uninit()

	if err := device.Start(); err != nil {
		return fmt.Errorf("start playback: %w", err)
	}

	// Bounded wait in case the backend stalls mid-stream.
	frames := len(c.samples) / int(c.channels)
	clipLen := time.Duration(frames) * time.Second / time.Duration(c.sampleRate)
	select {
	case <-done:
		// Let the device drain its last buffer before Uninit cuts it off.
		time.Sleep(50 * time.Millisecond)
	case <-time.After(clipLen + 2*time.Second):
		return errors.New("playback timed out")
	}
	return nil
}

// Close releases the audio context. Safe to call multiple times.
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ctx == nil {
		return nil
	}
	_ = p.ctx.Uninit()
	p.ctx.Free()
	p.ctx = nil
	return nil
}

func applyVolume(samples []int16, volume float64) {
	if volume >= 1.0 {
		return
	}
	if volume < 0 {
		volume = 0
	}
	for i, s := range samples {
		samples[i] = int16(float64(s) * volume)
	}
}
