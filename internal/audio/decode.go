// ABOUTME: Sound file decoding into interleaved 16-bit PCM.
// ABOUTME: Supports MP3/WAV/FLAC/OGG via beep decoders and AIFF via go-audio.
package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/aiff"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/flac"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/vorbis"
	"github.com/gopxl/beep/wav"
)

// clip is a fully decoded sound, ready for the playback callback.
type clip struct {
	samples    []int16 // interleaved
	channels   uint32
	sampleRate uint32
}

func decodeFile(path string) (*clip, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3", ".wav", ".flac", ".ogg":
		return decodeBeep(path)
	case ".aiff", ".aif":
		return decodeAIFF(path)
	default:
		return nil, fmt.Errorf("unsupported audio format %q", filepath.Ext(path))
	}
}

func decodeBeep(path string) (*clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	case ".ogg":
		streamer, format, err = vorbis.Decode(f)
	}
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	defer streamer.Close()

	// Beep streams stereo float64 frames regardless of source channels.
	var samples []int16
	buf := make([][2]float64, 512)
	for {
		n, ok := streamer.Stream(buf)
		for _, frame := range buf[:n] {
			samples = append(samples, floatToInt16(frame[0]), floatToInt16(frame[1]))
		}
		if !ok {
			break
		}
	}

	return &clip{
		samples:    samples,
		channels:   2,
		sampleRate: uint32(format.SampleRate),
	}, nil
}

func decodeAIFF(path string) (*clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := aiff.NewDecoder(f)
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	if buf.Format == nil || buf.Format.NumChannels == 0 {
		return nil, fmt.Errorf("decode %s: missing format info", filepath.Base(path))
	}

	return &clip{
		samples:    intBufferToSamples(buf, int(dec.BitDepth)),
		channels:   uint32(buf.Format.NumChannels),
		sampleRate: uint32(buf.Format.SampleRate),
	}, nil
}

func floatToInt16(v float64) int16 {
	if v > 1.0 {
		v = 1.0
	} else if v < -1.0 {
		v = -1.0
	}
	return int16(v * 32767)
}

// intBufferToSamples converts go-audio PCM samples of the given bit
// depth to 16-bit. Unknown depths are treated as already 16-bit.
func intBufferToSamples(buf *goaudio.IntBuffer, bitDepth int) []int16 {
	samples := make([]int16, len(buf.Data))
	for i, v := range buf.Data {
		switch bitDepth {
		case 8:
			samples[i] = int16(v << 8)
		case 24:
			samples[i] = int16(v >> 8)
		case 32:
			samples[i] = int16(v >> 16)
		default:
			samples[i] = int16(v)
		}
	}
	return samples
}

// samplesToBytes encodes samples as little-endian 16-bit PCM.
func samplesToBytes(samples []int16) []byte {
	out := make([]byte, len(samples)*2)
	for i, s := range samples {
		out[i*2] = byte(s)
		out[i*2+1] = byte(s >> 8)
	}
	return out
}
