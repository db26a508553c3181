package audio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

// Global audio context singleton
var (
	globalAudioCtx     *oto.Context
	globalAudioCtxOnce sync.Once
	audioCtxReady      bool
)

// Player manages alarm sound playback with cancellation support
type Player struct {
	stopChan chan struct{}
	player   *oto.Player
	stopped  bool
	mu       sync.Mutex
}

// wavFormat holds WAV file format information
type wavFormat struct {
	SampleRate int
	Channels   int
	BitDepth   int
}

// InitAudioContext initializes the global audio context once
func InitAudioContext(format *wavFormat) {
	globalAudioCtxOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   format.SampleRate,
			ChannelCount: format.Channels,
			Format:       oto.FormatSignedInt16LE,
		}

		ctx, readyChan, err := oto.NewContext(op)
		if err != nil {
			log.Printf("Failed to initialize audio context: %v", err)
			return
		}

		// Wait for the hardware audio devices to be ready
		<-readyChan

		globalAudioCtx = ctx
		audioCtxReady = true
		log.Println("Audio context initialized successfully")
	})
}

// LoadAlarm reads the WAV file at path, falling back to the built-in chime
func LoadAlarm(path string) []byte {
	if path == "" {
		return Chime()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Failed to read alarm sound %s, using chime: %v", path, err)
		return Chime()
	}

	if _, _, err := parseWAV(data); err != nil {
		log.Printf("Alarm sound %s is not a usable WAV file, using chime: %v", path, err)
		return Chime()
	}
	return data
}

// PlayAlarmSound loops the provided WAV audio until stopped or maxDuration
// elapses, and returns a Player for control. A zero maxDuration loops until Stop.
func PlayAlarmSound(wavData []byte, maxDuration time.Duration) *Player {
	// Parse WAV header to get audio format
	format, audioData, err := parseWAV(wavData)
	if err != nil {
		log.Printf("Failed to parse WAV file: %v", err)
		return nil
	}

	// Initialize global audio context if not already done
	InitAudioContext(format)

	if !audioCtxReady || globalAudioCtx == nil {
		log.Printf("Audio context not ready")
		return nil
	}

	p := &Player{
		stopChan: make(chan struct{}),
	}

	// Play the sound in a goroutine so it doesn't block
	go p.playLoop(audioData)

	if maxDuration > 0 {
		time.AfterFunc(maxDuration, p.Stop)
	}

	return p
}

func (p *Player) playLoop(audioData []byte) {
	for {
		p.mu.Lock()
		if p.stopped {
			p.mu.Unlock()
			return
		}
		player := globalAudioCtx.NewPlayer(bytes.NewReader(audioData))
		p.player = player
		p.mu.Unlock()

		player.Play()

		// Wait for the sound to finish playing or stop signal
		for player.IsPlaying() {
			select {
			case <-p.stopChan:
				player.Pause()
				player.Close()
				log.Println("Audio player closed")
				return
			case <-time.After(10 * time.Millisecond):
			}
		}

		// Close the player before creating a new one
		if err := player.Close(); err != nil {
			log.Printf("Failed to close audio player: %v", err)
		}

		select {
		case <-p.stopChan:
			return
		default:
		}
	}
}

// Stop stops the audio playback
func (p *Player) Stop() {
	if p == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.stopped {
		p.stopped = true
		close(p.stopChan)

		if p.player != nil {
			p.player.Pause()
		}

		log.Println("Audio playback stopped")
	}
}

// parseWAV parses a 16-bit PCM WAV file and returns the format and audio data
func parseWAV(data []byte) (*wavFormat, []byte, error) {
	reader := bytes.NewReader(data)

	var header [12]byte
	if _, err := io.ReadFull(reader, header[:]); err != nil {
		return nil, nil, fmt.Errorf("read RIFF header: %w", err)
	}
	if string(header[0:4]) != "RIFF" || string(header[8:12]) != "WAVE" {
		return nil, nil, errors.New("not a RIFF/WAVE file")
	}

	var format *wavFormat
	for {
		var chunkID [4]byte
		if _, err := io.ReadFull(reader, chunkID[:]); err != nil {
			return nil, nil, errors.New("no data chunk")
		}

		var chunkSize uint32
		if err := binary.Read(reader, binary.LittleEndian, &chunkSize); err != nil {
			return nil, nil, fmt.Errorf("read chunk size: %w", err)
		}

		switch string(chunkID[:]) {
		case "fmt ":
			var fmtChunk struct {
				AudioFormat   uint16
				Channels      uint16
				SampleRate    uint32
				ByteRate      uint32
				BlockAlign    uint16
				BitsPerSample uint16
			}
			if err := binary.Read(reader, binary.LittleEndian, &fmtChunk); err != nil {
				return nil, nil, fmt.Errorf("read fmt chunk: %w", err)
			}
			format = &wavFormat{
				SampleRate: int(fmtChunk.SampleRate),
				Channels:   int(fmtChunk.Channels),
				BitDepth:   int(fmtChunk.BitsPerSample),
			}

			// Skip any extra format bytes
			if chunkSize > 16 {
				reader.Seek(int64(chunkSize-16), io.SeekCurrent)
			}
		case "data":
			if format == nil {
				return nil, nil, errors.New("data chunk before fmt chunk")
			}
			if format.BitDepth != 16 {
				return nil, nil, fmt.Errorf("unsupported bit depth %d", format.BitDepth)
			}
			audioData := make([]byte, chunkSize)
			n, _ := io.ReadFull(reader, audioData)
			return format, audioData[:n], nil
		default:
			reader.Seek(int64(chunkSize), io.SeekCurrent)
		}
	}
}
