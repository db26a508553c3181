package audio

import (
	"bytes"
	"encoding/binary"
	"math"
)

const (
	chimeSampleRate = 44100
	chimeAmplitude  = 0.4 * math.MaxInt16
)

// chimeNotes is a rising three-note figure followed by a rest
var chimeNotes = []struct {
	freq    float64 // Hz, 0 for silence
	seconds float64
}{
	{880, 0.18},
	{1108.73, 0.18},
	{1318.51, 0.32},
	{0, 0.5},
}

// Chime returns the built-in alarm as a mono 16-bit PCM WAV file
func Chime() []byte {
	var pcm bytes.Buffer
	for _, note := range chimeNotes {
		n := int(note.seconds * chimeSampleRate)
		fade := n / 10
		for i := 0; i < n; i++ {
			var sample float64
			if note.freq > 0 {
				sample = math.Sin(2 * math.Pi * note.freq * float64(i) / chimeSampleRate)
				// Short ramps avoid clicks at note edges
				if i < fade {
					sample *= float64(i) / float64(fade)
				} else if i > n-fade {
					sample *= float64(n-i) / float64(fade)
				}
			}
			binary.Write(&pcm, binary.LittleEndian, int16(sample*chimeAmplitude))
		}
	}
	return encodeWAV(pcm.Bytes(), chimeSampleRate, 1)
}

// encodeWAV wraps 16-bit little-endian PCM in a RIFF/WAVE container
func encodeWAV(pcm []byte, sampleRate, channels int) []byte {
	const bitsPerSample = 16
	blockAlign := channels * bitsPerSample / 8

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+len(pcm)))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(channels))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate*blockAlign))
	binary.Write(&buf, binary.LittleEndian, uint16(blockAlign))
	binary.Write(&buf, binary.LittleEndian, uint16(bitsPerSample))

	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(len(pcm)))
	buf.Write(pcm)

	return buf.Bytes()
}
