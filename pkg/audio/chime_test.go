package audio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChime_IsParseableWAV(t *testing.T) {
	format, pcm, err := parseWAV(Chime())
	require.NoError(t, err)

	assert.Equal(t, chimeSampleRate, format.SampleRate)
	assert.Equal(t, 1, format.Channels)
	assert.Equal(t, 16, format.BitDepth)

	samples := 0
	for _, note := range chimeNotes {
		samples += int(note.seconds * chimeSampleRate)
	}
	assert.Len(t, pcm, samples*2)
}

func TestParseWAV_SkipsUnknownChunks(t *testing.T) {
	wav := encodeWAV([]byte{1, 0, 2, 0}, 8000, 2)

	// Insert a LIST chunk between fmt and data
	extra := append([]byte("LIST"), 4, 0, 0, 0, 'a', 'b', 'c', 'd')
	withList := append(append(append([]byte{}, wav[:36]...), extra...), wav[36:]...)

	format, pcm, err := parseWAV(withList)
	require.NoError(t, err)
	assert.Equal(t, 8000, format.SampleRate)
	assert.Equal(t, 2, format.Channels)
	assert.Equal(t, []byte{1, 0, 2, 0}, pcm)
}

func TestParseWAV_RejectsGarbage(t *testing.T) {
	_, _, err := parseWAV([]byte("definitely not audio"))
	assert.Error(t, err)

	_, _, err = parseWAV([]byte("RIFF"))
	assert.Error(t, err)
}

func TestLoadAlarm_FallsBackToChime(t *testing.T) {
	chime := Chime()

	assert.Equal(t, chime, LoadAlarm(""))
	assert.Equal(t, chime, LoadAlarm(filepath.Join(t.TempDir(), "missing.wav")))

	bogus := filepath.Join(t.TempDir(), "bogus.wav")
	require.NoError(t, os.WriteFile(bogus, []byte("nope"), 0o644))
	assert.Equal(t, chime, LoadAlarm(bogus))
}

func TestLoadAlarm_ReadsCustomFile(t *testing.T) {
	custom := encodeWAV([]byte{0, 1, 0, 1}, 22050, 1)
	path := filepath.Join(t.TempDir(), "custom.wav")
	require.NoError(t, os.WriteFile(path, custom, 0o644))

	assert.Equal(t, custom, LoadAlarm(path))
}

func TestPlayerStop_NilSafe(t *testing.T) {
	var p *Player
	assert.NotPanics(t, p.Stop)
}
