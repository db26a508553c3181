package branding

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	b, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "CodeFest Hackathon", b.Title)
	require.Len(t, b.Header, 2)
	require.Len(t, b.Footer, 1)
	assert.Equal(t, "assets/codefest-logo.png", b.Header[0].Path)
	assert.Equal(t, float32(256), b.Header[1].Height)
}

func TestParse_DefaultsTitle(t *testing.T) {
	b, err := Parse([]byte("header: []\n"))
	require.NoError(t, err)
	assert.Equal(t, "Hackathon Countdown", b.Title)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("header: [unterminated"))
	assert.Error(t, err)
}

func TestResolve_SkipsMissingFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "assets"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "assets", "here.png"), []byte("png"), 0o644))

	logos := Resolve([]Logo{
		{Path: "assets/here.png", Alt: "present"},
		{Path: "assets/gone.png", Alt: "missing"},
	}, dir)

	require.Len(t, logos, 1)
	assert.Equal(t, "present", logos[0].Alt)
	assert.Equal(t, filepath.Join(dir, "assets", "here.png"), logos[0].Path)
}
