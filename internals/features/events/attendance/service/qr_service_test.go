package service

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCheckinURL(t *testing.T) {
	id := uuid.MustParse("a3bb189e-8bf9-3888-9912-ace4e6543002")

	url := BuildCheckinURL("https://acaraku.id", id)
	assert.Equal(t, "https://acaraku.id/attendance/a3bb189e-8bf9-3888-9912-ace4e6543002", url)

	// trailing slash tidak bikin double slash
	assert.Equal(t, url, BuildCheckinURL("https://acaraku.id/", id))

	// deterministik: input sama → URL sama
	assert.Equal(t, url, BuildCheckinURL("https://acaraku.id", id))
}

func TestGenerateQRPNGDeterministic(t *testing.T) {
	id := uuid.New()

	png1, err := GenerateQRPNG("https://acaraku.id", id, 256)
	require.NoError(t, err)
	png2, err := GenerateQRPNG("https://acaraku.id", id, 256)
	require.NoError(t, err)

	// PNG magic bytes
	assert.True(t, bytes.HasPrefix(png1, []byte("\x89PNG")))
	assert.Equal(t, png1, png2)

	// size <= 0 jatuh ke default, tetap valid
	png3, err := GenerateQRPNG("https://acaraku.id", id, 0)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png3, []byte("\x89PNG")))
}
