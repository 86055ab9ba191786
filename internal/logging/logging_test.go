package logging_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"deedles.dev/cropbox/internal/logging"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cfg, err := logging.Parse("", "")
	require.Nil(t, err)
	require.Equal(t, logging.DefaultConfig(), cfg)

	cfg, err = logging.Parse("debug", "json")
	require.Nil(t, err)
	require.Equal(t, zerolog.DebugLevel, cfg.Level)
	require.Equal(t, "json", cfg.Format)

	_, err = logging.Parse("loud", "")
	require.NotNil(t, err)

	_, err = logging.Parse("", "xml")
	require.NotNil(t, err)
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(&buf, logging.Config{Level: zerolog.WarnLevel, Format: "json"})

	log.Info().Msg("hidden")
	require.Zero(t, buf.Len())

	log.Warn().Str("corner", "top-left").Msg("shown")
	require.Contains(t, buf.String(), `"corner":"top-left"`)
	require.Contains(t, buf.String(), `"message":"shown"`)
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "cropbox.log")
	log, closer, err := logging.OpenFile(path, logging.Config{Level: zerolog.InfoLevel, Format: "json"})
	require.Nil(t, err)

	log.Info().Msg("hello")
	require.Nil(t, closer.Close())

	data, err := os.ReadFile(path)
	require.Nil(t, err)
	require.Contains(t, string(data), "hello")
}
