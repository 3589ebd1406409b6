package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Garsondee/Tank-Arena/internal/game"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		"INFO":    zerolog.InfoLevel,
		"Warn":    zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"trace":   zerolog.TraceLevel,
		"":        zerolog.InfoLevel,
		"verbose": zerolog.InfoLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestSetup_ConsoleRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, closeFn, err := Setup(Options{Level: "warn", Console: &buf, NoColor: true})
	require.NoError(t, err)
	defer closeFn()

	logger.Info().Msg("quiet")
	logger.Warn().Msg("loud")

	out := buf.String()
	assert.NotContains(t, out, "quiet")
	assert.Contains(t, out, "loud")
}

func TestSetup_FileGetsJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tanks.log")
	logger, closeFn, err := Setup(Options{Level: "info", File: path})
	require.NoError(t, err)

	logger.Info().Int("tick", 7).Msg("match stopped")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "match stopped", entry["message"])
	assert.Equal(t, float64(7), entry["tick"])
}

func TestSetup_BadFilePath(t *testing.T) {
	_, _, err := Setup(Options{File: filepath.Join(t.TempDir(), "missing", "dir", "x.log")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open log file")
}

func TestSetup_NoWritersIsNop(t *testing.T) {
	logger, closeFn, err := Setup(Options{Level: "debug"})
	require.NoError(t, err)
	assert.NoError(t, closeFn())
	assert.Equal(t, zerolog.Disabled, logger.GetLevel())
}

func TestEventLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	el := NewEventLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))

	el.OnEvent(game.Event{Tick: 3, Kind: game.EventExpire, Entity: 9})
	assert.Empty(t, buf.String(), "expiries are trace only")

	el.OnEvent(game.Event{Tick: 12, Kind: game.EventHit, Entity: 2, Other: 1, Label: "E1", Detail: "P", Value: 30})
	var hit map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &hit))
	assert.Equal(t, "debug", hit["level"])
	assert.Equal(t, "hit", hit["message"])
	assert.Equal(t, "arena", hit["component"])
	assert.Equal(t, "E1", hit["label"])
	assert.Equal(t, "P", hit["detail"])
	assert.Equal(t, float64(30), hit["value"])
	assert.Equal(t, float64(1), hit["other"])

	buf.Reset()
	el.OnEvent(game.Event{Tick: 40, Kind: game.EventStopped, Detail: "win"})
	var stop map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &stop))
	assert.Equal(t, "info", stop["level"])
	assert.Equal(t, "win", stop["detail"])
	assert.NotContains(t, stop, "label")
}
