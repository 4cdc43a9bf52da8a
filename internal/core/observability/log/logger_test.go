package log

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"":        LevelInfo,
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		"warning": LevelWarn,
		"error":   LevelError,
		"fatal":   LevelFatal,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestFieldsReachCore(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewFromZap(zap.New(core))

	l.Named("scripts").Error("script rejected",
		String("script", "npc_guard"),
		Uint32("id", 7),
		Hex("fingerprint", 0xff),
		Strings("names", []string{"a", "b"}),
		Error(errors.New("boom")),
	)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "scripts", entry.LoggerName)
	ctx := entry.ContextMap()
	assert.Equal(t, "npc_guard", ctx["script"])
	assert.Equal(t, uint32(7), ctx["id"])
	assert.Equal(t, "00000000000000ff", ctx["fingerprint"])
	assert.Equal(t, "boom", ctx["error"])
}

func TestFatalHonoursHook(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewFromZap(zap.New(core, zap.WithFatalHook(zapcore.WriteThenPanic)))

	assert.Panics(t, func() { l.Fatal("abort") })
	assert.Equal(t, 1, logs.FilterMessage("abort").Len())
}

func TestLevelGate(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	l := NewFromZap(zap.New(core))

	assert.Equal(t, LevelWarn, l.GetLevel())
	l.Log(LevelInfo, "dropped")
	l.Log(LevelError, "kept")
	assert.Equal(t, 1, logs.Len())
}

func TestWriterLoggerKeepsRepeatedMessages(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(LevelInfo, &buf)

	for i := range 250 {
		l.Error("script named in the directory does not have a script implementation",
			String("script", fmt.Sprintf("npc_%03d", i)),
		)
	}
	l.Debug("filtered by level")
	require.NoError(t, l.Sync())

	seen := map[string]bool{}
	sc := bufio.NewScanner(&buf)
	for sc.Scan() {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &entry))
		assert.Equal(t, "error", entry["level"])
		seen[entry["script"].(string)] = true
	}
	assert.Len(t, seen, 250)
}
