package logs

import (
	"bytes"
	"encoding/json"
	"testing"

	"salesboard/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(level string, pretty bool) *config.Config {
	cfg := &config.Config{}
	cfg.Env.Env = "test"
	cfg.Env.ServiceName = "salesboard"
	cfg.Env.Log.Level = level
	cfg.Env.Log.Pretty = pretty

	return cfg
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithWriter(&buf, testConfig("info", false))
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("import committed", "rows", 3)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "import committed", record["msg"])
	assert.Equal(t, "salesboard", record["service"])
	assert.Equal(t, "test", record["env"])
	assert.InDelta(t, 3, record["rows"], 0)
}

func TestNewWithWriter_Pretty(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithWriter(&buf, testConfig("debug", true))
	require.NoError(t, err)

	logger.Debug("filtered report built")
	assert.Contains(t, buf.String(), "msg=\"filtered report built\"")
	assert.Contains(t, buf.String(), "service=salesboard")
}

func TestParseLogLevel(t *testing.T) {
	for _, level := range []string{"", "debug", "INFO", "warn", "warning", "error"} {
		_, err := parseLogLevel(level)
		assert.NoError(t, err, level)
	}

	_, err := parseLogLevel("verbose")
	assert.Error(t, err)
}
