package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func requireCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var cerr *Error
	require.True(t, errors.As(err, &cerr), "want *config.Error, got %T: %v", err, err)
	assert.Equal(t, code, cerr.Code, "error: %v", err)
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, Config{
		Debug:     false,
		LogOnAjax: true,
		Sink:      SinkConfig{Kind: SinkStderr, Color: "auto", Wrap: 0},
	}, cfg)
}

func TestParse_EmptyYAMLYieldsDefaults(t *testing.T) {
	for _, in := range []string{"", "   \n", "~\n", "{}\n"} {
		cfg, err := Parse([]byte(in), FormatYAML)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, Default(), cfg, "input %q", in)
	}
}

func TestParse_YAML(t *testing.T) {
	cfg, err := Parse([]byte(`
debug: true
log_on_ajax: false
sink:
  kind: console
  color: never
  wrap: 80
`), FormatYAML)
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.False(t, cfg.LogOnAjax)
	assert.Equal(t, SinkConfig{Kind: SinkConsole, Color: "never", Wrap: 80}, cfg.Sink)
}

func TestParse_TOML(t *testing.T) {
	cfg, err := Parse([]byte(`
debug = true

[sink]
kind = "sqlite"
path = "/tmp/ease.db"
`), FormatTOML)
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.True(t, cfg.LogOnAjax)
	assert.Equal(t, SinkConfig{Kind: SinkSQLite, Path: "/tmp/ease.db", Color: "auto"}, cfg.Sink)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		format Format
		code   string
	}{
		{"malformed yaml", "debug: [", FormatYAML, ErrCodeParse},
		{"malformed toml", "debug = ", FormatTOML, ErrCodeParse},
		{"yaml list root", "- a\n- b\n", FormatYAML, ErrCodeParse},
		{"unknown key", "verbose: true\n", FormatYAML, ErrCodeSchema},
		{"wrong type", "debug: yes please\n", FormatYAML, ErrCodeSchema},
		{"unknown sink kind", "sink:\n  kind: syslog\n", FormatYAML, ErrCodeSchema},
		{"negative wrap", "sink:\n  wrap: -1\n", FormatYAML, ErrCodeSchema},
		{"sqlite without path", "sink:\n  kind: sqlite\n", FormatYAML, ErrCodeInvalid},
		{"unknown format", "debug: true\n", Format("ini"), ErrCodeFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input), tt.format)
			requireCode(t, err, tt.code)
		})
	}
}

func TestLoad_ByExtension(t *testing.T) {
	yml := writeFile(t, "ease.yml", "debug: true\n")
	tml := writeFile(t, "ease.toml", "debug = true\n")
	jsn := writeFile(t, "ease.json", `{"debug": true, "sink": {"kind": "slog"}}`)

	for _, path := range []string{yml, tml, jsn} {
		cfg, err := Load(path)
		require.NoError(t, err, path)
		assert.True(t, cfg.Debug, path)
	}

	cfg, err := Load(jsn)
	require.NoError(t, err)
	assert.Equal(t, SinkSlog, cfg.Sink.Kind)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		requireCode(t, err, ErrCodeRead)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := Load(writeFile(t, "ease.ini", "debug=1"))
		requireCode(t, err, ErrCodeFormat)
	})

	t.Run("schema error carries path", func(t *testing.T) {
		path := writeFile(t, "ease.yaml", "nope: 1\n")
		_, err := Load(path)
		requireCode(t, err, ErrCodeSchema)
		assert.Contains(t, err.Error(), path)
	})
}

func TestFormatOf(t *testing.T) {
	tests := []struct {
		path string
		want Format
		ok   bool
	}{
		{"a.yaml", FormatYAML, true},
		{"a.YML", FormatYAML, true},
		{"a.json", FormatYAML, true},
		{"a.toml", FormatTOML, true},
		{"a.txt", "", false},
		{"noext", "", false},
	}
	for _, tt := range tests {
		got, ok := FormatOf(tt.path)
		assert.Equal(t, tt.want, got, tt.path)
		assert.Equal(t, tt.ok, ok, tt.path)
	}
}

func TestError_Format(t *testing.T) {
	err := &Error{Code: ErrCodeRead, Path: "x.yaml", Err: errors.New("boom")}
	assert.Equal(t, "[E200] x.yaml: boom", err.Error())

	err = &Error{Code: ErrCodeParse, Err: errors.New("bad")}
	assert.Equal(t, "[E201] bad", err.Error())
}
