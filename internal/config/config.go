package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

//go:embed schema.cue
var schemaCUE string

// Error codes.
const (
	ErrCodeRead    = "E200"
	ErrCodeParse   = "E201"
	ErrCodeSchema  = "E202"
	ErrCodeInvalid = "E203"
	ErrCodeFormat  = "E204"
)

// Sink kinds.
const (
	SinkStderr  = "stderr"
	SinkConsole = "console"
	SinkSlog    = "slog"
	SinkSQLite  = "sqlite"
)

// Format names a configuration file syntax.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Config is a decoded configuration file.
type Config struct {
	Debug     bool       `json:"debug"`
	LogOnAjax bool       `json:"log_on_ajax"`
	Sink      SinkConfig `json:"sink"`
}

// SinkConfig selects where logger entries go.
type SinkConfig struct {
	Kind  string `json:"kind"`
	Path  string `json:"path,omitempty"`
	Color string `json:"color"`
	Wrap  int    `json:"wrap"`
}

// Error is a configuration error with a stable code.
type Error struct {
	Code string
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Path, e.Err)
	}
	return fmt.Sprintf("[%s] %v", e.Code, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Default returns the configuration used when no file is given.
func Default() Config {
	cfg, err := Parse(nil, FormatYAML)
	if err != nil {
		// The embedded schema is fixed; failing here is a build defect.
		panic(fmt.Sprintf("config: embedded schema: %v", err))
	}
	return cfg
}

// FormatOf infers a file format from its extension. JSON is read as YAML.
func FormatOf(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return FormatYAML, true
	case ".toml":
		return FormatTOML, true
	}
	return "", false
}

// Load reads and validates the configuration file at path.
func Load(path string) (Config, error) {
	format, ok := FormatOf(path)
	if !ok {
		return Config{}, &Error{Code: ErrCodeFormat, Path: path, Err: fmt.Errorf("unsupported extension %q", filepath.Ext(path))}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, &Error{Code: ErrCodeRead, Path: path, Err: err}
	}

	cfg, err := Parse(data, format)
	if err != nil {
		if cerr, ok := err.(*Error); ok {
			cerr.Path = path
		}
		return Config{}, err
	}

	slog.Debug("config loaded", "path", path, "sink", cfg.Sink.Kind, "debug", cfg.Debug)
	return cfg, nil
}

// Parse decodes data in the given format and validates it.
// Empty input yields the defaults.
func Parse(data []byte, format Format) (Config, error) {
	raw := map[string]any{}
	if len(bytes.TrimSpace(data)) > 0 {
		var err error
		switch format {
		case FormatYAML:
			err = yaml.Unmarshal(data, &raw)
		case FormatTOML:
			err = toml.Unmarshal(data, &raw)
		default:
			return Config{}, &Error{Code: ErrCodeFormat, Err: fmt.Errorf("unsupported format %q", format)}
		}
		if err != nil {
			return Config{}, &Error{Code: ErrCodeParse, Err: err}
		}
		if raw == nil {
			raw = map[string]any{}
		}
	}

	cfg, err := decode(raw)
	if err != nil {
		return Config{}, err
	}

	if cfg.Sink.Kind == SinkSQLite && cfg.Sink.Path == "" {
		return Config{}, &Error{Code: ErrCodeInvalid, Err: fmt.Errorf("sink.path is required for the %s sink", SinkSQLite)}
	}
	return cfg, nil
}

// decode unifies raw with #Config and decodes the result.
func decode(raw map[string]any) (Config, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return Config{}, fmt.Errorf("compile schema: %w", err)
	}

	v := schema.LookupPath(cue.ParsePath("#Config")).Unify(ctx.Encode(raw))
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return Config{}, &Error{Code: ErrCodeSchema, Err: firstCUEError(err)}
	}

	var cfg Config
	if err := v.Decode(&cfg); err != nil {
		return Config{}, &Error{Code: ErrCodeSchema, Err: firstCUEError(err)}
	}
	return cfg, nil
}

// firstCUEError reduces a CUE error list to its first entry.
func firstCUEError(err error) error {
	errs := errors.Errors(err)
	if len(errs) == 0 {
		return err
	}
	return errs[0]
}
