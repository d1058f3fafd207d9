// Package env reads the logger's environment flags through viper.
//
// Flags come from EASE_DEBUG, EASE_TESTING_DEPRECATIONS, EASE_AJAX and the
// bare CI variable set by most build services. They are read on every call,
// so exporting a variable takes effect without rebuilding the logger.
package env

import (
	"strings"

	"github.com/spf13/viper"
)

// Prefix is the environment variable prefix for every flag except CI.
const Prefix = "EASE"

// Keys understood by Viper.
const (
	KeyDebug               = "debug"
	KeyCI                  = "ci"
	KeyTestingDeprecations = "testing_deprecations"
	KeyAjax                = "ajax"
)

// Defaults holds the values used when no environment variable is set.
// They usually come from the config file.
type Defaults struct {
	Debug bool
}

// Viper implements logger.Environment on top of a private viper instance.
//
// Thread-safety: reads are safe for concurrent use; Set is not.
type Viper struct {
	v    *viper.Viper
	ajax func() bool
}

// Option configures a Viper environment.
type Option func(*Viper)

// WithAjax replaces the EASE_AJAX variable with a predicate, for hosts
// that know per request whether it is an AJAX call.
func WithAjax(pred func() bool) Option {
	return func(e *Viper) { e.ajax = pred }
}

// New creates an environment bound to the process environment.
func New(defaults Defaults, opts ...Option) *Viper {
	v := viper.New()
	v.SetEnvPrefix(Prefix)

	_ = v.BindEnv(KeyDebug)
	_ = v.BindEnv(KeyCI, "CI")
	_ = v.BindEnv(KeyTestingDeprecations)
	_ = v.BindEnv(KeyAjax)

	v.SetDefault(KeyDebug, defaults.Debug)
	v.SetDefault(KeyCI, false)
	v.SetDefault(KeyTestingDeprecations, false)
	v.SetDefault(KeyAjax, false)

	e := &Viper{v: v}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// DebugMode reports EASE_DEBUG.
func (e *Viper) DebugMode() bool {
	return e.v.GetBool(KeyDebug)
}

// CI reports whether CI is set. Build services disagree on its value
// ("true", "1", "woodpecker"), so any non-empty value other than "0" or
// "false" counts.
func (e *Viper) CI() bool {
	raw := strings.TrimSpace(e.v.GetString(KeyCI))
	return raw != "" && raw != "0" && !strings.EqualFold(raw, "false")
}

// TestingDeprecations reports EASE_TESTING_DEPRECATIONS.
func (e *Viper) TestingDeprecations() bool {
	return e.v.GetBool(KeyTestingDeprecations)
}

// Ajax reports the AJAX predicate, or EASE_AJAX when none was given.
func (e *Viper) Ajax() bool {
	if e.ajax != nil {
		return e.ajax()
	}
	return e.v.GetBool(KeyAjax)
}

// Set overrides key for the lifetime of e, taking precedence over the
// environment.
func (e *Viper) Set(key string, value any) {
	e.v.Set(key, value)
}
