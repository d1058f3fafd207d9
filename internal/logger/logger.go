package logger

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/roach88/ease/internal/callsite"
	"github.com/roach88/ease/internal/checksum"
)

// Message prefixes.
const (
	ErrorPrefix = "[ERROR]: "
	WrongPrefix = "You're Doing It Wrong! "
)

// internalFrames is the number of logger frames between writeLog and the
// public entry point: writeLog, maybeWrite and logDebug or logError.
const internalFrames = 3

// Environment supplies the flags that decide whether a call writes.
// Implementations are read on every call.
type Environment interface {
	// DebugMode gates Debug. Error ignores it.
	DebugMode() bool
	// CI disables deduplication.
	CI() bool
	// TestingDeprecations routes messages to the warning channel.
	TestingDeprecations() bool
	// Ajax reports whether the current request is an AJAX request.
	Ajax() bool
}

// Logger writes deduplicated, attributed log entries to a Sink.
type Logger struct {
	env       Environment
	sink      Sink
	history   *History
	capturer  callsite.Capturer
	clock     Sequencer
	ids       RequestIDGenerator
	warn      func(string)
	logOnAjax bool

	mu        sync.RWMutex
	requestID string
}

// Option configures a Logger.
type Option func(*Logger)

// WithHistory shares h instead of a private history.
func WithHistory(h *History) Option {
	return func(l *Logger) { l.history = h }
}

// WithCapturer replaces the runtime stack capturer.
func WithCapturer(c callsite.Capturer) Option {
	return func(l *Logger) { l.capturer = c }
}

// WithWarner replaces the warning channel used while testing deprecations.
func WithWarner(warn func(string)) Option {
	return func(l *Logger) { l.warn = warn }
}

// WithClock replaces the sequence clock.
func WithClock(c Sequencer) Option {
	return func(l *Logger) { l.clock = c }
}

// WithRequestIDGenerator replaces the UUIDv7 request ID generator.
func WithRequestIDGenerator(g RequestIDGenerator) Option {
	return func(l *Logger) { l.ids = g }
}

// WithLogOnAjax sets whether calls write during AJAX requests unless they
// pass SkipOnAjax. The default is true.
func WithLogOnAjax(on bool) Option {
	return func(l *Logger) { l.logOnAjax = on }
}

// New creates a logger writing to sink under env.
func New(env Environment, sink Sink, opts ...Option) *Logger {
	l := &Logger{
		env:       env,
		sink:      sink,
		history:   NewHistory(),
		capturer:  callsite.RuntimeCapturer{},
		clock:     NewClock(),
		ids:       UUIDv7Generator{},
		warn:      func(msg string) { slog.Warn(msg) },
		logOnAjax: true,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.requestID = l.ids.Generate()
	return l
}

type callConfig struct {
	stackIndex int
	logOnAjax  bool
	depth      int
}

// CallOption adjusts a single logging call.
type CallOption func(*callConfig)

// WithStackIndex attributes the entry n frames further out than the
// caller. Out-of-range values degrade to the nearest frame.
func WithStackIndex(n int) CallOption {
	return func(c *callConfig) { c.stackIndex = n }
}

// SkipOnAjax drops the call when the request is an AJAX request.
func SkipOnAjax() CallOption {
	return func(c *callConfig) { c.logOnAjax = false }
}

func (l *Logger) callConfig(opts []CallOption) callConfig {
	cfg := callConfig{logOnAjax: l.logOnAjax}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Debug writes message when debug mode is on.
func (l *Logger) Debug(message any, opts ...CallOption) {
	l.logDebug(message, l.callConfig(opts))
}

// Error writes message prefixed with "[ERROR]: " regardless of debug mode.
func (l *Logger) Error(message any, opts ...CallOption) {
	l.logError(message, l.callConfig(opts))
}

// Wrong reports API misuse: the message is prefixed with
// "You're Doing It Wrong! " and written as an error or a debug entry.
func (l *Logger) Wrong(message any, asError bool, opts ...CallOption) {
	cfg := l.callConfig(opts)
	if asError {
		l.logError(wrongText(message), cfg)
		return
	}
	l.logDebug(wrongText(message), cfg)
}

func wrongText(message any) string {
	return WrongPrefix + checksum.Describe(message)
}

// Misuse reports that function was called incorrectly. The entry is
// attributed to the caller of function.
func (l *Logger) Misuse(function, message string) {
	cfg := l.callConfig(nil)
	cfg.depth = 1
	l.logDebug(wrongText(function+" was called incorrectly. "+message), cfg)
}

func (l *Logger) logDebug(message any, cfg callConfig) {
	if !l.env.DebugMode() {
		return
	}
	l.maybeWrite(LevelDebug, message, cfg)
}

func (l *Logger) logError(message any, cfg callConfig) {
	l.maybeWrite(LevelError, message, cfg)
}

func (l *Logger) maybeWrite(level Level, message any, cfg callConfig) {
	if !cfg.logOnAjax && l.env.Ajax() {
		return
	}

	text := checksum.Describe(message)
	if level == LevelError {
		text = ErrorPrefix + text
	}
	sum := checksum.Message(text)

	if l.env.TestingDeprecations() {
		l.warn(text)
		return
	}

	fresh := l.history.Record(sum)
	if !fresh && !l.env.CI() {
		return
	}
	l.writeLog(level, sum, text, cfg)
}

func (l *Logger) writeLog(level Level, sum, text string, cfg callConfig) {
	stack := l.capturer.Capture(internalFrames + cfg.depth)

	l.sink.Write(Entry{
		Seq:       l.clock.Next(),
		RequestID: l.RequestID(),
		Level:     level,
		Checksum:  sum,
		Site:      callsite.Resolve(stack, cfg.stackIndex),
		Message:   strings.TrimSpace(text),
	})
}

// BeginRequest starts a new logical request: the history is cleared and a
// fresh request ID is issued and returned.
func (l *Logger) BeginRequest() string {
	id := l.ids.Generate()

	l.mu.Lock()
	l.requestID = id
	l.mu.Unlock()

	l.history.Reset()
	slog.Debug("log request started", "request_id", id)
	return id
}

// RequestID returns the ID stamped on entries of the current request.
func (l *Logger) RequestID() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.requestID
}

// History returns the logger's message history.
func (l *Logger) History() *History {
	return l.history
}
