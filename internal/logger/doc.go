// Package logger writes diagnostic messages at most once per unique content.
//
// Every message is coerced to text, fingerprinted with checksum.Message and
// recorded in a History. A message whose fingerprint was already recorded
// is suppressed, unless the CI flag is set, in which case every message is
// written. Each written Entry is attributed to the code that called the
// logger, resolved from the call stack by the callsite package.
//
// Behavior per call is decided by an Environment read at call time:
//
//   - Debug writes nothing while debug mode is off. Error always runs.
//   - Inside an AJAX request, calls made with SkipOnAjax are dropped.
//   - With testing deprecations on, messages go to the warning channel
//     (slog.Warn by default) and bypass deduplication.
//
// History is never pruned implicitly. Hosts that serve many logical
// requests from one process call BeginRequest to reset it.
//
// Thread-safety: Logger is safe for concurrent use.
package logger
