package logger

import "github.com/roach88/ease/internal/callsite"

// Level distinguishes debug entries from error entries.
type Level string

const (
	LevelDebug Level = "debug"
	LevelError Level = "error"
)

// Entry is one written log record.
type Entry struct {
	Seq       int64         `json:"seq"`
	RequestID string        `json:"request_id"`
	Level     Level         `json:"level"`
	Checksum  string        `json:"checksum"`
	Site      callsite.Site `json:"site"`
	Message   string        `json:"message"`
}

// String renders the entry the way text sinks write it:
//
//	" {file}:{line}  {Type::}{function}():\n{message}\n"
func (e Entry) String() string {
	return " " + e.Site.String() + ":\n" + e.Message + "\n"
}

// Sink receives written entries. Write must not block for long and has no
// error return: failed writes are dropped.
type Sink interface {
	Write(Entry)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(Entry)

// Write calls f(e).
func (f SinkFunc) Write(e Entry) {
	f(e)
}
