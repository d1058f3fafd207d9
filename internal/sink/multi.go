package sink

import "github.com/roach88/ease/internal/logger"

// Multi writes every entry to each of its sinks in order.
type Multi []logger.Sink

// Write implements logger.Sink.
func (m Multi) Write(e logger.Entry) {
	for _, s := range m {
		s.Write(e)
	}
}
