package progrock

import (
	"io"
	"sync"

	"github.com/vito/progrock"
)

const streamBuffer = 256

// Stream is a progrock.Writer that hands status updates to an in-process
// consumer. Writes never block: when no consumer keeps up the update is
// dropped, so recording stays safe without an attached display.
type Stream struct {
	updates chan *progrock.StatusUpdate
	done    chan struct{}
	once    sync.Once
}

// NewStream creates an empty Stream.
func NewStream() *Stream {
	return &Stream{
		updates: make(chan *progrock.StatusUpdate, streamBuffer),
		done:    make(chan struct{}),
	}
}

// WriteStatus queues an update for the consumer.
func (s *Stream) WriteStatus(update *progrock.StatusUpdate) error {
	select {
	case <-s.done:
	case s.updates <- update:
	default:
	}
	return nil
}

// Close ends the stream. Updates already queued stay readable.
func (s *Stream) Close() error {
	s.once.Do(func() { close(s.done) })
	return nil
}

// Read returns the next update. It blocks until an update arrives or the
// stream is closed and drained, when it returns io.EOF.
func (s *Stream) Read() (*progrock.StatusUpdate, error) {
	select {
	case update := <-s.updates:
		return update, nil
	case <-s.done:
		select {
		case update := <-s.updates:
			return update, nil
		default:
			return nil, io.EOF
		}
	}
}
