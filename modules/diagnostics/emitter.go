package diag

import (
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"
)

// Emitter receives diagnostic signals
type Emitter interface {
	Emit(sig Signal)
}

// EmitterFunc adapts a function to the Emitter interface
type EmitterFunc func(sig Signal)

// Emit calls f(sig)
func (f EmitterFunc) Emit(sig Signal) { f(sig) }

type discard struct{}

func (discard) Emit(Signal) {}

// Discard drops every signal
var Discard Emitter = discard{}

// Writer prints each signal on its own line and mirrors it to a logger
type Writer struct {
	mu     sync.Mutex
	out    io.Writer
	logger *zap.Logger
}

// NewWriter creates a Writer. A nil logger disables the mirror.
func NewWriter(out io.Writer, logger *zap.Logger) *Writer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Writer{
		out:    out,
		logger: logger,
	}
}

// Emit writes the signal line
func (w *Writer) Emit(sig Signal) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, err := fmt.Fprintln(w.out, sig.String()); err != nil {
		w.logger.Warn("diagnostic write failed", zap.Error(err))
	}
	w.logger.Debug("diagnostic emitted",
		zap.String("origin", sig.Origin),
		zap.String("operation", sig.Operation),
		zap.Stringer("instance", sig.Instance))
}

// Recorder keeps every signal it receives, in order
type Recorder struct {
	mu      sync.RWMutex
	signals []Signal
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Emit appends the signal
func (r *Recorder) Emit(sig Signal) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.signals = append(r.signals, sig)
}

// Signals returns a copy of the recorded signals
func (r *Recorder) Signals() []Signal {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Signal, len(r.signals))
	copy(out, r.signals)
	return out
}

// Len returns the number of recorded signals
func (r *Recorder) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.signals)
}

// Reset drops all recorded signals
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.signals = nil
}

// Tee fans a signal out to every non-nil emitter in order
func Tee(emitters ...Emitter) Emitter {
	var targets []Emitter
	for _, e := range emitters {
		if e != nil {
			targets = append(targets, e)
		}
	}
	return EmitterFunc(func(sig Signal) {
		for _, e := range targets {
			e.Emit(sig)
		}
	})
}

// OrDiscard returns e, or Discard when e is nil
func OrDiscard(e Emitter) Emitter {
	if e == nil {
		return Discard
	}
	return e
}
