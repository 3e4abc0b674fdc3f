// Package mail is the notification seam of the testkit library.
package mail

import (
	"context"
	"errors"
	"sync"

	log "github.com/golang/glog"
)

var (
	// ErrUnavailable is returned by the stub sender.
	ErrUnavailable = errors.New("mail transport unavailable")
	// ErrNotInitialized is returned when the default sender is nil.
	ErrNotInitialized = errors.New("mail sender not initialized")
)

// Sender delivers a message body to a recipient address. Delivery semantics
// belong to the implementation.
type Sender interface {
	Send(ctx context.Context, to, body string) error
}

// SenderFunc adapts a send function to the Sender interface.
type SenderFunc func(ctx context.Context, to, body string) error

// Send calls f(ctx, to, body).
func (f SenderFunc) Send(ctx context.Context, to, body string) error {
	return f(ctx, to, body)
}

// Stub is the placeholder Sender bound by default. It fails every send.
type Stub struct{}

// NewStub returns the placeholder sender.
func NewStub() *Stub {
	return &Stub{}
}

// Send always fails with ErrUnavailable.
func (s *Stub) Send(ctx context.Context, to, body string) error {
	return ErrUnavailable
}

var defaultSender Sender = NewStub()

// SetDefaultSender replaces the process-wide sender. The change is global,
// so tests must put the previous value back when they finish.
func SetDefaultSender(s Sender) {
	defaultSender = s
}

// DefaultSender returns the process-wide sender, which may be nil.
func DefaultSender() Sender {
	return defaultSender
}

// Send delivers body to the address to through the default sender.
func Send(ctx context.Context, to, body string) error {
	s := defaultSender
	if s == nil {
		return ErrNotInitialized
	}
	if err := s.Send(ctx, to, body); err != nil {
		return err
	}
	log.V(3).Infof("[Send] delivered to %s via %T", to, s)
	return nil
}

// Message is one delivery captured by a Recorder.
type Message struct {
	To   string
	Body string
}

// Recorder is a Sender that keeps every message in memory.
type Recorder struct {
	mu       sync.Mutex
	messages []Message
	err      error
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// WithError makes subsequent sends fail with err. Failed sends are still
// recorded so tests can assert the attempt.
func (r *Recorder) WithError(err error) *Recorder {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = err
	return r
}

// Send records the message.
func (r *Recorder) Send(ctx context.Context, to, body string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, Message{To: to, Body: body})
	return r.err
}

// Messages returns the recorded messages in send order.
func (r *Recorder) Messages() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Message, len(r.messages))
	copy(out, r.messages)
	return out
}
