package backend

import (
	"bufio"
	"context"
	"io"
	"strings"
	"sync"

	"github.com/atomicstack/menu-overlay/internal/protocol"
	"go.uber.org/atomic"
)

// MaxMessageSize bounds a single host message line.
const MaxMessageSize = 1 << 20

// Event conveys one host message: the decoded command, or the reason it was
// rejected.
type Event struct {
	Raw     string
	Command protocol.Command
	Err     error
}

// Feed reads newline-delimited host messages and publishes them in order.
type Feed struct {
	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup

	lines    atomic.Int64
	rejected atomic.Int64

	mu  sync.Mutex
	err error
}

// Stats counts the messages a feed has read so far.
type Stats struct {
	Lines    int64
	Rejected int64
}

// NewFeed starts reading messages from r.
func NewFeed(r io.Reader) *Feed {
	ctx, cancel := context.WithCancel(context.Background())
	f := &Feed{
		ctx:    ctx,
		cancel: cancel,
		events: make(chan Event, 16),
	}

	f.wg.Add(1)
	go f.read(r)

	go func() {
		f.wg.Wait()
		close(f.events)
	}()

	return f
}

// Events returns a channel of host events. It is closed once the input ends
// or the feed is stopped.
func (f *Feed) Events() <-chan Event {
	return f.events
}

// Stop cancels the feed. A read already blocked on the input returns only
// when the input does, and lines read after Stop are dropped. A message
// being published while Stop runs may still be delivered.
func (f *Feed) Stop() {
	f.cancel()
}

// Err returns the read error that ended the feed, if any. io.EOF is not an
// error.
func (f *Feed) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

// Stats reports how many non-blank lines were read and how many of them
// failed to decode.
func (f *Feed) Stats() Stats {
	return Stats{Lines: f.lines.Load(), Rejected: f.rejected.Load()}
}

func (f *Feed) read(r io.Reader) {
	defer f.wg.Done()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxMessageSize)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if f.ctx.Err() != nil {
			return
		}
		f.lines.Inc()
		cmd, err := protocol.Decode([]byte(line))
		if err != nil {
			f.rejected.Inc()
		}
		select {
		case <-f.ctx.Done():
			return
		case f.events <- Event{Raw: line, Command: cmd, Err: err}:
		}
	}
	if err := scanner.Err(); err != nil {
		f.mu.Lock()
		f.err = err
		f.mu.Unlock()
	}
}
