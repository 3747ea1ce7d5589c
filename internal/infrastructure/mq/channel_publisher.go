package mq

import (
	"context"
	"sync"

	"cadastro_api/pkg/errorx"

	"go.uber.org/zap"
)

// ChannelPublisher hands events to a single goroutine that logs them.
// Publish never blocks on a full buffer; the event is dropped and reported.
type ChannelPublisher struct {
	events chan UsuarioEvent
	done   chan struct{}
	handle func(UsuarioEvent)

	mu     sync.RWMutex
	closed bool
}

// NewChannelPublisher starts the consumer goroutine.
func NewChannelPublisher(size int) *ChannelPublisher {
	return newChannelPublisher(size, logEvent)
}

func newChannelPublisher(size int, handle func(UsuarioEvent)) *ChannelPublisher {
	if size <= 0 {
		size = 100
	}
	p := &ChannelPublisher{
		events: make(chan UsuarioEvent, size),
		done:   make(chan struct{}),
		handle: handle,
	}
	go p.consume()
	return p
}

func logEvent(ev UsuarioEvent) {
	zap.L().Info("usuario event",
		zap.String("type", ev.Type),
		zap.Uint("id", ev.ID),
		zap.String("email", ev.Email),
		zap.Time("at", ev.At),
	)
}

func (p *ChannelPublisher) consume() {
	defer close(p.done)
	for ev := range p.events {
		p.handle(ev)
	}
}

// Publish queues ev
func (p *ChannelPublisher) Publish(ctx context.Context, ev UsuarioEvent) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return errorx.New(errorx.CodeMQError, "publisher closed")
	}
	if err := ctx.Err(); err != nil {
		return errorx.Wrap(err, errorx.CodeMQError, "publish cancelled")
	}
	select {
	case p.events <- ev:
		return nil
	default:
		return errorx.Newf(errorx.CodeMQError, "event buffer full, dropped %s", ev.Type)
	}
}

// Close stops accepting events and waits for the queued ones to be handled.
func (p *ChannelPublisher) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.events)
	p.mu.Unlock()

	<-p.done
	return nil
}
