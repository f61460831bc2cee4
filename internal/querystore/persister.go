package querystore

import (
	"context"
	"sync"
	"time"

	"github.com/matheus3301/posts/internal/bus"
	"go.uber.org/zap"
)

// Backend is the storage a Persister writes through to.
type Backend interface {
	Save(ctx context.Context, value string) error
	Load(ctx context.Context) (string, bool, error)
}

// Persister is a write-behind worker for the query. Submit never blocks;
// values submitted faster than they can be written coalesce so that only the
// latest one is written.
type Persister struct {
	backend Backend
	bus     *bus.Bus
	logger  *zap.Logger

	mu      sync.Mutex
	pending string
	dirty   bool

	wake   chan struct{}
	cancel context.CancelFunc
	done   chan struct{}
}

// NewPersister creates a persister over backend. b may be nil.
func NewPersister(backend Backend, b *bus.Bus, logger *zap.Logger) *Persister {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Persister{
		backend: backend,
		bus:     b,
		logger:  logger,
		wake:    make(chan struct{}, 1),
	}
}

// Start begins draining submitted values.
func (p *Persister) Start(ctx context.Context) {
	ctx, p.cancel = context.WithCancel(ctx)
	p.done = make(chan struct{})
	go p.loop(ctx)
}

// Stop stops the worker and writes any value still pending.
func (p *Persister) Stop() {
	if p.cancel != nil {
		p.cancel()
		<-p.done
		p.cancel = nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	p.flush(ctx)
}

// Submit queues value for persistence and returns immediately.
func (p *Persister) Submit(value string) {
	p.mu.Lock()
	p.pending = value
	p.dirty = true
	p.mu.Unlock()

	select {
	case p.wake <- struct{}{}:
	default:
	}
}

// Load reads the persisted value through to the backend.
func (p *Persister) Load(ctx context.Context) (string, bool, error) {
	return p.backend.Load(ctx)
}

func (p *Persister) loop(ctx context.Context) {
	defer close(p.done)
	for {
		select {
		case <-p.wake:
			p.flush(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (p *Persister) flush(ctx context.Context) {
	p.mu.Lock()
	if !p.dirty {
		p.mu.Unlock()
		return
	}
	value := p.pending
	p.dirty = false
	p.mu.Unlock()

	if err := p.backend.Save(ctx, value); err != nil {
		if ctx.Err() != nil {
			// Interrupted by shutdown: keep the value for the final flush
			// unless a newer one arrived meanwhile.
			p.mu.Lock()
			if !p.dirty {
				p.pending = value
				p.dirty = true
			}
			p.mu.Unlock()
			return
		}
		p.logger.Warn("persist query failed", zap.Error(err))
		return
	}
	p.bus.Emit("query.persisted", value)
}
