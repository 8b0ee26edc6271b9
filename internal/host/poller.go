package host

import (
	"context"
	"time"

	"github.com/ppiankov/calsigns/internal/worker"
	"go.uber.org/zap"
)

// Poller refreshes every entity of a registry on a fixed interval
type Poller struct {
	registry  *Registry
	publisher *Publisher
	limiter   *worker.Limiter
	clock     func() time.Time
	onChange  func(State)
	logger    *zap.Logger
}

// NewPoller creates a poller refreshing each entity at most once per interval
func NewPoller(registry *Registry, publisher *Publisher, interval time.Duration, burst int, logger *zap.Logger) *Poller {
	if logger == nil {
		logger = zap.NewNop()
	}
	if interval <= 0 {
		interval = time.Minute
	}
	return &Poller{
		registry:  registry,
		publisher: publisher,
		limiter:   worker.NewLimiter(interval, burst),
		clock:     time.Now,
		onChange:  func(State) {},
		logger:    logger,
	}
}

// SetClock replaces the source of the current (already localized) time
func (p *Poller) SetClock(clock func() time.Time) {
	p.clock = clock
}

// OnChange registers a callback invoked for every changed state
func (p *Poller) OnChange(fn func(State)) {
	p.onChange = fn
}

// Run polls until ctx is done, then withdraws the published states. The
// first round runs immediately.
func (p *Poller) Run(ctx context.Context) {
	entities := p.registry.Entities()
	p.logger.Info("Poller started",
		zap.String("entry_id", p.registry.EntryID()),
		zap.Int("entities", len(entities)))

	if len(entities) == 0 {
		<-ctx.Done()
		p.logger.Info("Poller stopped")
		return
	}
	defer p.withdraw(entities)

	for ctx.Err() == nil {
		for _, e := range entities {
			if err := p.limiter.Wait(ctx, e.UniqueID()); err != nil {
				// rate refuses waits that would outlive the deadline
				<-ctx.Done()
				break
			}
			p.refresh(e)
		}
	}
	p.logger.Info("Poller stopped")
}

// withdraw forgets the published states so a later poller on the same
// store republishes every entity
func (p *Poller) withdraw(entities []*Entity) {
	for _, e := range entities {
		if err := p.publisher.Forget(e.UniqueID()); err != nil {
			p.logger.Warn("Forget failed", zap.String("unique_id", e.UniqueID()), zap.Error(err))
		}
	}
}

func (p *Poller) refresh(e *Entity) {
	st := e.Update(p.clock())

	changed, err := p.publisher.Publish(st)
	if err != nil {
		p.logger.Warn("Publish failed", zap.String("unique_id", st.UniqueID), zap.Error(err))
		return
	}
	if !changed {
		return
	}

	p.logger.Info("State changed",
		zap.String("unique_id", st.UniqueID),
		zap.String("state", st.ValueOr("unknown")))
	p.onChange(st)
}
