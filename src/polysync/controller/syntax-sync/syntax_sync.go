// Package syntaxsync keeps the canonical project and every syntax buffer synchronized through the conversion services.
package syntaxsync

import (
	"context"
	"fmt"
	"sync"

	tally "github.com/uber-go/tally/v4"
	"github.com/uber/polysync/src/polysync/controller/projection"
	"github.com/uber/polysync/src/polysync/entity"
	"github.com/uber/polysync/src/polysync/gateway/converter"
	"github.com/uber/polysync/src/polysync/internal/errors"
	"github.com/uber/polysync/src/polysync/repository/buffers"
	"github.com/uber/polysync/src/polysync/repository/project"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	_nameKey       = "syntax-sync"
	_configKeySync = "sync"

	_defaultTemplate = "petstore"
	_queueSize       = 64
)

// Controller owns the session state. All mutations run on a single event loop; intents are queued and never wait on round-trips.
type Controller interface {
	// Start runs the event loop and the startup transition.
	Start(ctx context.Context) error
	// Stop terminates the event loop and abandons outstanding round-trips.
	Stop(ctx context.Context) error

	// Save captures the active surface text and synchronizes every other syntax from it.
	Save(ctx context.Context) error
	// SelectTab captures the active surface text and activates the given syntax without any network call.
	SelectTab(ctx context.Context, id entity.SyntaxID) error
	// Refresh redraws the full session state, e.g. for a newly connected UI.
	Refresh(ctx context.Context) error

	// State returns a snapshot of the session state.
	State(ctx context.Context) (entity.SessionState, error)
	// WaitIdle blocks until no round-trip is outstanding.
	WaitIdle(ctx context.Context) error
}

// Config is read from the "sync" config key.
type Config struct {
	DefaultSyntax string `yaml:"defaultSyntax"`
	Template      string `yaml:"template"`
}

// Params are inbound parameters to initialize a new Controller.
type Params struct {
	fx.In

	Buffers   buffers.Repository
	Project   project.Repository
	Converter converter.Gateway
	Projector projection.Projector
	Config    config.Provider
	Lifecycle fx.Lifecycle `optional:"true"`
	Logger    *zap.SugaredLogger
	Stats     tally.Scope
}

type controller struct {
	buffers   buffers.Repository
	project   project.Repository
	converter converter.Gateway
	projector projection.Projector
	logger    *zap.SugaredLogger
	stats     tally.Scope

	defaultSyntax entity.SyntaxID
	template      string

	queue     chan func()
	ctx       context.Context
	cancel    context.CancelFunc
	done      chan struct{}
	calls     sync.WaitGroup
	startOnce sync.Once
	stopOnce  sync.Once
	started   bool
	startMu   sync.Mutex

	// Owned by the event loop.
	active      entity.SyntaxID
	states      [entity.NumSyntaxes]entity.SyncState
	seq         [entity.NumSyntaxes]uint64
	outstanding int
	idleWaiters []chan struct{}
	// parseIssued numbers parses across all syntaxes; projectSeq is the number of the parse that produced the project.
	parseIssued uint64
	projectSeq  uint64
}

// New creates a new synchronization Controller and registers it as the receiver of UI intents.
func New(p Params) (Controller, error) {
	cfg := Config{
		DefaultSyntax: entity.SyntaxOpenAPI.String(),
		Template:      _defaultTemplate,
	}
	if err := p.Config.Get(_configKeySync).Populate(&cfg); err != nil {
		return nil, fmt.Errorf("getting config field %q: %w", _configKeySync, err)
	}
	defaultSyntax, err := entity.ParseSyntaxID(cfg.DefaultSyntax)
	if err != nil {
		return nil, &errors.UnknownSyntaxError{Name: cfg.DefaultSyntax}
	}

	ctx, cancel := context.WithCancel(context.Background())
	c := &controller{
		buffers:       p.Buffers,
		project:       p.Project,
		converter:     p.Converter,
		projector:     p.Projector,
		logger:        p.Logger.With("plugin", _nameKey),
		stats:         p.Stats.SubScope("sync"),
		defaultSyntax: defaultSyntax,
		template:      cfg.Template,
		queue:         make(chan func(), _queueSize),
		ctx:           ctx,
		cancel:        cancel,
		done:          make(chan struct{}),
		active:        entity.SyntaxNone,
	}

	if err := p.Projector.RegisterIntentSink(c); err != nil {
		cancel()
		return nil, err
	}

	if p.Lifecycle != nil {
		p.Lifecycle.Append(fx.Hook{
			OnStart: c.Start,
			OnStop:  c.Stop,
		})
	}
	return c, nil
}

func (c *controller) Start(ctx context.Context) error {
	var err error
	c.startOnce.Do(func() {
		c.startMu.Lock()
		c.started = true
		c.startMu.Unlock()

		go c.run()
		err = c.enqueue(c.startup)
	})
	return err
}

func (c *controller) Stop(ctx context.Context) error {
	c.stopOnce.Do(func() {
		c.cancel()

		c.startMu.Lock()
		started := c.started
		c.startMu.Unlock()
		if started {
			<-c.done
		}
		c.calls.Wait()
		c.logger.Infow("synchronization controller stopped")
	})
	return nil
}

func (c *controller) Save(ctx context.Context) error {
	return c.enqueue(c.save)
}

func (c *controller) SelectTab(ctx context.Context, id entity.SyntaxID) error {
	if !id.Valid() {
		return &errors.UnknownSyntaxError{Name: fmt.Sprint(int(id))}
	}
	return c.enqueue(func() {
		c.selectTab(id)
	})
}

func (c *controller) Refresh(ctx context.Context) error {
	return c.enqueue(func() {
		c.projector.Invalidate()
		c.render()
	})
}

func (c *controller) State(ctx context.Context) (entity.SessionState, error) {
	result := make(chan entity.SessionState, 1)
	if err := c.enqueue(func() {
		result <- c.snapshot()
	}); err != nil {
		return entity.SessionState{}, err
	}

	select {
	case state := <-result:
		return state, nil
	case <-ctx.Done():
		return entity.SessionState{}, ctx.Err()
	case <-c.ctx.Done():
		return entity.SessionState{}, errors.ControllerStoppedError
	}
}

func (c *controller) WaitIdle(ctx context.Context) error {
	idle := make(chan struct{})
	if err := c.enqueue(func() {
		if c.outstanding == 0 {
			close(idle)
			return
		}
		c.idleWaiters = append(c.idleWaiters, idle)
	}); err != nil {
		return err
	}

	select {
	case <-idle:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-c.ctx.Done():
		return errors.ControllerStoppedError
	}
}

// run drains the queue until the controller is stopped.
func (c *controller) run() {
	defer close(c.done)
	for {
		select {
		case fn := <-c.queue:
			fn()
		case <-c.ctx.Done():
			return
		}
	}
}

// enqueue schedules fn on the event loop.
func (c *controller) enqueue(fn func()) error {
	if c.ctx.Err() != nil {
		return errors.ControllerStoppedError
	}
	select {
	case c.queue <- fn:
		return nil
	case <-c.ctx.Done():
		return errors.ControllerStoppedError
	}
}
