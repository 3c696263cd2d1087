// Package projection renders session state onto the UI and turns UI intents into controller operations.
package projection

import (
	"context"
	"sync"

	tally "github.com/uber-go/tally/v4"
	"github.com/uber/polysync/src/polysync/entity"
	"github.com/uber/polysync/src/polysync/internal/errors"
	"go.uber.org/fx"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const _nameKey = "projection"

// Renderer draws session state onto the UI.
type Renderer interface {
	// SetActiveTab highlights the tab of the given syntax.
	SetActiveTab(ctx context.Context, id entity.SyntaxID) error
	// RenderActiveBuffer replaces the text and mode of the editing surface.
	RenderActiveBuffer(ctx context.Context, text string, mode string) error
	// RenderEntityList replaces the full content of one sidebar list.
	RenderEntityList(ctx context.Context, kind entity.EntityKind, entities []entity.Entity) error
	// ShowNotice surfaces a non-fatal message.
	ShowNotice(ctx context.Context, notice entity.Notice) error
}

// Surface is the live editing widget.
type Surface interface {
	// Text returns the current content of the editing surface.
	Text(ctx context.Context) (string, error)
}

// IntentSink receives the intents raised by the UI.
type IntentSink interface {
	Save(ctx context.Context) error
	SelectTab(ctx context.Context, id entity.SyntaxID) error
}

// Projector keeps the UI consistent with the session state.
type Projector interface {
	// Render draws state. The editing surface is only rewritten when the active syntax or its text changed since the last render.
	Render(ctx context.Context, state entity.SessionState) error
	// Notify surfaces a non-fatal notice.
	Notify(ctx context.Context, notice entity.Notice) error
	// CaptureText reads the live editing surface.
	CaptureText(ctx context.Context) (string, error)
	// Invalidate forgets what was rendered, so the next Render draws everything.
	Invalidate()

	// RegisterIntentSink sets the receiver of UI intents.
	RegisterIntentSink(sink IntentSink) error
	// TabClicked forwards a tab click.
	TabClicked(ctx context.Context, id entity.SyntaxID) error
	// SaveKeystroke forwards a save keystroke.
	SaveKeystroke(ctx context.Context) error
}

// Params are inbound parameters to initialize a new Projector.
type Params struct {
	fx.In

	Renderer Renderer
	Surface  Surface
	Logger   *zap.SugaredLogger
	Stats    tally.Scope
}

type rendered struct {
	valid  bool
	active entity.SyntaxID
	text   string
	mode   string
}

type projector struct {
	renderer Renderer
	surface  Surface
	logger   *zap.SugaredLogger
	stats    tally.Scope

	mu   sync.Mutex
	sink IntentSink
	last rendered
}

// New creates a new Projector.
func New(p Params) Projector {
	return &projector{
		renderer: p.Renderer,
		surface:  p.Surface,
		logger:   p.Logger.With("plugin", _nameKey),
		stats:    p.Stats.SubScope("ui"),
	}
}

func (p *projector) Render(ctx context.Context, state entity.SessionState) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var errs error
	if d, ok := state.ActiveDescriptor(); ok {
		changed := !p.last.valid || p.last.active != d.ID
		if changed {
			errs = multierr.Append(errs, p.renderer.SetActiveTab(ctx, d.ID))
		}
		if changed || p.last.text != d.Text || p.last.mode != d.Mode {
			errs = multierr.Append(errs, p.renderer.RenderActiveBuffer(ctx, d.Text, d.Mode))
		}
		p.last = rendered{valid: true, active: d.ID, text: d.Text, mode: d.Mode}
	}

	errs = multierr.Append(errs, p.renderer.RenderEntityList(ctx, entity.EntityKindModel, state.Project.Entities(entity.EntityKindModel)))
	errs = multierr.Append(errs, p.renderer.RenderEntityList(ctx, entity.EntityKindRequest, state.Project.Entities(entity.EntityKindRequest)))

	p.stats.Counter("renders").Inc(1)
	if errs != nil {
		// Repaint everything on the next render.
		p.last = rendered{}
		p.stats.Counter("render_errors").Inc(1)
	}
	return errs
}

func (p *projector) Notify(ctx context.Context, notice entity.Notice) error {
	p.stats.Counter("notices").Inc(1)
	p.logger.Infow("surfacing notice", "type", notice.Type, "message", notice.Message)
	return p.renderer.ShowNotice(ctx, notice)
}

func (p *projector) CaptureText(ctx context.Context) (string, error) {
	return p.surface.Text(ctx)
}

func (p *projector) Invalidate() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.last = rendered{}
}

func (p *projector) RegisterIntentSink(sink IntentSink) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.sink != nil {
		return errors.New("cannot register a duplicate intent sink")
	}
	p.sink = sink
	return nil
}

func (p *projector) TabClicked(ctx context.Context, id entity.SyntaxID) error {
	sink, err := p.getSink()
	if err != nil {
		return err
	}
	p.stats.Tagged(map[string]string{"intent": "tab_click"}).Counter("intents").Inc(1)
	return sink.SelectTab(ctx, id)
}

func (p *projector) SaveKeystroke(ctx context.Context) error {
	sink, err := p.getSink()
	if err != nil {
		return err
	}
	p.stats.Tagged(map[string]string{"intent": "save"}).Counter("intents").Inc(1)
	return sink.Save(ctx)
}

func (p *projector) getSink() (IntentSink, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.sink == nil {
		return nil, errors.New("no intent sink registered")
	}
	return p.sink, nil
}
