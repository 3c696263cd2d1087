package syntaxsync

import (
	"context"
	"fmt"

	"github.com/uber/polysync/src/polysync/entity"
	"github.com/uber/polysync/src/polysync/gateway/converter"
	"github.com/uber/polysync/src/polysync/internal/errors"
)

// roundTrip issues call off the event loop on behalf of syntax id and applies its outcome back on the loop.
// The outcome of a request that is no longer the latest issued for id is dropped.
func roundTrip[T any](c *controller, id entity.SyntaxID, state entity.SyncState, method string, call func(ctx context.Context) (T, error), apply func(result T, err error)) {
	if c.ctx.Err() != nil {
		return
	}

	c.seq[id]++
	seq := c.seq[id]
	c.states[id] = state
	c.outstanding++
	c.stats.Gauge("outstanding").Update(float64(c.outstanding))

	c.calls.Add(1)
	go func() {
		defer c.calls.Done()
		result, err := call(c.ctx)
		c.post(func() {
			c.outstanding--
			if latest := c.seq[id]; latest != seq {
				c.dropStale(&errors.StaleResponseError{Syntax: id.String(), Method: method, Seq: seq, Latest: latest})
			} else {
				c.states[id] = entity.SyncStateIdle
				apply(result, err)
			}
			c.settle()
		})
	}()
}

// post schedules a round-trip continuation. Continuations arriving after Stop are discarded.
func (c *controller) post(fn func()) {
	select {
	case c.queue <- fn:
	case <-c.ctx.Done():
	}
}

// settle releases WaitIdle callers once nothing is outstanding.
func (c *controller) settle() {
	c.stats.Gauge("outstanding").Update(float64(c.outstanding))
	if c.outstanding > 0 {
		return
	}
	for _, w := range c.idleWaiters {
		close(w)
	}
	c.idleWaiters = nil
}

func (c *controller) dropStale(err *errors.StaleResponseError) {
	c.stats.Counter("stale_dropped").Inc(1)
	c.logger.Debugw("dropping stale response", "syntax", err.Syntax, "method", err.Method, "error", err)
}

// startup activates the default syntax, seeds it from the configured template and parses it.
func (c *controller) startup() {
	c.active = c.defaultSyntax
	c.render()

	d, err := c.buffers.Get(c.ctx, c.active)
	if err != nil {
		c.logger.Errorw("loading default syntax", "syntax", c.active, "error", err)
		return
	}

	c.logger.Infow("loading template", "syntax", d.ID, "template", c.template)
	roundTrip(c, d.ID, entity.SyncStateRegenerating, converter.MethodTemplate,
		func(ctx context.Context) (string, error) {
			return c.converter.Template(ctx, d.Address, c.template)
		},
		func(code string, err error) {
			if err != nil {
				c.stats.Counter("template_failure").Inc(1)
				c.notify(entity.NoticeError, fmt.Sprintf("Loading template %q for %s failed: %s", c.template, d.DisplayName, c.describeFailure(converter.MethodTemplate, err)))
				return
			}
			if !c.accepts(d.ID, converter.MethodTemplate) {
				return
			}
			c.setText(d.ID, code)
			c.render()
			c.parse(d.ID)
		})
}

func (c *controller) save() {
	if !c.active.Valid() {
		c.logger.Warnw("ignoring save", "error", errors.NoActiveSyntaxError)
		return
	}
	c.capture()
	c.parse(c.active)
}

func (c *controller) selectTab(id entity.SyntaxID) {
	if id != c.active && c.active.Valid() {
		c.capture()
	}
	c.active = id
	c.stats.Counter("tab_switches").Inc(1)
	c.render()
}

// capture copies the surface text into the active buffer. A changed buffer supersedes an in-flight regenerate of it.
func (c *controller) capture() {
	id := c.active
	text, err := c.projector.CaptureText(c.ctx)
	if err != nil {
		c.logger.Warnw("capturing surface text", "syntax", id, "error", err)
		return
	}

	d, err := c.buffers.Get(c.ctx, id)
	if err != nil {
		c.logger.Errorw("capturing surface text", "syntax", id, "error", err)
		return
	}
	if d.Text == text {
		return
	}

	c.setText(id, text)
	if c.states[id] == entity.SyncStateRegenerating {
		c.seq[id]++
		c.states[id] = entity.SyncStateIdle
	}
}

// parse replaces the project from the buffer of id and regenerates every other syntax from it.
func (c *controller) parse(id entity.SyntaxID) {
	d, err := c.buffers.Get(c.ctx, id)
	if err != nil {
		c.logger.Errorw("parsing syntax", "syntax", id, "error", err)
		return
	}

	c.parseIssued++
	issued := c.parseIssued

	roundTrip(c, id, entity.SyncStateParsing, converter.MethodParse,
		func(ctx context.Context) (entity.Project, error) {
			return c.converter.Parse(ctx, d.Address, d.Text)
		},
		func(p entity.Project, err error) {
			if err != nil {
				c.stats.Counter("parse_failure").Inc(1)
				c.notify(entity.NoticeError, fmt.Sprintf("Parsing %s failed: %s", d.DisplayName, c.describeFailure(converter.MethodParse, err)))
				return
			}

			// A parse issued after this one already produced the project.
			if issued < c.projectSeq {
				c.dropStale(&errors.StaleResponseError{Syntax: id.String(), Method: converter.MethodParse, Seq: issued, Latest: c.projectSeq})
				c.regenerate(id)
				return
			}

			c.stats.Counter("parse_success").Inc(1)
			c.projectSeq = issued
			c.project.Replace(c.ctx, p)
			for _, other := range c.buffers.List(c.ctx) {
				if other != id {
					c.regenerate(other)
				}
			}
			c.render()
		})
}

// regenerate rewrites the buffer of id from the current project. It never triggers a parse.
func (c *controller) regenerate(id entity.SyntaxID) {
	// The pending parse carries newer user text and will fan out itself.
	if c.states[id] == entity.SyncStateParsing {
		c.logger.Infow("skipping regenerate of syntax with a pending parse", "syntax", id)
		return
	}

	d, err := c.buffers.Get(c.ctx, id)
	if err != nil {
		c.logger.Errorw("regenerating syntax", "syntax", id, "error", err)
		return
	}
	p := c.project.Current(c.ctx)

	roundTrip(c, id, entity.SyncStateRegenerating, converter.MethodUpdate,
		func(ctx context.Context) (string, error) {
			return c.converter.Update(ctx, d.Address, p, d.Text)
		},
		func(code string, err error) {
			if err != nil {
				c.stats.Counter("regenerate_failure").Inc(1)
				c.logger.Warnw("regenerating syntax failed", "syntax", id, "reason", c.describeFailure(converter.MethodUpdate, err), "error", err)
				return
			}
			if !c.accepts(id, converter.MethodUpdate) {
				return
			}
			c.stats.Counter("regenerate_success").Inc(1)
			c.setText(id, code)
			if id == c.active {
				c.render()
			}
		})
}

// accepts reports whether generated text may replace the buffer of id.
// The active buffer is only replaced while the surface holds no unsent edits.
func (c *controller) accepts(id entity.SyntaxID, method string) bool {
	if id != c.active {
		return true
	}

	text, err := c.projector.CaptureText(c.ctx)
	if err != nil {
		return true
	}
	d, err := c.buffers.Get(c.ctx, id)
	if err != nil {
		return false
	}
	if d.Text == text {
		return true
	}

	c.stats.Counter("superseded").Inc(1)
	c.logger.Infow("dropping generated text superseded by unsent edits", "syntax", id, "method", method)
	return false
}

// describeFailure words a conversion failure for the user, telling an unreachable service apart from rejected input.
func (c *controller) describeFailure(method string, err error) string {
	kind, message := "unknown", err.Error()
	if te, ok := errors.IsTransport(err); ok {
		kind = "unreachable"
		message = fmt.Sprintf("conversion service at %s is unreachable: %v", te.Address, te.Err)
		if te.Timeout {
			kind = "timeout"
			message = fmt.Sprintf("conversion service at %s did not answer in time", te.Address)
		}
	} else if re, ok := errors.IsRemote(err); ok {
		kind = "rejected"
		message = re.Message
	}
	c.stats.Tagged(map[string]string{"method": method, "kind": kind}).Counter("failures").Inc(1)
	return message
}

func (c *controller) setText(id entity.SyntaxID, text string) {
	if err := c.buffers.SetText(c.ctx, id, text); err != nil {
		c.logger.Errorw("updating buffer", "syntax", id, "error", err)
	}
}

func (c *controller) render() {
	if err := c.projector.Render(c.ctx, c.snapshot()); err != nil {
		c.logger.Warnw("rendering session state", "error", err)
	}
}

func (c *controller) notify(t entity.NoticeType, message string) {
	c.logger.Warnw("surfacing failure", "message", message)
	if err := c.projector.Notify(c.ctx, entity.Notice{Type: t, Message: message}); err != nil {
		c.logger.Warnw("surfacing notice", "error", err)
	}
}

func (c *controller) snapshot() entity.SessionState {
	states := make([]entity.SyncState, len(c.states))
	copy(states, c.states[:])
	return entity.SessionState{
		Active:   c.active,
		Project:  c.project.Current(c.ctx),
		Syntaxes: c.buffers.Snapshot(c.ctx),
		States:   states,
	}
}
