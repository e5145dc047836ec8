// Package mode wires the tidying engine to its triggers: an activation
// command, a deactivation command and the buffer-saved event.
//
// Enabling the mode runs a tidy pass immediately and re-runs it after
// every save; disabling restores the document's original presentation.
// Both are safe to call repeatedly.
package mode

import (
	"sync"

	"github.com/dshills/drawertidy/internal/buffer"
	"github.com/dshills/drawertidy/internal/document"
	"github.com/dshills/drawertidy/internal/event"
	"github.com/dshills/drawertidy/internal/logging"
	"github.com/dshills/drawertidy/internal/tidy"
)

// source identifies this module on the event bus.
const source = "mode"

// Controller owns the tidy mode for one open document.
type Controller struct {
	mu sync.Mutex

	buf     *buffer.Buffer
	session *tidy.Session
	bus     *event.Bus
	log     *logging.Logger

	styles  tidy.StyleConfig
	enabled bool
	saveSub event.Subscription
}

// NewController creates a disabled controller for one document.
func NewController(buf *buffer.Buffer, session *tidy.Session, bus *event.Bus, log *logging.Logger, styles tidy.StyleConfig) *Controller {
	if log == nil {
		log = logging.Discard()
	}
	return &Controller{
		buf:     buf,
		session: session,
		bus:     bus,
		log:     log,
		styles:  styles,
	}
}

// Enabled reports whether the mode is active.
func (c *Controller) Enabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enabled
}

// Enable activates the mode: tidies the document now and re-tidies after
// every save. Enabling an enabled controller is a no-op.
func (c *Controller) Enable() {
	c.mu.Lock()
	if c.enabled {
		c.mu.Unlock()
		return
	}
	c.enabled = true
	c.tidyLocked()
	c.saveSub = c.bus.Subscribe(event.TopicBufferSaved, c.handleSaved)
	c.mu.Unlock()

	c.log.Info("tidy mode enabled, %d decorations", c.session.Decorations())
	c.bus.Publish(event.Event{Topic: event.TopicModeEnabled, Source: source})
}

// Disable deactivates the mode and restores the original presentation.
// Disabling a disabled controller is a no-op.
func (c *Controller) Disable() {
	c.mu.Lock()
	if !c.enabled {
		c.mu.Unlock()
		return
	}
	c.enabled = false
	c.bus.Unsubscribe(c.saveSub)
	c.session.Untidy()
	c.mu.Unlock()

	c.log.Info("tidy mode disabled")
	c.bus.Publish(event.Event{Topic: event.TopicModeDisabled, Source: source})
}

// SetStyles replaces the style configuration used by subsequent passes.
// Already-applied decorations keep their styling until the mode is
// disabled and re-enabled.
func (c *Controller) SetStyles(styles tidy.StyleConfig) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.styles = styles
	c.log.Debug("styles updated: top=%s general=%s", styles.Top, styles.General)
}

// Retidy runs a tidy pass now if the mode is enabled.
func (c *Controller) Retidy() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.enabled {
		return
	}
	c.tidyLocked()
}

// handleSaved re-tidies after a save.
func (c *Controller) handleSaved(event.Event) {
	c.Retidy()
}

// tidyLocked parses the current buffer text and decorates it.
// Caller holds the controller lock.
func (c *Controller) tidyLocked() {
	tree := document.Parse(c.buf.Text())
	c.session.Tidy(tree, c.styles)
}
