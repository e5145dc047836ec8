package mode

import (
	"testing"

	"github.com/dshills/drawertidy/internal/annotate"
	"github.com/dshills/drawertidy/internal/buffer"
	"github.com/dshills/drawertidy/internal/event"
	"github.com/dshills/drawertidy/internal/tidy"
)

const docText = ":PROPERTIES:\n:ID: abc\n:END:\n* Heading\n:PROPERTIES:\n:FOO: bar\n:END:\nBody\n"

func newFixture() (*Controller, *annotate.Surface, *event.Bus, *buffer.Buffer) {
	surface := annotate.NewSurface()
	buf := buffer.New(buffer.WithContent(docText), buffer.WithGuard(surface.Blocks))
	session := tidy.NewSession(surface)
	bus := event.NewBus()
	c := NewController(buf, session, bus, nil, tidy.DefaultStyleConfig())
	return c, surface, bus, buf
}

func TestEnableTidies(t *testing.T) {
	c, surface, _, _ := newFixture()

	if c.Enabled() {
		t.Fatal("controller must start disabled")
	}
	c.Enable()

	if !c.Enabled() {
		t.Error("Enabled() = false after Enable")
	}
	// Two drawers: topmost hidden (1 annotation), non-top fringe-marked
	// (1 visual + 2 guards).
	if surface.Count() != 4 {
		t.Errorf("surface holds %d annotations, want 4", surface.Count())
	}
}

func TestEnableTwiceIsNoOp(t *testing.T) {
	c, surface, _, _ := newFixture()

	c.Enable()
	count := surface.Count()
	c.Enable()

	if surface.Count() != count {
		t.Errorf("second Enable changed annotations: %d -> %d", count, surface.Count())
	}
}

func TestDisableRestores(t *testing.T) {
	c, surface, _, _ := newFixture()

	c.Enable()
	c.Disable()

	if c.Enabled() {
		t.Error("Enabled() = true after Disable")
	}
	if surface.Count() != 0 {
		t.Errorf("surface holds %d annotations after Disable, want 0", surface.Count())
	}

	c.Disable() // no-op on a disabled controller
	if surface.Count() != 0 {
		t.Errorf("second Disable changed annotations: %d", surface.Count())
	}
}

func TestSaveRetidies(t *testing.T) {
	c, surface, bus, _ := newFixture()
	c.Enable()
	count := surface.Count()

	// Saving an unchanged document must not grow the decoration set.
	bus.Publish(event.Event{Topic: event.TopicBufferSaved, Source: "test"})
	if surface.Count() != count {
		t.Errorf("save on unchanged document: %d -> %d annotations", count, surface.Count())
	}
}

func TestSaveAfterDisableDoesNothing(t *testing.T) {
	c, surface, bus, _ := newFixture()

	c.Enable()
	c.Disable()
	bus.Publish(event.Event{Topic: event.TopicBufferSaved, Source: "test"})

	if surface.Count() != 0 {
		t.Errorf("save after Disable created %d annotations", surface.Count())
	}
}

func TestEnableDisableCycle(t *testing.T) {
	c, surface, _, _ := newFixture()

	for i := 0; i < 3; i++ {
		c.Enable()
		if surface.Count() == 0 {
			t.Fatalf("cycle %d: no annotations after Enable", i)
		}
		c.Disable()
		if surface.Count() != 0 {
			t.Fatalf("cycle %d: %d annotations left after Disable", i, surface.Count())
		}
	}
}

func TestModeEventsPublished(t *testing.T) {
	c, _, bus, _ := newFixture()

	var topics []event.Topic
	bus.Subscribe(event.TopicModeEnabled, func(ev event.Event) { topics = append(topics, ev.Topic) })
	bus.Subscribe(event.TopicModeDisabled, func(ev event.Event) { topics = append(topics, ev.Topic) })

	c.Enable()
	c.Disable()

	if len(topics) != 2 || topics[0] != event.TopicModeEnabled || topics[1] != event.TopicModeDisabled {
		t.Errorf("published topics = %v", topics)
	}
}

func TestGuardedEditWhileEnabled(t *testing.T) {
	c, _, _, buf := newFixture()
	c.Enable()

	// The second drawer ends just before "Body". Its trailing fence byte
	// is guarded, backspacing onto it must be refused.
	end := len(docText) - len("Body\n")
	err := buf.DeleteBackward(end)
	if err == nil {
		t.Fatal("backspace at drawer fence succeeded while mode enabled")
	}
	if buf.Text() != docText {
		t.Error("rejected edit changed the document")
	}

	c.Disable()
	if err := buf.DeleteBackward(end); err != nil {
		t.Errorf("backspace after Disable = %v, want nil", err)
	}
}
