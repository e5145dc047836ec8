package tidy

import (
	"errors"
	"fmt"
)

// ErrUnknownStyle indicates an unrecognized style name in configuration.
var ErrUnknownStyle = errors.New("unknown style")

// TopStyle selects how the document-level property drawer is treated.
type TopStyle uint8

const (
	// TopInvisible hides the topmost drawer entirely.
	TopInvisible TopStyle = iota

	// TopKeep leaves the topmost drawer exactly as authored.
	TopKeep
)

// String returns the configuration name of the top style.
func (s TopStyle) String() string {
	switch s {
	case TopInvisible:
		return "invisible"
	case TopKeep:
		return "keep"
	default:
		return "unknown"
	}
}

// ParseTopStyle parses a configuration name into a TopStyle.
func ParseTopStyle(s string) (TopStyle, error) {
	switch s {
	case "invisible":
		return TopInvisible, nil
	case "keep":
		return TopKeep, nil
	default:
		return TopInvisible, fmt.Errorf("%w: top style %q", ErrUnknownStyle, s)
	}
}

// GeneralStyle selects how drawers attached to headlines are treated.
type GeneralStyle uint8

const (
	// GeneralFringeMarker hides the drawer and shows a marker glyph in
	// the side gutter.
	GeneralFringeMarker GeneralStyle = iota

	// GeneralInlineSymbol replaces the drawer's rendering with a single
	// configured glyph.
	GeneralInlineSymbol

	// GeneralInvisible hides the drawer entirely. Its fences stay
	// guarded; see Resolve.
	GeneralInvisible
)

// String returns the configuration name of the general style.
func (s GeneralStyle) String() string {
	switch s {
	case GeneralFringeMarker:
		return "fringe-marker"
	case GeneralInlineSymbol:
		return "inline-symbol"
	case GeneralInvisible:
		return "invisible"
	default:
		return "unknown"
	}
}

// ParseGeneralStyle parses a configuration name into a GeneralStyle.
func ParseGeneralStyle(s string) (GeneralStyle, error) {
	switch s {
	case "fringe-marker":
		return GeneralFringeMarker, nil
	case "inline-symbol":
		return GeneralInlineSymbol, nil
	case "invisible":
		return GeneralInvisible, nil
	default:
		return GeneralFringeMarker, fmt.Errorf("%w: general style %q", ErrUnknownStyle, s)
	}
}

// Action is the resolved decoration decision for one region.
type Action uint8

const (
	// ActionNoOp leaves the region exactly as authored.
	ActionNoOp Action = iota

	// ActionHideCompletely renders the region's span as empty.
	ActionHideCompletely

	// ActionShowInlineSymbol replaces the span's rendering with one glyph.
	ActionShowInlineSymbol

	// ActionShowFringeMarker hides the span inline and marks it in the
	// side gutter.
	ActionShowFringeMarker
)

// String returns the string representation of the action.
func (a Action) String() string {
	switch a {
	case ActionNoOp:
		return "no-op"
	case ActionHideCompletely:
		return "hide-completely"
	case ActionShowInlineSymbol:
		return "show-inline-symbol"
	case ActionShowFringeMarker:
		return "show-fringe-marker"
	default:
		return "unknown"
	}
}

// Resolve maps a region's position and the configured styles to a
// decoration action. It is a pure decision table.
//
// A non-topmost drawer resolved to ActionHideCompletely still gets its
// boundary guards: deleting the fences of a hidden drawer would
// silently desynchronize the document structure. The topmost drawer does
// not, because the whole block disappears as a unit and there is nothing
// before it to desynchronize against. The decorator applies that rule;
// Resolve only picks the rendering.
func Resolve(isTopmost bool, top TopStyle, general GeneralStyle) Action {
	if isTopmost {
		if top == TopKeep {
			return ActionNoOp
		}
		return ActionHideCompletely
	}
	switch general {
	case GeneralInlineSymbol:
		return ActionShowInlineSymbol
	case GeneralFringeMarker:
		return ActionShowFringeMarker
	default:
		return ActionHideCompletely
	}
}

// StyleConfig is the immutable style configuration read at decoration time.
type StyleConfig struct {
	// Top selects the treatment of the topmost drawer.
	Top TopStyle

	// General selects the treatment of drawers attached to headlines.
	General GeneralStyle

	// InlineSymbol is the glyph shown when General is GeneralInlineSymbol.
	InlineSymbol string
}

// DefaultStyleConfig returns the default styles: hide the topmost drawer,
// mark the rest in the fringe.
func DefaultStyleConfig() StyleConfig {
	return StyleConfig{
		Top:          TopInvisible,
		General:      GeneralFringeMarker,
		InlineSymbol: "♯",
	}
}
