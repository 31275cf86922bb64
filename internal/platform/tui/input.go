package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ringshot/internal/core"
)

// Keyboard pull steps in world units.
const (
	keyNudge       = 10.0
	keyNudgeCoarse = 40.0
)

// keyAim turns keyboard input into the same pointer gesture a mouse drag
// produces: space grabs the dart, movement keys drag the pull point and space
// again releases it.
type keyAim struct {
	active bool
	start  core.Vec2
	pos    core.Vec2
}

// toggle starts a pull at spawn or releases the current one.
func (k *keyAim) toggle(spawn core.Vec2, frame *core.InputFrame) {
	if !k.active {
		k.active = true
		k.start = spawn
		k.pos = spawn
		frame.AddPointer(core.PointerDown, spawn)
		return
	}
	k.active = false
	frame.AddPointer(core.PointerUp, k.pos)
}

// nudge moves the pull point. It does nothing when no pull is active.
func (k *keyAim) nudge(a core.Action, step float64, frame *core.InputFrame) {
	if !k.active {
		return
	}
	switch a {
	case core.ActionUp:
		k.pos.Y -= step
	case core.ActionDown:
		k.pos.Y += step
	case core.ActionLeft:
		k.pos.X -= step
	case core.ActionRight:
		k.pos.X += step
	default:
		return
	}
	frame.AddPointer(core.PointerMove, k.pos)
}

// cancel returns the pull point to the start and releases, which always
// lands inside the deadzone and fires nothing.
func (k *keyAim) cancel(frame *core.InputFrame) {
	if !k.active {
		return
	}
	k.active = false
	k.pos = k.start
	frame.AddPointer(core.PointerMove, k.start)
	frame.AddPointer(core.PointerUp, k.start)
}

// mousePointer maps a mouse message to a pointer event in world space.
// Presses only count inside the playfield; drags and releases may leave it.
func mousePointer(msg tea.MouseMsg, vp core.Viewport) (core.PointerEvent, bool) {
	pos := vp.ToWorld(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !vp.Area.Contains(msg.X, msg.Y) {
			return core.PointerEvent{}, false
		}
		return core.PointerEvent{Kind: core.PointerDown, Pos: pos}, true
	case tea.MouseActionMotion:
		if msg.Button != tea.MouseButtonLeft {
			return core.PointerEvent{}, false
		}
		return core.PointerEvent{Kind: core.PointerMove, Pos: pos}, true
	case tea.MouseActionRelease:
		return core.PointerEvent{Kind: core.PointerUp, Pos: pos}, true
	}
	return core.PointerEvent{}, false
}
