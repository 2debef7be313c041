package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/kleiner-held/internal/core"
)

// DefaultHold is how long a key press counts as held when the terminal
// reports no release.
const DefaultHold = 150 * time.Millisecond

// EdgeHold is the minimum hold of actions the game reacts to once per
// press. It spans the terminal autorepeat delay so holding a key down
// reads as a single press.
const EdgeHold = 700 * time.Millisecond

// edgeTriggered reports whether the game acts on the rising edge of action.
func edgeTriggered(action core.Action) bool {
	switch action {
	case core.ActionBuyHeart, core.ActionBuyWeapon, core.ActionBuyLucky, core.ActionBuyInvuln,
		core.ActionPause, core.ActionHelp, core.ActionConfirm:
		return true
	}
	return false
}

// KeyMapper translates Bubble Tea key messages to game actions.
// Terminals only report presses (and autorepeat), so every press keeps
// its action held for the hold window; autorepeat extends it.
type KeyMapper struct {
	hold time.Duration
	held map[core.Action]time.Time
}

// NewKeyMapper creates a key mapper with the given hold window.
// A non-positive hold uses DefaultHold.
func NewKeyMapper(hold time.Duration) *KeyMapper {
	if hold <= 0 {
		hold = DefaultHold
	}
	return &KeyMapper{
		hold: hold,
		held: make(map[core.Action]time.Time),
	}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c":
		return core.ActionQuit, true
	case "a", "A", "left":
		return core.ActionLeft, false
	case "d", "D", "right":
		return core.ActionRight, false
	case " ", "up":
		return core.ActionJump, false
	case "e", "E":
		return core.ActionAttackLight, false
	case "q", "Q":
		return core.ActionAttackHeavy, false
	case "w", "W":
		return core.ActionBuyHeart, false
	case "1":
		return core.ActionBuyWeapon, false
	case "2":
		return core.ActionBuyLucky, false
	case "3":
		return core.ActionBuyInvuln, false
	case "p", "P", "esc":
		return core.ActionPause, false
	case "h", "H":
		return core.ActionHelp, false
	case "enter":
		return core.ActionConfirm, false
	case "m", "M":
		return core.ActionMute, false
	}
	return core.ActionNone, false
}

// Press records a key press at now. Mute and quit are handled by the
// caller and never enter the held set.
func (km *KeyMapper) Press(msg tea.KeyMsg, now time.Time) core.Action {
	action, _ := km.MapKey(msg)
	switch action {
	case core.ActionNone, core.ActionQuit, core.ActionMute:
		return action
	case core.ActionLeft:
		delete(km.held, core.ActionRight)
	case core.ActionRight:
		delete(km.held, core.ActionLeft)
	}
	hold := km.hold
	if edgeTriggered(action) {
		hold = max(hold, EdgeHold)
	}
	km.held[action] = now.Add(hold)
	return action
}

// Frame returns the actions still held at now and forgets expired ones.
func (km *KeyMapper) Frame(now time.Time) core.InputFrame {
	frame := core.NewInputFrame()
	for action, until := range km.held {
		if now.Before(until) {
			frame.Set(action)
		} else {
			delete(km.held, action)
		}
	}
	return frame
}

// Release drops every held action.
func (km *KeyMapper) Release() {
	clear(km.held)
}
