package core

// Action represents a semantic game action, abstracted from physical key presses.
// Games work with intents; the platform decides which keys produce them.
type Action int

const (
	ActionNone        Action = iota
	ActionLeft               // A, Left arrow - walk left (held)
	ActionRight              // D, Right arrow - walk right (held)
	ActionJump               // Space, Up arrow
	ActionAttackLight        // E - sword swing
	ActionAttackHeavy        // Q - heavy swing
	ActionBuyHeart           // W - heal with a heart or buy one
	ActionBuyWeapon          // 1 - upgrade weapon
	ActionBuyLucky           // 2 - lucky charm
	ActionBuyInvuln          // 3 - buy or activate invulnerability
	ActionPause              // P - pause/unpause
	ActionConfirm            // Enter - confirm overlay
	ActionHelp               // H - controls overlay
	ActionMute               // M - toggle sound
	ActionQuit               // Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionAttackLight:
		return "AttackLight"
	case ActionAttackHeavy:
		return "AttackHeavy"
	case ActionBuyHeart:
		return "BuyHeart"
	case ActionBuyWeapon:
		return "BuyWeapon"
	case ActionBuyLucky:
		return "BuyLucky"
	case ActionBuyInvuln:
		return "BuyInvuln"
	case ActionPause:
		return "Pause"
	case ActionConfirm:
		return "Confirm"
	case ActionHelp:
		return "Help"
	case ActionMute:
		return "Mute"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the set of actions held during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they are held this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is held this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
