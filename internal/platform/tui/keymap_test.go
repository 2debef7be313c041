package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/kleiner-held/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper(0)

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		want   core.Action
		isQuit bool
	}{
		{"a walks left", runeKey('a'), core.ActionLeft, false},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"d walks right", runeKey('d'), core.ActionRight, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"space jumps", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionJump, false},
		{"up jumps", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump, false},
		{"e attacks", runeKey('e'), core.ActionAttackLight, false},
		{"q heavy attack", runeKey('q'), core.ActionAttackHeavy, false},
		{"w heart", runeKey('w'), core.ActionBuyHeart, false},
		{"1 weapon", runeKey('1'), core.ActionBuyWeapon, false},
		{"2 lucky", runeKey('2'), core.ActionBuyLucky, false},
		{"3 invuln", runeKey('3'), core.ActionBuyInvuln, false},
		{"p pauses", runeKey('p'), core.ActionPause, false},
		{"h help", runeKey('h'), core.ActionHelp, false},
		{"enter confirms", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"m mutes", runeKey('m'), core.ActionMute, false},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, quit := km.MapKey(tt.msg)
			if got != tt.want || quit != tt.isQuit {
				t.Errorf("MapKey(%q) = %v, %v, expected %v, %v", tt.msg.String(), got, quit, tt.want, tt.isQuit)
			}
		})
	}
}

func TestHoldWindow(t *testing.T) {
	km := NewKeyMapper(150 * time.Millisecond)
	start := time.Unix(1000, 0)

	km.Press(runeKey('d'), start)

	if !km.Frame(start.Add(100 * time.Millisecond)).Has(core.ActionRight) {
		t.Error("right should be held inside the hold window")
	}
	if km.Frame(start.Add(150 * time.Millisecond)).Has(core.ActionRight) {
		t.Error("right should be released once the window passes")
	}
	if len(km.held) != 0 {
		t.Errorf("held = %d after expiry, expected 0", len(km.held))
	}
}

func TestAutorepeatExtendsHold(t *testing.T) {
	km := NewKeyMapper(150 * time.Millisecond)
	start := time.Unix(1000, 0)

	km.Press(runeKey('a'), start)
	km.Press(runeKey('a'), start.Add(100*time.Millisecond))

	if !km.Frame(start.Add(200 * time.Millisecond)).Has(core.ActionLeft) {
		t.Error("autorepeat should extend the hold")
	}
}

func TestOppositeDirectionsCancel(t *testing.T) {
	km := NewKeyMapper(0)
	now := time.Unix(1000, 0)

	km.Press(runeKey('a'), now)
	km.Press(runeKey('d'), now)

	f := km.Frame(now)
	if f.Has(core.ActionLeft) || !f.Has(core.ActionRight) {
		t.Errorf("left=%v right=%v, expected only right", f.Has(core.ActionLeft), f.Has(core.ActionRight))
	}
}

func TestMuteAndQuitNotHeld(t *testing.T) {
	km := NewKeyMapper(0)
	now := time.Unix(1000, 0)

	if got := km.Press(runeKey('m'), now); got != core.ActionMute {
		t.Errorf("Press(m) = %v, expected Mute", got)
	}
	km.Press(tea.KeyMsg{Type: tea.KeyCtrlC}, now)

	if len(km.held) != 0 {
		t.Errorf("held = %d, expected mute and quit to stay out", len(km.held))
	}
}

func TestRelease(t *testing.T) {
	km := NewKeyMapper(0)
	now := time.Unix(1000, 0)
	km.Press(runeKey('e'), now)
	km.Release()
	if km.Frame(now).Has(core.ActionAttackLight) {
		t.Error("Release() should drop held actions")
	}
}

func TestEdgeActionsSpanAutorepeatDelay(t *testing.T) {
	keys := []tea.KeyMsg{runeKey('w'), runeKey('1'), runeKey('2'), runeKey('3'), runeKey('p'), runeKey('h'), {Type: tea.KeyEnter}}

	for _, key := range keys {
		t.Run(key.String(), func(t *testing.T) {
			km := NewKeyMapper(150 * time.Millisecond)
			start := time.Unix(1000, 0)
			action := km.Press(key, start)

			// First autorepeat arrives after the typical 600ms delay, then every 30ms.
			for ms := 600; ms <= 1000; ms += 30 {
				km.Press(key, start.Add(time.Duration(ms)*time.Millisecond))
			}

			edges, was := 0, false
			for ms := 0; ms <= 1000; ms += 16 {
				now := km.Frame(start.Add(time.Duration(ms) * time.Millisecond)).Has(action)
				if now && !was {
					edges++
				}
				was = now
			}
			if edges != 1 {
				t.Errorf("%v rose %d times while held, expected 1", action, edges)
			}
		})
	}
}

func TestEdgeActionReleasesAfterEdgeHold(t *testing.T) {
	km := NewKeyMapper(150 * time.Millisecond)
	start := time.Unix(1000, 0)
	km.Press(runeKey('w'), start)

	if !km.Frame(start.Add(EdgeHold - time.Millisecond)).Has(core.ActionBuyHeart) {
		t.Error("buy heart should be held for EdgeHold")
	}
	if km.Frame(start.Add(EdgeHold)).Has(core.ActionBuyHeart) {
		t.Error("buy heart should be released after EdgeHold")
	}
}
