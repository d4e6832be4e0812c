package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapperMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		want     core.Action
		wantQuit bool
	}{
		{"a moves left", runeKey('a'), core.ActionLeft, false},
		{"h moves left", runeKey('h'), core.ActionLeft, false},
		{"left arrow moves left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"d moves right", runeKey('d'), core.ActionRight, false},
		{"l moves right", runeKey('l'), core.ActionRight, false},
		{"right arrow moves right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"p pauses", runeKey('p'), core.ActionPause, false},
		{"esc pauses", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"r restarts", runeKey('r'), core.ActionRestart, false},
		{"q quits", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound key does nothing", runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, isQuit := km.MapKey(tt.msg)
			if action != tt.want || isQuit != tt.wantQuit {
				t.Errorf("MapKey(%s) = (%v, %v), want (%v, %v)",
					tt.msg.String(), action, isQuit, tt.want, tt.wantQuit)
			}
		})
	}
}

func TestKeyMapperMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if quit := km.MapKeyToFrame(runeKey('a'), &frame); quit {
		t.Error("movement key reported as quit")
	}
	if !frame.Has(core.ActionLeft) {
		t.Error("frame missing mapped action")
	}

	// Unbound keys leave the frame alone.
	km.MapKeyToFrame(runeKey('z'), &frame)
	if frame.Has(core.ActionNone) {
		t.Error("unbound key set ActionNone in frame")
	}

	if quit := km.MapKeyToFrame(runeKey('q'), &frame); !quit {
		t.Error("quit key not reported")
	}
}
