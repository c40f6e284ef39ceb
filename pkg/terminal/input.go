package terminal

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-gooey/gooey/pkg/widgets"
)

// translateKey maps a terminal key to a single-byte key code.
func translateKey(msg tea.KeyMsg) (widgets.Key, bool) {
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) == 1 && msg.Runes[0] < 0x100 {
			return widgets.Key(msg.Runes[0]), true
		}
	case tea.KeySpace:
		return widgets.Key(' '), true
	case tea.KeyEnter:
		return widgets.Key('\r'), true
	case tea.KeyTab:
		return widgets.Key('\t'), true
	case tea.KeyBackspace:
		return widgets.Key(0x08), true
	case tea.KeyEscape:
		return widgets.Key(0x1B), true
	}
	return 0, false
}

func mouseButton(b tea.MouseButton) uint8 {
	switch b {
	case tea.MouseButtonLeft:
		return 1
	case tea.MouseButtonMiddle:
		return 2
	case tea.MouseButtonRight:
		return 3
	}
	return 0
}

// translateMouse maps a terminal mouse event to widget events in canvas
// pixels. A cell covers two pixel rows; events land on the upper one. A
// release also produces a Click.
func translateMouse(msg tea.MouseMsg) []widgets.MouseEvent {
	x, y := msg.X, msg.Y*2
	switch msg.Action {
	case tea.MouseActionMotion:
		return []widgets.MouseEvent{{Kind: widgets.MouseOver, X: x, Y: y}}
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			return []widgets.MouseEvent{{Kind: widgets.WheelUp, X: x, Y: y, Amount: 1}}
		case tea.MouseButtonWheelDown:
			return []widgets.MouseEvent{{Kind: widgets.WheelDown, X: x, Y: y, Amount: 1}}
		}
		return []widgets.MouseEvent{{Kind: widgets.MouseDown, X: x, Y: y, Button: mouseButton(msg.Button)}}
	case tea.MouseActionRelease:
		b := mouseButton(msg.Button)
		return []widgets.MouseEvent{
			{Kind: widgets.MouseUp, X: x, Y: y, Button: b},
			{Kind: widgets.Click, X: x, Y: y, Button: b},
		}
	}
	return nil
}
