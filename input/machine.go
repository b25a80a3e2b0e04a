package input

import (
	"github.com/gdamore/tcell/v2"
)

// buttonBits masks out wheel events
const buttonBits tcell.ButtonMask = 0xff

// Machine is the input state machine
// Parses tcell events into semantic Intent
type Machine struct {
	keyTable *KeyTable
	pointer  pointerState
}

// NewMachine creates an input machine, nil selects the default bindings
func NewMachine(kt *KeyTable) *Machine {
	if kt == nil {
		kt = DefaultKeyTable()
	}
	return &Machine{keyTable: kt}
}

// Reset clears pending pointer state
func (m *Machine) Reset() {
	m.pointer = pointerState{}
}

// Process parses a terminal event and returns an Intent
// Returns nil for events with no binding or incomplete gestures
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventMouse:
		return m.processMouse(ev)
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	var (
		entry KeyEntry
		ok    bool
	)
	if ev.Key() == tcell.KeyRune {
		entry, ok = m.keyTable.Runes[ev.Rune()]
	} else {
		entry, ok = m.keyTable.SpecialKeys[ev.Key()]
	}
	if !ok || entry.Intent == IntentNone {
		return nil
	}
	return &Intent{Type: entry.Intent, Direction: entry.Direction}
}

// processMouse turns press, drag and release into a swipe or a tap
func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	x, y := ev.Position()
	held := ev.Buttons()&tcell.Button1 != 0

	switch {
	case held && !m.pointer.pressed:
		m.pointer = pointerState{pressed: true, startX: x, startY: y}
		return nil
	case held:
		// Drag in progress, resolved on release
		return nil
	case m.pointer.pressed && ev.Buttons()&buttonBits == tcell.ButtonNone:
		start := m.pointer
		m.pointer = pointerState{}
		if dir, ok := Swipe(x-start.startX, y-start.startY); ok {
			return &Intent{Type: IntentDirection, Direction: dir}
		}
		return &Intent{Type: IntentTap, X: x, Y: y}
	}
	return nil
}
