package render

import (
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// MockScreen records cell writes for inspection, unused tcell.Screen methods panic
type MockScreen struct {
	tcell.Screen
	mu            sync.Mutex
	width, height int
	cells         map[[2]int]mockCell
	shows         int
}

type mockCell struct {
	main  rune
	comb  []rune
	style tcell.Style
}

func newMockScreen(w, h int) *MockScreen {
	return &MockScreen{width: w, height: h, cells: make(map[[2]int]mockCell)}
}

func (m *MockScreen) Size() (int, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.width, m.height
}

func (m *MockScreen) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cells[[2]int{x, y}] = mockCell{main: mainc, comb: combc, style: style}
}

func (m *MockScreen) Show() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.shows++
}

func (m *MockScreen) cell(x, y int) mockCell {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cells[[2]int{x, y}]
}

// row returns the runes of screen row y with unset cells as spaces
func (m *MockScreen) row(y int) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var sb strings.Builder
	for x := 0; x < m.width; x++ {
		c, ok := m.cells[[2]int{x, y}]
		if !ok || c.main == 0 {
			sb.WriteRune(' ')
			continue
		}
		sb.WriteRune(c.main)
	}
	return sb.String()
}

func (m *MockScreen) resize(w, h int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.width, m.height = w, h
	m.cells = make(map[[2]int]mockCell)
}
