package ui

// MenuItem is a main menu entry
type MenuItem int

const (
	MenuStart MenuItem = iota
	MenuInstructions
	MenuSettings
	MenuQuit
)

var menuLabels = [...]string{
	MenuStart:        "Start",
	MenuInstructions: "Instructions",
	MenuSettings:     "Settings",
	MenuQuit:         "Quit",
}

func (m MenuItem) String() string {
	if m >= 0 && int(m) < len(menuLabels) {
		return menuLabels[m]
	}
	return "?"
}

// Menu is the main menu cursor, wrapping at both ends
type Menu struct {
	selected int
}

// NewMenu returns a menu with Start selected
func NewMenu() *Menu {
	return &Menu{}
}

// Up moves the cursor up, wrapping to the bottom
func (m *Menu) Up() {
	m.selected = wrap(m.selected-1, len(menuLabels))
}

// Down moves the cursor down, wrapping to the top
func (m *Menu) Down() {
	m.selected = wrap(m.selected+1, len(menuLabels))
}

// Selected returns the highlighted item
func (m *Menu) Selected() MenuItem { return MenuItem(m.selected) }

// Index returns the highlighted row
func (m *Menu) Index() int { return m.selected }

// Labels returns the item labels in display order
func (m *Menu) Labels() []string {
	out := make([]string, len(menuLabels))
	copy(out, menuLabels[:])
	return out
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}
