package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMenuWraps(t *testing.T) {
	m := NewMenu()
	assert.Equal(t, MenuStart, m.Selected())

	m.Up()
	assert.Equal(t, MenuQuit, m.Selected())
	m.Down()
	assert.Equal(t, MenuStart, m.Selected())

	m.Down()
	m.Down()
	assert.Equal(t, MenuSettings, m.Selected())
	assert.Equal(t, 2, m.Index())
}

func TestMenuLabels(t *testing.T) {
	m := NewMenu()
	labels := m.Labels()
	assert.Equal(t, []string{"Start", "Instructions", "Settings", "Quit"}, labels)

	labels[0] = "mutated"
	assert.Equal(t, "Start", m.Labels()[0])
}
