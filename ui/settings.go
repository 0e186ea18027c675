package ui

import (
	"fmt"
	"math"

	"github.com/lixenwraith/noisy-bird/config"
	"github.com/lixenwraith/noisy-bird/constant"
	"github.com/lixenwraith/noisy-bird/vmath"
)

// SettingsItem is a settings screen row
type SettingsItem int

const (
	SettingVolume SettingsItem = iota
	SettingSensitivity
	SettingThreshold
	SettingMute
	SettingDebug
	SettingBack
	settingsItemCount
)

var settingsLabels = [settingsItemCount]string{
	SettingVolume:      "Volume",
	SettingSensitivity: "Sensitivity",
	SettingThreshold:   "Mic threshold",
	SettingMute:        "Toggle Mute",
	SettingDebug:       "Toggle Debug",
	SettingBack:        "Back",
}

func (s SettingsItem) String() string {
	if s >= 0 && s < settingsItemCount {
		return settingsLabels[s]
	}
	return "?"
}

// Row is one rendered settings line
type Row struct {
	Label string
	Value string
}

// SettingsMenu edits a copy of the settings; the caller persists after each change
type SettingsMenu struct {
	selected int
	values   config.Settings
}

// NewSettingsMenu opens the editor on values
func NewSettingsMenu(values config.Settings) *SettingsMenu {
	values.Clamp()
	return &SettingsMenu{values: values}
}

// Up moves the cursor up, wrapping
func (m *SettingsMenu) Up() {
	m.selected = wrap(m.selected-1, int(settingsItemCount))
}

// Down moves the cursor down, wrapping
func (m *SettingsMenu) Down() {
	m.selected = wrap(m.selected+1, int(settingsItemCount))
}

// Selected returns the highlighted row
func (m *SettingsMenu) Selected() SettingsItem { return SettingsItem(m.selected) }

// Index returns the highlighted row index
func (m *SettingsMenu) Index() int { return m.selected }

// Values returns the edited settings
func (m *SettingsMenu) Values() config.Settings { return m.values }

// SetValues replaces the edited settings, used when a toggle happens outside the screen
func (m *SettingsMenu) SetValues(v config.Settings) {
	v.Clamp()
	m.values = v
}

// Adjust steps the selected numeric setting by dir (+1 or -1)
// Returns true if a value changed
func (m *SettingsMenu) Adjust(dir int) bool {
	if dir == 0 {
		return false
	}
	step := float64(dir)
	v := &m.values
	old := *v
	switch m.Selected() {
	case SettingVolume:
		v.Volume = stepValue(v.Volume, step*constant.VolumeStep, constant.VolumeMin, constant.VolumeMax)
	case SettingSensitivity:
		v.Sensitivity = stepValue(v.Sensitivity, step*constant.SensitivityStep, constant.SensitivityMin, constant.SensitivityMax)
	case SettingThreshold:
		v.MicThreshold = stepValue(v.MicThreshold, step*constant.ThresholdStep, constant.ThresholdMin, constant.ThresholdMax)
	default:
		return false
	}
	return *v != old
}

// Activate triggers the selected row
// Toggles report changed; Back reports back
func (m *SettingsMenu) Activate() (changed, back bool) {
	switch m.Selected() {
	case SettingMute:
		m.values.Muted = !m.values.Muted
		return true, false
	case SettingDebug:
		m.values.ShowDebug = !m.values.ShowDebug
		return true, false
	case SettingBack:
		return false, true
	default:
		return false, false
	}
}

// Rows returns the labels with current values
func (m *SettingsMenu) Rows() []Row {
	rows := make([]Row, settingsItemCount)
	for i := range rows {
		rows[i].Label = settingsLabels[i]
	}
	rows[SettingVolume].Value = fmt.Sprintf("%.2f", m.values.Volume)
	rows[SettingSensitivity].Value = fmt.Sprintf("%.2f", m.values.Sensitivity)
	rows[SettingThreshold].Value = fmt.Sprintf("%.2f", m.values.MicThreshold)
	rows[SettingMute].Value = onOff(m.values.Muted)
	rows[SettingDebug].Value = onOff(m.values.ShowDebug)
	return rows
}

// stepValue adds delta, clamps, and rounds to two decimals so repeated steps do not drift
func stepValue(v, delta, lo, hi float64) float64 {
	return vmath.Clamp(math.Round((v+delta)*100)/100, lo, hi)
}

func onOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}
